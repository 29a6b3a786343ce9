// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingWorker tracks Run and Stop calls.
type countingWorker struct {
	runs  int
	stops int
}

func (w *countingWorker) Run()  { w.runs++ }
func (w *countingWorker) Stop() { w.stops++ }

// plainWorker has no Stop method.
type plainWorker struct {
	runs int
}

func (w *plainWorker) Run() { w.runs++ }

func TestWorkers_Run_StartsEveryWorker(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &plainWorker{}

	NewWorkers(w1, w2, w3).Run()

	assert.Equal(t, 1, w1.runs)
	assert.Equal(t, 1, w2.runs)
	assert.Equal(t, 1, w3.runs)
}

func TestWorkers_Stop_SkipsWorkersWithoutStop(t *testing.T) {
	stoppable := &countingWorker{}
	plain := &plainWorker{}

	ws := NewWorkers(stoppable, plain)
	ws.Run()
	ws.Stop()

	assert.Equal(t, 1, stoppable.stops)
	assert.Equal(t, 1, plain.runs)
}

func TestWorkers_Run_NoWorkers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run()
		NewWorkers().Stop()
	})
}

func TestWorkers_Run_Repeatable(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()

	assert.Equal(t, 2, w.runs)
}
