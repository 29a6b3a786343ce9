// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a snapshot of a completed response used by the logging
// middleware after the downstream handler has returned.
type responseData struct {
	status int
	size   int

	// body holds only the slice passed to the most recent Write call,
	// not a concatenation of all writes.
	body []byte
}

// responseWriter decorates http.ResponseWriter to capture the status code
// and byte count without buffering the response. WriteHeader is forwarded
// to the underlying writer exactly once; later calls are ignored, matching
// the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	body        []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200
// header first when the handler never called WriteHeader. size accumulates
// across calls; body is replaced each call.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
