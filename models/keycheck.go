// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyCheckValue is an authenticated encryption of a fixed, versioned constant
// under the master key. It is public — the server stores it next to the PRF
// parameters — and its only job is to let a freshly derived candidate key be
// tested for correctness without touching real data.
//
// Created once, right after the first correct key is established; it never
// rotates unless the key itself does.
type KeyCheckValue struct {
	IV         []byte `json:"iv"`
	Ciphertext []byte `json:"ciphertext"`
	Version    int    `json:"version"`
}

// IsZero reports whether the KCV has not been generated yet.
func (k KeyCheckValue) IsZero() bool {
	return len(k.IV) == 0 && len(k.Ciphertext) == 0
}
