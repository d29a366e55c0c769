// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHashPayload_MatchesSHA256(t *testing.T) {
	data := []byte("sealed payload bytes")

	want := sha256.Sum256(data)
	got := HashPayload(data)

	if got != hex.EncodeToString(want[:]) {
		t.Errorf("expected %s, got %s", hex.EncodeToString(want[:]), got)
	}
}

func TestHashPayload_Deterministic(t *testing.T) {
	data := []byte("same input")
	if HashPayload(data) != HashPayload(data) {
		t.Error("expected identical digests for identical input")
	}
}

func TestHashPayload_Concurrent(t *testing.T) {
	data := []byte("concurrent input")
	want := HashPayload(data)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := HashPayload(data); got != want {
					t.Errorf("expected %s, got %s", want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
