// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHash_MatchesSHA256(t *testing.T) {
	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	want := sha256.Sum256(data)
	if !bytes.Equal(sum1, want[:]) {
		t.Fatalf("unexpected digest %x", sum1)
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic")
	}
}

func TestHash_DifferentInput(t *testing.T) {
	if bytes.Equal(Hash([]byte("a")), Hash([]byte("b"))) {
		t.Fatal("different data must produce different digests")
	}
}

func TestChecksum(t *testing.T) {
	want := sha256.Sum256([]byte("{}"))
	if got := Checksum([]byte("{}")); got != hex.EncodeToString(want[:]) {
		t.Errorf("expected %s, got %s", hex.EncodeToString(want[:]), got)
	}
}

func TestChecksum_Empty(t *testing.T) {
	// sha256 of empty input
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != empty {
		t.Errorf("expected %s, got %s", empty, got)
	}
}

func TestHash_Concurrent(t *testing.T) {
	data := []byte("parallel")
	want := Hash(data)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(Hash(data), want) {
				t.Error("concurrent hash mismatch")
			}
		}()
	}
	wg.Wait()
}
