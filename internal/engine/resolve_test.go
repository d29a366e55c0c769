// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDigestOf_Distinguishes verifies the digest separates field name,
// value, and tombstone state from each other.
func TestDigestOf_Distinguishes(t *testing.T) {
	v := json.RawMessage(`"x"`)

	base := digestOf("name", v, false)
	assert.Len(t, base, 64)
	assert.Equal(t, base, digestOf("name", v, false), "digest is a pure function")

	assert.NotEqual(t, base, digestOf("other", v, false))
	assert.NotEqual(t, base, digestOf("name", json.RawMessage(`"y"`), false))
	assert.NotEqual(t, base, digestOf("name", v, true))
}

// TestResolve verifies winner selection by digest, with the source hash as
// the tie-break for identical digests.
func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		current  fieldCandidate
		incoming fieldCandidate
		winner   string // SourceHash of the expected winner
	}{
		{
			name:     "LargerDigestWins",
			current:  fieldCandidate{Digest: "aa", SourceHash: "h1"},
			incoming: fieldCandidate{Digest: "bb", SourceHash: "h2"},
			winner:   "h2",
		},
		{
			name:     "SmallerDigestLoses",
			current:  fieldCandidate{Digest: "ff", SourceHash: "h1"},
			incoming: fieldCandidate{Digest: "00", SourceHash: "h2"},
			winner:   "h1",
		},
		{
			name:     "EqualDigestLargerHashWins",
			current:  fieldCandidate{Digest: "aa", SourceHash: "h1"},
			incoming: fieldCandidate{Digest: "aa", SourceHash: "h9"},
			winner:   "h9",
		},
		{
			name:     "EqualDigestLocalSourceLoses",
			current:  fieldCandidate{Digest: "aa", SourceHash: ""},
			incoming: fieldCandidate{Digest: "aa", SourceHash: "h2"},
			winner:   "h2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve([]fieldCandidate{tt.current, tt.incoming})
			assert.Equal(t, tt.winner, got.SourceHash)
		})
	}
}
