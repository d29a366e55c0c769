// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package models

// StoreRequest is the body of a relay store call: one sealed push payload
// destined for the owner's namespace given in the URL.
type StoreRequest struct {
	Payload []byte `json:"payload"`
	Seqno   int64  `json:"seqno"`
}

// StoreResponse is the relay's acknowledgement of a stored message.
type StoreResponse struct {
	Hash       string `json:"hash"`
	AcceptedAt int64  `json:"accepted_at"`
}

// RetrieveResponse carries every message stored for an owner since the
// requested watermark, across all namespaces.
type RetrieveResponse struct {
	Messages []IncomingMessage `json:"messages"`
	Length   int               `json:"length"`
}

// DeleteMessagesRequest names relay hashes to remove from an owner's swarm.
type DeleteMessagesRequest struct {
	Hashes []string `json:"hashes"`
	Length int      `json:"length"`
}
