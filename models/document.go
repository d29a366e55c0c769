// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package models

import "fmt"

// DocumentType identifies one of the fixed shared-state categories that are
// synchronized between the devices of a single account. The set is closed:
// every relay namespace, snapshot row, and live config object is keyed by
// exactly one of these values.
type DocumentType int

const (
	// UserProfile holds the account-wide profile fields (display name,
	// profile picture reference and key).
	UserProfile DocumentType = 1

	// Contacts holds one entry per known contact (name, nickname,
	// approved/blocked flags, conversation priority).
	Contacts DocumentType = 2

	// ConvoInfoVolatile holds per-conversation ephemeral state such as the
	// last-read timestamp and the unread marker.
	ConvoInfoVolatile DocumentType = 3

	// UserGroups holds one entry per group the account participates in.
	UserGroups DocumentType = 4
)

// AllDocumentTypes returns every document type in merge-priority order.
// Batches spanning several types must be processed in this order because
// later types depend on invariants established by earlier ones (group
// entries reference the current-user identity set up by the profile).
func AllDocumentTypes() []DocumentType {
	return []DocumentType{UserProfile, Contacts, ConvoInfoVolatile, UserGroups}
}

// MergePriority returns the position of t in the fixed processing order.
// Lower values merge first. Unknown types sort last.
func (t DocumentType) MergePriority() int {
	switch t {
	case UserProfile:
		return 0
	case Contacts:
		return 1
	case ConvoInfoVolatile:
		return 2
	case UserGroups:
		return 3
	default:
		return 4
	}
}

// Valid reports whether t is a member of the closed document-type set.
func (t DocumentType) Valid() bool {
	switch t {
	case UserProfile, Contacts, ConvoInfoVolatile, UserGroups:
		return true
	}
	return false
}

// String implements [fmt.Stringer]. The names double as relay namespace
// labels, so changing them changes the wire protocol of the dev relay.
func (t DocumentType) String() string {
	switch t {
	case UserProfile:
		return "user-profile"
	case Contacts:
		return "contacts"
	case ConvoInfoVolatile:
		return "convo-info-volatile"
	case UserGroups:
		return "user-groups"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseDocumentType converts a namespace label produced by
// [DocumentType.String] back into its enum value. Returns false when the
// label does not name a known type.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch s {
	case "user-profile":
		return UserProfile, true
	case "contacts":
		return Contacts, true
	case "convo-info-volatile":
		return ConvoInfoVolatile, true
	case "user-groups":
		return UserGroups, true
	}
	return 0, false
}

// Owner is the identity a document belongs to: the hex-encoded public key of
// the current user, or of a group. Owners are opaque to the engine; they
// partition the relay, the snapshot store, and the in-memory registry.
type Owner string

// Key uniquely identifies one mutable document: a (document-type, owner)
// pair. It is the registry key and the snapshot-row key.
type Key struct {
	Type  DocumentType
	Owner Owner
}

// String implements [fmt.Stringer], producing a stable "owner/type" label
// used in logs.
func (k Key) String() string {
	return string(k.Owner) + "/" + k.Type.String()
}
