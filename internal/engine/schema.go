// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package engine

import (
	"fmt"
	"strings"

	"github.com/session-foundation/configsync/models"
)

// Profile field names. The profile document is a flat record with a closed
// field set; the collection documents key their entries by a typed prefix
// instead.
const (
	FieldDisplayName   = "displayName"
	FieldProfilePicURL = "profilePicURL"
	FieldProfilePicKey = "profilePicKey"
	FieldPriority      = "priority"
)

// Entry-name prefixes for the collection document types. A contact entry
// field is "contact:<sessionID>", a volatile-conversation entry is
// "convo:<conversationID>", a group entry is "group:<groupID>".
const (
	PrefixContact = "contact:"
	PrefixConvo   = "convo:"
	PrefixGroup   = "group:"
)

// validateField checks that field belongs to the schema of document type t.
func validateField(t models.DocumentType, field string) error {
	switch t {
	case models.UserProfile:
		switch field {
		case FieldDisplayName, FieldProfilePicURL, FieldProfilePicKey, FieldPriority:
			return nil
		}
		return fmt.Errorf("%w: %q is not a profile field", ErrUnknownField, field)

	case models.Contacts:
		return validatePrefixed(field, PrefixContact)
	case models.ConvoInfoVolatile:
		return validatePrefixed(field, PrefixConvo)
	case models.UserGroups:
		return validatePrefixed(field, PrefixGroup)
	default:
		return fmt.Errorf("%w: unknown document type %v", ErrUnknownField, t)
	}
}

func validatePrefixed(field, prefix string) error {
	if !strings.HasPrefix(field, prefix) || len(field) == len(prefix) {
		return fmt.Errorf("%w: %q must be %q followed by an entry id", ErrUnknownField, field, prefix)
	}
	return nil
}

// ContactEntry is the typed value stored under a "contact:" field.
type ContactEntry struct {
	Name     string `json:"name,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Approved bool   `json:"approved,omitempty"`
	Blocked  bool   `json:"blocked,omitempty"`
	Priority int64  `json:"priority,omitempty"`
}

// ConvoEntry is the typed value stored under a "convo:" field.
type ConvoEntry struct {
	LastRead int64 `json:"last_read,omitempty"`
	Unread   bool  `json:"unread,omitempty"`
}

// GroupEntry is the typed value stored under a "group:" field.
type GroupEntry struct {
	Name     string `json:"name,omitempty"`
	JoinedAt int64  `json:"joined_at,omitempty"`
	Priority int64  `json:"priority,omitempty"`
	Approved bool   `json:"approved,omitempty"`
}
