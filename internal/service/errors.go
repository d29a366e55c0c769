// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package service

import "errors"

var (
	ErrNoOwnerProvided = errors.New("no owner provided")
)
