// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad relay request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrNotFound            = errors.New("relay resource not found")
	ErrInternalServerError = errors.New("relay internal error")
)
