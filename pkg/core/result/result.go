// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package result provides the uniform envelope which is returned by
// every CRUD service operation. Anticipated error conditions, such as
// validation failures and references to non-existent records, are
// recovered into a failure envelope and never surface as transport
// faults; only unexpected storage errors bypass it.
package result

// Result is the envelope wrapping one operation outcome. Its JSON
// shape is {value, isSuccess, error} with a null error on success,
// matching what the web client data layer decodes.
type Result[T any] struct {
	Value     T       `json:"value"`
	IsSuccess bool    `json:"isSuccess"`
	Error     *string `json:"error"`
}

// Ok wraps a successful value into an envelope.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, IsSuccess: true}
}

// Failure wraps a human-readable error message into an envelope,
// leaving the value at its zero state.
func Failure[T any](msg string) Result[T] {
	return Result[T]{IsSuccess: false, Error: &msg}
}

// ErrorMessage returns the failure message, or an empty string for a
// successful envelope.
func (r Result[T]) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
