// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for handling errors that should be
// logged and absorbed rather than propagated, which is the common case
// for rendering-thread code that must never fail across its contract.
package errors

import (
	"errors"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must1 panics if the given error is non-nil and otherwise returns the given value.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// New is a wrapper for [errors.New].
func New(text string) error {
	return errors.New(text)
}
