// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of event, including both the source
// and the action of the event (Press and Release are separate types).
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// Press is a pointer (finger, mouse button or pen) going down.
	Press

	// Drag is a pointer moving while it is down.
	Drag

	// Release is a pointer going up at the end of a gesture.
	Release

	// Cancel is sent when the system takes over a gesture that is in
	// progress, which must then be abandoned without any action.
	Cancel

	// Func is an event carrying a function to run on the
	// receiving thread: see [NewFunc].
	Func
)

var typesNames = [...]string{"UnknownType", "Press", "Drag", "Release", "Cancel", "Func"}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "Types(?)"
	}
	return typesNames[tp]
}

// EventFlags encode boolean event properties.
type EventFlags int64

const (
	// Handled indicates that the event has been handled.
	Handled EventFlags = 1 << iota

	// Unique indicates that the event is unique and not
	// to be compressed with like events.
	Unique
)

// Has returns whether the given flag is set.
func (fl EventFlags) Has(f EventFlags) bool {
	return fl&f != 0
}
