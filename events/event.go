// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer gesture events that a label
// responds to, and a lock-free [Queue] for handing work to the
// rendering thread.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/richlabel/math32"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so it is not passed on to any other handler.
	SetHandled()
}

// Base is the base type for events, implementing the [Event] interface.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Flags records event properties.
	Flags EventFlags

	// GenTime is the time the event was generated.
	GenTime time.Time
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) IsHandled() bool { return ev.Flags.Has(Handled) }

func (ev *Base) SetHandled() { ev.Flags |= Handled }

func (ev *Base) init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05.000"))
}

// Pointer is a pointer gesture event: [Press], [Drag], [Release] or [Cancel].
type Pointer struct {
	Base

	// Pos is the position of the pointer in the coordinates of the
	// receiving view, with the origin at the top left and Y down.
	Pos math32.Vector2

	// Start is the position of the [Press] that began the gesture.
	Start math32.Vector2
}

// NewPointer returns a new pointer event of the given type at the given
// position. The Start position is the same as Pos: use [NewDrag] for
// a gesture that has moved.
func NewPointer(typ Types, pos math32.Vector2) *Pointer {
	ev := &Pointer{Pos: pos, Start: pos}
	ev.init(typ)
	ev.Flags |= Unique
	return ev
}

// NewDrag returns a new [Drag] event at pos for a gesture
// that started at start.
func NewDrag(pos, start math32.Vector2) *Pointer {
	ev := &Pointer{Pos: pos, Start: start}
	ev.init(Drag)
	return ev
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v, Start: %v, Time: %v}", ev.Typ, ev.Pos, ev.Start, ev.GenTime.Format("04:05.000"))
}

// FuncEvent is a [Func] event carrying a function.
type FuncEvent struct {
	Base

	// Fun is the function to run.
	Fun func()
}

// NewFunc returns a new [Func] event for the given function.
func NewFunc(fun func()) *FuncEvent {
	ev := &FuncEvent{Fun: fun}
	ev.init(Func)
	ev.Flags |= Unique
	return ev
}

func (ev *FuncEvent) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05.000"))
}
