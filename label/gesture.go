// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"

	"cogentcore.org/richlabel/events"
	"cogentcore.org/richlabel/math32"
)

// GestureStates are the states of a pointer gesture on a label.
type GestureStates int32

const (
	// GestureIdle is when no gesture is in progress.
	GestureIdle GestureStates = iota

	// GesturePressedOnLink is a press on a link, which is active.
	GesturePressedOnLink

	// GesturePressedOnToken is a press on the truncation token.
	GesturePressedOnToken

	// GesturePressedPlain is a press elsewhere, with a plain tap handler.
	GesturePressedPlain
)

var gestureStatesNames = [...]string{"GestureIdle", "GesturePressedOnLink", "GesturePressedOnToken", "GesturePressedPlain"}

func (gs GestureStates) String() string {
	if gs < 0 || int(gs) >= len(gestureStatesNames) {
		return fmt.Sprintf("GestureStates(%d)", int(gs))
	}
	return gestureStatesNames[gs]
}

// GestureState returns the state of the current pointer gesture.
func (lb *Label) GestureState() GestureStates {
	return lb.gesture
}

// HitTest returns whether a press at the given point would be handled
// by the label itself, because it is on a link or on a tappable token.
func (lb *Label) HitTest(pt math32.Vector2) bool {
	if !lb.UserInteraction || lb.Hidden {
		return false
	}
	if lb.linkIndexAtPoint(pt) >= 0 {
		return true
	}
	return lb.Truncation.OnTap != nil && lb.TruncationTokenAt(pt)
}

// HandleEvent handles the given pointer event. Events that the label
// does not consume are passed to the Base.
// A link takes precedence over the truncation token at the same point.
func (lb *Label) HandleEvent(e *events.Pointer) {
	if !lb.UserInteraction || lb.Hidden {
		lb.forward(e)
		return
	}
	switch e.Type() {
	case events.Press:
		lb.press(e)
	case events.Drag:
		lb.drag(e)
	case events.Release:
		lb.release(e)
	case events.Cancel:
		lb.cancel(e)
	default:
		lb.forward(e)
	}
}

// forward passes the event to the Base if it has not been handled.
func (lb *Label) forward(e *events.Pointer) {
	if lb.Base != nil && !e.IsHandled() {
		lb.Base.HandleEvent(e)
	}
}

func (lb *Label) press(e *events.Pointer) {
	lb.endGesture()
	if li := lb.linkIndexAtPoint(e.Pos); li >= 0 {
		lb.gesture = GesturePressedOnLink
		lb.pressedLink = li
		lb.setActiveLink(li)
		e.SetHandled()
		return
	}
	if lb.Truncation.OnTap != nil && lb.TruncationTokenAt(e.Pos) {
		lb.gesture = GesturePressedOnToken
		lb.Truncation.Pressed = true
		e.SetHandled()
		return
	}
	if lb.OnTap != nil {
		lb.gesture = GesturePressedPlain
		e.SetHandled()
		return
	}
	lb.forward(e)
}

func (lb *Label) drag(e *events.Pointer) {
	switch lb.gesture {
	case GesturePressedOnLink:
		if lb.linkIndexAtPoint(e.Pos) != lb.pressedLink {
			lb.endGesture()
		}
		e.SetHandled()
	case GesturePressedOnToken:
		if !lb.TruncationTokenAt(e.Pos) {
			lb.endGesture()
		}
		e.SetHandled()
	case GesturePressedPlain:
		e.SetHandled()
	default:
		lb.forward(e)
	}
}

func (lb *Label) cancel(e *events.Pointer) {
	if lb.gesture == GestureIdle {
		lb.forward(e)
		return
	}
	lb.endGesture()
	// the enclosing view also needs to abandon the gesture
	lb.forward(e)
	e.SetHandled()
}

func (lb *Label) release(e *events.Pointer) {
	switch lb.gesture {
	case GesturePressedOnLink:
		lk := lb.links[lb.pressedLink]
		lb.gesture = GestureIdle
		lb.pressedLink = -1
		e.SetHandled()
		if lk.OnTap != nil {
			lk.OnTap(lb, lk)
		} else {
			lb.dispatch(lk)
		}
		lb.setActiveLink(-1)
	case GesturePressedOnToken:
		lb.gesture = GestureIdle
		lb.Truncation.Pressed = false
		e.SetHandled()
		if lb.Truncation.OnTap != nil {
			lb.Truncation.OnTap()
		}
	case GesturePressedPlain:
		lb.gesture = GestureIdle
		lb.forward(e)
		e.SetHandled()
		if lb.OnTap != nil {
			lb.OnTap(lb)
		}
	default:
		lb.forward(e)
	}
}

// endGesture returns to [GestureIdle], ending any link activation.
func (lb *Label) endGesture() {
	if lb.gesture == GesturePressedOnLink {
		lb.setActiveLink(-1)
	}
	lb.gesture = GestureIdle
	lb.pressedLink = -1
	lb.Truncation.Pressed = false
}
