// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"net/url"
	"testing"
	"time"

	"cogentcore.org/richlabel/events"
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/textcheck"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a delegate that records the selections it receives,
// along with the events forwarded to the base view.
type recorder struct {
	calls []string
	urls  []*url.URL
	zone  *time.Location
	base  events.Listeners
	fwd   []events.Types
}

func newRecorder() *recorder {
	rc := &recorder{}
	for _, tp := range []events.Types{events.Press, events.Drag, events.Release, events.Cancel} {
		rc.base.Add(tp, func(ev events.Event) { rc.fwd = append(rc.fwd, ev.Type()) })
	}
	return rc
}

func (rc *recorder) AddressSelected(lb *Label, components map[string]string) {
	rc.calls = append(rc.calls, "address")
}

func (rc *recorder) DateSelected(lb *Label, date time.Time, zone *time.Location, duration time.Duration) {
	rc.calls = append(rc.calls, "date")
	rc.zone = zone
}

func (rc *recorder) LinkSelected(lb *Label, u *url.URL) {
	rc.calls = append(rc.calls, "link")
	rc.urls = append(rc.urls, u)
}

func (rc *recorder) PhoneNumberSelected(lb *Label, number string) {
	rc.calls = append(rc.calls, "phone:"+number)
}

func (rc *recorder) TransitInfoSelected(lb *Label, components map[string]string) {
	rc.calls = append(rc.calls, "transit")
}

func (rc *recorder) ResultSelected(lb *Label, res *textcheck.Result) {
	rc.calls = append(rc.calls, "result")
}

// linkOnly only implements [LinkSelector].
type linkOnly struct{ n int }

func (lo *linkOnly) LinkSelected(lb *Label, u *url.URL) { lo.n++ }

func gestureLabel(t *testing.T) (*Label, *Link, *recorder) {
	lb, lk := linkLabel(t)
	rc := newRecorder()
	lb.Delegate = rc
	lb.Base = &rc.base
	return lb, lk, rc
}

func send(lb *Label, tp events.Types, x, y float32) *events.Pointer {
	e := events.NewPointer(tp, math32.Vec2(x, y))
	lb.HandleEvent(e)
	return e
}

func TestTapLink(t *testing.T) {
	lb, lk, rc := gestureLabel(t)
	before := lb.Text().Clone()

	e := send(lb, events.Press, 65, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, GesturePressedOnLink, lb.GestureState())
	assert.Same(t, lk, lb.ActiveLink())
	assert.False(t, before.Equal(lb.Text()))

	// moving within the link keeps it pressed
	e = send(lb, events.Drag, 100, 5)
	assert.True(t, e.IsHandled())
	assert.Same(t, lk, lb.ActiveLink())

	e = send(lb, events.Release, 100, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, []string{"link"}, rc.calls)
	assert.Equal(t, exampleURL, rc.urls[0])
	assert.Nil(t, lb.ActiveLink())
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.True(t, before.Equal(lb.Text()))
	assert.Empty(t, rc.fwd)
}

func TestTapLinkOnTap(t *testing.T) {
	lb, lk, rc := gestureLabel(t)
	var tapped *Link
	lk.OnTap = func(lb *Label, lk *Link) {
		tapped = lk
		// still active during the callback
		assert.Same(t, lk, lb.ActiveLink())
	}
	send(lb, events.Press, 65, 5)
	send(lb, events.Release, 65, 5)
	assert.Same(t, lk, tapped)
	assert.Empty(t, rc.calls)
	assert.Nil(t, lb.ActiveLink())
}

func TestDragOffLink(t *testing.T) {
	lb, lk, rc := gestureLabel(t)
	called := false
	lk.OnTap = func(lb *Label, lk *Link) { called = true }
	before := lb.Text().Clone()

	send(lb, events.Press, 65, 5)
	require.Equal(t, GesturePressedOnLink, lb.GestureState())
	e := send(lb, events.Drag, 5, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.Nil(t, lb.ActiveLink())
	assert.True(t, before.Equal(lb.Text()))

	send(lb, events.Release, 5, 5)
	assert.False(t, called)
	assert.Empty(t, rc.calls)
	assert.Equal(t, []events.Types{events.Release}, rc.fwd)
}

func TestDragToOtherLink(t *testing.T) {
	lb, _, rc := gestureLabel(t)
	lb.AddLinkToURL(&url.URL{Host: "today"}, textpos.R(18, 23))
	send(lb, events.Press, 65, 5)
	send(lb, events.Drag, 195, 5)
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.Nil(t, lb.ActiveLink())
	send(lb, events.Release, 195, 5)
	assert.Empty(t, rc.calls)
}

func TestCancel(t *testing.T) {
	lb, _, rc := gestureLabel(t)
	before := lb.Text().Clone()
	send(lb, events.Press, 65, 5)
	e := send(lb, events.Cancel, 65, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.Nil(t, lb.ActiveLink())
	assert.True(t, before.Equal(lb.Text()))
	assert.Equal(t, []events.Types{events.Cancel}, rc.fwd)

	send(lb, events.Release, 65, 5)
	assert.Empty(t, rc.calls)
}

func TestPlainTap(t *testing.T) {
	lb, _, rc := gestureLabel(t)

	// no handler: everything goes to the base
	e := send(lb, events.Press, 5, 5)
	assert.False(t, e.IsHandled())
	assert.Equal(t, GestureIdle, lb.GestureState())
	send(lb, events.Release, 5, 5)
	assert.Equal(t, []events.Types{events.Press, events.Release}, rc.fwd)

	rc.fwd = nil
	taps := 0
	lb.OnTap = func(lb *Label) {
		taps++
		// the base has seen the release first
		assert.Equal(t, []events.Types{events.Release}, rc.fwd)
	}
	e = send(lb, events.Press, 5, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, GesturePressedPlain, lb.GestureState())
	send(lb, events.Drag, 8, 5)
	e = send(lb, events.Release, 8, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, 1, taps)
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.Empty(t, rc.calls)
}

// tokenLabel has the ellipsis token at [6, 7), on the character drawn at x 60 to 70.
func tokenLabel(t *testing.T) (*Label, *recorder, *int) {
	lb := newLabel("Hello, this is a very long sentence", 100, 10)
	rc := newRecorder()
	lb.Delegate = rc
	lb.Base = &rc.base
	taps := 0
	lb.Truncation.OnTap = func() { taps++ }
	return lb, rc, &taps
}

func TestTapToken(t *testing.T) {
	lb, rc, taps := tokenLabel(t)
	assert.True(t, lb.HitTest(math32.Vec2(65, 5)))
	assert.False(t, lb.HitTest(math32.Vec2(5, 5)))

	e := send(lb, events.Press, 65, 5)
	assert.True(t, e.IsHandled())
	assert.Equal(t, GesturePressedOnToken, lb.GestureState())
	assert.True(t, lb.Truncation.Pressed)
	send(lb, events.Release, 65, 5)
	assert.Equal(t, 1, *taps)
	assert.False(t, lb.Truncation.Pressed)
	assert.Empty(t, rc.fwd)

	// moving off the token ends the press
	send(lb, events.Press, 65, 5)
	send(lb, events.Drag, 5, 5)
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.False(t, lb.Truncation.Pressed)
	send(lb, events.Release, 5, 5)
	assert.Equal(t, 1, *taps)

	// without a handler the token is not tappable
	lb.Truncation.OnTap = nil
	assert.False(t, lb.HitTest(math32.Vec2(65, 5)))
	send(lb, events.Press, 65, 5)
	assert.Equal(t, GestureIdle, lb.GestureState())
}

func TestLinkOverToken(t *testing.T) {
	lb, rc, taps := tokenLabel(t)
	lb.AddLinkToURL(exampleURL, textpos.R(0, 7))
	send(lb, events.Press, 65, 5)
	assert.Equal(t, GesturePressedOnLink, lb.GestureState())
	send(lb, events.Release, 65, 5)
	assert.Equal(t, 0, *taps)
	assert.Equal(t, []string{"link"}, rc.calls)
}

func TestHitTest(t *testing.T) {
	lb, _, _ := gestureLabel(t)
	assert.True(t, lb.HitTest(math32.Vec2(65, 5)))
	assert.False(t, lb.HitTest(math32.Vec2(5, 5)))
	lb.UserInteraction = false
	assert.False(t, lb.HitTest(math32.Vec2(65, 5)))
	lb.UserInteraction = true
	lb.Hidden = true
	assert.False(t, lb.HitTest(math32.Vec2(65, 5)))
}

func TestDisabled(t *testing.T) {
	lb, _, rc := gestureLabel(t)
	lb.UserInteraction = false
	e := send(lb, events.Press, 65, 5)
	assert.Equal(t, GestureIdle, lb.GestureState())
	assert.Nil(t, lb.ActiveLink())
	assert.Equal(t, []events.Types{events.Press}, rc.fwd)
	assert.False(t, e.IsHandled())
}

func TestDispatch(t *testing.T) {
	lb := newLabel("tap", 100, 10)
	rc := newRecorder()
	lb.Delegate = rc

	tap := func(res *textcheck.Result) {
		lb.dispatch(&Link{Result: res})
	}
	tap(&textcheck.Result{Type: textcheck.PhoneNumber, PhoneNumber: "555-123-4567"})
	tap(&textcheck.Result{Type: textcheck.Date, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})
	tap(&textcheck.Result{Type: textcheck.Address, AddressComponents: map[string]string{textcheck.Street: "9 Elm Street"}})
	tap(&textcheck.Result{Type: textcheck.TransitInformation, Components: map[string]string{textcheck.Flight: "117"}})
	tap(&textcheck.Result{Type: textcheck.Other, Text: "x"})
	tap(&textcheck.Result{Type: textcheck.Link})
	lb.dispatch(&Link{})
	assert.Equal(t, []string{"phone:555-123-4567", "date", "address", "transit", "result"}, rc.calls)
	assert.Equal(t, time.Local, rc.zone)

	ny := time.FixedZone("EST", -5*3600)
	tap(&textcheck.Result{Type: textcheck.Date, Date: time.Now(), TimeZone: ny})
	assert.Equal(t, ny, rc.zone)

	// missing capabilities are ignored
	lo := &linkOnly{}
	lb.Delegate = lo
	tap(&textcheck.Result{Type: textcheck.PhoneNumber, PhoneNumber: "1"})
	tap(&textcheck.Result{Type: textcheck.Link, URL: exampleURL})
	assert.Equal(t, 1, lo.n)

	lb.Delegate = nil
	tap(&textcheck.Result{Type: textcheck.Link, URL: exampleURL})
}

func TestTextChangeDuringGesture(t *testing.T) {
	lb, lk, rc := gestureLabel(t)
	lk.OnTap = func(lb *Label, lk *Link) { lb.SetString("replaced") }
	send(lb, events.Press, 65, 5)
	send(lb, events.Release, 65, 5)
	assert.Equal(t, "replaced", lb.String())
	assert.Nil(t, lb.ActiveLink())
	assert.Empty(t, rc.calls)

	lb, _, _ = gestureLabel(t)
	send(lb, events.Press, 65, 5)
	lb.SetString("Visit example.com today")
	assert.Equal(t, GestureIdle, lb.GestureState())
	e := send(lb, events.Release, 65, 5)
	assert.False(t, e.IsHandled())
}
