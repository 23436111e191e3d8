// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label provides [Label], a view of styled text with tappable
// links and a tappable truncation token. It resolves pointer positions
// to characters in the shaped text, keeps the registry of links and
// the styling of the active link, splices the truncation token into
// the lines that are painted, and turns press, drag and release events
// into link, token and plain taps.
//
// All methods must be called on the rendering thread, except that
// link detection runs in the background and hands its results back
// through [Label.Loop].
package label

import (
	"log/slog"

	"cogentcore.org/richlabel/events"
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textcheck"
)

// Label displays styled text within its Bounds, with links and
// truncation. Use [New] to make a new one.
type Label struct {
	// Bounds is the rectangle of the view, in the coordinates of
	// the pointer events it receives, with Y down.
	Bounds math32.Box2

	// Insets are the padding between the Bounds and the text.
	Insets Insets

	// NumberOfLines is the maximum number of lines to show, or 0 for
	// as many as fit in the Bounds.
	NumberOfLines int

	// LineBreakMode determines how the last visible line ends when the
	// text does not fit. Labels with NumberOfLines other than 1 always
	// truncate the tail.
	LineBreakMode LineBreakModes

	// Align is the horizontal alignment of the lines.
	Align shaped.Aligns

	// VerticalAlignment is the position of the text within the Bounds
	// when it is shorter than them.
	VerticalAlignment VerticalAlignments

	// UserInteraction is whether the label responds to pointer events.
	UserInteraction bool

	// Hidden is whether the label is hidden, in which case it does
	// not respond to pointer events.
	Hidden bool

	// LinkAttributes are the default attributes for new links.
	LinkAttributes rich.Attributes

	// ActiveLinkAttributes are the default attributes for a pressed
	// link that does not have its own.
	ActiveLinkAttributes rich.Attributes

	// InactiveLinkAttributes are the default attributes for links
	// in a dimmed label.
	InactiveLinkAttributes rich.Attributes

	// LinkTouchMargin is how far outside the Bounds a press can be
	// and still be considered for a link.
	LinkTouchMargin float32

	// EnabledCheckingTypes are the kinds of link to detect
	// automatically in new text.
	EnabledCheckingTypes textcheck.CheckingTypes

	// Truncation is the truncation token and its state.
	Truncation Truncation

	// Delegate receives taps on links that do not have their own
	// OnTap function, through the selector interfaces that it
	// implements, such as [LinkSelector].
	Delegate any

	// OnTap is called for a tap that is not on a link or the token.
	OnTap func(lb *Label)

	// OnRedraw is called whenever the displayed text changes and
	// the label needs to be painted again.
	OnRedraw func(lb *Label)

	// Base receives the pointer events that the label does not
	// consume, for the default handling of the enclosing view.
	Base events.Handler

	// Loop is the queue of work for the rendering thread, used to
	// publish the results of background link detection.
	// See [Label.RunPending].
	Loop *events.Queue

	// Shaper shapes the text.
	Shaper shaped.Shaper

	// Detector finds links in the text, for the EnabledCheckingTypes.
	// If nil, a [textcheck.Detector] is made as needed.
	Detector *textcheck.Detector

	// text is the displayed text, including link attributes.
	text rich.Text

	// links is the link registry, in order of addition.
	links []*Link

	// activeLink is the index in links of the pressed link, or -1.
	activeLink int

	// inactiveText is the text from before a link was activated,
	// restored when it is deactivated.
	inactiveText *rich.Text

	// dimmedText is the text from before the label was dimmed.
	dimmedText *rich.Text

	// needsFramesetter is set when the text changes, so that
	// the layout must be redone.
	needsFramesetter bool

	// layout cache
	lay layoutCache

	// gesture is the state of the current pointer gesture.
	gesture GestureStates

	// pressedLink is the index of the link for GesturePressedOnLink.
	pressedLink int
}

// Insets is padding on each side of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// New returns a new label showing the given text, using the default
// [shaped.NewShaper] and [Defaults] settings.
func New(tx rich.Text) *Label {
	lb := &Label{NumberOfLines: 1, LineBreakMode: TruncateTail, UserInteraction: true, VerticalAlignment: Center}
	lb.activeLink = -1
	lb.pressedLink = -1
	if shaped.NewShaper != nil {
		lb.Shaper = shaped.NewShaper()
	}
	lb.ApplySettings(Defaults())
	lb.SetText(tx)
	return lb
}

// Text returns the displayed text, including link attributes.
func (lb *Label) Text() rich.Text {
	return lb.text
}

// String returns the plain text of the label.
func (lb *Label) String() string {
	return lb.text.String()
}

// SetText replaces the text, which removes all links and ends any
// link activation and gesture in progress, and starts detection of
// the EnabledCheckingTypes.
func (lb *Label) SetText(tx rich.Text) *Label {
	lb.text = tx.Clone()
	lb.links = nil
	lb.activeLink = -1
	lb.inactiveText = nil
	lb.dimmedText = nil
	lb.gesture = GestureIdle
	lb.pressedLink = -1
	lb.Truncation.reset()
	lb.invalidate()
	lb.checkText()
	return lb
}

// SetString replaces the text with the given plain string,
// with no attributes.
func (lb *Label) SetString(s string) *Label {
	return lb.SetText(rich.NewText(s, nil))
}

// invalidate marks the layout as needing to be redone and requests
// a redraw. It must be called after every change to the displayed text.
func (lb *Label) invalidate() {
	lb.needsFramesetter = true
	if lb.OnRedraw != nil {
		lb.OnRedraw(lb)
	}
}

// Flush redoes the layout now if needed, so that the next paint
// reflects the current text without waiting for the next frame.
func (lb *Label) Flush() {
	lb.DrawLines()
}

// SetDimmed applies the inactive link attributes to all links when
// dimmed is true, and restores the normal ones when it is false.
func (lb *Label) SetDimmed(dimmed bool) {
	if !dimmed {
		if lb.dimmedText != nil {
			lb.text = *lb.dimmedText
			lb.dimmedText = nil
			lb.invalidate()
		}
		return
	}
	if lb.dimmedText != nil {
		return
	}
	lb.setActiveLink(-1)
	dt := lb.text.Clone()
	lb.dimmedText = &dt
	for _, lk := range lb.links {
		attrs := lk.InactiveAttributes
		if len(attrs) == 0 {
			attrs = lb.InactiveLinkAttributes
		}
		if !lb.text.AddAttributes(attrs, lk.Range()) {
			slog.Debug("label: skipping stale link range", "range", lk.Range(), "len", lb.text.Len())
		}
	}
	lb.invalidate()
}

// IsDimmed returns whether the label is dimmed: see [Label.SetDimmed].
func (lb *Label) IsDimmed() bool {
	return lb.dimmedText != nil
}
