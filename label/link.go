// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"log/slog"
	"net/url"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textcheck"
	"cogentcore.org/richlabel/text/textpos"
)

// Link is a tappable range of the text of a [Label].
type Link struct {
	// Attributes are applied to the range of the link when it is added.
	Attributes rich.Attributes

	// ActiveAttributes are applied while the link is pressed. If empty,
	// the ActiveLinkAttributes of the label are used.
	ActiveAttributes rich.Attributes

	// InactiveAttributes are applied while the label is dimmed. If empty,
	// the InactiveLinkAttributes of the label are used.
	InactiveAttributes rich.Attributes

	// OnTap is called when the link is tapped. If it is nil, the tap
	// goes to the Delegate of the label according to the Result.
	OnTap func(lb *Label, lk *Link)

	// Result has the range of the link and what it links to.
	Result *textcheck.Result

	// Text is the text of the link, set when it is added to a label.
	Text string
}

// NewLinkFromLabel returns a new link for the given result with the
// default link attributes of the label.
func NewLinkFromLabel(lb *Label, res *textcheck.Result) *Link {
	return &Link{Attributes: lb.LinkAttributes.Clone(), ActiveAttributes: lb.ActiveLinkAttributes.Clone(),
		InactiveAttributes: lb.InactiveLinkAttributes.Clone(), Result: res}
}

// Range returns the range of the link in the text,
// which is empty if it has no Result.
func (lk *Link) Range() textpos.Range {
	if lk.Result == nil {
		return textpos.Range{}
	}
	return lk.Result.Range
}

// Equal returns whether the links have the same attributes, range and
// text. The OnTap functions are not compared.
func (lk *Link) Equal(o *Link) bool {
	if lk == nil || o == nil {
		return lk == o
	}
	return lk.Attributes.Equal(o.Attributes) && lk.ActiveAttributes.Equal(o.ActiveAttributes) &&
		lk.InactiveAttributes.Equal(o.InactiveAttributes) && (lk.Result == nil) == (o.Result == nil) &&
		lk.Range() == o.Range() && lk.Text == o.Text
}

// AddLink adds the given link.
func (lb *Label) AddLink(lk *Link) {
	lb.AddLinks(lk)
}

// AddLinks adds the given links, applying their Attributes to their
// ranges of the text. Links with ranges that are not entirely within
// the text are added but never match.
func (lb *Label) AddLinks(links ...*Link) {
	for _, lk := range links {
		r := lk.Range()
		if !lb.text.AddAttributes(lk.Attributes, r) {
			slog.Debug("label: link range is not within the text", "range", r, "len", lb.text.Len())
		}
		if lb.dimmedText != nil {
			lb.dimmedText.AddAttributes(lk.Attributes, r)
		}
		if lb.inactiveText != nil {
			lb.inactiveText.AddAttributes(lk.Attributes, r)
		}
	}
	lb.links = append(lb.links, links...)
	lb.invalidate()
}

// AddLinksFromResults adds a link for each of the results with the given
// attributes, and the default active and inactive attributes of the
// label. It returns the new links.
func (lb *Label) AddLinksFromResults(results []*textcheck.Result, attrs rich.Attributes) []*Link {
	links := make([]*Link, 0, len(results))
	for _, res := range results {
		lk := NewLinkFromLabel(lb, res)
		lk.Attributes = attrs.Clone()
		lk.Text = lb.text.String()
		if res.Range.InBounds(lb.text.Len()) {
			lk.Text = string(lb.text.Runes()[res.Range.Start:res.Range.End])
		}
		links = append(links, lk)
	}
	lb.AddLinks(links...)
	return links
}

// AddLinkToURL adds a link to the given URL over the given range,
// with the default link attributes.
func (lb *Label) AddLinkToURL(u *url.URL, r textpos.Range) *Link {
	return lb.AddLinksFromResults([]*textcheck.Result{textcheck.NewLinkResult(u, r)}, lb.LinkAttributes)[0]
}

// Links returns the links, in the order they were added.
func (lb *Label) Links() []*Link {
	return lb.links
}

// linkIndexAt returns the index of the first link containing the
// given character index, or -1.
func (lb *Label) linkIndexAt(ci int) int {
	if ci < 0 || ci >= lb.text.Len() {
		return -1
	}
	n := lb.text.Len()
	for i, lk := range lb.links {
		if r := lk.Range(); r.InBounds(n) && r.Contains(ci) {
			return i
		}
	}
	return -1
}

// LinkAtIndex returns the first link that contains the given character
// index, or nil.
func (lb *Label) LinkAtIndex(ci int) *Link {
	if i := lb.linkIndexAt(ci); i >= 0 {
		return lb.links[i]
	}
	return nil
}

// linkIndexAtPoint returns the index of the link at the given point, or -1.
func (lb *Label) linkIndexAtPoint(pt math32.Vector2) int {
	if len(lb.links) == 0 {
		return -1
	}
	bounds := lb.Bounds
	bounds.ExpandByScalar(lb.LinkTouchMargin)
	if !bounds.ContainsPoint(pt) {
		return -1
	}
	return lb.linkIndexAt(lb.CharacterIndex(pt))
}

// LinkAt returns the link at the given point, in the coordinates of
// the Bounds, or nil. Points up to LinkTouchMargin outside the Bounds
// are considered.
func (lb *Label) LinkAt(pt math32.Vector2) *Link {
	if i := lb.linkIndexAtPoint(pt); i >= 0 {
		return lb.links[i]
	}
	return nil
}

// TruncationTokenAt returns whether the given point is on the
// truncation token.
func (lb *Label) TruncationTokenAt(pt math32.Vector2) bool {
	lb.layout()
	if lb.Truncation.Hidden {
		return false
	}
	return lb.Truncation.Range.Contains(lb.CharacterIndex(pt))
}

// ActiveLink returns the link that is being pressed, or nil.
func (lb *Label) ActiveLink() *Link {
	if lb.activeLink < 0 || lb.activeLink >= len(lb.links) {
		return nil
	}
	return lb.links[lb.activeLink]
}

// setActiveLink makes the link at the given index active, applying its
// active attributes over the text, or ends any activation for -1.
// The text from before the first activation is kept, so that ending
// the activation restores it exactly. A link with a range that is not
// within the text is not activated, and nothing changes.
func (lb *Label) setActiveLink(idx int) {
	if idx < 0 || idx >= len(lb.links) {
		idx = -1
	}
	var attrs rich.Attributes
	if idx >= 0 {
		attrs = lb.links[idx].ActiveAttributes
		if len(attrs) == 0 {
			attrs = lb.ActiveLinkAttributes
		}
	}
	if len(attrs) == 0 {
		lb.activeLink = idx
		if lb.inactiveText != nil {
			lb.text = *lb.inactiveText
			lb.inactiveText = nil
			lb.invalidate()
		}
		return
	}
	r := lb.links[idx].Range()
	if !r.InBounds(lb.text.Len()) {
		slog.Debug("label: not activating a link with a stale range", "range", r, "len", lb.text.Len())
		return
	}
	lb.activeLink = idx
	if lb.inactiveText == nil {
		it := lb.text.Clone()
		lb.inactiveText = &it
	} else {
		lb.text = lb.inactiveText.Clone()
	}
	lb.text.AddAttributes(attrs, r)
	lb.invalidate()
	lb.Flush()
}
