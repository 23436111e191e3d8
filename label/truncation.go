// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"log/slog"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textpos"
)

// Ellipsis is the default truncation token.
const Ellipsis = "…"

// Truncation is the truncation token of a [Label] and the state of
// the last layout pass that placed it.
type Truncation struct {
	// Token is the text that replaces the content that does not fit.
	// If it is empty, an [Ellipsis] with the attributes of the last
	// character of the text is used. Use [Truncation.SetToken] to
	// change it.
	Token rich.Text

	// OnTap is called when the token is tapped. The token is only
	// tappable when this is set.
	OnTap func()

	// Range is the range of the token in the text, as placed by the
	// last layout pass. It is only valid when Hidden is false.
	Range textpos.Range

	// Hidden is whether the last layout pass did not truncate,
	// so there is no token.
	Hidden bool

	// Pressed is whether the token is being pressed.
	Pressed bool

	// version is incremented when the Token changes.
	version int
}

// SetToken sets the token, which is used on the next layout pass.
func (tr *Truncation) SetToken(tok rich.Text) {
	tr.Token = tok.Clone()
	tr.version++
}

// Enabled returns whether a custom token has been set.
func (tr *Truncation) Enabled() bool {
	return tr.Token.Len() > 0
}

// reset clears the state of the last layout pass.
func (tr *Truncation) reset() {
	tr.Hidden = true
	tr.Range = textpos.Range{}
}

// effectiveMode returns the mode used for truncation: only single line
// labels can truncate the head or middle.
func (lb *Label) effectiveMode() LineBreakModes {
	if lb.NumberOfLines != 1 {
		return TruncateTail
	}
	return lb.LineBreakMode
}

// token returns the truncation token to use for the given source.
func (lb *Label) token(src rich.Text) rich.Text {
	if lb.Truncation.Enabled() {
		return lb.Truncation.Token
	}
	attrs, _ := src.AttributesAt(src.Len() - 1)
	return rich.NewText(Ellipsis, attrs)
}

// truncationSide returns the side and source anchor for truncating a line
// with the given source range in the given mode.
func truncationSide(r textpos.Range, mode LineBreakModes) (shaped.Truncations, int) {
	switch mode {
	case TruncateHead:
		return shaped.TruncateStart, r.Start
	case TruncateMiddle:
		return shaped.TruncateMiddle, r.Start + r.Len()/2
	default:
		return shaped.TruncateEnd, r.Start + r.Len() - 1
	}
}

// truncateLines returns the lines with the truncation token spliced in
// at the end of the visible lines, and records the token range in
// the Truncation state. The token may take more than one line, in
// which case the following lines are replaced by the rest of it.
// The given lines are not modified: if the token does not fit in them,
// they are returned as is.
func (lb *Label) truncateLines(lines *shaped.Lines, src rich.Text, rect math32.Box2) *shaped.Lines {
	lb.Truncation.reset()
	if lb.Shaper == nil || lines.NumLines() == 0 {
		return lines
	}
	mode := lb.effectiveMode()
	tok := lb.token(src)
	tokFrame := lb.Shaper.MakeFrame(tok, rect.Size())
	ntok := tokFrame.NumLines()
	if ntok == 0 {
		return lines
	}
	if ntok > lines.NumLines() {
		slog.Warn("label: the truncation token is bigger than the text shown in the label, so only the token would be painted: use a shorter token", "tokenLines", ntok, "lines", lines.NumLines())
		return lines
	}
	numLines := lb.NumberOfLines
	if numLines <= 0 {
		numLines = lines.NumLines()
	}
	out := lines.Clone()
	for i, tl := range tokFrame.Lines {
		li := numLines - ntok + i
		if li < 0 || li >= out.NumLines() {
			continue
		}
		if i > 0 {
			out.Lines[li] = tl
			continue
		}
		orng := out.Lines[li].SourceRange()
		trng := tl.SourceRange()
		combined := src.Substring(orng)
		combined.Append(tok.Substring(trng))
		side, anchor := truncationSide(orng, mode)
		cl := lb.Shaper.MakeLine(combined)
		ln := lb.Shaper.TruncateLine(cl, rect.Size().X, side, anchor-orng.Start, tl)
		if ln == nil {
			ln = tl
		}
		out.Lines[li] = ln
		lb.Truncation.Range = textpos.RL(orng.Start+orng.Len()-trng.Len(), trng.Len())
		lb.Truncation.Hidden = false
	}
	return out
}
