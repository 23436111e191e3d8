// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped_test

import (
	"testing"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	. "cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/shaped/shapedcell"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShaper() *shapedcell.Shaper {
	sh := shapedcell.NewShaper()
	sh.Condition.EastAsianWidth = false
	return sh
}

func lineString(ln Line) string {
	return ln.Source().String()
}

func TestSegment(t *testing.T) {
	cls := Segment([]rune("Hello world\nok"))
	require.Len(t, cls, 14)
	assert.Equal(t, BreakAllowed, cls[5].Break)
	assert.True(t, cls[5].Space)
	assert.Equal(t, BreakNever, cls[6].Break)
	assert.Equal(t, BreakMandatory, cls[11].Break)
	assert.True(t, cls[11].Newline)
	assert.Equal(t, BreakMandatory, cls[13].Break)

	// combining mark forms a single cluster
	cls = Segment([]rune("e\u0301x"))
	require.Len(t, cls, 2)
	assert.Equal(t, textpos.R(0, 2), cls[0].Range)
}

func TestWrap(t *testing.T) {
	sh := newShaper()
	tx := rich.NewText("Hello world", nil)
	ls := sh.MakeFrame(tx, math32.Vec2(60, 100))
	require.Equal(t, 2, ls.NumLines())
	assert.Equal(t, "Hello ", lineString(ls.Lines[0]))
	assert.Equal(t, textpos.R(6, 11), ls.Lines[1].SourceRange())
	assert.Equal(t, math32.Vec2(0, 92), ls.Origins[0])
	assert.Equal(t, math32.Vec2(0, 82), ls.Origins[1])
	assert.Equal(t, 11, ls.End())
	assert.Equal(t, float32(20), ls.Height())

	m := ls.Lines[0].Metrics()
	assert.Equal(t, float32(60), m.Width)
	assert.Equal(t, float32(10), m.TrailingWhitespace)
	assert.Equal(t, float32(10), m.Height())

	// word longer than the width is broken between clusters
	ls = sh.MakeFrame(rich.NewText("abcdefgh", nil), math32.Vec2(30, 0))
	require.Equal(t, 3, ls.NumLines())
	assert.Equal(t, "def", lineString(ls.Lines[1]))

	// mandatory breaks
	ls = sh.MakeFrame(rich.NewText("ab\ncd", nil), math32.Vec2(300, 0))
	require.Equal(t, 2, ls.NumLines())
	assert.Equal(t, textpos.R(0, 3), ls.Lines[0].SourceRange())
	assert.Equal(t, float32(20), ls.Lines[0].Metrics().Width)
}

func TestFrameClip(t *testing.T) {
	sh := newShaper()
	tx := rich.NewText("Hello, this is a very long sentence", nil)
	ls := sh.MakeFrame(tx, math32.Vec2(100, 15))
	require.Equal(t, 1, ls.NumLines())
	assert.Equal(t, "Hello, ", lineString(ls.Lines[0]))
	assert.Less(t, ls.End(), tx.Len())

	ls = sh.MakeFrame(tx, math32.Vec2(100, 0))
	assert.Equal(t, tx.Len(), ls.End())
	cl := ls.Clip(2)
	assert.Equal(t, 2, cl.NumLines())
	assert.Len(t, cl.Origins, 2)
	assert.Greater(t, ls.NumLines(), 2, "clip must not modify the receiver")
}

func TestPenOffset(t *testing.T) {
	sh := newShaper()
	ln := sh.MakeLine(rich.NewText("Hello ", nil))
	assert.Equal(t, float32(0), PenOffset(ln, Start.FlushFactor(), 100))
	assert.Equal(t, float32(25), PenOffset(ln, Center.FlushFactor(), 100))
	assert.Equal(t, float32(50), PenOffset(ln, End.FlushFactor(), 100))
	assert.Equal(t, float32(0), PenOffset(ln, End.FlushFactor(), 20))
	assert.Equal(t, "Center", Center.String())
}

func TestRuneAtPoint(t *testing.T) {
	sh := newShaper()
	ls := sh.MakeFrame(rich.NewText("Hello world", nil), math32.Vec2(60, 0))
	ln := ls.Lines[1]
	assert.Equal(t, 8, ln.RuneAtPoint(math32.Vec2(25, 0)))
	assert.Equal(t, 6, ln.RuneAtPoint(math32.Vec2(-5, 0)))
	assert.Equal(t, 10, ln.RuneAtPoint(math32.Vec2(500, 3)))
	assert.Equal(t, textpos.NotFound, sh.MakeLine(rich.Text{}).RuneAtPoint(math32.Vec2(0, 0)))
}

func TestTruncateLine(t *testing.T) {
	sh := newShaper()
	ln := sh.MakeLine(rich.NewText("Hello, this is", nil))
	tok := sh.MakeLine(rich.NewText("…", nil))

	tl := sh.TruncateLine(ln, 50, TruncateEnd, 13, tok)
	require.NotNil(t, tl)
	assert.Equal(t, "Hell…", lineString(tl))
	assert.Equal(t, float32(50), tl.Metrics().Width)
	assert.Equal(t, 3, tl.RuneAtPoint(math32.Vec2(35, 0)))
	assert.Equal(t, textpos.NotFound, tl.RuneAtPoint(math32.Vec2(45, 0)))

	tl = sh.TruncateLine(ln, 50, TruncateStart, 0, tok)
	require.NotNil(t, tl)
	assert.Equal(t, "…s is", lineString(tl))

	tl = sh.TruncateLine(ln, 50, TruncateMiddle, 7, tok)
	require.NotNil(t, tl)
	assert.Equal(t, "He…is", lineString(tl))

	assert.Same(t, ln, sh.TruncateLine(ln, 200, TruncateEnd, 13, tok))
	assert.Nil(t, sh.TruncateLine(ln, 5, TruncateEnd, 13, tok))
}

func TestSizeAttribute(t *testing.T) {
	sh := newShaper()
	tx := rich.NewText("ab", nil)
	tx.AddAttributes(rich.Attributes{rich.Size: float32(20)}, textpos.R(1, 2))
	m := sh.MakeLine(tx).Metrics()
	assert.Equal(t, float32(30), m.Width)
	assert.Equal(t, float32(16), m.Ascent)
	assert.Equal(t, float32(4), m.Descent)
}
