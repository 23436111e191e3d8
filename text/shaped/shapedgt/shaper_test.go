// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"testing"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	sh, err := NewShaper("en-US")
	require.NoError(t, err)

	ln := sh.MakeLine(rich.NewText("Hello world", nil))
	m := ln.Metrics()
	assert.Greater(t, m.Width, float32(0))
	assert.Greater(t, m.Ascent, float32(0))
	assert.Greater(t, m.Descent, float32(0))
	assert.Equal(t, textpos.R(0, 11), ln.SourceRange())

	big := rich.NewText("Hello world", rich.Attributes{rich.Size: float32(32)})
	assert.Greater(t, sh.MakeLine(big).Metrics().Width, m.Width)

	bold := rich.NewText("Hello world", rich.Attributes{rich.Weight: float32(700)})
	assert.NotEqual(t, m.Width, sh.MakeLine(bold).Metrics().Width)
}

func TestFrame(t *testing.T) {
	sh, err := NewShaper("en")
	require.NoError(t, err)
	tx := rich.NewText("The quick brown fox jumps over the lazy dog", nil)
	one := sh.MakeLine(tx).Metrics().Width

	ls := sh.MakeFrame(tx, math32.Vec2(one/2, 0))
	require.GreaterOrEqual(t, ls.NumLines(), 2)
	assert.Equal(t, tx.Len(), ls.End())
	for li := 1; li < ls.NumLines(); li++ {
		assert.Less(t, ls.Origins[li].Y, ls.Origins[li-1].Y)
		assert.Equal(t, ls.Lines[li-1].SourceRange().End, ls.Lines[li].SourceRange().Start)
	}

	// hit testing through the middle of the first line
	l0 := ls.Lines[0]
	assert.Equal(t, 0, l0.RuneAtPoint(math32.Vec2(0.5, 0)))
	mid := l0.RuneAtPoint(math32.Vec2(l0.Metrics().Width/2, 0))
	assert.True(t, l0.SourceRange().Contains(mid))

	tok := sh.MakeLine(rich.NewText("…", nil))
	tl := sh.TruncateLine(sh.MakeLine(tx), one/2, shaped.TruncateEnd, tx.Len()-1, tok)
	require.NotNil(t, tl)
	assert.LessOrEqual(t, tl.Metrics().Width, one/2)
	rs := tl.Source().Runes()
	assert.Equal(t, '…', rs[len(rs)-1])
}

func TestLocale(t *testing.T) {
	_, err := NewShaper("not a locale!")
	assert.Error(t, err)
}
