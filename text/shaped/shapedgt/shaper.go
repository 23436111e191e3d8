// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt provides a [shaped.Shaper] based on the HarfBuzz
// shaper from go-text/typesetting, using the embedded Latin Modern fonts.
package shapedgt

import (
	"bytes"
	"fmt"
	"strings"

	"cogentcore.org/richlabel/base/errors"
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xlanguage "golang.org/x/text/language"
)

func init() {
	shaped.NewShaper = func() shaped.Shaper { return errors.Log1(NewShaper("en")) }
}

// family is a regular and bold face pair.
type family struct {
	regular, bold *font.Face
}

// Shaper is the text shaper from go-text/shaping.
type Shaper struct {
	shaper shaping.HarfbuzzShaper

	// FontSize is the default font size in dots, used for runes
	// without a [rich.Size] attribute.
	FontSize float32

	// LineSpacing is the multiple of the font line gap added as
	// leading between lines.
	LineSpacing float32

	// language is the BCP 47 language used for shaping.
	language language.Language

	families map[string]family
}

// NewShaper returns a new shaper for the given BCP 47 locale
// (e.g., "en-US"), with the Latin Modern Sans, Roman and Mono families
// available through the [rich.Font] attribute as "sans", "serif" and
// "mono". Sans is the default.
func NewShaper(locale string) (*Shaper, error) {
	tag, err := xlanguage.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("shapedgt: invalid locale %q: %w", locale, err)
	}
	sh := &Shaper{FontSize: 16, LineSpacing: 1, language: language.NewLanguage(tag.String())}
	sh.families = map[string]family{}
	for name, ttfs := range map[string][2][]byte{
		"sans":  {lmsans10regular.TTF, lmsans10bold.TTF},
		"serif": {lmroman10regular.TTF, lmroman10bold.TTF},
		"mono":  {lmmono10regular.TTF, lmmono10regular.TTF},
	} {
		reg, err := parseFace(ttfs[0])
		if err != nil {
			return nil, fmt.Errorf("shapedgt: font %q: %w", name, err)
		}
		bold, err := parseFace(ttfs[1])
		if err != nil {
			return nil, fmt.Errorf("shapedgt: bold font %q: %w", name, err)
		}
		sh.families[name] = family{regular: reg, bold: bold}
	}
	sh.shaper.SetFontCacheSize(32)
	return sh, nil
}

func parseFace(ttf []byte) (*font.Face, error) {
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no faces in font")
	}
	return faces[0], nil
}

// face returns the face for the given attributes.
func (sh *Shaper) face(attrs rich.Attributes) *font.Face {
	nm, _ := attrs[rich.Font].(string)
	fam, ok := sh.families[strings.ToLower(nm)]
	if !ok {
		fam = sh.families["sans"]
	}
	if wt, ok := attrs[rich.Weight].(float32); ok && wt >= 600 {
		return fam.bold
	}
	return fam.regular
}

// size returns the font size for the given attributes.
func (sh *Shaper) size(attrs rich.Attributes) float32 {
	if sz, ok := attrs[rich.Size].(float32); ok && sz > 0 {
		return sz
	}
	return sh.FontSize
}

// shape returns the advance of each rune, and the vertical metrics
// of each rune taken from the line bounds of the run it is in.
// Each span of the source is shaped as a separate run.
func (sh *Shaper) shape(tx rich.Text) (adv []float32, vm shaped.VerticalMetrics) {
	rs := tx.Runes()
	n := len(rs)
	adv = make([]float32, n)
	asc := make([]float32, n)
	desc := make([]float32, n)
	gap := make([]float32, n)
	for r, attrs := range tx.Spans() {
		in := shaping.Input{
			Text:      rs,
			RunStart:  r.Start,
			RunEnd:    r.End,
			Direction: di.DirectionLTR,
			Face:      sh.face(attrs),
			Size:      math32.ToFixed(sh.size(attrs)),
			Script:    language.Latin,
			Language:  sh.language,
		}
		out := sh.shaper.Shape(in)
		for _, g := range out.Glyphs {
			if g.ClusterIndex >= r.Start && g.ClusterIndex < r.End {
				adv[g.ClusterIndex] += math32.FromFixed(g.XAdvance)
			}
		}
		a := math32.FromFixed(out.LineBounds.Ascent)
		d := math32.Abs(math32.FromFixed(out.LineBounds.Descent))
		gp := math32.FromFixed(out.LineBounds.Gap) * sh.LineSpacing
		for i := r.Start; i < r.End; i++ {
			asc[i], desc[i], gap[i] = a, d, gp
		}
	}
	for _, cl := range shaped.Segment(rs) {
		if cl.Newline {
			for i := cl.Range.Start; i < cl.Range.End; i++ {
				adv[i] = 0
			}
		}
	}
	vm = func(r textpos.Range) (float32, float32, float32) {
		var a, d, g float32
		for i := r.Start; i < r.End; i++ {
			a, d, g = max(a, asc[i]), max(d, desc[i]), max(g, gap[i])
		}
		if r.Len() == 0 {
			sz := sh.FontSize
			a, d = 0.8*sz, 0.2*sz
		}
		return a, d, g
	}
	return adv, vm
}

func (sh *Shaper) MakeFrame(tx rich.Text, size math32.Vector2) *shaped.Lines {
	adv, vm := sh.shape(tx)
	return shaped.LayoutFrame(tx, shaped.WrapText(tx, adv, size.X, vm), size)
}

func (sh *Shaper) MakeLine(tx rich.Text) shaped.Line {
	adv, vm := sh.shape(tx)
	return shaped.NewGlyphLine(tx, textpos.Range{0, tx.Len()}, adv, vm)
}

func (sh *Shaper) TruncateLine(ln shaped.Line, width float32, side shaped.Truncations, anchor int, token shaped.Line) shaped.Line {
	return shaped.TruncateLine(ln, width, side, anchor, token)
}
