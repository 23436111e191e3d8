// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"log/slog"

	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textcheck"
)

// checkText starts detection of links in the current text, for the
// EnabledCheckingTypes, together with any link attributes already in
// the text. The detection runs in the background, and the results are
// added through the Loop if the text is still the same by then.
func (lb *Label) checkText() {
	if lb.EnabledCheckingTypes == textcheck.CheckNone || lb.text.Len() == 0 {
		return
	}
	dt := lb.Detector
	if dt == nil || dt.Types != lb.EnabledCheckingTypes {
		dt = textcheck.NewDetector(lb.EnabledCheckingTypes)
		lb.Detector = dt
	}
	tx := lb.text.Clone()
	loop := lb.Loop
	go func() {
		results := findResults(dt, tx)
		if len(results) == 0 {
			return
		}
		if loop == nil {
			slog.Debug("label: no loop to publish detected links", "results", len(results))
			return
		}
		loop.Post(func() {
			if lb.text.String() != tx.String() {
				slog.Debug("label: discarding detected links for old text", "results", len(results))
				return
			}
			lb.AddLinksFromResults(results, lb.LinkAttributes)
		})
	}()
}

// findResults returns the detected results in the text, followed by
// those for its existing link attributes that do not overlap them.
func findResults(dt *textcheck.Detector, tx rich.Text) []*textcheck.Result {
	results := dt.Find(tx.String())
outer:
	for _, lr := range tx.GetLinks() {
		for _, res := range results {
			if res.Range.Intersect(lr.Range).Len() > 0 {
				continue outer
			}
		}
		res := textcheck.NewLinkResult(lr.URL, lr.Range)
		res.Text = lr.Label
		results = append(results, res)
	}
	return results
}

// RunPending runs the work that has been posted to the Loop, such as
// publishing detected links. It must be called on the rendering thread,
// typically once per frame, and returns the number of events run.
func (lb *Label) RunPending() int {
	if lb.Loop == nil {
		return 0
	}
	return lb.Loop.Drain(nil)
}
