// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"testing"
	"time"

	"cogentcore.org/richlabel/events"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textcheck"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detectLabel() (*Label, *events.Queue) {
	lb := newLabel("", 300, 10)
	lb.Loop = events.NewQueue()
	lb.EnabledCheckingTypes = textcheck.CheckLink
	return lb, lb.Loop
}

// waitPending waits for n events to be posted to the queue.
func waitPending(t *testing.T, q *events.Queue, n uint64) {
	require.Eventually(t, func() bool { return q.Len() >= n }, 5*time.Second, time.Millisecond)
}

func TestDetect(t *testing.T) {
	lb, q := detectLabel()
	lb.SetString("Visit http://x.com now")
	waitPending(t, q, 1)
	assert.Empty(t, lb.Links())
	assert.Equal(t, 1, lb.RunPending())

	require.Len(t, lb.Links(), 1)
	lk := lb.Links()[0]
	assert.Equal(t, textpos.R(6, 18), lk.Range())
	assert.Equal(t, "http://x.com", lk.Text)
	assert.Equal(t, "http://x.com", lk.Result.URL.String())
	attrs, _ := lb.Text().AttributesAt(6)
	assert.True(t, attrs.Equal(lb.LinkAttributes))
}

func TestDetectStale(t *testing.T) {
	lb, q := detectLabel()
	lb.SetString("Visit http://x.com now")
	lb.SetString("Goodbye")
	waitPending(t, q, 1)
	assert.Equal(t, 1, lb.RunPending())
	assert.Empty(t, lb.Links())
	assert.Equal(t, "Goodbye", lb.String())
}

func TestDetectSameText(t *testing.T) {
	// replacing the text with the same string still publishes, twice
	lb, q := detectLabel()
	lb.SetString("see http://x.com")
	lb.SetString("see http://x.com")
	waitPending(t, q, 2)
	assert.Equal(t, 2, lb.RunPending())
	assert.Len(t, lb.Links(), 2)
	assert.Same(t, lb.Links()[0], lb.LinkAtIndex(4))
}

func TestDetectExistingLinks(t *testing.T) {
	lb, q := detectLabel()
	tx := rich.NewText("see ", nil)
	tx.AddSpan(rich.Attributes{rich.Link: "https://a.org/docs"}, []rune("docs"))
	tx.AddSpan(nil, []rune(" or http://b.org"))
	lb.SetText(tx)
	waitPending(t, q, 1)
	lb.RunPending()
	require.Len(t, lb.Links(), 2)
	assert.Equal(t, textpos.R(12, 24), lb.Links()[0].Range())
	assert.Equal(t, textpos.R(4, 8), lb.Links()[1].Range())
	assert.Equal(t, "https://a.org/docs", lb.Links()[1].Result.URL.String())
	assert.Equal(t, "docs", lb.Links()[1].Text)
}

func TestDetectDisabled(t *testing.T) {
	lb, q := detectLabel()
	lb.EnabledCheckingTypes = textcheck.CheckNone
	lb.SetString("Visit http://x.com now")
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, uint64(0), q.Len())
	assert.Equal(t, 0, lb.RunPending())

	// nothing found: nothing posted
	lb.EnabledCheckingTypes = textcheck.CheckLink
	lb.SetString("nothing here")
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, uint64(0), q.Len())

	lb.Loop = nil
	lb.SetString("Visit http://x.com now")
	assert.Equal(t, 0, lb.RunPending())
}

func TestFindResults(t *testing.T) {
	tx := rich.NewText("go to ", nil)
	tx.AddSpan(rich.Attributes{rich.Link: "http://x.com"}, []rune("http://x.com"))
	rs := findResults(textcheck.NewDetector(textcheck.CheckLink), tx)
	// the existing link is the same as the detected one
	require.Len(t, rs, 1)
	assert.Equal(t, textpos.R(6, 18), rs[0].Range)
}
