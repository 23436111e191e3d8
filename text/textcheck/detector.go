// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcheck

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"cogentcore.org/richlabel/text/textpos"
)

var (
	linkPattern  = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]+`)
	emailPattern = regexp.MustCompile(`\b[\w.+-]+@[\w-]+(?:\.[\w-]+)+\b`)

	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[ .-]?)?(?:\(\d{3}\)|\b\d{3})[ .-]?\d{3}[ .-]?\d{4}\b`)

	datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2}(?::\d{2})?(?:Z|[+-]\d{2}:\d{2})?)?\b`)

	addressPattern = regexp.MustCompile(`\b(\d{1,5}(?: [A-Z][a-z]+){1,3} (?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Court|Ct|Parkway|Pkwy)\b\.?)(?:, ([A-Z][a-z]+(?: [A-Z][a-z]+)*)(?:, ([A-Z]{2})(?: (\d{5}))?)?)?`)

	flightPattern = regexp.MustCompile(`\b([A-Z]{2}|[A-Z]\d|\d[A-Z]) ?(\d{1,4})\b`)
)

// trailing punctuation that ends a sentence rather than a link.
const linkTrim = ".,;:!?)]}'"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Detector finds classified matches in text using regular expressions.
// It has no state beyond its configuration and can be used concurrently.
type Detector struct {
	// Types are the types of results to find.
	Types CheckingTypes
}

// NewDetector returns a new detector for the given types.
func NewDetector(types CheckingTypes) *Detector {
	return &Detector{Types: types}
}

// match is a candidate match in byte offsets.
type match struct {
	start, end int
	res        *Result
}

// Find returns the matches in s, in order of their position, with rune
// ranges. Matches never overlap: where two candidates overlap, the one
// that starts first is used, with links taking precedence over dates,
// phone numbers, addresses and transit information at the same start.
func (dt *Detector) Find(s string) []*Result {
	if dt == nil || dt.Types == CheckNone || s == "" {
		return nil
	}
	var ms []match
	if dt.Types.Has(CheckLink) {
		ms = append(ms, findLinks(s)...)
	}
	if dt.Types.Has(CheckDate) {
		ms = append(ms, findDates(s)...)
	}
	if dt.Types.Has(CheckPhoneNumber) {
		for _, m := range phonePattern.FindAllStringIndex(s, -1) {
			txt := s[m[0]:m[1]]
			ms = append(ms, match{m[0], m[1], &Result{Type: PhoneNumber, PhoneNumber: txt}})
		}
	}
	if dt.Types.Has(CheckAddress) {
		for _, m := range addressPattern.FindAllStringSubmatchIndex(s, -1) {
			comps := map[string]string{}
			for i, key := range []string{Street, City, State, ZIP} {
				if st := m[2+2*i]; st >= 0 {
					comps[key] = s[st:m[3+2*i]]
				}
			}
			ms = append(ms, match{m[0], m[1], &Result{Type: Address, AddressComponents: comps}})
		}
	}
	if dt.Types.Has(CheckTransitInformation) {
		for _, m := range flightPattern.FindAllStringSubmatchIndex(s, -1) {
			comps := map[string]string{Airline: s[m[2]:m[3]], Flight: s[m[4]:m[5]]}
			ms = append(ms, match{m[0], m[1], &Result{Type: TransitInformation, Components: comps}})
		}
	}
	// stable, so the order of appending above sets the precedence
	slices.SortStableFunc(ms, func(a, b match) int { return a.start - b.start })

	var rs []*Result
	last := 0
	for _, m := range ms {
		if m.start < last {
			continue
		}
		last = m.end
		res := m.res
		res.Text = s[m.start:m.end]
		st := utf8.RuneCountInString(s[:m.start])
		res.Range = textpos.Range{Start: st, End: st + utf8.RuneCountInString(res.Text)}
		rs = append(rs, res)
	}
	return rs
}

func findLinks(s string) []match {
	var ms []match
	for _, m := range linkPattern.FindAllStringIndex(s, -1) {
		txt := strings.TrimRight(s[m[0]:m[1]], linkTrim)
		if txt == "" {
			continue
		}
		raw := txt
		if !strings.Contains(strings.ToLower(raw), "://") {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}
		ms = append(ms, match{m[0], m[0] + len(txt), &Result{Type: Link, URL: u}})
	}
	for _, m := range emailPattern.FindAllStringIndex(s, -1) {
		u := &url.URL{Scheme: "mailto", Opaque: s[m[0]:m[1]]}
		ms = append(ms, match{m[0], m[1], &Result{Type: Link, URL: u}})
	}
	return ms
}

func findDates(s string) []match {
	var ms []match
	for _, m := range datePattern.FindAllStringIndex(s, -1) {
		txt := s[m[0]:m[1]]
		res := &Result{Type: Date}
		ok := false
		for _, layout := range dateLayouts {
			if !strings.Contains(layout, "Z07") {
				if t, err := time.ParseInLocation(layout, txt, time.Local); err == nil {
					res.Date, ok = t, true
					break
				}
				continue
			}
			if t, err := time.Parse(layout, txt); err == nil {
				res.Date, res.TimeZone, ok = t, t.Location(), true
				break
			}
		}
		if ok {
			ms = append(ms, match{m[0], m[1], res})
		}
	}
	return ms
}
