// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textcheck classifies matches found in free text, such as
// links, phone numbers and dates, and provides a [Detector] that finds
// them.
package textcheck

import (
	"fmt"
	"net/url"
	"time"

	"cogentcore.org/richlabel/text/textpos"
)

// ResultTypes is the classification of a [Result].
type ResultTypes int32

const (
	// Other is a match with no more specific classification.
	Other ResultTypes = iota

	// Address is a postal address, with AddressComponents.
	Address

	// Date is a date or time, with Date, TimeZone and Duration.
	Date

	// Link is a URL, with URL.
	Link

	// PhoneNumber is a telephone number, with PhoneNumber.
	PhoneNumber

	// TransitInformation is transit information such as a flight,
	// with Components.
	TransitInformation
)

var resultTypesNames = [...]string{"Other", "Address", "Date", "Link", "PhoneNumber", "TransitInformation"}

func (rt ResultTypes) String() string {
	if rt < 0 || int(rt) >= len(resultTypesNames) {
		return fmt.Sprintf("ResultTypes(%d)", int(rt))
	}
	return resultTypesNames[rt]
}

// Address component keys.
const (
	Street  = "Street"
	City    = "City"
	State   = "State"
	ZIP     = "ZIP"
	Country = "Country"
)

// Transit component keys.
const (
	Airline = "Airline"
	Flight  = "Flight"
)

// Result is one classified match in a text, with the typed fields
// for its classification.
type Result struct {
	// Type is the classification of the match.
	Type ResultTypes

	// Range is the rune range of the match in the text.
	Range textpos.Range

	// Text is the matched text.
	Text string

	// URL is the link target, for [Link].
	URL *url.URL

	// PhoneNumber is the number as written, for [PhoneNumber].
	PhoneNumber string

	// Date is the date and time, for [Date].
	Date time.Time

	// TimeZone is the time zone given in the text, for [Date].
	// It is nil if the text did not specify one.
	TimeZone *time.Location

	// Duration is the length of the event, for [Date], if known.
	Duration time.Duration

	// AddressComponents has the parts of the address, for [Address],
	// keyed by [Street], [City] etc.
	AddressComponents map[string]string

	// Components has the parts of the transit information,
	// for [TransitInformation], keyed by [Airline] and [Flight].
	Components map[string]string
}

func (r *Result) String() string {
	return fmt.Sprintf("%v %v %q", r.Type, r.Range, r.Text)
}

// NewLinkResult returns a [Link] result for the given URL over the
// given range.
func NewLinkResult(u *url.URL, r textpos.Range) *Result {
	res := &Result{Type: Link, Range: r, URL: u}
	if u != nil {
		res.Text = u.String()
	}
	return res
}

// CheckingTypes is a set of [ResultTypes] to look for, as bit flags.
type CheckingTypes int64

const (
	CheckAddress CheckingTypes = 1 << iota
	CheckDate
	CheckLink
	CheckPhoneNumber
	CheckTransitInformation

	// CheckNone does no checking.
	CheckNone CheckingTypes = 0

	// CheckAll checks for all types.
	CheckAll = CheckAddress | CheckDate | CheckLink | CheckPhoneNumber | CheckTransitInformation
)

// Has returns whether the given type is included in the set.
func (ct CheckingTypes) Has(t CheckingTypes) bool {
	return ct&t != 0
}

var checkingNames = []struct {
	ct   CheckingTypes
	name string
}{
	{CheckAddress, "Address"},
	{CheckDate, "Date"},
	{CheckLink, "Link"},
	{CheckPhoneNumber, "PhoneNumber"},
	{CheckTransitInformation, "TransitInformation"},
}

func (ct CheckingTypes) String() string {
	s := ""
	for _, cn := range checkingNames {
		if ct.Has(cn.ct) {
			if s != "" {
				s += "|"
			}
			s += cn.name
		}
	}
	if s == "" {
		return "None"
	}
	return s
}

// ParseCheckingTypes returns the set named by the given names,
// as returned by [CheckingTypes.String] on each type.
func ParseCheckingTypes(names ...string) (CheckingTypes, error) {
	ct := CheckNone
outer:
	for _, nm := range names {
		if nm == "All" {
			ct |= CheckAll
			continue
		}
		for _, cn := range checkingNames {
			if cn.name == nm {
				ct |= cn.ct
				continue outer
			}
		}
		return ct, fmt.Errorf("textcheck: unknown checking type %q", nm)
	}
	return ct, nil
}
