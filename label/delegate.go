// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"net/url"
	"time"

	"cogentcore.org/richlabel/text/textcheck"
)

// The selector interfaces are the capabilities that a [Label.Delegate]
// can have: a tap on a link with no OnTap function is passed to the one
// for the type of its Result, and ignored if the delegate does not
// implement it.
type (
	// AddressSelector receives taps on [textcheck.Address] links.
	AddressSelector interface {
		AddressSelected(lb *Label, components map[string]string)
	}

	// DateSelector receives taps on [textcheck.Date] links. The time
	// zone is [time.Local] if the link did not specify one.
	DateSelector interface {
		DateSelected(lb *Label, date time.Time, zone *time.Location, duration time.Duration)
	}

	// LinkSelector receives taps on [textcheck.Link] links.
	LinkSelector interface {
		LinkSelected(lb *Label, u *url.URL)
	}

	// PhoneNumberSelector receives taps on [textcheck.PhoneNumber] links.
	PhoneNumberSelector interface {
		PhoneNumberSelected(lb *Label, number string)
	}

	// TransitInfoSelector receives taps on
	// [textcheck.TransitInformation] links.
	TransitInfoSelector interface {
		TransitInfoSelected(lb *Label, components map[string]string)
	}

	// ResultSelector receives taps on links of any other type.
	ResultSelector interface {
		ResultSelected(lb *Label, res *textcheck.Result)
	}
)

// dispatch passes a tap on the given link to the Delegate.
func (lb *Label) dispatch(lk *Link) {
	res := lk.Result
	if res == nil || lb.Delegate == nil {
		return
	}
	switch res.Type {
	case textcheck.Address:
		if d, ok := lb.Delegate.(AddressSelector); ok && res.AddressComponents != nil {
			d.AddressSelected(lb, res.AddressComponents)
		}
	case textcheck.Date:
		if d, ok := lb.Delegate.(DateSelector); ok && !res.Date.IsZero() {
			zone := res.TimeZone
			if zone == nil {
				zone = time.Local
			}
			d.DateSelected(lb, res.Date, zone, res.Duration)
		}
	case textcheck.Link:
		if d, ok := lb.Delegate.(LinkSelector); ok && res.URL != nil {
			d.LinkSelected(lb, res.URL)
		}
	case textcheck.PhoneNumber:
		if d, ok := lb.Delegate.(PhoneNumberSelector); ok && res.PhoneNumber != "" {
			d.PhoneNumberSelected(lb, res.PhoneNumber)
		}
	case textcheck.TransitInformation:
		if d, ok := lb.Delegate.(TransitInfoSelector); ok && res.Components != nil {
			d.TransitInfoSelected(lb, res.Components)
		}
	default:
		if d, ok := lb.Delegate.(ResultSelector); ok {
			d.ResultSelected(lb, res)
		}
	}
}
