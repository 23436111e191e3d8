// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"net/url"
	"reflect"

	"cogentcore.org/richlabel/text/textpos"
)

// LinkRec represents a hyperlink that is already marked in the
// source text with a [Link] attribute.
type LinkRec struct {
	// Label is the text label for the link.
	Label string

	// URL is the full URL for the link.
	URL *url.URL

	// Range defines the starting and ending positions of the link,
	// in terms of source rune indexes.
	Range textpos.Range
}

// LinkURL returns the URL for a [Link] attribute value, which can be
// a *url.URL, a url.URL, or a string that parses as a URL.
func LinkURL(v any) (*url.URL, error) {
	switch lv := v.(type) {
	case *url.URL:
		if lv == nil {
			return nil, fmt.Errorf("rich.LinkURL: nil URL")
		}
		return lv, nil
	case url.URL:
		return &lv, nil
	case string:
		return url.Parse(lv)
	}
	return nil, fmt.Errorf("rich.LinkURL: unsupported link value type %T", v)
}

// GetLinks gets all the links from the source, as marked by the [Link]
// attribute. Adjacent spans with the same link value are merged into one
// link, and values that are not valid URLs are skipped.
func (tx Text) GetLinks() []LinkRec {
	var lks []LinkRec
	var cur *LinkRec
	var curVal any
	for r, attrs := range tx.Spans() {
		v, has := attrs[Link]
		if !has {
			cur = nil
			continue
		}
		if cur != nil && reflect.DeepEqual(curVal, v) {
			cur.Range.End = r.End
			cur.Label = string(tx.runes[cur.Range.Start:cur.Range.End])
			continue
		}
		u, err := LinkURL(v)
		if err != nil {
			cur = nil
			continue
		}
		lks = append(lks, LinkRec{Label: string(tx.runes[r.Start:r.End]), URL: u, Range: r})
		cur = &lks[len(lks)-1]
		curVal = v
	}
	return lks
}
