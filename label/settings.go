// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/richlabel/base/errors"
	"cogentcore.org/richlabel/colors"
	"cogentcore.org/richlabel/events"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textcheck"
	"github.com/fsnotify/fsnotify"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
)

// LinkStyle is the style of links in one state, as stored in [Settings].
type LinkStyle struct {
	// Foreground is the text color, in hex. Empty for no change.
	Foreground string `toml:",omitempty"`

	// Background is the background color, in hex. Empty for no change.
	Background string `toml:",omitempty"`

	// Underline is whether to underline the link.
	Underline bool

	// Weight is the font weight, or 0 for no change.
	Weight float32 `toml:",omitempty"`
}

// Attributes returns the style as text attributes. Invalid colors
// are logged and skipped.
func (ls *LinkStyle) Attributes() rich.Attributes {
	attrs := rich.Attributes{}
	if ls.Foreground != "" {
		if c, err := colors.FromHex(ls.Foreground); errors.Log(err) == nil {
			attrs[rich.Foreground] = c
		}
	}
	if ls.Background != "" {
		if c, err := colors.FromHex(ls.Background); errors.Log(err) == nil {
			attrs[rich.Background] = c
		}
	}
	if ls.Underline {
		attrs[rich.Underline] = true
	}
	if ls.Weight > 0 {
		attrs[rich.Weight] = ls.Weight
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// Settings are the configurable defaults for labels. They are stored
// in TOML: see [OpenSettings] and [SaveSettings].
type Settings struct {
	// Link is the style of links.
	Link LinkStyle

	// ActiveLink is the style of a pressed link.
	ActiveLink LinkStyle

	// InactiveLink is the style of links in a dimmed label.
	InactiveLink LinkStyle

	// LinkTouchMargin is how far outside a label a press can be and
	// still be considered for a link.
	LinkTouchMargin float32

	// TruncationToken is the truncation token, or empty for an ellipsis
	// with the style of the end of the text.
	TruncationToken string `toml:",omitempty"`

	// Checking are the kinds of link to detect automatically: any of
	// Address, Date, Link, PhoneNumber, TransitInformation, or All.
	Checking []string `toml:",omitempty"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{
		Link:            LinkStyle{Foreground: colors.AsHex(colors.Link), Underline: true},
		ActiveLink:      LinkStyle{Foreground: colors.AsHex(colors.Link), Background: colors.AsHex(colors.LinkActive), Underline: true},
		InactiveLink:    LinkStyle{Foreground: colors.AsHex(colors.LinkInactive), Underline: true},
		LinkTouchMargin: 15,
	}
}

// Clone returns a deep copy of the settings.
func (se *Settings) Clone() *Settings {
	ns := &Settings{}
	errors.Log(copier.CopyWithOption(ns, se, copier.Option{DeepCopy: true}))
	return ns
}

// CheckingTypes returns the set of Checking types.
// Unknown names are logged and skipped.
func (se *Settings) CheckingTypes() textcheck.CheckingTypes {
	ct := textcheck.CheckNone
	for _, nm := range se.Checking {
		t, err := textcheck.ParseCheckingTypes(nm)
		if errors.Log(err) == nil {
			ct |= t
		}
	}
	return ct
}

// ApplySettings sets the link attributes, touch margin, truncation token
// and checking types of the label from the given settings.
func (lb *Label) ApplySettings(se *Settings) {
	lb.LinkAttributes = se.Link.Attributes()
	lb.ActiveLinkAttributes = se.ActiveLink.Attributes()
	lb.InactiveLinkAttributes = se.InactiveLink.Attributes()
	lb.LinkTouchMargin = se.LinkTouchMargin
	lb.EnabledCheckingTypes = se.CheckingTypes()
	if se.TruncationToken != "" {
		lb.Truncation.SetToken(rich.NewText(se.TruncationToken, lb.LinkAttributes))
	} else if lb.Truncation.Enabled() {
		lb.Truncation.SetToken(rich.Text{})
	}
}

// OpenSettings returns the settings in the given TOML file, with the
// [Defaults] for anything it does not specify.
func OpenSettings(filename string) (*Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	se := Defaults()
	if err := toml.Unmarshal(b, se); err != nil {
		return nil, fmt.Errorf("label: settings %q: %w", filename, err)
	}
	return se, nil
}

// SaveSettings saves the settings to the given TOML file.
func SaveSettings(se *Settings, filename string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// WatchSettings watches the given settings file, and calls fn with the
// new settings on the rendering thread through the given queue whenever
// the file is written. Files that fail to load are logged and skipped.
// Close the returned watcher to stop watching.
func WatchSettings(filename string, loop *events.Queue, fn func(se *Settings)) (*fsnotify.Watcher, error) {
	if loop == nil {
		return nil, errors.New("label: WatchSettings needs a loop to deliver the settings")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched so that saves by rename are seen
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}
	name := filepath.Clean(filename)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				se, err := OpenSettings(filename)
				if err != nil {
					slog.Error("label: reloading settings", "file", filename, "err", err)
					continue
				}
				loop.Post(func() { fn(se) })
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("label: watching settings", "file", filename, "err", err)
			}
		}
	}()
	return watcher, nil
}
