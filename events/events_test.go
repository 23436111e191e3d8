// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"cogentcore.org/richlabel/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointer(t *testing.T) {
	ev := NewPointer(Press, math32.Vec2(3, 4))
	assert.Equal(t, Press, ev.Type())
	assert.Equal(t, ev.Pos, ev.Start)
	assert.False(t, ev.IsHandled())
	ev.SetHandled()
	assert.True(t, ev.IsHandled())

	dr := NewDrag(math32.Vec2(5, 6), math32.Vec2(3, 4))
	assert.Equal(t, "Drag", dr.Type().String())
	assert.Equal(t, math32.Vec2(3, 4), dr.Start)
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var got []int
	ls.Add(Press, func(ev Event) { got = append(got, 1) })
	ls.Add(Press, func(ev Event) { got = append(got, 2) })
	ls.HandleEvent(NewPointer(Press, math32.Vector2{}))
	assert.Equal(t, []int{2, 1}, got)

	got = nil
	ls.Add(Press, func(ev Event) {
		got = append(got, 3)
		ev.SetHandled()
	})
	ls.HandleEvent(NewPointer(Press, math32.Vector2{}))
	assert.Equal(t, []int{3}, got)

	got = nil
	ls.HandleEvent(NewPointer(Release, math32.Vector2{}))
	assert.Nil(t, got)
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.NextEvent())

	q.Send(NewPointer(Press, math32.Vec2(1, 1)))
	q.Send(NewPointer(Release, math32.Vec2(1, 1)))
	assert.Equal(t, uint64(2), q.Len())
	require.NotNil(t, q.NextEvent())
	ev := q.NextEvent()
	require.NotNil(t, ev)
	assert.Equal(t, Release, ev.Type())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Post(func() {})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(800), q.Len())

	ran := 0
	q.Post(func() { ran++ })
	var ls Listeners
	other := 0
	ls.Add(Cancel, func(ev Event) { other++ })
	q.Send(NewPointer(Cancel, math32.Vector2{}))
	assert.Equal(t, 802, q.Drain(&ls))
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, other)
	assert.Equal(t, 0, q.Drain(nil))
}
