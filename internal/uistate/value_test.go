package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_GetSet(t *testing.T) {
	v := NewValue("All")
	assert.Equal(t, "All", v.Get())

	v.Set("Tech")
	assert.Equal(t, "Tech", v.Get())
}

func TestValue_SubscribersNotifiedOnChange(t *testing.T) {
	v := NewValue(0)

	var seen []int
	v.Subscribe(func(n int) { seen = append(seen, n) })

	v.Set(1)
	v.Set(2)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestValue_EqualSetIsNoOp(t *testing.T) {
	v := NewValue("Tech")

	calls := 0
	v.Subscribe(func(string) { calls++ })

	v.Set("Tech")
	assert.Zero(t, calls)
}

func TestValue_Unsubscribe(t *testing.T) {
	v := NewValue(0)

	calls := 0
	unsub := v.Subscribe(func(int) { calls++ })
	v.Set(1)
	unsub()
	v.Set(2)

	assert.Equal(t, 1, calls)
}

func TestSession_TabChangeResetsSearch(t *testing.T) {
	s := NewSession()
	s.SearchTerm.Set("quantum")
	assert.Equal(t, "quantum", s.SearchTerm.Get())

	s.ActiveTab.Set("Tech")
	assert.Empty(t, s.SearchTerm.Get(), "search term resets on tab change")
}
