package wake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	m := Default()

	assert.True(t, m.Matches("hey alowish turn on the flashlight"))
	assert.True(t, m.Matches("HEY ALOWISH what's up"))
	assert.True(t, m.Matches("suno alowish gaana chalao"))
	assert.True(t, m.Matches("okay so hey elvis play music"))

	assert.False(t, m.Matches("turn on the flashlight"))
	assert.False(t, m.Matches(""))
	assert.False(t, m.Matches("hello there"))
}

func TestStrip(t *testing.T) {
	m := Default()

	assert.Equal(t, "turn on the flashlight", m.Strip("hey alowish turn on the flashlight"))
	assert.Equal(t, "", m.Strip("hey alowish"))
	assert.Equal(t, "", m.Strip("  hey alowish  "))
}

func TestStripPrefersLongestVariant(t *testing.T) {
	// "hey alowish" contains no shorter variant that would leave residue,
	// but "hey allowish" contains "hey al"; longest-first ordering must win.
	m := Default()
	assert.Equal(t, "music please", m.Strip("hey allowish music please"))
}

func TestStripNoMatchPreservesCase(t *testing.T) {
	m := Default()
	assert.Equal(t, "Turn ON the torch", m.Strip("Turn ON the torch"))
}

func TestStripRemovesOnlyFirstOccurrence(t *testing.T) {
	m := NewMatcher([]string{"hey alowish"})
	assert.Equal(t, "say hey alowish back", m.Strip("hey alowish say hey alowish back"))
}
