package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreVendorBoosts(t *testing.T) {
	assert.Equal(t, 5, Score(Voice{Name: "Google Hindi"}))
	assert.Equal(t, 4, Score(Voice{Name: "Microsoft Ravi Online"}))
	assert.Equal(t, 2, Score(Voice{Name: "Enhanced Voice"}))
	assert.Equal(t, 0, Score(Voice{Name: "Plain"}))
}

func TestScoreGenderKeywords(t *testing.T) {
	assert.Equal(t, 55, Score(Voice{Name: "Google Rishi"}))
	assert.Equal(t, 50, Score(Voice{Name: "Prabhat"}))
	assert.Equal(t, -96, Score(Voice{Name: "Microsoft Heera"}))
	assert.Equal(t, -100, Score(Voice{Name: "Priya"}))
}

func TestSelectPrefersMaleInRegion(t *testing.T) {
	voices := []Voice{
		{Name: "Microsoft Heera", Lang: "hi-IN"},
		{Name: "Microsoft Hemant", Lang: "hi-IN"},
		{Name: "Google UK English Male", Lang: "en-GB"},
	}
	v, ok := Select(voices, AccentIndian)
	require.True(t, ok)
	assert.Equal(t, "Microsoft Hemant", v.Name)
}

func TestSelectFallsBackThroughRegions(t *testing.T) {
	voices := []Voice{
		{Name: "Microsoft Heera", Lang: "hi-IN"}, // rejected, female
		{Name: "Daniel", Lang: "en-GB"},
		{Name: "Samantha", Lang: "en-US"},
	}
	v, ok := Select(voices, AccentIndian)
	require.True(t, ok)
	assert.Equal(t, "Daniel", v.Name)
}

func TestSelectAnyRegionLast(t *testing.T) {
	voices := []Voice{
		{Name: "Anna", Lang: "de-DE"},
	}
	v, ok := Select(voices, AccentIndian)
	require.True(t, ok)
	assert.Equal(t, "Anna", v.Name)
}

func TestSelectRejectsAllFemale(t *testing.T) {
	voices := []Voice{
		{Name: "Samantha", Lang: "en-US"},
		{Name: "Karen", Lang: "en-AU"},
	}
	_, ok := Select(voices, AccentUS)
	assert.False(t, ok)
}

func TestAccentParams(t *testing.T) {
	assert.Equal(t, Params{Rate: 1.1, Pitch: 1.0}, AccentParams(AccentIndian))
	assert.Equal(t, Params{Rate: 0.95, Pitch: 1.05}, AccentParams(AccentUK))
	assert.Equal(t, Params{Rate: 1.0, Pitch: 1.0}, AccentParams(AccentUS))
}

func TestStripEmoji(t *testing.T) {
	assert.Equal(t, "Bilkul, flashlight on kar diya .", StripEmoji("Bilkul, flashlight on kar diya 🔦."))
	assert.Equal(t, "Emergency Mode Activated! ", StripEmoji("Emergency Mode Activated! 🚨"))
	assert.Equal(t, "plain text", StripEmoji("plain text"))
}
