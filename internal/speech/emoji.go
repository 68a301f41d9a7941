package speech

import "strings"

// emoji/pictograph ranges stripped before text reaches the synthesizer
var strippedRanges = [][2]rune{
	{0x2011, 0x26FF},   // misc symbols, arrows, dingbat precursors
	{0x2700, 0x27BF},   // dingbats
	{0xE000, 0xF8FF},   // private use
	{0x1F000, 0x1FAFF}, // emoji, pictographs, symbols
}

// StripEmoji removes pictographic characters so the synthesizer does not
// read them out.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pictographic(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func pictographic(r rune) bool {
	for _, rng := range strippedRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
