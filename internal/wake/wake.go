package wake

import (
	"sort"
	"strings"
)

// Variants covers phonetic misrecognitions of "hey alowish" seen in real
// transcripts, plus Hinglish and casual prefixes.
var Variants = []string{
	"hey alowish", "hey allowish", "hey aloish", "hi alowish", "hello alowish",
	"hey alovish", "hey alwish", "hey alvish",
	"hey alice", "hey al", "hey wish", "hey a lowish", "hey aloysius",
	"hey alvis", "hey elvish", "hey yellowish", "hey lowish",
	"hey louis", "hey lewis", "hey all wish", "hey a wish", "hello wish",
	"hey allo wish", "hey aloe wish", "hey love wish",
	"hey lavish", "hey lowis", "hey loish", "hey alois",
	"hey all of us", "hey olive wish", "hey early wish",
	"hey a list", "hey at least", "hey i wish", "hey high wish",
	"hey allow wish", "hey elvis", "hallo wish", "hallo alowish",
	"hey always", "hey all ways", "hey allo is", "hey aloo is",
	"hey eloise", "hey elouise", "hey alloy wish", "hey alloy ish",
	"hey a law wish", "hey ala wish", "hey ola wish", "hey hola wish",
	"hey allow is", "hey aloe is", "hey hello is",
	"hey i love wish", "hey all his", "hey all this",
	"hey a lavish", "hey a love wish", "hey low ish",
	"hey allah wish", "hey all of his", "hey a loish",
	"hey allow us", "hey aloe us", "hey owl wish", "hey owl ish",
	"hey i'll wish", "hey ill wish", "hey el wish",
	"hey aalo wish", "hey alu wish", "hey elo wish", "hey hello wish",
	"hey aalu wish", "hey aaloo wish", "hey alu vish", "hey aalu vish",
	"hey yellow wish", "hey hallow wish", "hey halo wish", "hey hollow wish",
	"hey all of which", "hey all of wish", "hey a lo wish", "hey a low wish",
	"hey aloo vish", "hey aloo wish", "hey aaloo vish", "hey elo vish",
	"hey allow vish", "hey allo vish", "hey hello vish",
	"hey al vish", "hey all vish", "hey oil wish", "hey oil vish",
	"oye alowish", "ok alowish", "okay alowish", "arey alowish", "sun alowish", "suno alowish",
	"listen alowish", "haan alowish", "ha alowish", "abey alowish", "arre alowish",
	"hello ji alowish", "namaste alowish", "hi ji alowish", "alright alowish",
}

// Matcher detects the wake phrase in a transcript and strips it off to
// leave the command payload.
type Matcher struct {
	variants []string
}

// NewMatcher builds a matcher over the given phrase variants. Variants are
// ordered longest-first so overlapping variants prefer the longest match.
func NewMatcher(variants []string) *Matcher {
	sorted := make([]string, len(variants))
	for i, v := range variants {
		sorted[i] = strings.ToLower(v)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return &Matcher{variants: sorted}
}

func Default() *Matcher {
	return NewMatcher(Variants)
}

// Matches reports whether any variant occurs in the transcript.
func (m *Matcher) Matches(transcript string) bool {
	lower := strings.ToLower(transcript)
	for _, v := range m.variants {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

// Strip removes the first occurrence of the first (longest) matching
// variant and trims the remainder. If nothing matches the transcript is
// returned unchanged, case preserved. An empty result means the wake word
// stood alone; callers should acknowledge instead of routing empty text.
func (m *Matcher) Strip(transcript string) string {
	lower := strings.ToLower(transcript)
	for _, v := range m.variants {
		if strings.Contains(lower, v) {
			return strings.TrimSpace(strings.Replace(lower, v, "", 1))
		}
	}
	return transcript
}
