package speech

import (
	"sort"
	"strings"
)

type Accent string

const (
	AccentIndian Accent = "indian"
	AccentUK     Accent = "uk"
	AccentUS     Accent = "us"
)

// Voice is one synthesizer voice as reported by the engine.
type Voice struct {
	Name string
	Lang string
}

// Params tunes delivery per accent.
type Params struct {
	Rate  float64
	Pitch float64
}

func AccentParams(a Accent) Params {
	switch a {
	case AccentUK:
		return Params{Rate: 0.95, Pitch: 1.05}
	case AccentUS:
		return Params{Rate: 1.0, Pitch: 1.0}
	default:
		return Params{Rate: 1.1, Pitch: 1.0}
	}
}

var (
	vendorBoosts = map[string]int{
		"google": 5, "microsoft": 4, "siri": 3,
		"enhanced": 2, "natural": 2, "premium": 2,
	}
	maleNames = []string{
		"male", "david", "james", "alex", "daniel", "rishi", "prabhat",
		"hemant", "george", "fred", "aaron", "ben", "mark",
	}
	femaleNames = []string{
		"female", "zira", "samantha", "victoria", "hazel", "susan", "heera",
		"priya", "neerja", "veena", "sangeeta", "karen", "moira", "tessa",
	}
)

// Score rates a voice by name keywords, with a strong preference for
// male-sounding names. Voices scoring at or below the rejection threshold
// are skipped during selection.
func Score(v Voice) int {
	name := strings.ToLower(v.Name)
	score := 0
	for kw, boost := range vendorBoosts {
		if strings.Contains(name, kw) {
			score += boost
		}
	}
	for _, n := range maleNames {
		if strings.Contains(name, n) {
			return score + 50
		}
	}
	for _, n := range femaleNames {
		if strings.Contains(name, n) {
			return score - 100
		}
	}
	return score
}

const rejectBelow = -50

func regionVoices(voices []Voice, langCodes, nameKeywords []string) []Voice {
	var out []Voice
	for _, v := range voices {
		lang := strings.ToLower(v.Lang)
		name := strings.ToLower(v.Name)
		keep := false
		for _, code := range langCodes {
			if strings.Contains(lang, strings.ToLower(code)) {
				keep = true
			}
		}
		for _, kw := range nameKeywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				keep = true
			}
		}
		if keep {
			out = append(out, v)
		}
	}
	return out
}

func bestIn(list []Voice) (Voice, bool) {
	if len(list) == 0 {
		return Voice{}, false
	}
	sorted := append([]Voice(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Score(sorted[i]) > Score(sorted[j])
	})
	return sorted[0], true
}

// Select picks the best voice for the requested accent, falling back
// through indian → uk → us → any when the requested region has nothing
// acceptable.
func Select(voices []Voice, accent Accent) (Voice, bool) {
	indian := regionVoices(voices, []string{"en-IN", "hi-IN"}, []string{"India", "Hindi"})
	uk := regionVoices(voices, []string{"en-GB"}, []string{"UK", "Great Britain", "United Kingdom"})
	us := regionVoices(voices, []string{"en-US"}, []string{"US", "United States"})

	var target []Voice
	switch accent {
	case AccentUK:
		target = uk
	case AccentUS:
		target = us
	default:
		target = indian
	}

	if best, ok := bestIn(target); ok && Score(best) > rejectBelow {
		return best, true
	}
	for _, list := range [][]Voice{indian, uk, us, voices} {
		if best, ok := bestIn(list); ok && Score(best) > rejectBelow {
			return best, true
		}
	}
	return Voice{}, false
}
