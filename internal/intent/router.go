// Package intent is the offline responder: a fixed rule chain that turns
// free text into a reply and at most one device action. It mirrors what the
// online model does with tools, so the assistant behaves the same with or
// without network.
package intent

import (
	"fmt"
	"regexp"
	"strings"
)

type ActionType string

const (
	ToggleFlashlight ActionType = "TOGGLE_FLASHLIGHT"
	PlayMusic        ActionType = "PLAY_MUSIC"
	PauseMusic       ActionType = "PAUSE_MUSIC"
	ToggleWifi       ActionType = "TOGGLE_WIFI"
	ToggleBluetooth  ActionType = "TOGGLE_BLUETOOTH"
	OpenCamera       ActionType = "OPEN_CAMERA"
	TriggerSOS       ActionType = "TRIGGER_SOS"
)

type Action struct {
	Type  ActionType
	Value bool
}

type Response struct {
	Text   string
	Action *Action
}

// rule handlers return ok=false to fall through to the next rule, which
// preserves the original dispatch semantics (e.g. "flashlight" with no
// on/off keyword keeps going).
type rule struct {
	name string
	try  func(lower string) (Response, bool)
}

var rules = []rule{
	{"emergency", tryEmergency},
	{"flashlight", tryFlashlight},
	{"music", tryMusic},
	{"scan", tryScan},
	{"translate", tryTranslate},
	{"emi", tryEMI},
	{"convert", tryConvert},
	{"arithmetic", tryArithmetic},
	{"percentage", tryPercentage},
	{"online-only", tryOnlineOnly},
}

// Route classifies text and produces the offline reply. Pure function:
// first matching rule wins, evaluation order is the table order above.
func Route(text string) Response {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, r := range rules {
		if resp, ok := r.try(lower); ok {
			return resp
		}
	}
	return Response{
		Text: "Main offline hoon. Main ye kar sakta hoon:\n1. Flashlight/Music control\n2. Math & EMI Calc\n3. Translate (Basic)\n4. Scan Text (OCR) 📷",
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func tryEmergency(lower string) (Response, bool) {
	if !containsAny(lower, "sos", "help", "save me", "bachao", "danger", "emergency") {
		return Response{}, false
	}
	return Response{
		Text:   "Emergency Mode Activated! Sending location to emergency contacts... 🚨",
		Action: &Action{Type: TriggerSOS, Value: true},
	}, true
}

func tryFlashlight(lower string) (Response, bool) {
	if !containsAny(lower, "flashlight", "torch") {
		return Response{}, false
	}
	switch {
	case containsAny(lower, "on", "jalao", "start"):
		return Response{
			Text:   "Bilkul, flashlight on kar diya 🔦.",
			Action: &Action{Type: ToggleFlashlight, Value: true},
		}, true
	case containsAny(lower, "off", "band", "stop"):
		return Response{
			Text:   "Theek hai, flashlight off kar diya.",
			Action: &Action{Type: ToggleFlashlight, Value: false},
		}, true
	}
	return Response{}, false
}

func tryMusic(lower string) (Response, bool) {
	if !containsAny(lower, "music", "song", "gaana") {
		return Response{}, false
	}
	switch {
	case containsAny(lower, "play", "chalao", "start", "sunao"):
		return Response{
			Text:   "Samajh gaya 👍 Offline music play kar raha hoon 🎶.",
			Action: &Action{Type: PlayMusic},
		}, true
	case containsAny(lower, "stop", "pause", "ruko"):
		return Response{
			Text:   "Music pause kar diya.",
			Action: &Action{Type: PauseMusic},
		}, true
	}
	return Response{}, false
}

func tryScan(lower string) (Response, bool) {
	if !containsAny(lower, "scan", "read text", "ocr", "read image") {
		return Response{}, false
	}
	return Response{
		Text:   "Opening camera for offline scanning... 📸",
		Action: &Action{Type: OpenCamera},
	}, true
}

var punctRe = regexp.MustCompile(`[?.,!]`)

func tryTranslate(lower string) (Response, bool) {
	if !strings.HasPrefix(lower, "translate") &&
		!containsAny(lower, "hindi meaning", "english meaning", "ka matlab") {
		return Response{}, false
	}

	var word string
	switch {
	case strings.Contains(lower, "translate"):
		word = strings.TrimSpace(strings.Replace(lower, "translate", "", 1))
	case strings.Contains(lower, "meaning of"):
		_, after, _ := strings.Cut(lower, "meaning of")
		word = strings.TrimSpace(after)
	case strings.Contains(lower, "ka matlab"):
		before, _, _ := strings.Cut(lower, "ka matlab")
		word = strings.TrimSpace(before)
	}
	word = strings.TrimSpace(punctRe.ReplaceAllString(word, ""))

	if tr, ok := dictionary[word]; ok {
		return Response{Text: fmt.Sprintf("Translate: %q -> %q", word, tr)}, true
	}
	return Response{
		Text: fmt.Sprintf("Sorry, mere offline dictionary mein %q nahi hai. Internet connect karo toh bata paunga.", word),
	}, true
}

func tryOnlineOnly(lower string) (Response, bool) {
	if !containsAny(lower, "weather", "mausam", "search", "news") {
		return Response{}, false
	}
	return Response{
		Text: "Abhi internet nahi hai, isliye yeh check nahi ho paayega. Main Flashlight, Music, Calculations, Translation ya OCR (Scan) kar sakta hoon.",
	}, true
}
