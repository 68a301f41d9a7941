package speech

import (
	"context"
	log "log/slog"
	"sync"
)

// Request is one utterance handed to an engine, voice already selected.
type Request struct {
	Text  string
	Voice Voice
	Params
}

// Engine renders speech. Implementations block until playback finishes.
type Engine interface {
	Voices() []Voice
	Speak(ctx context.Context, req Request) error
}

// Speaker is the talk-back surface: it strips pictographs, applies the
// user's mute setting and accent, and picks a voice per utterance.
// SpeakForced bypasses the mute setting; SOS alerts must always play.
type Speaker struct {
	engine Engine

	mu      sync.Mutex
	enabled bool
	accent  Accent
}

func NewSpeaker(engine Engine) *Speaker {
	return &Speaker{engine: engine, enabled: true, accent: AccentIndian}
}

func (s *Speaker) SetEnabled(on bool) {
	s.mu.Lock()
	s.enabled = on
	s.mu.Unlock()
}

func (s *Speaker) SetAccent(a Accent) {
	s.mu.Lock()
	s.accent = a
	s.mu.Unlock()
}

func (s *Speaker) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Speak voices text unless talk-back is disabled.
func (s *Speaker) Speak(text string) {
	if !s.Enabled() {
		return
	}
	s.say(text)
}

// SpeakForced voices text regardless of the mute setting.
func (s *Speaker) SpeakForced(text string) {
	s.say(text)
}

func (s *Speaker) say(text string) {
	clean := StripEmoji(text)
	if clean == "" {
		return
	}

	s.mu.Lock()
	accent := s.accent
	s.mu.Unlock()

	voice, _ := Select(s.engine.Voices(), accent)
	err := s.engine.Speak(context.Background(), Request{
		Text:   clean,
		Voice:  voice,
		Params: AccentParams(accent),
	})
	if err != nil {
		// synthesis failure is never surfaced to the user
		log.Error("Speech synthesis failed", "err", err)
	}
}
