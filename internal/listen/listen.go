// Package listen glues a streaming recognizer to the assistant: partial
// transcripts reset a quiet-period timer, and the accumulated utterance is
// routed exactly once when the speaker goes quiet.
package listen

import (
	"context"
	log "log/slog"
	"sync"
	"sync/atomic"
	"time"

	"alowish/internal/debounce"
	"alowish/internal/wake"
)

type EventKind int

const (
	Partial EventKind = iota
	ErrorEvent
	End
)

// Event is one recognition notification. Partial carries the cumulative
// transcript so far; Error and End terminate the session and must always
// clear listening state.
type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

// Recognizer is the platform speech-recognition collaborator.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Event, error)
	Stop()
}

const quietPeriod = 2 * time.Second

// Session consumes one recognition session. In hands-free mode the wake
// word gates routing; a wake word with no command is acknowledged instead
// of routed.
type Session struct {
	rec       Recognizer
	wake      *wake.Matcher
	handsFree bool
	quiet     time.Duration

	onText func(text string)
	onAck  func()

	listening atomic.Bool

	mu         sync.Mutex
	transcript string
}

func NewSession(rec Recognizer, matcher *wake.Matcher, handsFree bool, onText func(string), onAck func()) *Session {
	return &Session{
		rec:       rec,
		wake:      matcher,
		handsFree: handsFree,
		quiet:     quietPeriod,
		onText:    onText,
		onAck:     onAck,
	}
}

func (s *Session) Listening() bool {
	return s.listening.Load()
}

// Run blocks until the recognizer session ends. The debounce timer
// guarantees at most one route per utterance: reset on every partial,
// single fire on quiescence, cancelled on stop or session end.
func (s *Session) Run(ctx context.Context) error {
	events, err := s.rec.Start(ctx)
	if err != nil {
		return err
	}
	s.listening.Store(true)
	defer s.listening.Store(false)

	timer := debounce.New(s.quiet, s.dispatch)
	defer timer.Cancel()

	for ev := range events {
		switch ev.Kind {
		case Partial:
			s.mu.Lock()
			s.transcript = ev.Transcript
			s.mu.Unlock()
			timer.Reset()
		case ErrorEvent:
			log.Warn("Recognition error, stopping session", "err", ev.Err)
			timer.Cancel()
			return nil
		case End:
			timer.Cancel()
			return nil
		}
	}
	return nil
}

// Stop ends the session manually (mic button release).
func (s *Session) Stop() {
	s.rec.Stop()
	s.listening.Store(false)
}

func (s *Session) dispatch() {
	s.mu.Lock()
	text := s.transcript
	s.mu.Unlock()

	s.rec.Stop()
	if text == "" {
		return
	}

	if s.handsFree {
		if !s.wake.Matches(text) {
			return
		}
		clean := s.wake.Strip(text)
		if clean == "" {
			s.onAck()
			return
		}
		s.onText(clean)
		return
	}
	s.onText(text)
}
