package stt

import (
	"context"
	"strings"
	"sync"

	"alowish/internal/audio"
	"alowish/internal/listen"
)

// Source yields one speech segment at a time, usually the microphone.
type Source interface {
	CaptureSegment(ctx context.Context) ([]float32, error)
}

var _ Source = (*audio.Recorder)(nil)

// Recognizer pumps microphone segments through a transcriber and emits
// cumulative transcripts as recognition events.
type Recognizer struct {
	rec Source
	tr  Transcriber

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewRecognizer(rec Source, tr Transcriber) *Recognizer {
	return &Recognizer{rec: rec, tr: tr}
}

func (r *Recognizer) Start(ctx context.Context) (<-chan listen.Event, error) {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	ch := make(chan listen.Event, 8)
	go r.pump(ctx, ch)
	return ch, nil
}

// Stop ends the current session; the event channel closes after an End
// event is delivered.
func (r *Recognizer) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
}

func (r *Recognizer) pump(ctx context.Context, ch chan<- listen.Event) {
	defer close(ch)

	var transcript string
	for {
		samples, err := r.rec.CaptureSegment(ctx)
		if ctx.Err() != nil {
			ch <- listen.Event{Kind: listen.End}
			return
		}
		if err != nil {
			ch <- listen.Event{Kind: listen.ErrorEvent, Err: err}
			return
		}
		if len(samples) == 0 {
			continue
		}

		text, err := r.tr.Transcribe(ctx, samples)
		if ctx.Err() != nil {
			ch <- listen.Event{Kind: listen.End}
			return
		}
		if err != nil {
			ch <- listen.Event{Kind: listen.ErrorEvent, Err: err}
			return
		}
		if text == "" {
			continue
		}

		if transcript == "" {
			transcript = text
		} else {
			transcript = strings.TrimSpace(transcript + " " + text)
		}
		ch <- listen.Event{Kind: listen.Partial, Transcript: transcript}
	}
}
