package stt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alowish/internal/listen"
)

type scriptedSource struct {
	segments [][]float32
	idx      int
}

func (s *scriptedSource) CaptureSegment(ctx context.Context) ([]float32, error) {
	if s.idx >= len(s.segments) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	seg := s.segments[s.idx]
	s.idx++
	return seg, nil
}

type echoTranscriber struct {
	texts []string
	idx   int
}

func (e *echoTranscriber) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if e.idx >= len(e.texts) {
		return "", nil
	}
	t := e.texts[e.idx]
	e.idx++
	return t, nil
}

func collect(t *testing.T, ch <-chan listen.Event, want int) []listen.Event {
	t.Helper()
	var out []listen.Event
	timeout := time.After(2 * time.Second)
	for len(out) < want {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatalf("timed out after %d events", len(out))
		}
	}
	return out
}

func TestRecognizerAccumulatesTranscript(t *testing.T) {
	src := &scriptedSource{segments: [][]float32{{0.1}, {0.2}}}
	tr := &echoTranscriber{texts: []string{"turn on", "the torch"}}
	rec := NewRecognizer(src, tr)

	ch, err := rec.Start(context.Background())
	require.NoError(t, err)

	events := collect(t, ch, 2)
	assert.Equal(t, "turn on", events[0].Transcript)
	assert.Equal(t, "turn on the torch", events[1].Transcript)

	rec.Stop()
	events = collect(t, ch, 1)
	require.Len(t, events, 1)
	assert.Equal(t, listen.End, events[0].Kind)
}

func TestRecognizerSkipsEmptySegments(t *testing.T) {
	src := &scriptedSource{segments: [][]float32{nil, {0.1}}}
	tr := &echoTranscriber{texts: []string{"namaste"}}
	rec := NewRecognizer(src, tr)

	ch, err := rec.Start(context.Background())
	require.NoError(t, err)

	events := collect(t, ch, 1)
	require.Equal(t, listen.Partial, events[0].Kind)
	assert.Equal(t, "namaste", events[0].Transcript)
	rec.Stop()
}

func TestRecognizerDropsBlankTranscription(t *testing.T) {
	src := &scriptedSource{segments: [][]float32{{0.1}, {0.2}}}
	tr := &echoTranscriber{texts: []string{"", "hello"}}
	rec := NewRecognizer(src, tr)

	ch, err := rec.Start(context.Background())
	require.NoError(t, err)

	events := collect(t, ch, 1)
	assert.Equal(t, "hello", events[0].Transcript)
	assert.False(t, strings.HasPrefix(events[0].Transcript, " "))
	rec.Stop()
}
