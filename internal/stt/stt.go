// Package stt turns microphone audio into text. A local whisper model is
// the default backend; the hosted transcription endpoint serves as an
// online alternative.
package stt

import "context"

// Transcriber converts one mono 16kHz segment to text.
type Transcriber interface {
	Transcribe(ctx context.Context, pcm []float32) (string, error)
}
