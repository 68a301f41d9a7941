package audio

import (
	"context"
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	// SampleRate is what both transcription backends expect.
	SampleRate = 16000

	frameSize    = 320 // 20ms at 16kHz
	frameMillis  = 20
	silenceRMS   = 0.015
	trailSilence = 600 * time.Millisecond
	maxSegment   = 12 * time.Second
)

// Recorder captures mono 16kHz microphone audio, segmented by trailing
// silence so each segment holds one stretch of speech.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

// CaptureSegment blocks until speech is heard, then records until the
// speaker pauses. It returns nil samples when the context ends or the
// segment window elapses with no speech at all.
func (r *Recorder) CaptureSegment(ctx context.Context) ([]float32, error) {
	buf := make([]float32, frameSize)
	out := make([]float32, 0, SampleRate*3)

	stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	var (
		speaking bool
		silence  time.Duration
	)

	maxFrames := int(maxSegment / (frameMillis * time.Millisecond))

	for i := 0; i < maxFrames; i++ {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, err
		}

		if rms(buf) > silenceRMS {
			speaking = true
			silence = 0
			out = append(out, buf...)
			continue
		}

		if !speaking {
			continue
		}
		silence += frameMillis * time.Millisecond
		if silence >= trailSilence {
			break
		}
		out = append(out, buf...)
	}

	if !speaking {
		return nil, nil
	}
	return out, nil
}

func rms(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
