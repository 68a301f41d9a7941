package stt

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"

	"alowish/internal/audio"
)

// Cloud transcribes through the hosted endpoint. It handles code-switched
// Hindi/English speech better than the small local models.
type Cloud struct {
	client openai.Client
	model  openai.AudioModel
}

func NewCloud(client openai.Client) *Cloud {
	return &Cloud{client: client, model: openai.AudioModelWhisper1}
}

func (c *Cloud) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", nil
	}

	blob, err := audio.EncodeWAV(pcm, audio.SampleRate)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: c.model,
		File:  openai.File(bytes.NewReader(blob), "segment.wav", "audio/wav"),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
