package speech

import (
	"context"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	openai "github.com/openai/openai-go/v3"
)

// openaiVoices is the fixed inventory the TTS endpoint offers. Names carry
// no gender keywords, so the selection heuristic falls through its region
// chain and settles on the first acceptable entry.
var openaiVoices = []Voice{
	{Name: "onyx", Lang: "en-US"},
	{Name: "alloy", Lang: "en-US"},
	{Name: "echo", Lang: "en-US"},
	{Name: "fable", Lang: "en-GB"},
	{Name: "ash", Lang: "en-US"},
	{Name: "sage", Lang: "en-US"},
}

// OpenAIEngine renders speech through the hosted TTS endpoint and plays
// the MP3 stream on the default output device.
type OpenAIEngine struct {
	client openai.Client
	model  openai.SpeechModel
}

func NewOpenAIEngine(client openai.Client) *OpenAIEngine {
	return &OpenAIEngine{client: client, model: openai.SpeechModelGPT4oMiniTTS}
}

func (e *OpenAIEngine) Voices() []Voice {
	return openaiVoices
}

func (e *OpenAIEngine) Speak(ctx context.Context, req Request) error {
	voice := req.Voice.Name
	if voice == "" {
		voice = "onyx"
	}

	resp, err := e.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          e.model,
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          req.Text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		Speed:          openai.Float(req.Rate),
	})
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}

	streamer, format, err := mp3.Decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return fmt.Errorf("decode tts mp3: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
