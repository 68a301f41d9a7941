// Package assistant orchestrates a conversation turn: pick the online or
// offline brain, run any device actions, keep history and voice the reply.
package assistant

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"alowish/internal/device"
	"alowish/internal/gemini"
	"alowish/internal/intent"
	"alowish/internal/tools"
)

const (
	RoleUser      = "user"
	RoleAssistant = "alowish"

	errorText        = "Sorry, something went wrong. 😵"
	offlineImageText = "I cannot process images while offline. Please connect to the internet."
	noResponseText   = "I didn't get a response."
)

// Brain is the online model behind a seam the tests can fake.
type Brain interface {
	Send(ctx context.Context, text string, image []byte, imageMIME string, exec gemini.Executor) (gemini.Reply, error)
}

type Net interface {
	Online() bool
}

type Speaker interface {
	Speak(text string)
}

type Camera interface {
	OpenCamera()
}

type Publisher interface {
	Publish(kind string, payload any)
}

// Message is one entry of the conversation transcript.
type Message struct {
	ID        string          `json:"id"`
	Role      string          `json:"role"`
	Text      string          `json:"text"`
	Sources   []gemini.Source `json:"sources,omitempty"`
	HasImage  bool            `json:"hasImage,omitempty"`
	IsError   bool            `json:"isError,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type Assistant struct {
	state   *device.State
	bridge  *tools.Bridge
	brain   Brain
	net     Net
	speaker Speaker
	camera  Camera
	pub     Publisher

	busy atomic.Bool

	mu      sync.Mutex
	history []Message
}

// New wires the orchestrator. brain, speaker, camera and pub may be nil;
// the corresponding step is then skipped.
func New(state *device.State, bridge *tools.Bridge, brain Brain, net Net, speaker Speaker, camera Camera, pub Publisher) *Assistant {
	return &Assistant{
		state:   state,
		bridge:  bridge,
		brain:   brain,
		net:     net,
		speaker: speaker,
		camera:  camera,
		pub:     pub,
	}
}

// Welcome is the greeting shown when a user signs in.
func Welcome(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Hey! I'm Alowish. How can I help you today? 😄"
	}
	return fmt.Sprintf("Hey %s! I'm Alowish. How can I help you today? 😄", fields[0])
}

// Greet records the welcome message without speaking it.
func (a *Assistant) Greet(name string) {
	a.record(Message{
		ID:        "welcome",
		Role:      RoleAssistant,
		Text:      Welcome(name),
		Timestamp: time.Now(),
	})
}

// HandleText processes one user utterance. It returns false when a turn
// is already in flight; the new input is dropped, not queued.
func (a *Assistant) HandleText(ctx context.Context, text string) bool {
	return a.handle(ctx, text, nil, "")
}

// HandleImage processes a message with an attached image.
func (a *Assistant) HandleImage(ctx context.Context, text string, image []byte, mime string) bool {
	return a.handle(ctx, text, image, mime)
}

func (a *Assistant) handle(ctx context.Context, text string, image []byte, mime string) bool {
	if !a.busy.CompareAndSwap(false, true) {
		log.Warn("Turn already in flight, dropping input")
		return false
	}
	defer a.busy.Store(false)

	a.record(Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		HasImage:  len(image) > 0,
		Timestamp: time.Now(),
	})

	reply := a.respond(ctx, text, image, mime)
	reply.ID = uuid.NewString()
	reply.Role = RoleAssistant
	reply.Timestamp = time.Now()
	a.record(reply)

	if a.speaker != nil {
		a.speaker.Speak(reply.Text)
	}
	if a.pub != nil {
		a.pub.Publish("state", a.state)
	}
	return true
}

func (a *Assistant) respond(ctx context.Context, text string, image []byte, mime string) Message {
	if a.net.Online() && a.brain != nil {
		r, err := a.brain.Send(ctx, text, image, mime, a.execTool)
		if err != nil {
			log.Error("Online turn failed", "err", err)
			return Message{Text: errorText, IsError: true}
		}
		if r.Text == "" {
			r.Text = noResponseText
		}
		return Message{Text: r.Text, Sources: r.Sources}
	}

	if len(image) > 0 {
		return Message{Text: offlineImageText}
	}

	resp := intent.Route(text)
	a.applyAction(resp.Action)
	return Message{Text: resp.Text}
}

func (a *Assistant) applyAction(act *intent.Action) {
	if act == nil {
		return
	}
	if act.Type == intent.OpenCamera {
		if a.camera != nil {
			a.camera.OpenCamera()
		}
		return
	}
	if inv := tools.FromAction(act); inv != nil {
		a.bridge.Execute(inv)
	}
}

func (a *Assistant) execTool(name string, args map[string]any) string {
	return a.bridge.Execute(tools.Decode(name, args))
}

func (a *Assistant) record(m Message) {
	a.mu.Lock()
	a.history = append(a.history, m)
	a.mu.Unlock()
	if a.pub != nil {
		a.pub.Publish("message", m)
	}
}

// History returns a copy of the transcript.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Message(nil), a.history...)
}
