// Package gemini holds the online brain: a chat session with function
// calling for device tools and search grounding for fresh facts.
package gemini

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"alowish/internal/profile"
)

const chatModel = "gemini-2.5-flash"

// Executor runs one tool call and returns the confirmation string the
// model sees as the function result.
type Executor func(name string, args map[string]any) string

// Source is one search-grounding reference attached to a reply.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Reply is the model's final answer after any tool-call rounds.
type Reply struct {
	Text    string
	Sources []Source
}

type Client struct {
	client *genai.Client

	mu   sync.Mutex
	chat *genai.Chat
}

// NewClient dials the API. httpClient may be nil; passing one lets the
// daemon route traffic through its SOCKS proxy.
func NewClient(ctx context.Context, apiKey string, httpClient *http.Client) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("empty API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client}, nil
}

// StartChat opens a fresh session carrying the persona and the current
// user's context. Earlier history is discarded.
func (c *Client) StartChat(ctx context.Context, user *profile.Profile) error {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(user), genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: declarations},
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	chat, err := c.client.Chats.Create(ctx, chatModel, cfg, nil)
	if err != nil {
		return fmt.Errorf("create chat session: %w", err)
	}

	c.mu.Lock()
	c.chat = chat
	c.mu.Unlock()
	return nil
}

// Send delivers one user message, runs every tool call the model issues
// through exec, and returns the final text with any search sources.
// Images ride along inline when present.
func (c *Client) Send(ctx context.Context, text string, image []byte, imageMIME string, exec Executor) (Reply, error) {
	c.mu.Lock()
	chat := c.chat
	c.mu.Unlock()
	if chat == nil {
		return Reply{}, errors.New("chat session not started")
	}

	parts := []genai.Part{{Text: text}}
	if len(image) > 0 {
		parts = append(parts, genai.Part{
			InlineData: &genai.Blob{MIMEType: imageMIME, Data: image},
		})
	}

	resp, err := chat.SendMessage(ctx, parts...)
	if err != nil {
		return Reply{}, fmt.Errorf("send message: %w", err)
	}

	// the model may chain tool calls; answer each by id until it
	// settles on text
	for {
		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			break
		}
		fc := calls[0]
		log.Info("Tool call from model", "name", fc.Name)

		result := exec(fc.Name, fc.Args)
		resp, err = chat.SendMessage(ctx, genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				ID:       fc.ID,
				Name:     fc.Name,
				Response: map[string]any{"result": result},
			},
		})
		if err != nil {
			return Reply{}, fmt.Errorf("send tool result: %w", err)
		}
	}

	return Reply{Text: resp.Text(), Sources: sources(resp)}, nil
}

func sources(resp *genai.GenerateContentResponse) []Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}
