// Package announcer is the client for the hosted commentary/TTS provider.
// The core only supplies a well-formed event context; everything about the
// generated text and audio is the provider's business.
package announcer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultURL = "https://api.rinkcaster.ai"

// Event kinds the provider understands.
const (
	KindGoal    = "goal"
	KindPenalty = "penalty"
)

// EventContext describes one recorded event to the provider.
type EventContext struct {
	Kind           string   `json:"kind"`
	GameID         string   `json:"gameId"`
	Player         string   `json:"player"`
	Team           string   `json:"team"`
	Opponent       string   `json:"opponent"`
	Period         string   `json:"period"`
	Clock          string   `json:"clock"`
	Assists        []string `json:"assists,omitempty"`
	HomeTeam       string   `json:"homeTeam"`
	AwayTeam       string   `json:"awayTeam"`
	HomeScore      int      `json:"homeScore"`
	AwayScore      int      `json:"awayScore"`
	Breakaway      bool     `json:"breakaway,omitempty"`
	PenaltyType    string   `json:"penaltyType,omitempty"`
	PenaltyMinutes int      `json:"penaltyMinutes,omitempty"`
}

// Commentary is the generated announcer line plus the voice the provider
// picked for it.
type Commentary struct {
	Text  string
	Voice string
}

// AudioClip points at the synthesized audio.
type AudioClip struct {
	URL        string
	DurationMs int
}

type Client interface {
	GenerateCommentary(ctx context.Context, ectx EventContext) (*Commentary, error)
	Synthesize(ctx context.Context, text, voice string) (*AudioClip, error)
}

type client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func New(apiKey string) (Client, error) {
	return NewForURL(DefaultURL, apiKey)
}

// NewForURL exists so tests can point the client at a fake server.
func NewForURL(url, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("announcer api key must be provided")
	}
	c := &client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

type commentaryResponse struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

func (c *client) GenerateCommentary(ctx context.Context, ectx EventContext) (*Commentary, error) {
	var parsed commentaryResponse
	if err := c.post(ctx, "/v1/commentary", ectx, &parsed); err != nil {
		return nil, err
	}
	if parsed.Text == "" {
		return nil, fmt.Errorf("provider returned empty commentary")
	}
	return &Commentary{Text: parsed.Text, Voice: parsed.Voice}, nil
}

type speechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

type speechResponse struct {
	AudioURL   string `json:"audioUrl"`
	DurationMs int    `json:"durationMs"`
}

func (c *client) Synthesize(ctx context.Context, text, voice string) (*AudioClip, error) {
	var parsed speechResponse
	if err := c.post(ctx, "/v1/speech", speechRequest{Text: text, Voice: voice}, &parsed); err != nil {
		return nil, err
	}
	return &AudioClip{URL: parsed.AudioURL, DurationMs: parsed.DurationMs}, nil
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from %s: %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", path, err)
	}
	return nil
}
