package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tilesearch/communication"
	"tilesearch/experiments/metrics"
	"tilesearch/game"
)

type Option func(c *AgentClient)

// AgentClient asks a remote agent server for moves. It satisfies
// agent.Agent.
type AgentClient struct {
	serverURL   string
	httpClient  *http.Client
	depth       *int
	propagation string
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *AgentClient) {
		c.httpClient = httpClient
	}
}

// WithDepth overrides the server's default search depth.
func WithDepth(depth int) Option {
	return func(c *AgentClient) {
		c.depth = &depth
	}
}

func WithPropagation(propagation string) Option {
	return func(c *AgentClient) {
		c.propagation = propagation
	}
}

func NewAgentClient(serverURL string, options ...Option) *AgentClient {
	c := &AgentClient{
		serverURL:  serverURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Ping checks that the server is up.
func (c *AgentClient) Ping() error {
	resp, err := c.httpClient.Get(c.serverURL + "/ping")
	if err != nil {
		return fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("agent server returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *AgentClient) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric, error) {
	body, err := json.Marshal(communication.MoveRequest{
		Board:       state.Board.Values(),
		Depth:       c.depth,
		Propagation: c.propagation,
	})
	if err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("failed to encode move request: %w", err)
	}

	resp, err := c.httpClient.Post(c.serverURL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("failed to request move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		out, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(out, &e) == nil && e.Error != "" {
			return 0, metrics.SearchMetric{}, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, e.Error)
		}
		return 0, metrics.SearchMetric{}, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, out)
	}

	var mr communication.MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("failed to decode move response: %w", err)
	}
	return mr.Move, metrics.SearchMetric{
		Depth:       mr.Depth,
		Propagation: mr.Propagation,
		Duration:    time.Duration(mr.DurationNs),
		Expanded:    mr.Expanded,
		Generated:   mr.Generated,
	}, nil
}
