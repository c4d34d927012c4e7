package communication

import (
	"tilesearch/game"
	"tilesearch/searcher"
)

// MoveRequest asks an agent server for a move on Board. Board holds tile
// values with 0 for an empty cell. Zero-valued search fields fall back to
// the server's configuration.
type MoveRequest struct {
	Board       [][]uint32 `json:"board"`
	Depth       *int       `json:"depth,omitempty"`
	Propagation string     `json:"propagation,omitempty"`
}

type MoveResponse struct {
	Move        game.Direction  `json:"move"`
	Scores      searcher.Scores `json:"scores"`
	Depth       int             `json:"depth"`
	Propagation string          `json:"propagation"`
	DurationNs  int64           `json:"duration_ns"`
	Expanded    int             `json:"expanded"`
	Generated   int             `json:"generated"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
