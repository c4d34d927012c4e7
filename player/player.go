package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"tilesearch/experiments/metrics"
	"tilesearch/game"
)

// ErrQuit is returned when the player asks to stop.
var ErrQuit = errors.New("player quit")

// Player reads moves typed by a person. It satisfies agent.Agent.
type Player struct {
	rules   game.Rules
	in      *bufio.Scanner
	out     io.Writer
	profile termenv.Profile
}

// NewPlayer reads moves line by line from in and shows the board on out.
func NewPlayer(rules game.Rules, in io.Reader, out io.Writer, profile termenv.Profile) *Player {
	return &Player{
		rules:   rules,
		in:      bufio.NewScanner(in),
		out:     out,
		profile: profile,
	}
}

func (p *Player) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric, error) {
	start := time.Now()
	fmt.Fprintf(p.out, "\nscore %d  moves %d\n", state.Score, state.Moves)
	if err := state.Board.Render(p.out, p.profile); err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("failed to render board: %w", err)
	}

	for {
		fmt.Fprint(p.out, "move (w/a/s/d, q to quit): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, metrics.SearchMetric{}, ErrQuit
		}

		line := strings.TrimSpace(p.in.Text())
		if line == "q" || line == "quit" {
			return 0, metrics.SearchMetric{}, ErrQuit
		}
		d, err := game.ParseDirection(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}

		var score uint32
		board := state.Board
		if !p.rules.TryMove(&board, &score, d) {
			fmt.Fprintf(p.out, "%s does not move anything\n", d)
			continue
		}
		return d, metrics.SearchMetric{Propagation: "human", Duration: time.Since(start)}, nil
	}
}
