package game

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var tileColors = []string{
	"#776e65", "#eee4da", "#ede0c8", "#f2b179", "#f59563", "#f67c5f",
	"#f65e3b", "#edcf72", "#edcc61", "#edc850", "#edc53f", "#edc22e",
}

// Render writes the board with one colour per tile rank. Pass termenv.Ascii
// for plain output.
func (b Board) Render(w io.Writer, profile termenv.Profile) error {
	for _, row := range b {
		for j, rank := range row {
			cell := fmt.Sprintf("%5s", ".")
			if rank > 0 {
				cell = fmt.Sprintf("%5d", tileValue(rank))
			}
			styled := profile.String(cell).Foreground(profile.Color(tileColors[min(int(rank), len(tileColors)-1)]))
			if rank >= 11 {
				styled = styled.Bold()
			}
			sep := " "
			if j == Size-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprint(w, styled.String()+sep); err != nil {
				return err
			}
		}
	}
	return nil
}
