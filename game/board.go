package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Board holds tile ranks. A tile of rank r is worth 1<<r and rank 0 marks
// an empty cell. Boards are values: assigning one copies it.
type Board [Size][Size]uint8

// Cell addresses a board position
type Cell struct {
	Row, Col int
}

// FromValues builds a board from displayed tile values (0, 2, 4, 8, ...).
func FromValues(values [][]uint32) (Board, error) {
	var b Board
	if len(values) != Size {
		return b, fmt.Errorf("board must have %d rows, got %d", Size, len(values))
	}
	for i, row := range values {
		if len(row) != Size {
			return b, fmt.Errorf("row %d must have %d cells, got %d", i, Size, len(row))
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			if v == 1 || bits.OnesCount32(v) != 1 {
				return b, fmt.Errorf("cell (%d,%d) holds %d which is not a tile value", i, j, v)
			}
			b[i][j] = uint8(bits.TrailingZeros32(v))
		}
	}
	return b, nil
}

// Values is the inverse of FromValues
func (b Board) Values() [][]uint32 {
	values := make([][]uint32, Size)
	for i := range b {
		values[i] = make([]uint32, Size)
		for j, rank := range b[i] {
			values[i][j] = tileValue(rank)
		}
	}
	return values
}

// EmptyCells lists the empty positions in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for i := range b {
		for j := range b[i] {
			if b[i][j] == 0 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

func (b Board) HasEmpty() bool {
	for i := range b {
		for j := range b[i] {
			if b[i][j] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the value of the largest tile on the board.
func (b Board) MaxTile() uint32 {
	var top uint8
	for i := range b {
		for j := range b[i] {
			top = max(top, b[i][j])
		}
	}
	return tileValue(top)
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for j, rank := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if rank == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%5d", tileValue(rank)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileValue(rank uint8) uint32 {
	if rank == 0 {
		return 0
	}
	return 1 << rank
}
