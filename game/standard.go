package game

import "golang.org/x/exp/rand"

// StandardRules plays the usual 2048 rules: tiles slide as far as they can,
// equal neighbours merge once per move and the merged tile's value is
// scored. New tiles are a 2 or, less often, a 4.
type StandardRules struct {
	FourProbability float64
	rng             *rand.Rand
}

func NewStandardRules(rng *rand.Rand) *StandardRules {
	return &StandardRules{
		FourProbability: 0.1,
		rng:             rng,
	}
}

func (sr *StandardRules) TryMove(b *Board, score *uint32, d Direction) bool {
	before := *b
	for i := 0; i < Size; i++ {
		var line [Size]uint8
		for j := 0; j < Size; j++ {
			r, c := lineCell(d, i, j)
			line[j] = b[r][c]
		}
		*score += slideLine(&line)
		for j := 0; j < Size; j++ {
			r, c := lineCell(d, i, j)
			b[r][c] = line[j]
		}
	}
	return *b != before
}

func (sr *StandardRules) InsertRandomTile(b *Board) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		panic("cannot insert a tile into a full board")
	}
	cell := cells[sr.rng.Intn(len(cells))]
	rank := uint8(1)
	if sr.rng.Float64() < sr.FourProbability {
		rank = 2
	}
	b[cell.Row][cell.Col] = rank
}

// lineCell maps the j-th cell of the i-th line, counted from the edge the
// tiles slide towards, back to board coordinates.
func lineCell(d Direction, i, j int) (row, col int) {
	switch d {
	case Left:
		return i, j
	case Right:
		return i, Size - 1 - j
	case Up:
		return j, i
	case Down:
		return Size - 1 - j, i
	}
	panic("unknown direction")
}

// slideLine packs a line towards index 0, merging each pair of equal
// neighbours at most once, and returns the value of the merged tiles.
func slideLine(line *[Size]uint8) uint32 {
	var out [Size]uint8
	var merged [Size]bool
	var gained uint32
	n := 0
	for _, rank := range line {
		if rank == 0 {
			continue
		}
		if n > 0 && out[n-1] == rank && !merged[n-1] {
			out[n-1]++
			merged[n-1] = true
			gained += tileValue(out[n-1])
			continue
		}
		out[n] = rank
		n++
	}
	*line = out
	return gained
}
