package game

// Rules executes moves and spawns tiles. The searcher and the engines only
// touch boards through it.
type Rules interface {
	// TryMove slides b in place, adds any merge value to score and reports
	// whether the board changed.
	TryMove(b *Board, score *uint32, d Direction) bool
	// InsertRandomTile places a new tile in an empty cell. b must have at
	// least one empty cell.
	InsertRandomTile(b *Board)
}

// CanMove reports whether any direction changes the board
func CanMove(r Rules, b Board) bool {
	return len(LegalMoves(r, b)) > 0
}

// LegalMoves lists the directions that change the board
func LegalMoves(r Rules, b Board) []Direction {
	var moves []Direction
	for _, d := range Directions {
		tmp := b
		var score uint32
		if r.TryMove(&tmp, &score, d) {
			moves = append(moves, d)
		}
	}
	return moves
}
