package game

// GameState represents one game in progress: the board plus the score and
// move count accumulated so far.
type GameState struct {
	Board Board  `json:"board"`
	Score uint32 `json:"score"`
	Moves int    `json:"moves"`
}

// NewGameState starts a game with two random tiles on an empty board.
func NewGameState(r Rules) *GameState {
	gs := &GameState{}
	r.InsertRandomTile(&gs.Board)
	r.InsertRandomTile(&gs.Board)
	return gs
}

// copy of the GameState.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Play slides the board and spawns a tile. It returns false and leaves the
// state untouched when the move does not change the board.
func (gs *GameState) Play(r Rules, d Direction) bool {
	board := gs.Board
	score := gs.Score
	if !r.TryMove(&board, &score, d) {
		return false
	}
	r.InsertRandomTile(&board)
	gs.Board = board
	gs.Score = score
	gs.Moves++
	return true
}

// IsOver reports whether no move changes the board.
func (gs *GameState) IsOver(r Rules) bool {
	return !CanMove(r, gs.Board)
}
