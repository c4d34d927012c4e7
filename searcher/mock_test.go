package searcher

import "tilesearch/game"

// noSpawnRules slides like the real game but never adds a tile, which keeps
// symmetric boards symmetric.
type noSpawnRules struct {
	*game.StandardRules
}

func newNoSpawnRules() noSpawnRules {
	return noSpawnRules{game.NewStandardRules(game.NewRand(1))}
}

func (noSpawnRules) InsertRandomTile(b *game.Board) {}

// firstEmptyRules always spawns a 2 in the first empty cell.
type firstEmptyRules struct {
	*game.StandardRules
}

func newFirstEmptyRules() firstEmptyRules {
	return firstEmptyRules{game.NewStandardRules(game.NewRand(1))}
}

func (firstEmptyRules) InsertRandomTile(b *game.Board) {
	cell := b.EmptyCells()[0]
	b[cell.Row][cell.Col] = 1
}

// bestReachable is the highest cumulative score over every sequence of at
// most depth moves.
func bestReachable(rules game.Rules, b game.Board, score uint32, depth int) uint32 {
	best := score
	if depth == 0 {
		return best
	}
	for _, d := range game.Directions {
		next := b
		nextScore := score
		if !rules.TryMove(&next, &nextScore, d) {
			continue
		}
		rules.InsertRandomTile(&next)
		best = max(best, bestReachable(rules, next, nextScore, depth-1))
	}
	return best
}

// countReachable is the number of boards created by expanding every board
// up to depth moves, the root excluded.
func countReachable(rules game.Rules, b game.Board, depth int) int {
	if depth == 0 {
		return 0
	}
	count := 0
	for _, d := range game.Directions {
		next := b
		var score uint32
		if !rules.TryMove(&next, &score, d) {
			continue
		}
		rules.InsertRandomTile(&next)
		count += 1 + countReachable(rules, next, depth-1)
	}
	return count
}

// edge is one scripted move: the node it leads to and the merge score it adds.
type edge struct {
	to   uint8
	gain uint32
}

// treeRules plays a fixed move tree. The board's top-left cell holds the
// current node id and every move not listed leaves the board unchanged.
type treeRules map[uint8]map[game.Direction]edge

func (r treeRules) TryMove(b *game.Board, score *uint32, d game.Direction) bool {
	e, ok := r[b[0][0]][d]
	if !ok {
		return false
	}
	b[0][0] = e.to
	*score += e.gain
	return true
}

func (treeRules) InsertRandomTile(b *game.Board) {}
