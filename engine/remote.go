package engine

import (
	"tilesearch/communication/client"
	"tilesearch/game"
)

// NewRemoteEngine plays a local game whose moves come from an agent server
// at url.
func NewRemoteEngine(rules game.Rules, url string, maxMoves int, options ...client.Option) *LocalEngine {
	return NewLocalEngine(rules, client.NewAgentClient(url, options...), maxMoves)
}
