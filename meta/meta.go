// meta/meta.go
package meta

// DefaultDepth defines the default look-ahead depth of the searcher.
const DefaultDepth = 4

// DefaultPropagation defines how scores fold back to the first move.
const DefaultPropagation = "max"

// DefaultTieBreak defines the frontier order among equal priorities.
const DefaultTieBreak = "fifo"

// MaxMoves caps the length of a single game.
const MaxMoves = 5000

// Games defines the number of games per experiment config.
const Games = 10

// Goroutines defines the number of games played in parallel by experiments.
const Goroutines = 8

// ServerAddr defines the default listen address of the agent server.
const ServerAddr = ":8080"

// Deepest search an agent server accepts
const MaxServerDepth = 6
