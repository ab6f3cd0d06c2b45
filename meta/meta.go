// meta/meta.go
package meta

import "time"

// HEIGHT defines the default number of board rows.
const HEIGHT = 10

// WIDTH defines the default number of board columns.
const WIDTH = 10

// TURN_TIME defines the search budget per action.
const TURN_TIME = 1000 * time.Millisecond

// MAX_TURNS defines the number of turns after which a match is a draw.
const MAX_TURNS = 300

// BOOST_DURATION defines the boost granted by scattered speed power-ups.
const BOOST_DURATION = 1
