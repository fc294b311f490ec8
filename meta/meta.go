// meta/meta.go
package meta

// BOARD_ROWS defines the number of rows on the standard board.
const BOARD_ROWS = 12

// BOARD_COLS defines the number of columns on the standard board.
const BOARD_COLS = 12

// MAX_TURNS caps the shots fired in a single match.
const MAX_TURNS = BOARD_ROWS * BOARD_COLS

// MATCHES defines the number of matches per experiment run.
const MATCHES = 100

// PLACEMENT_TRIES caps the random placement attempts per ship when
// generating a local board.
const PLACEMENT_TRIES = 1000
