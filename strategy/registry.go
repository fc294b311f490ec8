package strategy

import "seabattle/game"

// Registry remembers every cell attributed to an already sunk ship, so a
// later hunt never claims it again.
type Registry struct {
	cells map[game.Position]bool
}

func NewRegistry() *Registry {
	return &Registry{cells: make(map[game.Position]bool)}
}

func (r *Registry) Add(positions ...game.Position) {
	for _, p := range positions {
		r.cells[p] = true
	}
}

func (r *Registry) Contains(p game.Position) bool { return r.cells[p] }

// Count returns the number of registered cells.
func (r *Registry) Count() int { return len(r.cells) }
