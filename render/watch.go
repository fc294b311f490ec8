package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/nsf/termbox-go"

	"seabattle/engine"
	"seabattle/game"
)

// Watcher draws the agent's view of a running match in the terminal: the
// knowledge grid, the latest probability surface as cell shading, and the
// turn's shot. It implements engine.Observer; the surface arrives through
// ObserveSurface, wired as the strategy's surface observer.
type Watcher struct {
	delay time.Duration

	mu      sync.Mutex
	surface *game.Grid[int]

	quit      chan struct{}
	quitOnce  sync.Once
	closeOnce sync.Once
}

// NewWatcher initializes the terminal. Delay is how long each turn stays
// on screen. Close must be called before the process exits.
func NewWatcher(delay time.Duration) (*Watcher, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	w := &Watcher{delay: delay, quit: make(chan struct{})}
	go w.pollKeys()
	return w, nil
}

// Close restores the terminal.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.signalQuit()
		termbox.Interrupt()
		termbox.Close()
	})
}

func (w *Watcher) signalQuit() {
	w.quitOnce.Do(func() { close(w.quit) })
}

// Quit reports whether the viewer asked to stop watching.
func (w *Watcher) Quit() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

// ObserveSurface stores the latest probability surface for the next draw.
// Safe to call from the match goroutine.
func (w *Watcher) ObserveSurface(surface *game.Grid[int]) {
	w.mu.Lock()
	w.surface = surface
	w.mu.Unlock()
}

// HandleTurn draws the turn and then sleeps the configured delay so the
// viewer can follow.
func (w *Watcher) HandleTurn(turn engine.Turn) {
	if w.Quit() {
		return
	}
	w.mu.Lock()
	surface := w.surface
	w.mu.Unlock()

	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	drawLabel(0, 0, fmt.Sprintf("match %s  turn %d  shot %v %s", turn.MatchID, turn.Number, turn.Shot.Target, turn.Shot.Power))

	const top = 2
	maxCount := 1
	if surface != nil {
		for p := range surface.Positions() {
			if v := surface.At(p); v > maxCount {
				maxCount = v
			}
		}
	}
	for p := range turn.Board.Positions() {
		x, y := 2+p.Col*2, top+p.Row
		ch, fg := cellRune(turn.Board.At(p))
		bg := termbox.ColorDefault
		if surface != nil && turn.Board.At(p) == game.CellUnknown {
			// Shade promising cells.
			if surface.At(p)*2 > maxCount {
				bg = termbox.ColorBlue
			}
		}
		if p == turn.Shot.Target {
			fg = termbox.AttrBold | termbox.ColorYellow
			ch = '*'
		}
		termbox.SetCell(x, y, ch, fg, bg)
	}
	drawLabel(0, top+turn.Board.Rows()+1, "q or esc quits")
	termbox.Flush()

	select {
	case <-w.quit:
	case <-time.After(w.delay):
	}
}

func cellRune(state game.CellState) (rune, termbox.Attribute) {
	switch state {
	case game.CellWater:
		return '~', termbox.ColorCyan
	case game.CellShip:
		return 'X', termbox.ColorRed
	default:
		return '.', termbox.ColorDefault
	}
}

func drawLabel(x, y int, text string) {
	for i, ch := range text {
		termbox.SetCell(x+i, y, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (w *Watcher) pollKeys() {
	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			if ev.Ch == 'q' || ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				w.signalQuit()
				return
			}
		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}
