package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered when a Gate's quiet period elapses
type FireMsg struct {
	ID  string
	Tag int
}

// Gate debounces inside the bubbletea event loop. Each Trigger schedules a
// tick tagged with a fresh sequence number; only the tick carrying the latest
// tag is accepted, so earlier ticks become no-ops.
type Gate struct {
	id    string
	tag   int
	delay time.Duration
}

// NewGate creates a gate whose ticks are addressed to id
func NewGate(id string, delay time.Duration) Gate {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Gate{id: id, delay: delay}
}

// Trigger restarts the quiet period and returns the command that ends it
func (g *Gate) Trigger() tea.Cmd {
	g.tag++
	id, tag := g.id, g.tag
	return tea.Tick(g.delay, func(time.Time) tea.Msg {
		return FireMsg{ID: id, Tag: tag}
	})
}

// Accept reports whether msg closes the latest quiet period of this gate
func (g Gate) Accept(msg FireMsg) bool {
	return msg.ID == g.id && msg.Tag == g.tag
}

// Tag returns the sequence number of the latest Trigger
func (g Gate) Tag() int {
	return g.tag
}

// Owns reports whether msg belongs to this gate at all
func (g Gate) Owns(msg FireMsg) bool {
	return msg.ID == g.id
}
