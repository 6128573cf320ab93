package sandbox

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Gunplay/internal/game"
)

const (
	panelWidth      = 300
	panelMaxEntries = 60
	panelLineHeight = 14
)

// EventPanel is a ring buffer of recent gameplay events shown beside the range.
type EventPanel struct {
	entries []game.EventLogEntry
	head    int
	count   int
	cursor  int // how much of the source log has been mirrored
}

// NewEventPanel creates an empty panel.
func NewEventPanel() *EventPanel {
	return &EventPanel{entries: make([]game.EventLogEntry, panelMaxEntries)}
}

// Add appends one entry, evicting the oldest when full.
func (p *EventPanel) Add(e game.EventLogEntry) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % panelMaxEntries
	if p.count < panelMaxEntries {
		p.count++
	}
}

// Sync mirrors entries added to el since the last call.
func (p *EventPanel) Sync(el *game.EventLog) {
	for _, e := range el.Since(p.cursor) {
		p.Add(e)
	}
	p.cursor = el.Len()
}

// Recent returns entries oldest first.
func (p *EventPanel) Recent() []game.EventLogEntry {
	out := make([]game.EventLogEntry, p.count)
	for i := 0; i < p.count; i++ {
		idx := (p.head - p.count + i + panelMaxEntries) % panelMaxEntries
		out[i] = p.entries[idx]
	}
	return out
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case game.CatFire:
		return color.RGBA{R: 230, G: 150, B: 60, A: 255}
	case game.CatReload:
		return color.RGBA{R: 90, G: 170, B: 230, A: 255}
	case game.CatPickup:
		return color.RGBA{R: 120, G: 210, B: 110, A: 255}
	default:
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

// Draw renders the panel at panelX, newest entry at the bottom.
func (p *EventPanel) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, panelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 50, G: 60, B: 70, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, panelWidth, 18, color.RGBA{R: 20, G: 26, B: 32, A: 255}, false)
	drawText(screen, face, "EVENTS", panelX+8, 3, color.White)

	entries := p.Recent()
	maxVisible := (panelH - 26) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const highlight = 3
	y := 22
	for i, e := range entries {
		if i >= len(entries)-highlight {
			vector.FillRect(screen, float32(panelX+2), float32(y), panelWidth-4, panelLineHeight, color.RGBA{R: 28, G: 36, B: 44, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		line := fmt.Sprintf("%6.2f %s %s", e.Time, e.Key, e.Value)
		drawText(screen, face, line, panelX+12, y, color.RGBA{R: 210, G: 215, B: 220, A: 255})
		y += panelLineHeight
	}
}
