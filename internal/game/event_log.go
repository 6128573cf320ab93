package game

import (
	"fmt"
	"strings"
)

// Event categories recorded by the core.
const (
	CatFire   = "fire"
	CatReload = "reload"
	CatPickup = "pickup"
)

// EventLogEntry is one recorded gameplay event.
type EventLogEntry struct {
	Time     float64
	Source   string // component label e.g. "shotgun", "hands"
	Category string // fire, reload, pickup
	Key      string // specific event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[t=  1.500] shotgun  fire      shot            barrel=1 shells=0
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[t=%7.3f] %-8s %-9s %-15s %s",
		e.Time, e.Source, e.Category, e.Key, e.Value)
}

// EventLog collects structured gameplay events. It is unbounded and
// machine-readable; the sandbox mirrors the tail into its on-screen panel.
type EventLog struct {
	entries []EventLogEntry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a new entry. A nil log drops it.
func (el *EventLog) Add(t float64, source, category, key, value string, numVal float64) {
	if el == nil {
		return
	}
	el.entries = append(el.entries, EventLogEntry{
		Time:     t,
		Source:   source,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Len returns the number of recorded entries.
func (el *EventLog) Len() int {
	if el == nil {
		return 0
	}
	return len(el.entries)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry {
	if el == nil {
		return nil
	}
	return el.entries
}

// Since returns entries recorded after the first n.
func (el *EventLog) Since(n int) []EventLogEntry {
	if el == nil || n >= len(el.entries) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	return el.entries[n:]
}

// matches reports whether e has the category and key; "" matches anything.
func (e EventLogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Filter returns entries matching category and key in time order.
func (el *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.Entries() {
		if e.matches(category, key) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match category and key.
func (el *EventLog) Count(category, key string) int {
	n := 0
	for _, e := range el.Entries() {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// LastOf returns the newest entry matching category and key.
func (el *EventLog) LastOf(category, key string) (EventLogEntry, bool) {
	entries := el.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].matches(category, key) {
			return entries[i], true
		}
	}
	return EventLogEntry{}, false
}

// HasEntry reports whether some entry matches category and key and its value
// contains valueSubstr.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.Entries() {
		if e.matches(category, key) && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format renders every entry, one per line.
func (el *EventLog) Format() string {
	lines := make([]string, 0, el.Len())
	for _, e := range el.Entries() {
		lines = append(lines, e.String()+"\n")
	}
	return strings.Join(lines, "")
}
