package activity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry is one activity event decoded from depot's JSON log.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Event   string
	Zone    string
}

type record struct {
	TS    string `json:"ts"`
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Event string `json:"event"`
	Zone  string `json:"zone"`
}

// Read returns at most maxEntries activity events from the log at path,
// newest first. Lines that are not JSON or carry no event are skipped.
func Read(path string, maxEntries int) ([]Entry, error) {
	if maxEntries <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	defer file.Close()

	ring := make([]Entry, maxEntries)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		ring[idx] = entry
		idx = (idx + 1) % maxEntries
		if count < maxEntries {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}

	entries := make([]Entry, count)
	for i := 0; i < count; i++ {
		entries[i] = ring[(idx-1-i+maxEntries)%maxEntries]
	}
	return entries, nil
}

func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] != '{' {
		return Entry{}, false
	}
	var rec record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Entry{}, false
	}
	if rec.Event == "" {
		return Entry{}, false
	}
	entry := Entry{
		Level:   rec.Level,
		Message: rec.Msg,
		Event:   rec.Event,
		Zone:    rec.Zone,
	}
	if ts, err := time.Parse(time.RFC3339, rec.TS); err == nil {
		entry.Time = ts
	}
	return entry, true
}

// Summary renders an entry as a single line for the overview feed.
func (e Entry) Summary() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04"))
		b.WriteString("  ")
	}
	b.WriteString(e.Message)
	if e.Zone != "" {
		b.WriteString(" (")
		b.WriteString(e.Zone)
		b.WriteString(")")
	}
	return b.String()
}
