// Package options migrates serialized game option values written by older
// releases. Migrations are version-gated, in-place rewrites of single option
// values, applied while a campaign is loaded.
package options

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// TurnTimer is the option key of the per-turn time limit.
const TurnTimer = "turnTimer"

// Collection is a caller-owned store of named option values.
// Implementations need not be safe for concurrent use; a migration pass
// assumes exclusive access.
type Collection interface {
	// Get returns the current value for key.
	Get(key string) (any, bool)
	// Set replaces the value for key.
	Set(key string, value any)
}

// Map is an in-memory Collection.
type Map map[string]any

func (m Map) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key string, value any) {
	m[key] = value
}

// Keys returns the option keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DecodeMap reads a JSON object of option values. Numbers are kept as
// json.Number so integer options survive a round trip unchanged.
func DecodeMap(r io.Reader) (Map, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	m := Map{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return m, nil
}

// Encode writes m as a JSON object.
func (m Map) Encode(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(map[string]any(m)); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}
