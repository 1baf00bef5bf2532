package dex

import (
	"fmt"
	"strings"

	"github.com/kantodex/kantodex/pkg/pokeapi"
)

// Entity is a fully resolved catalog entry. Instances are built once by
// NewEntity and never mutated afterwards: slices are copied in, and callers
// must treat every field as read-only.
type Entity struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	SpriteURL string         `json:"sprite"`
	Types     []string       `json:"types"`
	Stats     []pokeapi.Stat `json:"stats"`

	// HP is derived from the stat named "hp"; construction fails without it.
	HP int `json:"hp"`
}

// NewEntity validates a raw catalog record and builds an immutable Entity.
// A record with no "hp" stat or no types is rejected as malformed.
func NewEntity(rec pokeapi.Record) (*Entity, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedPayload)
	}
	if len(rec.Types) == 0 {
		return nil, fmt.Errorf("%w: %s has no types", ErrMalformedPayload, rec.Name)
	}

	hp := -1
	for _, s := range rec.Stats {
		if s.Name == "hp" {
			hp = s.Value
			break
		}
	}
	if hp < 0 {
		return nil, fmt.Errorf("%w: %s has no hp stat", ErrMalformedPayload, rec.Name)
	}

	e := &Entity{
		ID:        rec.ID,
		Name:      strings.ToLower(rec.Name),
		SpriteURL: rec.SpriteURL,
		Types:     append([]string(nil), rec.Types...),
		Stats:     append([]pokeapi.Stat(nil), rec.Stats...),
		HP:        hp,
	}
	return e, nil
}

// FormatEntity renders an entity for terminal output. Formatting lives here,
// apart from the data, so the entity itself stays a plain value.
func FormatEntity(e *Entity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%03d %s\n", e.ID, e.Name)
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(e.Types, ", "))
	fmt.Fprintf(&b, "HP: %d\n", e.HP)
	for _, s := range e.Stats {
		fmt.Fprintf(&b, "  %-16s %d\n", s.Name, s.Value)
	}
	if e.SpriteURL != "" {
		fmt.Fprintf(&b, "Sprite: %s\n", e.SpriteURL)
	}
	return b.String()
}
