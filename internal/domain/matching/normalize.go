// Package matching scores recipes against a pantry.
//
// A requirement is satisfied when a pantry name contains the requirement name
// or the requirement name contains a pantry name, after case folding. No
// stemming or tokenization is applied, so "egg" also matches "eggplant".
//
// Empty names are the one exception to plain containment: an empty pantry name
// satisfies nothing and an empty requirement is never satisfied, even though
// the empty string is a substring of every name. Pantry items always carry a
// name, so this only matters for callers building name lists by hand.
//
// Everything here is pure and safe for concurrent use.
package matching

import (
	"strings"

	"github.com/culinaryos/kitchen/internal/domain/pantry"
)

// Normalize returns the comparable form of an ingredient or pantry name.
// Only case is folded; whitespace and punctuation are preserved.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// Pantry is a set of normalized pantry names
type Pantry struct {
	names []string
}

// NewPantry normalizes names into a Pantry. Duplicates and empty names are dropped.
func NewPantry(names ...string) Pantry {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, n := range names {
		key := Normalize(n)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}
	return Pantry{names: normalized}
}

// PantryFromItems builds a Pantry from the names of pantry items
func PantryFromItems(items []*pantry.Item) Pantry {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name())
	}
	return NewPantry(names...)
}

// Len returns the number of distinct normalized names
func (p Pantry) Len() int {
	return len(p.names)
}

// Names returns the normalized names
func (p Pantry) Names() []string {
	return append([]string(nil), p.names...)
}

// Satisfies reports whether the pantry covers a raw requirement name
func (p Pantry) Satisfies(requirement string) bool {
	return Matches(p.names, Normalize(requirement))
}
