package domain

import (
	"sort"
	"strings"
)

// EquipmentSet is the set of equipment an exercise needs, or a user owns.
// The zero value (nil map) is the empty set: bodyweight only.
type EquipmentSet map[Equipment]bool

// NewEquipmentSet builds a set from the given equipment kinds.
func NewEquipmentSet(items ...Equipment) EquipmentSet {
	if len(items) == 0 {
		return nil
	}
	s := make(EquipmentSet, len(items))
	for _, e := range items {
		s[e] = true
	}
	return s
}

// SubsetOf reports whether every item in s is present in other.
// The empty set is a subset of everything.
func (s EquipmentSet) SubsetOf(other EquipmentSet) bool {
	for e := range s {
		if !other[e] {
			return false
		}
	}
	return true
}

// Names returns the equipment names sorted alphabetically.
func (s EquipmentSet) Names() []string {
	names := make([]string, 0, len(s))
	for e := range s {
		names = append(names, string(e))
	}
	sort.Strings(names)
	return names
}

// String renders the set as a sorted comma-joined list, "" for empty.
func (s EquipmentSet) String() string {
	return strings.Join(s.Names(), ",")
}

// ParseEquipmentSet parses a comma-joined equipment list. Unknown names are
// kept as-is so a row written by a newer build still round-trips.
func ParseEquipmentSet(s string) EquipmentSet {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	set := make(EquipmentSet)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[Equipment(part)] = true
		}
	}
	return set
}

// Exercise is one rung of a category's progression ladder. Immutable once
// seeded; ordered by Level within a category.
type Exercise struct {
	Category    Category
	Name        string
	Level       int
	Equipment   EquipmentSet
	Description string
}

// Performable reports whether the exercise can be done with the given
// equipment.
func (e Exercise) Performable(available EquipmentSet) bool {
	return e.Equipment.SubsetOf(available)
}
