package model

import "sort"

// WellStatus is the permitting/drilling state of a location.
// Keep these values stable; they are used in deal files and API payloads.
type WellStatus string

const (
	WellProducing WellStatus = "PRODUCING"
	WellDUC       WellStatus = "DUC"
	WellPermit    WellStatus = "PERMIT"
)

// Well is one location in the development program.
// The engine only reads ID and LateralLength; the rest is carried for callers.
// Units:
// - LateralLength: feet
// - Lat/Lng: decimal degrees
type Well struct {
	ID            string
	Name          string
	Lat           float64
	Lng           float64
	LateralLength float64
	Status        WellStatus
	Operator      string
	Formation     string
}

// WellSet is a group's membership, keyed by well ID.
// It is owned by the caller; engine code only performs lookups.
type WellSet map[string]struct{}

func NewWellSet(ids ...string) WellSet {
	s := make(WellSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s WellSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s WellSet) Len() int { return len(s) }

// IDs returns the members in sorted order.
func (s WellSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Select returns the wells that belong to the set, preserving input order.
func (s WellSet) Select(wells []Well) []Well {
	out := make([]Well, 0, len(s))
	for _, w := range wells {
		if s.Has(w.ID) {
			out = append(out, w)
		}
	}
	return out
}
