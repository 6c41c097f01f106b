package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a construction or roof kind is not recognised.
var ErrUnknownKind = errors.New("unknown kind")

// ConstructionKind is the structural material of the walls.
type ConstructionKind string

// RoofKind is the structure covering the expansion.
type RoofKind string

// AddOn is an optional category that can be toggled into the budget.
type AddOn string

const (
	ConstructionBlock ConstructionKind = "bloco"
	ConstructionBrick ConstructionKind = "tijolo"

	RoofSlab RoofKind = "laje"
	RoofWood RoofKind = "madeira"

	AddOnDeck    AddOn = "deck"
	AddOnPVC     AddOn = "pvc"
	AddOnRoofing AddOn = "telhado"
)

// ConstructionKinds lists the construction kinds in display order.
var ConstructionKinds = []ConstructionKind{ConstructionBlock, ConstructionBrick}

// RoofKinds lists the roof kinds in display order.
var RoofKinds = []RoofKind{RoofSlab, RoofWood}

// AddOns lists the optional categories in the order they are summed and charted.
var AddOns = []AddOn{AddOnDeck, AddOnPVC, AddOnRoofing}

// Selection is the transient set of user choices that drives the summary.
type Selection struct {
	Construction ConstructionKind
	Roof         RoofKind
	Deck         bool
	PVC          bool
	Roofing      bool
}

// DefaultSelection returns the choices the page starts with.
func DefaultSelection() Selection {
	return Selection{
		Construction: ConstructionBlock,
		Roof:         RoofSlab,
		Roofing:      true,
	}
}

// Enabled reports whether the given add-on is part of the budget.
func (s Selection) Enabled(a AddOn) bool {
	switch a {
	case AddOnDeck:
		return s.Deck
	case AddOnPVC:
		return s.PVC
	case AddOnRoofing:
		return s.Roofing
	}
	return false
}

// Toggle returns a copy of s with the given add-on flipped.
func (s Selection) Toggle(a AddOn) Selection {
	switch a {
	case AddOnDeck:
		s.Deck = !s.Deck
	case AddOnPVC:
		s.PVC = !s.PVC
	case AddOnRoofing:
		s.Roofing = !s.Roofing
	}
	return s
}

// NextConstruction returns a copy of s with the next construction kind selected.
func (s Selection) NextConstruction() Selection {
	for i, k := range ConstructionKinds {
		if k == s.Construction {
			s.Construction = ConstructionKinds[(i+1)%len(ConstructionKinds)]
			return s
		}
	}
	s.Construction = ConstructionKinds[0]
	return s
}

// NextRoof returns a copy of s with the next roof kind selected.
func (s Selection) NextRoof() Selection {
	for i, k := range RoofKinds {
		if k == s.Roof {
			s.Roof = RoofKinds[(i+1)%len(RoofKinds)]
			return s
		}
	}
	s.Roof = RoofKinds[0]
	return s
}

// EnabledAddOns returns the enabled add-ons in summing order.
func (s Selection) EnabledAddOns() []AddOn {
	var out []AddOn
	for _, a := range AddOns {
		if s.Enabled(a) {
			out = append(out, a)
		}
	}
	return out
}

// ParseConstruction validates a construction kind given on the command line
// or in the config file.
func ParseConstruction(v string) (ConstructionKind, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, k := range ConstructionKinds {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("construction %q: %w", v, ErrUnknownKind)
}

// ParseRoof validates a roof kind given on the command line or in the config file.
func ParseRoof(v string) (RoofKind, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, k := range RoofKinds {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("roof %q: %w", v, ErrUnknownKind)
}

// ParseAddOn validates an add-on name.
func ParseAddOn(v string) (AddOn, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range AddOns {
		if string(a) == v {
			return a, nil
		}
	}
	return "", fmt.Errorf("add-on %q: %w", v, ErrUnknownKind)
}
