package model

import (
	"errors"
	"testing"
)

func TestDefaultSelection(t *testing.T) {
	s := DefaultSelection()
	if s.Construction != ConstructionBlock || s.Roof != RoofSlab {
		t.Fatalf("default kinds = %s/%s, want bloco/laje", s.Construction, s.Roof)
	}
	if s.Deck || s.PVC || !s.Roofing {
		t.Fatalf("default add-ons = deck:%v pvc:%v roofing:%v", s.Deck, s.PVC, s.Roofing)
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	for _, a := range AddOns {
		s := DefaultSelection()
		if got := s.Toggle(a).Toggle(a); got != s {
			t.Errorf("Toggle(%s) twice = %+v, want %+v", a, got, s)
		}
		if s.Toggle(a).Enabled(a) == s.Enabled(a) {
			t.Errorf("Toggle(%s) did not flip the add-on", a)
		}
	}
}

func TestNextKindsCycle(t *testing.T) {
	s := DefaultSelection()
	if got := s.NextConstruction().Construction; got != ConstructionBrick {
		t.Errorf("NextConstruction = %s, want tijolo", got)
	}
	if got := s.NextConstruction().NextConstruction().Construction; got != ConstructionBlock {
		t.Errorf("NextConstruction x2 = %s, want bloco", got)
	}
	if got := s.NextRoof().Roof; got != RoofWood {
		t.Errorf("NextRoof = %s, want madeira", got)
	}

	var zero Selection
	if got := zero.NextRoof().Roof; got != RoofSlab {
		t.Errorf("NextRoof from empty = %s, want laje", got)
	}
}

func TestEnabledAddOnsOrder(t *testing.T) {
	s := Selection{Deck: true, PVC: true, Roofing: true}
	got := s.EnabledAddOns()
	want := []AddOn{AddOnDeck, AddOnPVC, AddOnRoofing}
	if len(got) != len(want) {
		t.Fatalf("EnabledAddOns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnabledAddOns[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		in      string
		want    ConstructionKind
		wantErr bool
	}{
		{"bloco", ConstructionBlock, false},
		{" Tijolo ", ConstructionBrick, false},
		{"madeira", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseConstruction(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseConstruction(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseConstruction(%q) err = %v, want ErrUnknownKind", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseConstruction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if r, err := ParseRoof("MADEIRA"); err != nil || r != RoofWood {
		t.Errorf("ParseRoof(MADEIRA) = %q, %v", r, err)
	}
	if _, err := ParseAddOn("piscina"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseAddOn(piscina) err = %v, want ErrUnknownKind", err)
	}
}

func TestCatalogUnknownCategoryIsEmpty(t *testing.T) {
	cat := Catalog{Categories: []Category{
		{Key: "bloco", Group: GroupConstruction, Items: []LineItem{{Name: "x", Quantity: 2, UnitPrice: 3}}},
	}}
	if got := cat.Category("bloco").Total(); got != 6 {
		t.Errorf("bloco total = %v, want 6", got)
	}
	missing := cat.Category("piscina")
	if missing.Total() != 0 || len(missing.Items) != 0 {
		t.Errorf("missing category = %+v, want empty", missing)
	}
	if got := cat.KeysInGroup(GroupConstruction); len(got) != 1 || got[0] != "bloco" {
		t.Errorf("KeysInGroup = %v", got)
	}
}
