package theme

import (
	"errors"
	"testing"
)

func TestBuiltinOrder(t *testing.T) {
	r := Builtin()
	want := []string{"dual", "molten", "cosmic", "emerald"}
	got := r.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !r.Has(DefaultKey) {
		t.Errorf("default theme %q not registered", DefaultKey)
	}
}

func TestBuiltinBloom(t *testing.T) {
	tests := []struct {
		key  string
		want Bloom
	}{
		{"dual", Bloom{0.5, 0.6, 0.6}},
		{"molten", Bloom{0.35, 0.45, 0.7}},
		{"cosmic", Bloom{0.4, 0.5, 0.65}},
		{"emerald", Bloom{0.3, 0.6, 0.75}},
	}
	r := Builtin()
	for _, tt := range tests {
		th, ok := r.Get(tt.key)
		if !ok {
			t.Fatalf("theme %q missing", tt.key)
		}
		if th.Bloom != tt.want {
			t.Errorf("%s bloom = %+v, want %+v", tt.key, th.Bloom, tt.want)
		}
		if th.Len() != 5 {
			t.Errorf("%s palette length = %d, want 5", tt.key, th.Len())
		}
	}
}

func TestPaletteHexRoundTrip(t *testing.T) {
	if got := Molten.Colors[0].Hex(); got != "#ff4800" {
		t.Errorf("molten[0] = %s, want #ff4800", got)
	}
	if got := Dual.Colors[2].Hex(); got != "#ffffff" {
		t.Errorf("dual[2] = %s, want #ffffff", got)
	}
}

func TestColorWraps(t *testing.T) {
	if Cosmic.Color(5) != Cosmic.Colors[0] {
		t.Error("Color(5) should wrap to entry 0")
	}
	if Cosmic.Color(-1) != Cosmic.Colors[4] {
		t.Error("Color(-1) should wrap to last entry")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New("", "x", Bloom{}, "#000000"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("empty key: got %v", err)
	}
	if _, err := New("k", "x", Bloom{}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("empty palette: got %v", err)
	}
	if _, err := New("k", "x", Bloom{}, "not-a-color"); err == nil {
		t.Error("invalid hex accepted")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	a := MustNew("a", "A", Bloom{}, "#010203")
	b := MustNew("a", "B", Bloom{}, "#040506")
	if _, err := NewRegistry(a, b); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("duplicate keys: got %v", err)
	}
}

func TestRegistryNavigation(t *testing.T) {
	r := Builtin()
	if got := r.Next("emerald"); got != "dual" {
		t.Errorf("Next(emerald) = %q, want dual", got)
	}
	if got := r.Next("missing"); got != "dual" {
		t.Errorf("Next(missing) = %q, want dual", got)
	}
	if got := r.Index("cosmic"); got != 2 {
		t.Errorf("Index(cosmic) = %d, want 2", got)
	}
	if _, ok := r.At(4); ok {
		t.Error("At(4) should be out of range")
	}
	if _, err := r.Lookup("nope"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Lookup(nope) = %v", err)
	}
}
