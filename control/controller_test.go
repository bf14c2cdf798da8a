package control

import (
	"testing"

	"github.com/lixenwraith/heartglow/heart"
	"github.com/lixenwraith/heartglow/theme"
)

type fakeBloom struct {
	calls int
	last  theme.Bloom
}

func (f *fakeBloom) SetBloom(b theme.Bloom) {
	f.calls++
	f.last = b
}

type fakeIndicator struct {
	active    map[string]bool
	animation bool
}

func newFakeIndicator(keys []string) *fakeIndicator {
	f := &fakeIndicator{active: make(map[string]bool)}
	for _, k := range keys {
		f.active[k] = false
	}
	return f
}

func (f *fakeIndicator) SetActive(key string) {
	for k := range f.active {
		f.active[k] = k == key
	}
}

func (f *fakeIndicator) SetAnimation(enabled bool) { f.animation = enabled }

func (f *fakeIndicator) activeKeys() []string {
	var out []string
	for k, v := range f.active {
		if v {
			out = append(out, k)
		}
	}
	return out
}

func setup(t *testing.T) (*Controller, *heart.Simulation, *fakeBloom, *fakeIndicator) {
	t.Helper()
	reg := theme.Builtin()
	cfg := heart.DefaultConfig()
	cfg.ParticleCount = 4
	cfg.Seed = 1
	sim, err := heart.New(cfg)
	if err != nil {
		t.Fatalf("heart.New: %v", err)
	}
	c := New(reg, sim, nil)
	b := &fakeBloom{}
	ind := newFakeIndicator(reg.Keys())
	c.AttachBloom(b)
	c.AttachIndicator(ind)
	return c, sim, b, ind
}

func TestAttachSyncsInitialState(t *testing.T) {
	c, _, b, ind := setup(t)
	if c.Active() != theme.DefaultKey {
		t.Errorf("Active() = %q", c.Active())
	}
	if b.last != theme.Molten.Bloom {
		t.Errorf("initial bloom = %+v", b.last)
	}
	if got := ind.activeKeys(); len(got) != 1 || got[0] != theme.DefaultKey {
		t.Errorf("active indicators = %v", got)
	}
	if !ind.animation {
		t.Error("indicator animation not synced")
	}
}

func TestSetThemeMolten(t *testing.T) {
	c, sim, b, _ := setup(t)
	c.SetTheme("dual")
	if !c.SetTheme("molten") {
		t.Fatal("SetTheme(molten) returned false")
	}
	want := theme.Bloom{Strength: 0.35, Radius: 0.45, Threshold: 0.7}
	if b.last != want {
		t.Errorf("bloom = %+v, want %+v", b.last, want)
	}
	if sim.Theme().Key != "molten" {
		t.Errorf("simulation theme = %q", sim.Theme().Key)
	}
}

func TestSetThemeUnknownIsNoOp(t *testing.T) {
	c, sim, b, ind := setup(t)
	c.SetTheme("cosmic")
	calls, last := b.calls, b.last

	if c.SetTheme("sepia") {
		t.Fatal("SetTheme(sepia) returned true")
	}
	if c.Active() != "cosmic" || sim.Theme().Key != "cosmic" {
		t.Errorf("active theme changed to %q/%q", c.Active(), sim.Theme().Key)
	}
	if b.calls != calls || b.last != last {
		t.Error("bloom sink touched by unknown theme")
	}
	if got := ind.activeKeys(); len(got) != 1 || got[0] != "cosmic" {
		t.Errorf("indicator state = %v", got)
	}
}

func TestIndicatorExclusive(t *testing.T) {
	c, _, _, ind := setup(t)
	for _, k := range []string{"dual", "emerald", "cosmic", "molten"} {
		c.SetTheme(k)
		got := ind.activeKeys()
		if len(got) != 1 || got[0] != k {
			t.Fatalf("after %s active = %v", k, got)
		}
	}
}

func TestNextThemeAndSelectIndex(t *testing.T) {
	c, _, _, _ := setup(t)
	if got := c.NextTheme(); got != "cosmic" {
		t.Errorf("NextTheme() = %q, want cosmic", got)
	}
	if !c.SelectIndex(0) || c.Active() != "dual" {
		t.Errorf("SelectIndex(0) active = %q", c.Active())
	}
	if c.SelectIndex(9) {
		t.Error("SelectIndex(9) should fail")
	}
}

func TestToggleAnimation(t *testing.T) {
	c, sim, _, ind := setup(t)
	if c.ToggleAnimation() {
		t.Error("first toggle should disable")
	}
	if sim.AnimationEnabled() || ind.animation {
		t.Error("animation still enabled")
	}
	c.SetAnimationEnabled(true)
	if !sim.AnimationEnabled() || !ind.animation {
		t.Error("animation not re-enabled")
	}
}
