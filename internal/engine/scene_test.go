package engine

import (
	"testing"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

type stubScene struct {
	key      string
	data     any
	updates  int
	next     string
	textures map[string]Texture
}

func (s *stubScene) Key() string { return s.key }

func (s *stubScene) Preload(l *Loader) {
	for k, tex := range s.textures {
		l.Image(k, tex)
	}
}

func (s *stubScene) Create(sys *Systems, data any) {
	s.data = data
}

func (s *stubScene) Update(sys *Systems, in core.InputFrame) {
	s.updates++
	if s.next != "" && in.Has(core.ActionConfirm) {
		sys.Start(s.next, s.updates)
	}
}

func newTestDirector() (*Director, *stubScene, *stubScene) {
	d := NewDirector(core.DefaultConfig(), WorldSpec{Width: 800, Height: 600, CellSize: 32})
	a := &stubScene{key: "a", next: "b"}
	b := &stubScene{key: "b"}
	d.Add("a", func() Scene { return a })
	d.Add("b", func() Scene { return b })
	return d, a, b
}

func TestDirectorStartsImmediately(t *testing.T) {
	d, a, _ := newTestDirector()
	if d.Current() != nil {
		t.Fatal("no scene should run before Start")
	}
	if err := d.Start("a", "hello"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if d.Current() != Scene(a) {
		t.Fatal("scene a should be running")
	}
	if a.data != "hello" {
		t.Errorf("expected payload hello, got %v", a.data)
	}

	events := d.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventScene || events[0].Detail != "a" {
		t.Errorf("expected one scene event for a, got %+v", events)
	}
	if len(d.DrainEvents()) != 0 {
		t.Error("events should be drained")
	}
}

func TestDirectorSwitchesAtEndOfTick(t *testing.T) {
	d, a, b := newTestDirector()
	_ = d.Start("a", nil)

	d.Step(core.NewInputFrame())
	d.Step(core.InputOf(core.ActionConfirm))

	if d.Current() != Scene(b) {
		t.Fatal("scene b should be running after the switch")
	}
	if a.updates != 2 {
		t.Errorf("a should have updated twice, got %d", a.updates)
	}
	if b.updates != 0 {
		t.Errorf("b should not update in the tick it was started, got %d", b.updates)
	}
	if b.data != 2 {
		t.Errorf("expected payload 2, got %v", b.data)
	}

	d.Step(core.NewInputFrame())
	if b.updates != 1 || a.updates != 2 {
		t.Errorf("only b should update after the switch (a=%d b=%d)", a.updates, b.updates)
	}
	if d.Systems().Ticks() != 1 {
		t.Errorf("new scene should start its own tick count, got %d", d.Systems().Ticks())
	}
}

func TestDirectorUnknownScene(t *testing.T) {
	d, _, _ := newTestDirector()
	if err := d.Start("nope", nil); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestDirectorPreloadError(t *testing.T) {
	d := NewDirector(core.DefaultConfig(), WorldSpec{Width: 800, Height: 600, CellSize: 32})
	bad := &stubScene{key: "bad", textures: map[string]Texture{"x": {FrameW: 1, FrameH: 1}}}
	d.Add("bad", func() Scene { return bad })

	if err := d.Start("bad", nil); err == nil {
		t.Error("expected preload error for a texture without frames")
	}
	if d.Current() != nil {
		t.Error("scene should not start when preload fails")
	}
}

func TestDirectorFreshSystemsPerStart(t *testing.T) {
	d, _, _ := newTestDirector()
	d.Add("a", func() Scene { return &stubScene{key: "a", next: "a"} })
	_ = d.Start("a", nil)
	first := d.Systems()
	first.World.Pause()

	d.Step(core.InputOf(core.ActionConfirm))
	if d.Systems() == first {
		t.Fatal("restart should build a new capability set")
	}
	if d.Systems().World.Paused() {
		t.Error("new world should not inherit the pause")
	}
}
