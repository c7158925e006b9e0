package engine

import (
	"testing"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

func newTestSystems(t *testing.T, textures map[string]Texture) *Systems {
	t.Helper()
	scene := &stubScene{key: "s", textures: textures}
	d := NewDirector(core.DefaultConfig(), WorldSpec{Width: 800, Height: 600, CellSize: 32})
	d.Add("s", func() Scene { return scene })
	if err := d.Start("s", nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return d.Systems()
}

func testCamera() Camera {
	return Camera{WorldW: 800, WorldH: 600, Cols: 80, Rows: 24}
}

func TestCameraProject(t *testing.T) {
	cam := testCamera()
	if x, y := cam.Project(400, 300); x != 40 || y != 12 {
		t.Errorf("Project(400, 300) = (%d, %d)", x, y)
	}
	r := cam.ProjectBox(core.Box{X: 0, Y: 536, W: 800, H: 64})
	if r.X != 0 || r.W != 80 || r.Y != 21 || r.Bottom() != 24 {
		t.Errorf("unexpected projected box %+v", r)
	}
}

func TestSpriteDrawAndTint(t *testing.T) {
	sys := newTestSystems(t, map[string]Texture{
		"dot": {FrameW: 10, FrameH: 10, Frames: [][]string{{"o"}}, Color: core.ColorYellow},
	})
	sp := sys.AddSprite(400, 300, "dot")
	sp.AllowGravity = false

	screen := core.NewScreen(80, 24)
	sys.Display.Render(testCamera(), screen)
	if c := screen.GetCell(40, 12); c.Rune != 'o' || c.Color != core.ColorYellow {
		t.Errorf("expected yellow o at (40,12), got %q %v", c.Rune, c.Color)
	}

	sp.SetTint(core.ColorRed)
	screen.Clear()
	sys.Display.Render(testCamera(), screen)
	if c := screen.GetCell(40, 12); c.Color != core.ColorRed {
		t.Errorf("tinted sprite should draw red, got %v", c.Color)
	}

	sp.DisableBody(true, true)
	screen.Clear()
	sys.Display.Render(testCamera(), screen)
	if screen.Get(40, 12) == 'o' {
		t.Error("hidden sprite should not be drawn")
	}
}

func TestTiledImageFillsBox(t *testing.T) {
	sys := newTestSystems(t, map[string]Texture{
		"ground": {FrameW: 400, FrameH: 32, Frames: [][]string{{"#"}}, Tile: true},
	})
	platforms := sys.AddStaticGroup()
	platforms.Create(400, 568, "ground").SetScale(2).RefreshBody()

	box := platforms.Children()[0].Box()
	if box.X != 0 || box.W != 800 || box.Y != 536 || box.H != 64 {
		t.Errorf("refreshed body should be 800x64 at (0,536), got %+v", box)
	}

	screen := core.NewScreen(80, 24)
	sys.Display.Render(testCamera(), screen)
	for x := range 80 {
		if screen.Get(x, 23) != '#' {
			t.Fatalf("ground row should be filled, missing at x=%d", x)
		}
	}
}

func TestGroupCountActive(t *testing.T) {
	sys := newTestSystems(t, nil)
	g := sys.AddGroup()
	a := g.Create(100, 0, "acorn")
	g.Create(200, 0, "acorn")

	if g.CountActive() != 2 {
		t.Fatalf("expected 2 active, got %d", g.CountActive())
	}
	a.DisableBody(true, true)
	if g.CountActive() != 1 {
		t.Errorf("expected 1 active, got %d", g.CountActive())
	}
	a.EnableBody(true, 50, 0, true, true)
	if g.CountActive() != 2 || !a.Enabled() || !a.Visible {
		t.Error("re-enabled sprite should be active, enabled and visible")
	}
	if x, _ := a.Center(); x != 50 {
		t.Errorf("expected x=50, got %f", x)
	}
	if len(g.Bodies()) != 2 {
		t.Errorf("expected 2 bodies, got %d", len(g.Bodies()))
	}
}

func TestTextDraw(t *testing.T) {
	sys := newTestSystems(t, nil)
	txt := sys.AddText(16, 500, "Score: 0", TextStyle{Color: core.ColorWhite})
	txt.SetText("Score: 3")

	screen := core.NewScreen(80, 24)
	sys.Display.Render(testCamera(), screen)
	if got := screen.Row(20)[1:9]; got != "Score: 3" {
		t.Errorf("expected score text on row 20, got %q", got)
	}
}
