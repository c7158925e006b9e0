package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// Texture is terminal art registered under a key. Frame sizes are world
// units; each frame is a block of rune rows where spaces are transparent.
type Texture struct {
	Key            string
	FrameW, FrameH float64
	Frames         [][]string
	Color          core.Color
	Tile           bool // Repeat the first frame across the whole display box
}

// FrameCount returns the number of frames in the texture.
func (t *Texture) FrameCount() int {
	return len(t.Frames)
}

// Atlas stores textures by key.
type Atlas struct {
	textures map[string]*Texture
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{textures: make(map[string]*Texture)}
}

// Get returns the texture with the given key.
func (a *Atlas) Get(key string) (*Texture, bool) {
	t, ok := a.textures[key]
	return t, ok
}

// Loader registers textures during a scene's Preload.
// The first error is kept and reported by Err.
type Loader struct {
	atlas *Atlas
	err   error
}

// Image registers a single-frame texture.
func (l *Loader) Image(key string, tex Texture) {
	if len(tex.Frames) > 1 {
		tex.Frames = tex.Frames[:1]
	}
	l.add(key, tex)
}

// Spritesheet registers a multi-frame texture.
func (l *Loader) Spritesheet(key string, tex Texture) {
	l.add(key, tex)
}

func (l *Loader) add(key string, tex Texture) {
	if l.err != nil {
		return
	}
	if len(tex.Frames) == 0 {
		l.err = fmt.Errorf("engine: texture %q has no frames", key)
		return
	}
	if tex.FrameW <= 0 || tex.FrameH <= 0 {
		l.err = fmt.Errorf("engine: texture %q has no size", key)
		return
	}
	tex.Key = key
	l.atlas.textures[key] = &tex
}

// Err returns the first registration error.
func (l *Loader) Err() error {
	return l.err
}

// Drawable is anything the display list can render.
type Drawable interface {
	Draw(cam Camera, dst *core.Screen)
}

// DisplayList renders objects in the order they were added.
type DisplayList struct {
	items []Drawable
}

// Add appends an object on top of the existing ones.
func (d *DisplayList) Add(obj Drawable) {
	d.items = append(d.items, obj)
}

// Len returns the number of objects.
func (d *DisplayList) Len() int {
	return len(d.items)
}

// Render draws every object onto dst.
func (d *DisplayList) Render(cam Camera, dst *core.Screen) {
	for _, obj := range d.items {
		obj.Draw(cam, dst)
	}
}

// Camera maps world units onto terminal cells.
type Camera struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// Project returns the cell containing the world point (x, y).
func (c Camera) Project(x, y float64) (int, int) {
	if c.WorldW <= 0 || c.WorldH <= 0 {
		return 0, 0
	}
	col := int(math.Floor(x / c.WorldW * float64(c.Cols)))
	row := int(math.Floor(y / c.WorldH * float64(c.Rows)))
	return col, row
}

// ProjectBox returns the cells covered by a world box.
func (c Camera) ProjectBox(b core.Box) core.Rect {
	x0, y0 := c.Project(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() / c.WorldW * float64(c.Cols)))
	y1 := int(math.Ceil(b.Bottom() / c.WorldH * float64(c.Rows)))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawTexture renders one frame of tex over the world box.
func drawTexture(cam Camera, dst *core.Screen, tex *Texture, frame int, box core.Box, color core.Color) {
	if frame < 0 || frame >= len(tex.Frames) {
		frame = 0
	}
	art := tex.Frames[frame]
	if len(art) == 0 {
		return
	}

	if tex.Tile {
		r := cam.ProjectBox(box)
		for y := r.Y; y < r.Bottom(); y++ {
			row := []rune(art[(y-r.Y)%len(art)])
			if len(row) == 0 {
				continue
			}
			for x := r.X; x < r.Right(); x++ {
				ch := row[(x-r.X)%len(row)]
				if ch != ' ' {
					dst.SetCell(x, y, ch, color)
				}
			}
		}
		return
	}

	cx, cy := cam.Project(box.X+box.W/2, box.Y+box.H/2)
	top := cy - len(art)/2
	for i, line := range art {
		row := []rune(line)
		left := cx - len(row)/2
		for j, ch := range row {
			if ch != ' ' {
				dst.SetCell(left+j, top+i, ch, color)
			}
		}
	}
}

// Image is a static picture centered at (X, Y) without a body.
type Image struct {
	X, Y    float64
	Texture *Texture
	Visible bool
}

// Draw implements Drawable.
func (img *Image) Draw(cam Camera, dst *core.Screen) {
	if !img.Visible {
		return
	}
	box := core.Box{
		X: img.X - img.Texture.FrameW/2,
		Y: img.Y - img.Texture.FrameH/2,
		W: img.Texture.FrameW,
		H: img.Texture.FrameH,
	}
	drawTexture(cam, dst, img.Texture, 0, box, img.Texture.Color)
}

// Sprite is a textured display object with a physics body.
type Sprite struct {
	*Body
	Texture *Texture
	Anims   *Animator

	ScaleX, ScaleY float64
	Visible        bool
	Active         bool

	tint   core.Color
	tinted bool
	frame  int
}

// SetScale sets a uniform display scale. Call RefreshBody to resize the
// body to match.
func (s *Sprite) SetScale(scale float64) *Sprite {
	s.ScaleX, s.ScaleY = scale, scale
	return s
}

// RefreshBody sizes the body to the sprite's scaled frame, keeping its
// center.
func (s *Sprite) RefreshBody() *Sprite {
	s.SetSize(s.Texture.FrameW*s.ScaleX, s.Texture.FrameH*s.ScaleY)
	return s
}

// DisplaySize returns the scaled frame size.
func (s *Sprite) DisplaySize() (float64, float64) {
	return s.Texture.FrameW * s.ScaleX, s.Texture.FrameH * s.ScaleY
}

// SetTint draws the sprite in c instead of its texture colour.
func (s *Sprite) SetTint(c core.Color) {
	s.tint = c
	s.tinted = true
}

// ClearTint restores the texture colour.
func (s *Sprite) ClearTint() {
	s.tinted = false
}

// Tint returns the active tint and whether one is set.
func (s *Sprite) Tint() (core.Color, bool) {
	return s.tint, s.tinted
}

// Frame returns the texture frame currently shown.
func (s *Sprite) Frame() int {
	if s.Anims != nil {
		if f := s.Anims.Frame(); f >= 0 {
			return f
		}
	}
	return s.frame
}

// SetFrame shows a fixed frame when no animation is playing.
func (s *Sprite) SetFrame(frame int) {
	s.frame = frame
}

// DisableBody removes the sprite from physics. With deactivate set it
// no longer counts as active; with hide set it is not drawn.
func (s *Sprite) DisableBody(deactivate, hide bool) {
	s.Body.Disable()
	if deactivate {
		s.Active = false
	}
	if hide {
		s.Visible = false
	}
}

// EnableBody puts the sprite back into physics centered at (x, y) with
// zero velocity. With reset unset the current position is kept.
func (s *Sprite) EnableBody(reset bool, x, y float64, activate, show bool) {
	if !reset {
		x, y = s.Center()
	}
	s.Body.Enable(x, y)
	if activate {
		s.Active = true
	}
	if show {
		s.Visible = true
	}
}

// Draw implements Drawable.
func (s *Sprite) Draw(cam Camera, dst *core.Screen) {
	if !s.Visible {
		return
	}
	color := s.Texture.Color
	if s.tinted {
		color = s.tint
	}
	w, h := s.DisplaySize()
	cx, cy := s.Center()
	box := core.Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
	drawTexture(cam, dst, s.Texture, s.Frame(), box, color)
}

// Group is an ordered set of sprites that share colliders.
type Group struct {
	sys      *Systems
	static   bool
	children []*Sprite
}

// Create adds a new sprite to the group centered at (x, y).
func (g *Group) Create(x, y float64, key string) *Sprite {
	s := g.sys.newSprite(x, y, key, g.static)
	g.children = append(g.children, s)
	return s
}

// Children returns the group's sprites in creation order.
func (g *Group) Children() []*Sprite {
	return g.children
}

// CountActive returns how many sprites are active.
func (g *Group) CountActive() int {
	n := 0
	for _, s := range g.children {
		if s.Active {
			n++
		}
	}
	return n
}

// Bodies implements Collidable.
func (g *Group) Bodies() []*Body {
	bodies := make([]*Body, len(g.children))
	for i, s := range g.children {
		bodies[i] = s.Body
	}
	return bodies
}

// TextStyle controls how text is drawn.
type TextStyle struct {
	Color    core.Color
	FontSize int // Kept for parity with configs; terminals draw one size
}

// Text is a string anchored at its top-left corner, or at its top
// center when Centered is set.
type Text struct {
	X, Y     float64
	Style    TextStyle
	Visible  bool
	Centered bool
	content  string
}

// SetText replaces the displayed string.
func (t *Text) SetText(s string) {
	t.content = s
}

// String returns the displayed string.
func (t *Text) String() string {
	return t.content
}

// Draw implements Drawable.
func (t *Text) Draw(cam Camera, dst *core.Screen) {
	if !t.Visible {
		return
	}
	x, y := cam.Project(t.X, t.Y)
	if t.Centered {
		x -= len([]rune(t.content)) / 2
	}
	dst.DrawTextColor(x, y, t.content, t.Style.Color)
}
