package engine

import (
	"fmt"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// Scene is one screen of a game. A fresh instance is built by its
// factory every time the scene starts.
type Scene interface {
	// Key is the name the scene is started by.
	Key() string
	// Preload registers the textures the scene uses.
	Preload(l *Loader)
	// Create builds the scene. data is the payload passed to Start.
	Create(sys *Systems, data any)
	// Update runs once per tick after physics and animations advanced.
	Update(sys *Systems, in core.InputFrame)
}

// SceneFactory builds a new scene instance.
type SceneFactory func() Scene

// WorldSpec sizes the world every scene is built in.
type WorldSpec struct {
	Width, Height float64
	CellSize      int
}

// Systems is the capability set handed to a running scene instance.
// Nothing in it outlives the instance.
type Systems struct {
	World   *World
	Anims   *AnimationManager
	Display *DisplayList
	Rand    *Rand

	atlas    *Atlas
	director *Director
	sprites  []*Sprite
	ticks    int
	dt       float64
}

// DT returns the simulated duration of one tick in seconds.
func (s *Systems) DT() float64 {
	return s.dt
}

// Ticks returns how many ticks this scene instance has run.
func (s *Systems) Ticks() int {
	return s.ticks
}

// Start asks the director to replace the running scene with key once the
// current tick completes.
func (s *Systems) Start(key string, data any) {
	s.director.request(key, data)
}

// Emit reports a gameplay event to the host.
func (s *Systems) Emit(e core.Event) {
	s.director.events = append(s.director.events, e)
}

// Texture returns the texture for key, or a placeholder when the key was
// never loaded.
func (s *Systems) Texture(key string) *Texture {
	if t, ok := s.atlas.Get(key); ok {
		return t
	}
	return &missingTexture
}

var missingTexture = Texture{
	Key:    "__missing",
	FrameW: 32,
	FrameH: 32,
	Frames: [][]string{{"?"}},
	Color:  core.ColorMagenta,
}

// AddImage adds a static picture centered at (x, y).
func (s *Systems) AddImage(x, y float64, key string) *Image {
	img := &Image{X: x, Y: y, Texture: s.Texture(key), Visible: true}
	s.Display.Add(img)
	return img
}

// AddText adds a text object with its top-left corner at (x, y).
func (s *Systems) AddText(x, y float64, content string, style TextStyle) *Text {
	t := &Text{X: x, Y: y, Style: style, Visible: true}
	t.SetText(content)
	s.Display.Add(t)
	return t
}

// AddSprite adds a dynamic physics sprite centered at (x, y).
func (s *Systems) AddSprite(x, y float64, key string) *Sprite {
	return s.newSprite(x, y, key, false)
}

// AddStaticGroup adds an empty group of immovable sprites.
func (s *Systems) AddStaticGroup() *Group {
	return &Group{sys: s, static: true}
}

// AddGroup adds an empty group of dynamic sprites.
func (s *Systems) AddGroup() *Group {
	return &Group{sys: s}
}

// Collider registers a solid collision between a and b.
func (s *Systems) Collider(a, b Collidable, fn PairFunc) {
	s.World.Collide(a, b, fn)
}

// Overlap registers an overlap check between a and b.
func (s *Systems) Overlap(a, b Collidable, fn PairFunc) {
	s.World.Overlap(a, b, fn)
}

func (s *Systems) newSprite(x, y float64, key string, static bool) *Sprite {
	tex := s.Texture(key)
	var body *Body
	if static {
		body = s.World.NewStaticBody(x, y, tex.FrameW, tex.FrameH, key)
	} else {
		body = s.World.NewBody(x, y, tex.FrameW, tex.FrameH, key)
	}
	sp := &Sprite{
		Body:    body,
		Texture: tex,
		Anims:   NewAnimator(s.Anims),
		ScaleX:  1,
		ScaleY:  1,
		Visible: true,
		Active:  true,
	}
	body.owner = sp
	s.sprites = append(s.sprites, sp)
	s.Display.Add(sp)
	return sp
}

type startRequest struct {
	key  string
	data any
}

// Director owns the registered scenes and runs one of them at a time.
type Director struct {
	world     WorldSpec
	dt        float64
	rand      *Rand
	atlas     *Atlas
	factories map[string]SceneFactory

	current Scene
	sys     *Systems
	pending *startRequest
	events  []core.Event
	err     error
}

// NewDirector creates a director stepping at cfg's tick rate. All scenes
// share one random source seeded from cfg.Seed.
func NewDirector(cfg core.RuntimeConfig, world WorldSpec) *Director {
	return &Director{
		world:     world,
		dt:        cfg.TickSeconds(),
		rand:      NewRand(cfg.Seed),
		atlas:     NewAtlas(),
		factories: make(map[string]SceneFactory),
	}
}

// Add registers a scene factory under key.
func (d *Director) Add(key string, factory SceneFactory) {
	d.factories[key] = factory
}

// Start runs the scene registered under key. With no scene running it
// starts immediately; otherwise the switch happens at the end of the
// current tick.
func (d *Director) Start(key string, data any) error {
	if _, ok := d.factories[key]; !ok {
		return fmt.Errorf("engine: unknown scene %q", key)
	}
	if d.current == nil {
		return d.launch(key, data)
	}
	d.request(key, data)
	return nil
}

func (d *Director) request(key string, data any) {
	d.pending = &startRequest{key: key, data: data}
}

func (d *Director) launch(key string, data any) error {
	factory, ok := d.factories[key]
	if !ok {
		return fmt.Errorf("engine: unknown scene %q", key)
	}
	scene := factory()

	loader := &Loader{atlas: d.atlas}
	scene.Preload(loader)
	if err := loader.Err(); err != nil {
		return fmt.Errorf("engine: preload %q: %w", key, err)
	}

	sys := &Systems{
		World:    NewWorld(d.world.Width, d.world.Height, d.world.CellSize),
		Anims:    NewAnimationManager(),
		Display:  &DisplayList{},
		Rand:     d.rand,
		atlas:    d.atlas,
		director: d,
		dt:       d.dt,
	}
	d.current, d.sys = scene, sys
	scene.Create(sys, data)
	d.events = append(d.events, core.Event{Kind: core.EventScene, Detail: key})
	return nil
}

// Step runs one tick: physics, animations, then the scene's Update.
// A pending scene start is applied afterwards.
func (d *Director) Step(in core.InputFrame) {
	if d.current == nil {
		return
	}
	sys := d.sys
	sys.ticks++
	sys.World.Step(d.dt)
	for _, sp := range sys.sprites {
		if sp.Active {
			sp.Anims.Update(d.dt)
		}
	}
	d.current.Update(sys, in)

	if req := d.pending; req != nil {
		d.pending = nil
		if err := d.launch(req.key, req.data); err != nil {
			d.err = err
		}
	}
}

// Render draws the running scene onto dst.
func (d *Director) Render(dst *core.Screen) {
	if d.sys == nil {
		return
	}
	cam := Camera{
		WorldW: d.world.Width,
		WorldH: d.world.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}
	d.sys.Display.Render(cam, dst)
}

// Current returns the running scene, or nil before the first Start.
func (d *Director) Current() Scene {
	return d.current
}

// Systems returns the running scene's capability set.
func (d *Director) Systems() *Systems {
	return d.sys
}

// DrainEvents returns the events emitted since the last call.
func (d *Director) DrainEvents() []core.Event {
	events := d.events
	d.events = nil
	return events
}

// Err returns the last error raised while switching scenes.
func (d *Director) Err() error {
	return d.err
}
