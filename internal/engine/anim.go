package engine

import "fmt"

// Animation is a named frame sequence of a spritesheet.
type Animation struct {
	Key       string
	Frames    []int
	FrameRate int // Frames per second
	Repeat    int // Extra plays after the first; -1 loops forever
}

// GenerateFrameNumbers returns the inclusive frame range [start, end].
func GenerateFrameNumbers(start, end int) []int {
	if end < start {
		return nil
	}
	frames := make([]int, 0, end-start+1)
	for f := start; f <= end; f++ {
		frames = append(frames, f)
	}
	return frames
}

// AnimationManager holds the animations declared by a scene.
type AnimationManager struct {
	anims map[string]*Animation
}

// NewAnimationManager creates an empty manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{anims: make(map[string]*Animation)}
}

// Create registers an animation. Keys must be unique.
func (m *AnimationManager) Create(a Animation) error {
	if a.Key == "" {
		return fmt.Errorf("engine: animation key is empty")
	}
	if len(a.Frames) == 0 {
		return fmt.Errorf("engine: animation %q has no frames", a.Key)
	}
	if a.FrameRate <= 0 {
		return fmt.Errorf("engine: animation %q frame rate must be positive", a.Key)
	}
	if _, exists := m.anims[a.Key]; exists {
		return fmt.Errorf("engine: animation %q already exists", a.Key)
	}
	m.anims[a.Key] = &a
	return nil
}

// Get returns the animation registered under key.
func (m *AnimationManager) Get(key string) (*Animation, bool) {
	a, ok := m.anims[key]
	return a, ok
}

// Animator plays animations on a single sprite.
type Animator struct {
	mgr      *AnimationManager
	current  *Animation
	index    int
	elapsed  float64
	repeated int
	playing  bool
}

// NewAnimator creates an animator bound to the scene's animations.
func NewAnimator(mgr *AnimationManager) *Animator {
	return &Animator{mgr: mgr}
}

// Play starts the animation with the given key from its first frame.
// With ignoreIfPlaying set, a request for the animation already running
// is a no-op. Returns false for an unknown key.
func (a *Animator) Play(key string, ignoreIfPlaying bool) bool {
	anim, ok := a.mgr.Get(key)
	if !ok {
		return false
	}
	if ignoreIfPlaying && a.playing && a.current == anim {
		return true
	}
	a.current = anim
	a.index = 0
	a.elapsed = 0
	a.repeated = 0
	a.playing = true
	return true
}

// Update advances the current animation by dt seconds.
func (a *Animator) Update(dt float64) {
	if !a.playing || a.current == nil {
		return
	}
	frameDur := 1.0 / float64(a.current.FrameRate)
	a.elapsed += dt
	for a.elapsed >= frameDur {
		a.elapsed -= frameDur
		a.index++
		if a.index < len(a.current.Frames) {
			continue
		}
		if a.current.Repeat < 0 || a.repeated < a.current.Repeat {
			a.repeated++
			a.index = 0
			continue
		}
		a.index = len(a.current.Frames) - 1
		a.playing = false
		return
	}
}

// CurrentKey returns the key of the last played animation, or "".
func (a *Animator) CurrentKey() string {
	if a.current == nil {
		return ""
	}
	return a.current.Key
}

// IsPlaying reports whether an animation is still advancing.
func (a *Animator) IsPlaying() bool {
	return a.playing
}

// Frame returns the spritesheet frame to display, or -1 before any Play.
func (a *Animator) Frame() int {
	if a.current == nil {
		return -1
	}
	return a.current.Frames[a.index]
}
