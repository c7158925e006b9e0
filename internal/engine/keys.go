package engine

import "github.com/vovakirdan/acorn-drop/internal/core"

// CursorKeys is the held state of the four directional keys for one tick.
type CursorKeys struct {
	Left, Right, Up, Down bool
}

// Cursors polls the directional keys from an input frame.
func Cursors(in core.InputFrame) CursorKeys {
	return CursorKeys{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionJump),
		Down:  in.Has(core.ActionDuck),
	}
}
