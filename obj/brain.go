package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// BrainInput is the world state handed to an enemy script each tick.
type BrainInput struct {
	DX          float64 // player x minus enemy x
	Dist        float64
	FollowRange float64
	PatrolDir   int // -1 or 1, flipped by the engine at ledges
	Soggy       bool
}

// Decision is what the script hands back.
type Decision struct {
	MoveX   int // -1, 0 or 1
	Chasing bool
}

// Brain wraps a compiled behavior script. The script is compiled once and
// re-run each tick with fresh inputs; it reports its decision through the
// move_x and chasing globals.
type Brain struct {
	compiled *tengo.Compiled
}

func NewBrain(src []byte) (*Brain, error) {
	script := tengo.NewScript(src)
	_ = script.Add("dx", 0.0)
	_ = script.Add("dist", 0.0)
	_ = script.Add("follow_range", 0.0)
	_ = script.Add("patrol_dir", 0)
	_ = script.Add("soggy", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile brain script: %w", err)
	}
	return &Brain{compiled: compiled}, nil
}

func (b *Brain) Think(in BrainInput) (Decision, error) {
	if err := b.compiled.Set("dx", in.DX); err != nil {
		return Decision{}, err
	}
	if err := b.compiled.Set("dist", in.Dist); err != nil {
		return Decision{}, err
	}
	if err := b.compiled.Set("follow_range", in.FollowRange); err != nil {
		return Decision{}, err
	}
	if err := b.compiled.Set("patrol_dir", in.PatrolDir); err != nil {
		return Decision{}, err
	}
	if err := b.compiled.Set("soggy", in.Soggy); err != nil {
		return Decision{}, err
	}

	if err := b.compiled.Run(); err != nil {
		return Decision{}, err
	}

	var d Decision
	if b.compiled.IsDefined("move_x") {
		d.MoveX = b.compiled.Get("move_x").Int()
	}
	if b.compiled.IsDefined("chasing") {
		d.Chasing = b.compiled.Get("chasing").Bool()
	}
	if d.MoveX > 1 {
		d.MoveX = 1
	} else if d.MoveX < -1 {
		d.MoveX = -1
	}
	return d, nil
}
