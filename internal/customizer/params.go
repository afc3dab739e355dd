package customizer

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"

	"shape-demos/internal/config"
)

// Field names one numeric parameter.
type Field int

const (
	Width Field = iota
	Height
	Depth
	RotationSpeedX
	RotationSpeedY
	Opacity
	Metalness
	Roughness
)

// Fields lists the numeric parameters in panel order.
var Fields = []Field{Width, Height, Depth, RotationSpeedX, RotationSpeedY, Opacity, Metalness, Roughness}

var fieldNames = [...]string{"width", "height", "depth", "rotationSpeedX", "rotationSpeedY", "opacity", "metalness", "roughness"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField looks up a field by name, ignoring case.
func ParseField(s string) (Field, bool) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, s) {
			return Field(i), true
		}
	}
	return 0, false
}

// Range is the slider range for a field. A zero Step means continuous.
type Range struct {
	Min, Max, Step float32
}

var ranges = [...]Range{
	Width:          {0.1, 10, 0.1},
	Height:         {0.1, 10, 0.1},
	Depth:          {0.1, 10, 0.1},
	RotationSpeedX: {0, 0.2, 0.005},
	RotationSpeedY: {0, 0.2, 0.005},
	Opacity:        {0, 1, 0},
	Metalness:      {0, 1, 0.005},
	Roughness:      {0, 1, 0.005},
}

// Range returns the allowed range of f.
func (f Field) Range() Range {
	if f < 0 || int(f) >= len(ranges) {
		return Range{}
	}
	return ranges[f]
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Dimensional reports whether changing f needs a new box.
func (f Field) Dimensional() bool {
	return f == Width || f == Height || f == Depth
}

// Params is the customizer's parameter store. Rotation speeds are radians per tick.
type Params struct {
	Color          string
	Width          float32
	Height         float32
	Depth          float32
	RotationSpeedX float32
	RotationSpeedY float32
	Opacity        float32
	Metalness      float32
	Roughness      float32
	Wireframe      bool
}

// DefaultParams returns the startup parameters: a 1x1x1 #44aa88 cube spinning at 0.005 per tick.
func DefaultParams() Params {
	p, _ := ParamsFromConfig(config.Default("customizer").Customizer)
	return p
}

// ParamsFromConfig copies the config section into Params and clamps every field to its range.
func ParamsFromConfig(c config.Customizer) (Params, error) {
	var p Params
	if err := copier.Copy(&p, &c); err != nil {
		return Params{}, fmt.Errorf("customizer params: %w", err)
	}
	for _, f := range Fields {
		p.Set(f, p.Get(f))
	}
	return p, nil
}

// Get returns the value of f, or 0 for an unknown field.
func (p *Params) Get(f Field) float32 {
	if ptr := p.field(f); ptr != nil {
		return *ptr
	}
	return 0
}

// Set clamps v to the range of f and stores it. Unknown fields are ignored.
func (p *Params) Set(f Field, v float32) {
	if ptr := p.field(f); ptr != nil {
		*ptr = f.Range().Clamp(v)
	}
}

func (p *Params) field(f Field) *float32 {
	switch f {
	case Width:
		return &p.Width
	case Height:
		return &p.Height
	case Depth:
		return &p.Depth
	case RotationSpeedX:
		return &p.RotationSpeedX
	case RotationSpeedY:
		return &p.RotationSpeedY
	case Opacity:
		return &p.Opacity
	case Metalness:
		return &p.Metalness
	case Roughness:
		return &p.Roughness
	}
	return nil
}
