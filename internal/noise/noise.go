// Package noise provides the coherent noise fields the world generator samples.
// Sources are deterministic: the same parameters and coordinates always
// produce the same value, so a seed fully describes a world.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Source is a continuous pseudo-random field over 3D coordinates.
// Sample returns values in [-1, 1].
type Source interface {
	Sample(x, y, z float64) float64
}

// Params configures a fractal noise source.
type Params struct {
	Seed      int64
	Octaves   int     // Number of summed octaves
	Alpha     float64 // Weight falloff between octaves
	Beta      float64 // Frequency growth between octaves
	Frequency float64 // Base frequency applied to every coordinate
	Amplitude float64 // Output gain applied before clamping
}

// DefaultParams returns the parameters used when none are configured.
func DefaultParams() Params {
	return Params{
		Octaves:   3,
		Alpha:     2,
		Beta:      2,
		Frequency: 0.1,
		Amplitude: 2.5,
	}
}

// normalized fills zero fields with defaults.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.Octaves <= 0 {
		p.Octaves = d.Octaves
	}
	if p.Alpha <= 0 {
		p.Alpha = d.Alpha
	}
	if p.Beta <= 0 {
		p.Beta = d.Beta
	}
	if p.Frequency <= 0 {
		p.Frequency = d.Frequency
	}
	if p.Amplitude <= 0 {
		p.Amplitude = d.Amplitude
	}
	return p
}

// Fractal is multi-octave Perlin noise. Raw Perlin output rarely leaves
// [-0.7, 0.7], so the amplitude gain stretches it before clamping.
type Fractal struct {
	gen       *perlin.Perlin
	frequency float64
	amplitude float64
}

// NewFractal creates a fractal Perlin source.
func NewFractal(p Params) *Fractal {
	p = p.normalized()
	return &Fractal{
		gen:       perlin.NewPerlin(p.Alpha, p.Beta, int32(p.Octaves), p.Seed),
		frequency: p.Frequency,
		amplitude: p.Amplitude,
	}
}

// Sample implements Source.
func (f *Fractal) Sample(x, y, z float64) float64 {
	v := f.gen.Noise3D(x*f.frequency, y*f.frequency, z*f.frequency) * f.amplitude
	if math.IsNaN(v) {
		return 0
	}
	return core.ClampF(v, -1, 1)
}

// Billow folds a fractal field around zero, producing rounded blobs with
// sharp creases between them.
type Billow struct {
	base *Fractal
}

// NewBillow creates a billow source over the same field NewFractal would build.
func NewBillow(p Params) *Billow {
	return &Billow{base: NewFractal(p)}
}

// Sample implements Source.
func (b *Billow) Sample(x, y, z float64) float64 {
	return 2*math.Abs(b.base.Sample(x, y, z)) - 1
}

func init() {
	Register("perlin", "Fractal Perlin noise (default)", func(p Params) Source {
		return NewFractal(p)
	})
	Register("billow", "Absolute-value folded Perlin, more water", func(p Params) Source {
		return NewBillow(p)
	})
}
