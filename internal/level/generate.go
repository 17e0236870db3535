package level

import (
	"fmt"
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// GenerateOptions controls procedural level layout
type GenerateOptions struct {
	Seed        int64
	Gates       int
	Spacing     float32
	PlayerSpeed float32
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Seed:        1,
		Gates:       8,
		Spacing:     25,
		PlayerSpeed: 10,
	}
}

// Generate lays out gates along the track from a noise field, so the same
// seed always yields the same level.
func Generate(opts GenerateOptions) *Level {
	if opts.Spacing <= 0 {
		opts.Spacing = DefaultGenerateOptions().Spacing
	}
	if opts.PlayerSpeed <= 0 {
		opts.PlayerSpeed = DefaultGenerateOptions().PlayerSpeed
	}

	p := perlin.NewPerlin(2, 2, 3, opts.Seed)

	lvl := &Level{
		Name:   fmt.Sprintf("generated-%d", opts.Seed),
		Length: float32(opts.Gates+1) * opts.Spacing,
		Player: PlayerSpec{
			Speed: opts.PlayerSpeed,
			Scale: [3]float32{1, 1, 1},
		},
	}

	for i := 0; i < opts.Gates; i++ {
		// Offset keeps samples off the lattice, where noise is always zero.
		x := float64(i)*0.61 + 0.5
		kind := p.Noise1D(x)
		side := p.Noise1D(x + 37.3)
		amount := p.Noise1D(x + 91.7)

		g := GateSpec{
			Start:    "left",
			Position: [3]float32{0, 0, -float32(i+1) * opts.Spacing},
			Label:    true,
		}
		if side > 0 {
			g.Start = "right"
		}
		if kind >= 0 {
			g.Type = "speed"
			g.Value = quantize(amount*8, 0.5, 1)
		} else {
			g.Type = "size"
			g.Value = quantize(amount*2, 0.25, 0.25)
		}
		width := 2 + float32(math.Abs(amount))*2
		g.Scale = [3]float32{quantize(float64(width), 0.5, 2), 1.5, 1}

		lvl.Gates = append(lvl.Gates, g)
	}
	return lvl
}

// quantize rounds v to a multiple of step, substituting fallback for zero
func quantize(v, step float64, fallback float32) float32 {
	q := float32(math.Round(v/step) * step)
	if q == 0 {
		return fallback
	}
	return q
}
