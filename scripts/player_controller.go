package scripts

import (
	"GopherRunner/internal/behaviour"
	"GopherRunner/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	minPlayerSpeed float32 = 1
	minPlayerScale float32 = 0.1
)

// PlayerController runs the player forward and receives gate effects.
// Speed and scale changes accumulate over a run and are undone by
// ResetSpawnable.
type PlayerController struct {
	behaviour.BaseComponent
	BaseSpeed float32

	speed         float32
	baseScale     mgl32.Vec3
	startPosition mgl32.Vec3
	distance      float32
	effects       int
}

func NewPlayerController(speed float32) *PlayerController {
	return &PlayerController{BaseSpeed: speed, speed: speed}
}

func init() {
	behaviour.RegisterScript("PlayerController", func(props map[string]any) behaviour.Component {
		return NewPlayerController(behaviour.PropFloat(props, "speed", 10.0))
	})
}

func (p *PlayerController) Awake() {
	p.speed = p.BaseSpeed
	if t := p.Transform(); t != nil {
		p.startPosition = t.Position
		p.baseScale = t.Scale
	}
}

func (p *PlayerController) Update(deltaTime float32) {
	t := p.Transform()
	if t == nil {
		return
	}
	step := p.speed * deltaTime
	t.Translate(t.Forward().Mul(step))
	p.distance += step
}

func (p *PlayerController) AdjustSpeed(delta float32) {
	p.speed = max(p.speed+delta, minPlayerSpeed)
	p.effects++
	logger.Log.Info("Player speed adjusted",
		zap.Float32("delta", delta),
		zap.Float32("speed", p.speed))
}

func (p *PlayerController) AdjustScale(delta float32) {
	t := p.Transform()
	if t == nil {
		return
	}
	s := t.Scale
	t.SetScale(mgl32.Vec3{
		max(s.X()+delta, minPlayerScale),
		max(s.Y()+delta, minPlayerScale),
		max(s.Z()+delta, minPlayerScale),
	})
	p.effects++
	logger.Log.Info("Player scale adjusted",
		zap.Float32("delta", delta),
		zap.Float32("scale", t.Scale.X()))
}

func (p *PlayerController) SetScale(scale mgl32.Vec3) {
	p.baseScale = scale
	if t := p.Transform(); t != nil {
		t.SetScale(scale)
	}
}

func (p *PlayerController) ResetSpawnable() {
	p.speed = p.BaseSpeed
	p.distance = 0
	p.effects = 0
	if t := p.Transform(); t != nil {
		t.SetPosition(p.startPosition)
		t.SetScale(p.baseScale)
	}
}

func (p *PlayerController) Speed() float32 {
	return p.speed
}

// Distance is how far the player has travelled in the current run
func (p *PlayerController) Distance() float32 {
	return p.distance
}

// EffectsApplied counts gate effects received in the current run
func (p *PlayerController) EffectsApplied() int {
	return p.effects
}
