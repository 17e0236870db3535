package scripts

import (
	"fmt"
	"strings"

	"GopherRunner/internal/behaviour"
	"GopherRunner/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const PlayerTag = "Player"

const (
	GateMoveDistance float32 = 6 // lateral travel per half cycle
	GateMoveDuration float32 = 2 // seconds per half cycle
	gateResetOffset  float32 = 3
)

// GateType selects the effect a gate applies to the player
type GateType int

const (
	GateChangeSpeed GateType = iota
	GateChangeSize
)

func (t GateType) String() string {
	switch t {
	case GateChangeSpeed:
		return "speed"
	case GateChangeSize:
		return "size"
	default:
		return fmt.Sprintf("GateType(%d)", int(t))
	}
}

func ParseGateType(s string) (GateType, error) {
	switch strings.ToLower(s) {
	case "speed", "change_speed":
		return GateChangeSpeed, nil
	case "size", "change_size", "scale":
		return GateChangeSize, nil
	}
	return 0, fmt.Errorf("unknown gate type %q", s)
}

// GateStartPosition is the side a gate is placed on when a run starts
type GateStartPosition int

const (
	GateStartLeft GateStartPosition = iota
	GateStartRight
)

func (p GateStartPosition) String() string {
	if p == GateStartRight {
		return "right"
	}
	return "left"
}

func ParseGateStartPosition(s string) (GateStartPosition, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return GateStartLeft, nil
	case "right":
		return GateStartRight, nil
	}
	return 0, fmt.Errorf("unknown gate start position %q", s)
}

// GateState is the oscillation state of a gate
type GateState int

const (
	GateIdle GateState = iota
	GateOscillating
	GateStopped
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GateOscillating:
		return "oscillating"
	case GateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("GateState(%d)", int(s))
	}
}

// PlayerEffects is the part of the player a gate can modify
type PlayerEffects interface {
	AdjustSpeed(delta float32)
	AdjustScale(delta float32)
}

// Gate slides left and right and applies its effect to the player the
// first time the player passes through it. ResetSpawnable re-arms it.
type Gate struct {
	behaviour.BaseComponent
	Type          GateType
	Value         float32
	StartPosition GateStartPosition
	Label         *behaviour.Transform // optional, kept at constant visual size
	Player        PlayerEffects

	applied           bool
	labelInitialScale mgl32.Vec3
	defaultPosition   mgl32.Vec3
	motion            gateMotion
}

// gateMotion replaces a looping coroutine: it is advanced once per frame
// and stops as soon as state leaves GateOscillating.
type gateMotion struct {
	state      GateState
	movingLeft bool
	elapsed    float32
	from       mgl32.Vec3
	target     mgl32.Vec3
}

func init() {
	behaviour.RegisterScript("Gate", func(props map[string]any) behaviour.Component {
		g := &Gate{Value: behaviour.PropFloat(props, "value", 1.0)}
		if t, err := ParseGateType(behaviour.PropString(props, "type", "speed")); err == nil {
			g.Type = t
		}
		if p, err := ParseGateStartPosition(behaviour.PropString(props, "start", "left")); err == nil {
			g.StartPosition = p
		}
		return g
	})
}

func (g *Gate) Awake() {
	if g.Label != nil {
		g.labelInitialScale = g.Label.Scale
	}
	if t := g.Transform(); t != nil {
		g.defaultPosition = t.Position
	}
}

func (g *Gate) Start() {
	g.Initialize()
}

// Initialize sets the first direction from the start side and begins moving.
// A gate starting on the left moves right first.
func (g *Gate) Initialize() {
	g.motion.movingLeft = g.initialMovingLeft()
	g.StartMoving()
}

func (g *Gate) initialMovingLeft() bool {
	return g.StartPosition != GateStartLeft
}

func (g *Gate) Update(deltaTime float32) {
	if g.motion.state != GateOscillating {
		return
	}
	t := g.Transform()
	if t == nil {
		return
	}

	m := &g.motion
	m.elapsed += deltaTime
	frac := m.elapsed / GateMoveDuration
	if frac > 1 {
		frac = 1
	}
	pos := m.from.Add(m.target.Sub(m.from).Mul(frac))
	t.SetPosition(pos)

	if m.elapsed >= GateMoveDuration {
		m.movingLeft = !m.movingLeft
		m.elapsed = 0
		m.beginSegment(pos)
	}
}

func (m *gateMotion) beginSegment(from mgl32.Vec3) {
	offset := GateMoveDistance
	if m.movingLeft {
		offset = -offset
	}
	m.from = from
	m.target = from.Add(mgl32.Vec3{offset, 0, 0})
}

// StartMoving starts oscillating from the current position.
// It does nothing when the gate is already oscillating.
func (g *Gate) StartMoving() {
	if g.motion.state == GateOscillating {
		return
	}
	t := g.Transform()
	if t == nil {
		return
	}
	g.motion.state = GateOscillating
	g.motion.elapsed = 0
	g.motion.beginSegment(t.Position)
}

// StopMoving halts the oscillation where it is
func (g *Gate) StopMoving() {
	if g.motion.state == GateOscillating {
		g.motion.state = GateStopped
	}
}

func (g *Gate) OnTriggerEnter(other *behaviour.GameObject) {
	if other != nil && other.HasTag(PlayerTag) {
		g.OnPlayerContact()
	}
}

func (g *Gate) OnTriggerExit(other *behaviour.GameObject) {}

// OnPlayerContact applies the effect once and makes sure the gate moves.
// Later contacts are ignored until the gate is reset.
func (g *Gate) OnPlayerContact() {
	if g.applied {
		return
	}
	g.activate()
	g.StartMoving()
}

func (g *Gate) activate() {
	if g.Player == nil {
		logger.Log.Warn("Gate has no player to affect", zap.String("gate", g.name()))
	} else {
		switch g.Type {
		case GateChangeSpeed:
			g.Player.AdjustSpeed(g.Value)
		case GateChangeSize:
			g.Player.AdjustScale(g.Value)
		}
	}
	g.applied = true

	logger.Log.Debug("Gate applied",
		zap.String("gate", g.name()),
		zap.Stringer("type", g.Type),
		zap.Float32("value", g.Value))
}

// SetScale scales the gate while keeping the label's visual size constant.
func (g *Gate) SetScale(scale mgl32.Vec3) {
	if g.Label != nil {
		xFactor := min(scale.Y()/scale.X(), 1)
		yFactor := min(scale.X()/scale.Y(), 1)
		g.Label.SetScale(mgl32.Vec3{
			g.labelInitialScale.X() * xFactor,
			g.labelInitialScale.Y() * yFactor,
			g.labelInitialScale.Z(),
		})
	}
	if t := g.Transform(); t != nil {
		t.SetScale(scale)
	}
}

// ResetSpawnable re-arms the gate for a new run and parks it on its start side.
func (g *Gate) ResetSpawnable() {
	g.applied = false
	g.StopMoving()
	g.motion.state = GateStopped
	g.motion.elapsed = 0
	g.motion.movingLeft = g.initialMovingLeft()
	g.resetPosition()
}

func (g *Gate) resetPosition() {
	t := g.Transform()
	if t == nil {
		return
	}
	x := -gateResetOffset
	if g.StartPosition == GateStartRight {
		x = gateResetOffset
	}
	t.SetPosition(mgl32.Vec3{x, g.defaultPosition.Y(), g.defaultPosition.Z()})
}

func (g *Gate) Applied() bool {
	return g.applied
}

func (g *Gate) State() GateState {
	return g.motion.state
}

func (g *Gate) MovingLeft() bool {
	return g.motion.movingLeft
}

func (g *Gate) name() string {
	if obj := g.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
