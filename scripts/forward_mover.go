package scripts

import (
	"GopherRunner/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// ForwardMover drives an object along its local forward axis.
// With ManualControl set, the Input axis scales the movement (backwards
// for negative values); otherwise it always moves forward at Speed.
type ForwardMover struct {
	behaviour.BaseComponent
	Speed         float32
	ManualControl bool
	AxisName      string
	Input         AxisReader

	startPosition mgl32.Vec3
}

func init() {
	behaviour.RegisterScript("ForwardMover", func(props map[string]any) behaviour.Component {
		return &ForwardMover{
			Speed:         behaviour.PropFloat(props, "speed", 5.0),
			ManualControl: behaviour.PropBool(props, "manual", false),
			AxisName:      behaviour.PropString(props, "axis", "Vertical"),
		}
	})
}

func (m *ForwardMover) Awake() {
	if t := m.Transform(); t != nil {
		m.startPosition = t.Position
	}
}

func (m *ForwardMover) Update(deltaTime float32) {
	var axis float32
	if m.Input != nil {
		axis = m.Input.Axis(m.AxisName)
	}
	m.Tick(deltaTime, axis)
}

// Tick advances the object by forward * movement * Speed * deltaTime.
// manualAxis is ignored unless ManualControl is set.
func (m *ForwardMover) Tick(deltaTime, manualAxis float32) {
	t := m.Transform()
	if t == nil {
		return
	}
	movement := float32(1)
	if m.ManualControl {
		movement = manualAxis
	}
	t.Translate(t.Forward().Mul(movement * m.Speed * deltaTime))
}

func (m *ForwardMover) SetScale(scale mgl32.Vec3) {
	if t := m.Transform(); t != nil {
		t.SetScale(scale)
	}
}

func (m *ForwardMover) ResetSpawnable() {
	if t := m.Transform(); t != nil {
		t.SetPosition(m.startPosition)
	}
}
