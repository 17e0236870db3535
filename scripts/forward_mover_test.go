package scripts

import (
	"testing"

	"GopherRunner/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestMover(speed float32, manual bool) (*ForwardMover, *behaviour.GameObject) {
	obj := behaviour.NewGameObject("Car")
	mover := &ForwardMover{Speed: speed, ManualControl: manual, AxisName: "Vertical"}
	obj.AddComponent(mover)
	return mover, obj
}

func TestForwardMoverAutoTick(t *testing.T) {
	mover, obj := newTestMover(5, false)

	mover.Tick(0.5, 0)

	expected := mgl32.Vec3{0, 0, -2.5}
	if !obj.Transform.Position.ApproxEqual(expected) {
		t.Errorf("Expected position %v, got %v", expected, obj.Transform.Position)
	}
}

func TestForwardMoverIgnoresAxisInAutoMode(t *testing.T) {
	mover, obj := newTestMover(4, false)

	mover.Tick(1, -1)

	if z := obj.Transform.Position.Z(); z != -4 {
		t.Errorf("Auto mode should ignore the manual axis, got z=%v", z)
	}
}

func TestForwardMoverLinearInSpeedAndDelta(t *testing.T) {
	base, baseObj := newTestMover(2, false)
	fast, fastObj := newTestMover(4, false)
	long, longObj := newTestMover(2, false)

	base.Tick(0.25, 0)
	fast.Tick(0.25, 0)
	long.Tick(0.5, 0)

	d := baseObj.Transform.Position.Len()
	if got := fastObj.Transform.Position.Len(); mgl32.Abs(got-2*d) > 1e-6 {
		t.Errorf("Doubling speed should double displacement: %v vs %v", got, 2*d)
	}
	if got := longObj.Transform.Position.Len(); mgl32.Abs(got-2*d) > 1e-6 {
		t.Errorf("Doubling deltaTime should double displacement: %v vs %v", got, 2*d)
	}
}

func TestForwardMoverZeroDelta(t *testing.T) {
	mover, obj := newTestMover(10, false)

	mover.Tick(0, 0)

	if obj.Transform.Position != (mgl32.Vec3{}) {
		t.Errorf("Zero deltaTime should not move, got %v", obj.Transform.Position)
	}
}

func TestForwardMoverFollowsRotation(t *testing.T) {
	mover, obj := newTestMover(1, false)
	obj.Transform.Rotate(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(90))

	mover.Tick(1, 0)

	expected := mgl32.Vec3{-1, 0, 0}
	closeEnough := func(a, b float32) bool { return mgl32.Abs(a-b) < 1e-5 }
	if !obj.Transform.Position.ApproxFuncEqual(expected, closeEnough) {
		t.Errorf("Expected position %v, got %v", expected, obj.Transform.Position)
	}
}

func TestForwardMoverManualAxis(t *testing.T) {
	mover, obj := newTestMover(2, true)
	mover.Input = StaticAxes{"Vertical": -1}

	mover.Update(1)

	if z := obj.Transform.Position.Z(); z != 2 {
		t.Errorf("Negative axis should move backwards, got z=%v", z)
	}
}

func TestForwardMoverManualWithoutInput(t *testing.T) {
	mover, obj := newTestMover(2, true)

	mover.Update(1)

	if obj.Transform.Position != (mgl32.Vec3{}) {
		t.Errorf("Manual mover without input should stay put, got %v", obj.Transform.Position)
	}
}

func TestForwardMoverAxisFunc(t *testing.T) {
	mover, obj := newTestMover(2, true)
	var asked string
	mover.Input = AxisFunc(func(name string) float32 {
		asked = name
		return 0.5
	})

	mover.Update(1)

	if asked != "Vertical" {
		t.Errorf("Expected axis 'Vertical', got '%s'", asked)
	}
	if z := obj.Transform.Position.Z(); z != -1 {
		t.Errorf("Expected z=-1, got %v", z)
	}
}

func TestForwardMoverSpawnable(t *testing.T) {
	obj := behaviour.NewGameObject("Car")
	obj.Transform.Position = mgl32.Vec3{4, 0, -20}
	mover := &ForwardMover{Speed: 3}
	obj.AddComponent(mover)

	mover.Tick(2, 0)
	mover.SetScale(mgl32.Vec3{2, 2, 2})
	mover.ResetSpawnable()

	if obj.Transform.Position != (mgl32.Vec3{4, 0, -20}) {
		t.Errorf("Expected reset to start position, got %v", obj.Transform.Position)
	}
	if obj.Transform.Scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Expected scale (2,2,2), got %v", obj.Transform.Scale)
	}

	var _ behaviour.Spawnable = mover
}
