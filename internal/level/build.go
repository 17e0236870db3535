package level

import (
	"fmt"

	"GopherRunner/internal/behaviour"
	"GopherRunner/internal/logger"
	"GopherRunner/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	GateTag = "Gate"
	CarTag  = "Car"
)

var (
	playerColliderSize = mgl32.Vec3{1, 2, 1}
	gateColliderSize   = mgl32.Vec3{2, 2, 0.5}
	carColliderSize    = mgl32.Vec3{2, 1.5, 4}
)

// Scene is a level instantiated into a component manager
type Scene struct {
	Level        *Level
	Player       *scripts.PlayerController
	PlayerObject *behaviour.GameObject
	Gates        []*scripts.Gate
	Cars         []*scripts.ForwardMover
}

// Build creates the level's objects and registers them with cm.
// input feeds manually controlled cars and may be nil.
func Build(lvl *Level, cm *behaviour.ComponentManager, input scripts.AxisReader) (*Scene, error) {
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level: build %s: %w", lvl.Name, err)
	}

	scene := &Scene{Level: lvl}

	playerObj := behaviour.NewGameObject("Player")
	playerObj.Tag = scripts.PlayerTag
	playerObj.Transform.Position = vec(lvl.Player.Position)
	if hasScale(lvl.Player.Scale) {
		playerObj.Transform.Scale = vec(lvl.Player.Scale)
	}
	player, err := createScript[*scripts.PlayerController]("PlayerController", map[string]any{
		"speed": lvl.Player.Speed,
	})
	if err != nil {
		return nil, err
	}
	addCollider(playerObj, playerColliderSize, false)
	playerObj.AddComponent(behaviour.NewScriptComponent("PlayerController", player))
	scene.Player = player
	scene.PlayerObject = playerObj
	cm.RegisterGameObject(playerObj)

	for i, spec := range lvl.Gates {
		obj := behaviour.NewGameObject(fmt.Sprintf("Gate_%d", i))
		obj.Tag = GateTag
		obj.Transform.Position = vec(spec.Position)

		gate, err := createScript[*scripts.Gate]("Gate", map[string]any{
			"type":  spec.Type,
			"value": spec.Value,
			"start": spec.Start,
		})
		if err != nil {
			return nil, err
		}
		gate.Player = player
		if spec.Label {
			label := behaviour.NewGameObject("Label")
			label.Transform.Position = mgl32.Vec3{0, 1.5, 0}
			obj.AddChild(label)
			gate.Label = label.Transform
		}

		addCollider(obj, gateColliderSize, true)
		obj.AddComponent(behaviour.NewScriptComponent("Gate", gate))
		if hasScale(spec.Scale) {
			gate.SetScale(vec(spec.Scale))
		}
		cm.RegisterGameObject(obj)
		scene.Gates = append(scene.Gates, gate)
	}

	for i, spec := range lvl.Cars {
		obj := behaviour.NewGameObject(fmt.Sprintf("Car_%d", i))
		obj.Tag = CarTag
		obj.Transform.Position = vec(spec.Position)

		car, err := createScript[*scripts.ForwardMover]("ForwardMover", map[string]any{
			"speed":  spec.Speed,
			"manual": spec.Manual,
		})
		if err != nil {
			return nil, err
		}
		car.Input = input

		addCollider(obj, carColliderSize, false)
		obj.AddComponent(behaviour.NewScriptComponent("ForwardMover", car))
		if hasScale(spec.Scale) {
			car.SetScale(vec(spec.Scale))
		}
		cm.RegisterGameObject(obj)
		scene.Cars = append(scene.Cars, car)
	}

	logger.Log.Info("Level built",
		zap.String("level", lvl.Name),
		zap.Int("gates", len(scene.Gates)),
		zap.Int("cars", len(scene.Cars)),
		zap.Float32("length", lvl.Length))

	return scene, nil
}

// Finished reports whether the player has reached the end of the track
func (s *Scene) Finished() bool {
	return s.Player.Distance() >= s.Level.Length
}

// GatesApplied counts gates the player has passed through this run
func (s *Scene) GatesApplied() int {
	n := 0
	for _, g := range s.Gates {
		if g.Applied() {
			n++
		}
	}
	return n
}

func addCollider(obj *behaviour.GameObject, size mgl32.Vec3, trigger bool) {
	c := behaviour.CreateBuiltInComponent("BoxCollider").(*behaviour.BoxCollider)
	c.Size = size
	c.IsTrigger = trigger
	obj.AddComponent(c)
}

func createScript[T behaviour.Component](name string, props map[string]any) (T, error) {
	var zero T
	comp := behaviour.CreateScript(name, props)
	script, ok := comp.(T)
	if !ok {
		return zero, fmt.Errorf("level: script %q not registered or has type %T", name, comp)
	}
	return script, nil
}
