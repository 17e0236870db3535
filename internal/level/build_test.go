package level

import (
	"testing"

	"GopherRunner/internal/behaviour"
	"GopherRunner/scripts"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildScene(t *testing.T) {
	lvl, err := Parse([]byte(demoLevel))
	if err != nil {
		t.Fatal(err)
	}
	cm := behaviour.NewComponentManager()

	scene, err := Build(lvl, cm, scripts.StaticAxes{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(cm.GetAllGameObjects()) != 4 {
		t.Errorf("Expected 4 objects, got %d", len(cm.GetAllGameObjects()))
	}
	if scene.PlayerObject.Tag != scripts.PlayerTag {
		t.Errorf("Player should be tagged %q", scripts.PlayerTag)
	}
	if len(cm.FindGameObjectsWithTag(GateTag)) != 2 {
		t.Error("Expected 2 gate objects")
	}
	if len(scene.Gates) != 2 || len(scene.Cars) != 1 {
		t.Fatalf("Unexpected scene contents: %d gates, %d cars", len(scene.Gates), len(scene.Cars))
	}

	first := scene.Gates[0]
	if first.Player != scene.Player {
		t.Error("Gates should affect the scene player")
	}
	if first.Label == nil {
		t.Fatal("First gate should have a label")
	}
	if first.Label.Scale != (mgl32.Vec3{0.5, 1, 1}) {
		t.Errorf("Expected label counter-scaled to (0.5,1,1), got %v", first.Label.Scale)
	}
	if scene.Gates[1].Label != nil {
		t.Error("Second gate should have no label")
	}
	if first.State() != scripts.GateOscillating {
		t.Errorf("Registered gates should start oscillating, got %v", first.State())
	}
	if scene.Gates[1].Type != scripts.GateChangeSize || scene.Gates[1].StartPosition != scripts.GateStartRight {
		t.Errorf("Second gate misconfigured: %+v", scene.Gates[1])
	}

	gateObj := cm.FindGameObject("Gate_0")
	if gateObj == nil {
		t.Fatal("Gate_0 not registered")
	}
	if gateObj.Transform.Scale != (mgl32.Vec3{2, 1, 1}) {
		t.Errorf("Expected gate scale (2,1,1), got %v", gateObj.Transform.Scale)
	}
	colliders := gateObj.GetComponents("BoxCollider")
	if len(colliders) != 1 {
		t.Fatalf("Gate should carry exactly one collider, got %d", len(colliders))
	}
	if behaviour.GetComponentCategory(colliders[0]) != behaviour.ComponentTypeCollider {
		t.Errorf("Expected collider category, got %s", behaviour.GetComponentCategory(colliders[0]))
	}
	if c := colliders[0].(*behaviour.BoxCollider); !c.IsTrigger || c.Size != gateColliderSize {
		t.Errorf("Gate collider misconfigured: trigger=%v size=%v", c.IsTrigger, c.Size)
	}
	if c := scene.PlayerObject.GetComponent("BoxCollider").(*behaviour.BoxCollider); c.IsTrigger {
		t.Error("Player collider should be solid")
	}
}

func TestBuildRejectsInvalidLevel(t *testing.T) {
	lvl := &Level{Name: "bad", Length: 10, Player: PlayerSpec{Speed: 0}}

	if _, err := Build(lvl, behaviour.NewComponentManager(), nil); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestSceneFinished(t *testing.T) {
	lvl := &Level{Name: "short", Length: 5, Player: PlayerSpec{Speed: 10}}
	cm := behaviour.NewComponentManager()
	scene, err := Build(lvl, cm, nil)
	if err != nil {
		t.Fatal(err)
	}

	if scene.Finished() {
		t.Error("Scene should not be finished before moving")
	}
	cm.UpdateAll(0.25)
	cm.UpdateAll(0.25)
	if !scene.Finished() {
		t.Errorf("Scene should be finished after 5 units, distance=%v", scene.Player.Distance())
	}
}
