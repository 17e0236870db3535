package behaviour

import (
	"testing"
)

func TestRegisterScript(t *testing.T) {
	scriptRegistry = make(map[string]ScriptConstructor)

	RegisterScript("TestScript", func(map[string]any) Component {
		return &MockComponent{}
	})

	scripts := GetAvailableScripts()

	if len(scripts) != 1 {
		t.Errorf("Expected 1 script, got %d", len(scripts))
	}

	if scripts[0] != "TestScript" {
		t.Errorf("Expected 'TestScript', got '%s'", scripts[0])
	}
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = make(map[string]ScriptConstructor)

	RegisterScript("TestScript", func(map[string]any) Component {
		return &MockComponent{}
	})

	comp := CreateScript("TestScript", nil)

	if comp == nil {
		t.Error("CreateScript returned nil")
	}
}

func TestCreateScriptNotFound(t *testing.T) {
	scriptRegistry = make(map[string]ScriptConstructor)

	comp := CreateScript("NonExistent", nil)

	if comp != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestGetAvailableScriptsSorted(t *testing.T) {
	scriptRegistry = make(map[string]ScriptConstructor)

	RegisterScript("Zebra", func(map[string]any) Component { return &MockComponent{} })
	RegisterScript("Alpha", func(map[string]any) Component { return &MockComponent{} })
	RegisterScript("Middle", func(map[string]any) Component { return &MockComponent{} })

	scripts := GetAvailableScripts()

	if len(scripts) != 3 {
		t.Fatalf("Expected 3 scripts, got %d", len(scripts))
	}

	if scripts[0] != "Alpha" {
		t.Errorf("Expected first script 'Alpha', got '%s'", scripts[0])
	}
	if scripts[1] != "Middle" {
		t.Errorf("Expected second script 'Middle', got '%s'", scripts[1])
	}
	if scripts[2] != "Zebra" {
		t.Errorf("Expected third script 'Zebra', got '%s'", scripts[2])
	}
}

func TestPropHelpers(t *testing.T) {
	props := map[string]any{
		"speed":  float64(7.5),
		"count":  3,
		"manual": true,
		"start":  "right",
	}

	if v := PropFloat(props, "speed", 1); v != 7.5 {
		t.Errorf("Expected speed 7.5, got %v", v)
	}
	if v := PropFloat(props, "count", 1); v != 3 {
		t.Errorf("Expected count 3, got %v", v)
	}
	if v := PropFloat(props, "missing", 2); v != 2 {
		t.Errorf("Expected fallback 2, got %v", v)
	}
	if !PropBool(props, "manual", false) {
		t.Error("Expected manual true")
	}
	if v := PropString(props, "start", "left"); v != "right" {
		t.Errorf("Expected 'right', got '%s'", v)
	}
	if v := PropString(nil, "start", "left"); v != "left" {
		t.Errorf("Expected fallback 'left', got '%s'", v)
	}
}
