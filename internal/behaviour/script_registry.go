package behaviour

import (
	"sort"
)

// ScriptConstructor builds a script from scene or level properties.
// props may be nil; constructors fall back to their defaults.
type ScriptConstructor func(props map[string]any) Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateScript(name string, props map[string]any) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(props)
	}
	return nil
}

// PropFloat reads a numeric property, accepting the numeric types produced
// by JSON and YAML decoders.
func PropFloat(props map[string]any, key string, fallback float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	case int64:
		return float32(v)
	}
	return fallback
}

func PropBool(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

func PropString(props map[string]any, key string, fallback string) string {
	if v, ok := props[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
