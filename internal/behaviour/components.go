package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript   ComponentType = "Script"
	ComponentTypeCollider ComponentType = "Collider"
	ComponentTypeCustom   ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// BoxCollider is an axis-aligned box used for overlap detection.
// Size is scaled by the owning object's world scale.
type BoxCollider struct {
	BaseComponent
	Size      mgl32.Vec3 `json:"size"`
	Center    mgl32.Vec3 `json:"center"`
	IsTrigger bool       `json:"is_trigger"`
}

func NewBoxCollider() *BoxCollider {
	return &BoxCollider{
		Size: mgl32.Vec3{1, 1, 1},
	}
}

func (b *BoxCollider) GetComponentType() ComponentType {
	return ComponentTypeCollider
}

func (b *BoxCollider) GetTypeName() string {
	return "BoxCollider"
}

// Bounds returns the world-space min and max corners of the box
func (b *BoxCollider) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	t := b.Transform()
	if t == nil {
		return b.Center, b.Center
	}
	scale := t.WorldScale()
	half := mgl32.Vec3{
		abs32(b.Size.X()*scale.X()) / 2,
		abs32(b.Size.Y()*scale.Y()) / 2,
		abs32(b.Size.Z()*scale.Z()) / 2,
	}
	center := t.WorldPosition().Add(b.Center)
	return center.Sub(half), center.Add(half)
}

// Overlaps reports whether the two boxes intersect on every axis
func (b *BoxCollider) Overlaps(other *BoxCollider) bool {
	aMin, aMax := b.Bounds()
	bMin, bMax := other.Bounds()
	for i := 0; i < 3; i++ {
		if aMax[i] < bMin[i] || bMax[i] < aMin[i] {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update(deltaTime float32) {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update(deltaTime)
	}
}

func (s *ScriptComponent) FixedUpdate(deltaTime float32) {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate(deltaTime)
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

func unwrap(comp Component) Component {
	if s, ok := comp.(*ScriptComponent); ok && s.Script != nil {
		return s.Script
	}
	return comp
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// BuiltInComponents returns a list of built-in component types that can be added
func BuiltInComponents() []string {
	return []string{
		"BoxCollider",
	}
}

// CreateBuiltInComponent creates a built-in component by name
func CreateBuiltInComponent(name string) Component {
	switch name {
	case "BoxCollider":
		return NewBoxCollider()
	default:
		return nil
	}
}
