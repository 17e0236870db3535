package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()                        // Called when component is first attached
	Start()                        // Called when the owning object is registered
	Update(deltaTime float32)      // Called every frame
	FixedUpdate(deltaTime float32) // Called at fixed time intervals
	OnDestroy()                    // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// Scripts embed this and only override the methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()              {}
func (c *BaseComponent) Start()              {}
func (c *BaseComponent) Update(float32)      {}
func (c *BaseComponent) FixedUpdate(float32) {}
func (c *BaseComponent) OnDestroy()          {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// Transform returns the transform of the owning object, or nil when detached
func (c *BaseComponent) Transform() *Transform {
	if c.gameObject == nil {
		return nil
	}
	return c.gameObject.Transform
}

// GameObject represents an object in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	Children   []*GameObject
}

// Transform holds the local placement of a GameObject.
// Position, Rotation and Scale are relative to Parent when it is set.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// SetParent re-parents t, detaching it from any previous parent
func (t *Transform) SetParent(parent *Transform) {
	if t.Parent != nil {
		siblings := t.Parent.Children
		for i, c := range siblings {
			if c == t {
				t.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
}

// WorldPosition resolves the position through the parent chain
func (t *Transform) WorldPosition() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	p := t.Parent
	local := mgl32.Vec3{
		t.Position.X() * p.Scale.X(),
		t.Position.Y() * p.Scale.Y(),
		t.Position.Z() * p.Scale.Z(),
	}
	return p.WorldPosition().Add(p.Rotation.Rotate(local))
}

// WorldScale multiplies the scale through the parent chain
func (t *Transform) WorldScale() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Scale
	}
	ps := t.Parent.WorldScale()
	return mgl32.Vec3{t.Scale.X() * ps.X(), t.Scale.Y() * ps.Y(), t.Scale.Z() * ps.Z()}
}

func newTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform:  newTransform(),
	}
}

func (obj *GameObject) HasTag(tag string) bool {
	return obj.Tag == tag
}

// AddChild attaches child under obj in both the object and transform hierarchy
func (obj *GameObject) AddChild(child *GameObject) {
	child.Transform.SetParent(obj.Transform)
	obj.Children = append(obj.Children, child)
}

// FindChild returns the direct child with the given name
func (obj *GameObject) FindChild(name string) *GameObject {
	for _, c := range obj.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component whose type name matches
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

// FindComponent returns the first component of type T, looking through
// script wrappers.
func FindComponent[T any](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if c, ok := unwrap(comp).(T); ok {
			return c, true
		}
	}
	return zero, false
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) internalUpdate(deltaTime float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(deltaTime)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(deltaTime float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(deltaTime)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
