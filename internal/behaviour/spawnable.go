package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spawnable is implemented by level entities that can be rescaled when
// placed and restored when a run restarts.
type Spawnable interface {
	SetScale(scale mgl32.Vec3)
	ResetSpawnable()
}

// TriggerHandler receives overlap notifications from trigger colliders.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// Spawnables returns every spawnable component on obj, looking through
// script wrappers.
func (obj *GameObject) Spawnables() []Spawnable {
	var result []Spawnable
	for _, comp := range obj.Components {
		if s, ok := unwrap(comp).(Spawnable); ok {
			result = append(result, s)
		}
	}
	return result
}

func (obj *GameObject) notifyTrigger(other *GameObject, enter bool) {
	if !obj.Active {
		return
	}
	for _, comp := range obj.Components {
		if !comp.GetEnabled() {
			continue
		}
		h, ok := unwrap(comp).(TriggerHandler)
		if !ok {
			continue
		}
		if enter {
			h.OnTriggerEnter(other)
		} else {
			h.OnTriggerExit(other)
		}
	}
}

func (obj *GameObject) collider() *BoxCollider {
	for _, comp := range obj.Components {
		if c, ok := comp.(*BoxCollider); ok && c.GetEnabled() {
			return c
		}
	}
	return nil
}
