package behaviour

import (
	"GopherRunner/internal/logger"

	"go.uber.org/zap"
)

type contactKey struct {
	a, b *GameObject
}

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
	contacts    map[contactKey]bool
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
		contacts:    make(map[contactKey]bool),
	}
}

// RegisterGameObject adds a GameObject to the manager
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			cm.forgetContacts(obj)
			obj.Destroy()
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// UpdateAll calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll(deltaTime float32) {
	// Process destroyed objects
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate(deltaTime)
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll(deltaTime float32) {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate(deltaTime)
		}
	}
}

// DispatchTriggers tests every pair of colliders and notifies trigger
// handlers when a pair starts or stops overlapping. A pair only produces
// events when at least one of its colliders is a trigger.
func (cm *ComponentManager) DispatchTriggers() {
	current := make(map[contactKey]bool, len(cm.contacts))

	for i := 0; i < len(cm.gameObjects); i++ {
		a := cm.gameObjects[i]
		if !a.Active {
			continue
		}
		ca := a.collider()
		if ca == nil {
			continue
		}
		for j := i + 1; j < len(cm.gameObjects); j++ {
			b := cm.gameObjects[j]
			if !b.Active {
				continue
			}
			cb := b.collider()
			if cb == nil || (!ca.IsTrigger && !cb.IsTrigger) {
				continue
			}
			if !ca.Overlaps(cb) {
				continue
			}
			key := contactKey{a, b}
			current[key] = true
			if !cm.contacts[key] {
				logger.Log.Debug("Trigger enter",
					zap.String("a", a.Name),
					zap.String("b", b.Name))
				a.notifyTrigger(b, true)
				b.notifyTrigger(a, true)
			}
		}
	}

	for key := range cm.contacts {
		if !current[key] {
			key.a.notifyTrigger(key.b, false)
			key.b.notifyTrigger(key.a, false)
		}
	}
	cm.contacts = current
}

// ResetSpawnables restores every spawnable component for a new run.
// Tracked overlaps are forgotten so contacts fire again on the next run.
func (cm *ComponentManager) ResetSpawnables() int {
	count := 0
	for _, obj := range cm.gameObjects {
		for _, s := range obj.Spawnables() {
			s.ResetSpawnable()
			count++
		}
	}
	cm.contacts = make(map[contactKey]bool)
	logger.Log.Info("Spawnables reset", zap.Int("count", count))
	return count
}

func (cm *ComponentManager) forgetContacts(obj *GameObject) {
	for key := range cm.contacts {
		if key.a == obj || key.b == obj {
			delete(cm.contacts, key)
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
	cm.contacts = make(map[contactKey]bool)
}
