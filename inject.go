package airwar

import (
	"reflect"
	"unsafe"
)

// injectSystem injects dependencies into a system instance.
// e may be nil for systems that do not run per entity.
// Payload fields are left untouched so systems can keep state between runs.
func injectSystem(system any, e *Entity, meta *SystemMeta, w *World) bool {
	systemPtr := reflect.ValueOf(system).Pointer()

	// Track the last component field for relation resolution
	var lastComponentPtr unsafe.Pointer

	for i := range meta.Fields {
		field := &meta.Fields[i]

		switch field.Kind {
		case KindEntity:
			if e == nil {
				return false
			}
			setFieldPtr(systemPtr, field.Offset, unsafe.Pointer(e))

		case KindWorld:
			setFieldPtr(systemPtr, field.Offset, unsafe.Pointer(w))

		case KindCommands:
			setFieldPtr(systemPtr, field.Offset, unsafe.Pointer(w.commands))

		case KindComponent:
			if e == nil {
				return false
			}
			ptr := e.getComponent(field.ComponentID)
			if ptr == nil && !field.Optional {
				return false // Required component missing
			}
			setFieldPtr(systemPtr, field.Offset, ptr)
			lastComponentPtr = ptr

		case KindRelation:
			ptr := relationTarget(lastComponentPtr, field)
			if ptr == nil && !field.Optional {
				return false
			}
			setFieldPtr(systemPtr, field.Offset, ptr)

		case KindResource:
			res := w.resource(field.ComponentType)
			if res == nil {
				return false // Resource not found
			}
			setFieldPtr(systemPtr, field.Offset, res)

		case KindPhantomWith, KindPhantomWithout, KindPayload:
			continue
		}
	}

	return true
}

// relationTarget follows the Relation stored in a source component and
// returns the target's component, or nil.
func relationTarget(source unsafe.Pointer, field *FieldMeta) unsafe.Pointer {
	if source == nil {
		return nil
	}

	// target *Entity is the first field of Relation[T]
	relPtr := unsafe.Add(source, field.RelationDataOffset)
	target := *(**Entity)(relPtr)
	if target == nil || target.despawned {
		return nil
	}
	return target.getComponent(field.ComponentID)
}

// zeroSystem clears all injected fields so a system does not hold on to
// entities between ticks.
func zeroSystem(system any, meta *SystemMeta) {
	systemPtr := reflect.ValueOf(system).Pointer()

	for i := range meta.Fields {
		field := &meta.Fields[i]

		switch field.Kind {
		case KindEntity, KindWorld, KindCommands, KindComponent, KindRelation, KindResource:
			setFieldPtr(systemPtr, field.Offset, nil)
		}
	}
}

// setFieldPtr sets a pointer field at the given offset.
func setFieldPtr(base uintptr, offset uintptr, value unsafe.Pointer) {
	*(*unsafe.Pointer)(unsafe.Pointer(base + offset)) = value
}
