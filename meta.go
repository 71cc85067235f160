package airwar

import (
	"fmt"
	"reflect"
)

// SystemMeta holds pre-computed metadata about a system type.
// This is computed once at registration time and reused for every tick.
type SystemMeta struct {
	// Type is the reflect.Type of the system struct
	Type reflect.Type

	// Name is the type name for debugging
	Name string

	// RequireMask is the bitmask of required components
	RequireMask Bitmask

	// ExcludeMask is the bitmask of excluded components (Without[T])
	ExcludeMask Bitmask

	// Fields holds injection metadata for each field
	Fields []FieldMeta

	// Stage is the execution stage
	Stage Stage

	// PerEntity indicates the system runs once for every matching entity.
	// Systems without entity or component fields run once per tick.
	PerEntity bool

	// Bundle is the bundle this system belongs to
	Bundle *Bundle

	// Access records what the system reads and writes
	Access AccessMeta
}

// FieldMeta holds metadata about a single injectable field.
type FieldMeta struct {
	// Offset is the field offset in the struct for unsafe injection
	Offset uintptr

	// Name is the field name for debugging
	Name string

	// Kind is the type of field (component, resource, etc.)
	Kind FieldKind

	// ComponentID is the ID of the component type (for component fields)
	ComponentID ComponentID

	// ComponentType is the reflect.Type of the component or resource
	ComponentType reflect.Type

	// Optional indicates the field can be nil
	Optional bool

	// Mutable indicates the field has write access
	Mutable bool

	// RelationSourceIndex is the index in Fields of the component holding the relation
	RelationSourceIndex int

	// RelationDataOffset is the offset of the Relation field in the source component
	RelationDataOffset uintptr
}

// AccessMeta describes what components/resources a system reads or writes.
type AccessMeta struct {
	Reads     map[reflect.Type]struct{}
	Writes    map[reflect.Type]struct{}
	ResReads  map[reflect.Type]struct{}
	ResWrites map[reflect.Type]struct{}
}

func (a *AccessMeta) note(t reflect.Type, mutable, resource bool) {
	set := func(m *map[reflect.Type]struct{}) {
		if *m == nil {
			*m = make(map[reflect.Type]struct{})
		}
		(*m)[t] = struct{}{}
	}
	switch {
	case resource && mutable:
		set(&a.ResWrites)
	case resource:
		set(&a.ResReads)
	case mutable:
		set(&a.Writes)
	default:
		set(&a.Reads)
	}
}

// Conflicts returns true if this access pattern conflicts with another:
// one side writes something the other reads or writes.
func (a *AccessMeta) Conflicts(other *AccessMeta) bool {
	overlaps := func(writes, touched map[reflect.Type]struct{}) bool {
		for t := range writes {
			if _, ok := touched[t]; ok {
				return true
			}
		}
		return false
	}
	return overlaps(a.Writes, other.Reads) || overlaps(a.Writes, other.Writes) ||
		overlaps(other.Writes, a.Reads) ||
		overlaps(a.ResWrites, other.ResReads) || overlaps(a.ResWrites, other.ResWrites) ||
		overlaps(other.ResWrites, a.ResReads)
}

var (
	entityPtrType   = reflect.TypeFor[*Entity]()
	worldPtrType    = reflect.TypeFor[*World]()
	commandsPtrType = reflect.TypeFor[*Commands]()
)

// analyzeSystem analyzes a system type and returns its metadata.
// The registry parameter is used to register component types for the world.
func analyzeSystem(systemType reflect.Type, bundle *Bundle, registry *componentRegistry) (*SystemMeta, error) {
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if systemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("system must be a struct, got %v", systemType.Kind())
	}

	meta := &SystemMeta{
		Type:   systemType,
		Name:   systemType.Name(),
		Bundle: bundle,
	}

	lastComponentIndex := -1

	for i := 0; i < systemType.NumField(); i++ {
		field := systemType.Field(i)
		tag := parseTag(field.Tag.Get(tagName))

		fm := FieldMeta{
			Offset:   field.Offset,
			Name:     field.Name,
			Optional: tag.Optional,
			Mutable:  tag.Mutable,
		}

		switch field.Type {
		case entityPtrType:
			fm.Kind = KindEntity
			meta.PerEntity = true
			meta.Fields = append(meta.Fields, fm)
			continue
		case worldPtrType:
			fm.Kind = KindWorld
			meta.Fields = append(meta.Fields, fm)
			continue
		case commandsPtrType:
			fm.Kind = KindCommands
			meta.Fields = append(meta.Fields, fm)
			continue
		}

		// With[T] and Without[T]
		if compType, isWithout, ok := getPhantomInfo(field.Type); ok {
			compID := registry.register(compType)
			if isWithout {
				fm.Kind = KindPhantomWithout
				meta.ExcludeMask.Set(compID)
			} else {
				fm.Kind = KindPhantomWith
				meta.RequireMask.Set(compID)
			}
			fm.ComponentID = compID
			fm.ComponentType = compType
			meta.PerEntity = true
			meta.Fields = append(meta.Fields, fm)
			continue
		}

		isStructPtr := field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct

		if tag.Resource {
			if !isStructPtr {
				return nil, fmt.Errorf("%s.%s: resource field must be a struct pointer", meta.Name, field.Name)
			}
			fm.Kind = KindResource
			fm.ComponentType = field.Type.Elem()
			meta.Access.note(fm.ComponentType, tag.Mutable, true)
			meta.Fields = append(meta.Fields, fm)
			continue
		}

		if tag.Relation {
			if !isStructPtr {
				return nil, fmt.Errorf("%s.%s: relation field must be a struct pointer", meta.Name, field.Name)
			}
			if lastComponentIndex < 0 {
				return nil, fmt.Errorf("%s.%s: relation field must follow a component field", meta.Name, field.Name)
			}
			compType := field.Type.Elem()
			source := meta.Fields[lastComponentIndex].ComponentType
			offset, ok := relationOffset(source, compType)
			if !ok {
				return nil, fmt.Errorf("%s.%s: %s has no Relation[%s]", meta.Name, field.Name, source.Name(), compType.Name())
			}

			fm.Kind = KindRelation
			fm.ComponentID = registry.register(compType)
			fm.ComponentType = compType
			fm.RelationSourceIndex = lastComponentIndex
			fm.RelationDataOffset = offset
			meta.Access.note(compType, tag.Mutable, false)
			meta.PerEntity = true
			meta.Fields = append(meta.Fields, fm)
			continue
		}

		if isStructPtr {
			compType := field.Type.Elem()
			compID := registry.register(compType)
			fm.Kind = KindComponent
			fm.ComponentID = compID
			fm.ComponentType = compType
			if !tag.Optional {
				meta.RequireMask.Set(compID)
			}
			meta.Access.note(compType, tag.Mutable, false)
			meta.PerEntity = true
			lastComponentIndex = len(meta.Fields)
			meta.Fields = append(meta.Fields, fm)
			continue
		}

		// Everything else belongs to the system
		fm.Kind = KindPayload
		fm.ComponentType = field.Type
		meta.Fields = append(meta.Fields, fm)
	}

	return meta, nil
}

// relationOffset finds the Relation[target] field inside source.
func relationOffset(source, target reflect.Type) (uintptr, bool) {
	for j := 0; j < source.NumField(); j++ {
		f := source.Field(j)
		ptr := reflect.New(f.Type).Interface()
		iface, ok := ptr.(interface{ TargetType() reflect.Type })
		if !ok || !isRelationType(ptr) || iface.TargetType() != target {
			continue
		}
		return f.Offset, true
	}
	return 0, false
}
