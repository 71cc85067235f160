package airwar

import (
	"reflect"
)

// With is a phantom type that restricts a per-entity system to entities
// carrying component T. Nothing is injected into the field.
//
// Usage:
//
//	type SpinSystem struct {
//	    Transform *Transform `airwar:"mut"`
//	    _         airwar.With[Hostile]
//	}
type With[T any] struct{}

// Without is a phantom type that skips entities carrying component T.
//
// Usage:
//
//	type DriftSystem struct {
//	    Transform *Transform
//	    _         airwar.Without[Player]
//	}
type Without[T any] struct{}

// PhantomTypeInfo provides component type information for phantom types.
type PhantomTypeInfo interface {
	ComponentType() reflect.Type
	IsWithout() bool
}

// ComponentType implements PhantomTypeInfo for With[T].
func (With[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

// IsWithout implements PhantomTypeInfo for With[T].
func (With[T]) IsWithout() bool {
	return false
}

// ComponentType implements PhantomTypeInfo for Without[T].
func (Without[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

// IsWithout implements PhantomTypeInfo for Without[T].
func (Without[T]) IsWithout() bool {
	return true
}

var phantomTypeInfoType = reflect.TypeFor[PhantomTypeInfo]()

// getPhantomInfo extracts component type and kind from a phantom type.
func getPhantomInfo(t reflect.Type) (compType reflect.Type, isWithout bool, ok bool) {
	if !t.Implements(phantomTypeInfoType) {
		return nil, false, false
	}
	v := reflect.New(t).Elem().Interface().(PhantomTypeInfo)
	return v.ComponentType(), v.IsWithout(), true
}
