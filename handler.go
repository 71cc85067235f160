package airwar

import (
	"reflect"
)

// handlerMeta holds metadata for a registered handler type.
type handlerMeta struct {
	meta    *SystemMeta
	handler any
	events  map[reflect.Type]int
}

// analyzeHandler indexes the event methods of a handler.
// Any exported method taking exactly one argument listens for events of
// that argument's type.
func analyzeHandler(h any, meta *SystemMeta) *handlerMeta {
	hm := &handlerMeta{
		meta:    meta,
		handler: h,
		events:  make(map[reflect.Type]int),
	}
	t := reflect.TypeOf(h)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		// Receiver plus one argument, no results
		if m.Type.NumIn() != 2 || m.Type.NumOut() != 0 {
			continue
		}
		hm.events[m.Type.In(1)] = i
	}
	return hm
}

// Dispatch delivers an event to every registered handler that listens for
// it. Handlers listen for events by implementing a method with the signature:
//
//	func (h *MyHandler) HandleHit(event *HostileDestroyed)
//
// The method name does not matter, only the signature (one argument).
// e is the entity the event is about and may be nil; handlers that need
// components only receive events about entities that carry them.
// Handlers run synchronously on the dispatching goroutine. Injected fields
// are cleared after every call, so a handler must not dispatch an event it
// handles itself: the nested call leaves the outer call's fields nil.
func (w *World) Dispatch(e *Entity, event any) {
	eventType := reflect.TypeOf(event)

	for _, hm := range w.handlers {
		// Check if this handler handles this event type
		methodIdx, ok := hm.events[eventType]
		if !ok {
			continue
		}

		var target *Entity
		if e != nil && !e.despawned {
			target = e
		}
		if hm.meta.PerEntity && (target == nil || !target.canRun(hm.meta)) {
			continue
		}

		// Inject dependencies
		if !injectSystem(hm.handler, target, hm.meta, w) {
			zeroSystem(hm.handler, hm.meta)
			continue
		}

		reflect.ValueOf(hm.handler).Method(methodIdx).Call([]reflect.Value{reflect.ValueOf(event)})

		zeroSystem(hm.handler, hm.meta)
	}
}
