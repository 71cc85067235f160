package airwar

import (
	"strings"
)

const tagName = "airwar"

// Tag modifiers
const (
	modMut = "mut" // Mutable access
	modOpt = "opt" // Optional (nil if missing)
	modRel = "rel" // Relation traversal
	modRes = "res" // Resource injection
)

// FieldKind represents the type of field for injection.
type FieldKind int

const (
	// KindEntity indicates an *Entity field
	KindEntity FieldKind = iota
	// KindWorld indicates a *World field
	KindWorld
	// KindCommands indicates a *Commands field
	KindCommands
	// KindComponent indicates a component field
	KindComponent
	// KindRelation indicates a relation traversal field
	KindRelation
	// KindResource indicates a world resource field
	KindResource
	// KindPhantomWith indicates a With[T] phantom type
	KindPhantomWith
	// KindPhantomWithout indicates a Without[T] phantom type
	KindPhantomWithout
	// KindPayload indicates a field owned by the system itself
	KindPayload
)

var fieldKindNames = [...]string{
	KindEntity:         "Entity",
	KindWorld:          "World",
	KindCommands:       "Commands",
	KindComponent:      "Component",
	KindRelation:       "Relation",
	KindResource:       "Resource",
	KindPhantomWith:    "With",
	KindPhantomWithout: "Without",
	KindPayload:        "Payload",
}

func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(fieldKindNames) {
		return "Unknown"
	}
	return fieldKindNames[k]
}

// TagInfo holds parsed tag information.
type TagInfo struct {
	Mutable  bool // airwar:"mut"
	Optional bool // airwar:"opt"
	Relation bool // airwar:"rel"
	Resource bool // airwar:"res"
}

// parseTag parses an airwar struct tag.
func parseTag(tag string) TagInfo {
	info := TagInfo{}
	if tag == "" {
		return info
	}

	for part := range strings.SplitSeq(tag, ",") {
		switch strings.TrimSpace(part) {
		case modMut:
			info.Mutable = true
		case modOpt:
			info.Optional = true
		case modRel:
			info.Relation = true
		case modRes:
			info.Resource = true
		}
	}

	return info
}
