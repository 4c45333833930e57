// Package tsgen translates Swagger model definitions into TypeScript interface declarations.
package tsgen

import (
	"fmt"
	"strings"

	"github.com/go-openapi/spec"
)

// Kind identifies which shape a Field descriptor holds.
type Kind int

const (
	// KindPrimitive is a scalar like integer, number, string or boolean.
	KindPrimitive Kind = iota
	// KindReference points at another definition by name.
	KindReference
	// KindArray holds an item descriptor.
	KindArray
	// KindEnum is a closed set of literal values.
	KindEnum
	// KindObject is a free-form object.
	KindObject
)

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes the type of one property.
// Only the members relevant to Kind are set.
type Field struct {
	Kind Kind

	// Primitive is the swagger type name for KindPrimitive, e.g. "integer".
	// Unrecognized names are kept as-is and render as unknown.
	Primitive string
	// Format is the swagger format hint, e.g. "date-time".
	Format string
	// Ref is the raw reference, e.g. "#/definitions/Foo" or "Api.Models.Foo".
	Ref string
	// Items is the element descriptor for KindArray. Nil means untyped.
	Items *Field
	// Enum holds the literal values for KindEnum in document order.
	Enum []string

	Description string
}

// Primitive builds a primitive field descriptor.
func Primitive(kind, format string) Field {
	if kind == OBJECT {
		return Field{Kind: KindObject, Primitive: kind, Format: format}
	}
	return Field{Kind: KindPrimitive, Primitive: kind, Format: format}
}

// Reference builds a reference field descriptor.
func Reference(ref string) Field {
	return Field{Kind: KindReference, Ref: ref}
}

// ArrayOf builds an array field descriptor. A nil item gives an untyped array.
func ArrayOf(items *Field) Field {
	return Field{Kind: KindArray, Primitive: ARRAY, Items: items}
}

// Enum builds an enum field descriptor.
func Enum(values ...string) Field {
	return Field{Kind: KindEnum, Enum: values}
}

// WithDescription returns a copy of f carrying the description.
func (f Field) WithDescription(desc string) Field {
	f.Description = desc
	return f
}

// FieldFromSchema converts a swagger property schema into a Field.
// A schema may carry several markers at once; the first match wins in the
// order reference, enum, array, primitive.
func FieldFromSchema(s spec.Schema) Field {
	var f Field
	switch {
	case s.Ref.String() != "":
		f = Reference(s.Ref.String())
	case len(s.Enum) > 0:
		f = Enum(enumValues(s.Enum)...)
	case s.Type.Contains(ARRAY):
		var items *Field
		if s.Items != nil && s.Items.Schema != nil {
			item := FieldFromSchema(*s.Items.Schema)
			items = &item
		} else if s.Items != nil && len(s.Items.Schemas) > 0 {
			// tuple form; the first schema stands in for the element type
			item := FieldFromSchema(s.Items.Schemas[0])
			items = &item
		}
		f = ArrayOf(items)
	default:
		f = Primitive(primaryType(s.Type), s.Format)
	}
	f.Description = s.Description
	return f
}

// primaryType picks the first non-null type of a (possibly multi-valued) swagger type.
func primaryType(types spec.StringOrArray) string {
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	return ""
}

func enumValues(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch tv := v.(type) {
		case string:
			out = append(out, tv)
		case nil:
			out = append(out, "null")
		default:
			out = append(out, fmt.Sprint(tv))
		}
	}
	return out
}

// KeyFromRef turns a reference into the definition table key it names by
// removing the JSON pointer prefix. Refs that are already bare keys are returned as-is.
func KeyFromRef(ref string) string {
	for _, prefix := range refPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return ref[len(prefix):]
		}
	}
	return ref
}

var refPrefixes = []string{"#/definitions/", "#/components/schemas/"}

// ShortName returns the final segment of a qualified name or reference:
// "#/definitions/Api.Models.Client" and "Api.Models.Client" both give "Client".
func ShortName(name string) string {
	name = KeyFromRef(name)
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
