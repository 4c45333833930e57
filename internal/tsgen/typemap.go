package tsgen

import (
	"strings"
)

// UnknownType is rendered for anything the mapper cannot name.
const UnknownType = "unknown"

// PrimitiveTypes maps swagger primitive kinds to TypeScript types.
var PrimitiveTypes = map[string]string{
	INTEGER: "number",
	NUMBER:  "number",
	STRING:  "string",
	BOOLEAN: "boolean",
	OBJECT:  "Record<string, unknown>",
}

type formatKey struct {
	kind   string
	format string
}

// formatTypes overrides PrimitiveTypes for a kind/format pair.
// date-time stays a string since the API sends ISO strings, not Date objects.
var formatTypes = map[formatKey]string{
	{STRING, "date-time"}: "string",
}

// TypeExpr renders the TypeScript type expression for a field.
// It only prints reference names; resolving their bodies is the builder's job.
func TypeExpr(f Field) string {
	switch f.Kind {
	case KindReference:
		return ShortName(f.Ref)
	case KindEnum:
		if len(f.Enum) == 0 {
			return UnknownType
		}
		return enumUnion(f.Enum)
	case KindArray:
		return arrayType(f.Items)
	case KindObject:
		return primitiveType(OBJECT, f.Format)
	default:
		return primitiveType(f.Primitive, f.Format)
	}
}

func enumUnion(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, " | ")
}

func arrayType(items *Field) string {
	if items == nil {
		return UnknownType + "[]"
	}
	elem := TypeExpr(*items)
	if items.Kind == KindEnum && len(items.Enum) > 1 {
		elem = "(" + elem + ")"
	}
	return elem + "[]"
}

func primitiveType(kind, format string) string {
	base, ok := PrimitiveTypes[kind]
	if !ok {
		return UnknownType
	}
	if override, ok := formatTypes[formatKey{kind, format}]; ok {
		return override
	}
	return base
}
