package types

import (
	"fmt"
	"strings"
)

// Dump renders the dense table in allocation order, one entry per line:
//
//	types: [
//		0 -> { enum ( a(ty_id[1]) b(ty_id[2]) ) }
//		1 -> { enum_field(0) of ty_id[0] }
//		...
//	]
//
// The format is a stable contract for golden tests; primitives render by
// name, dense references as ty_id[N].
func (t *Table) Dump() string {
	var sb strings.Builder
	sb.WriteString("types: [\n")
	for i, rec := range t.types {
		fmt.Fprintf(&sb, "\t%d -> %s\n", i, t.describe(rec))
	}
	sb.WriteString("]")
	return sb.String()
}

func (t *Table) describe(rec Type) string {
	switch rec.Kind {
	case KindAlias:
		return fmt.Sprintf("{ alias to %s }", t.ref(rec.Elem))
	case KindEnum:
		var sb strings.Builder
		sb.WriteString("{ enum (")
		for _, v := range t.enums[rec.Payload].Variants {
			fmt.Fprintf(&sb, " %s(%s)", v.Name, t.ref(v.Field))
		}
		sb.WriteString(" ) }")
		return sb.String()
	case KindEnumField:
		return fmt.Sprintf("{ enum_field(%d) of %s }", rec.Ordinal, t.ref(rec.Elem))
	case KindRange:
		r := t.ranges[rec.Payload]
		return fmt.Sprintf("{ range %s .. %s (%s) %s }", r.Low, r.High, r.SizeString(), t.ref(r.Base))
	case KindArray:
		if rec.Flexible {
			return fmt.Sprintf("Array { flexible %s of %s }", t.ref(rec.Index), t.ref(rec.Elem))
		}
		return fmt.Sprintf("Array { %s of %s }", t.ref(rec.Index), t.ref(rec.Elem))
	case KindPrim:
		return fmt.Sprintf("{ %s }", primName(rec.Prim, rec.Size))
	default:
		return "{ invalid }"
	}
}

// ref renders a handle as it appears inside another entry: dense handles
// as ty_id[N], primitives by name.
func (t *Table) ref(id TypeID) string {
	switch {
	case id.IsError():
		return "ty_error"
	case id.IsPrim():
		kind, size := id.PrimOf()
		return primName(kind, size)
	default:
		return fmt.Sprintf("ty_id[%d]", id.Index())
	}
}

func primName(kind PrimKind, size uint32) string {
	if kind == PrimStringN {
		return fmt.Sprintf("string(%d)", size)
	}
	return kind.String()
}
