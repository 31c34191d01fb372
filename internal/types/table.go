package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Table is the append-only store of interned type records. Entries are
// created during lowering and never mutated or deleted afterwards; one
// lowering pass exclusively owns its table.
//
// Primitives are shared: interning the same primitive twice answers the
// same handle. Constructed types (ranges, arrays) are never deduplicated,
// so every declaration site keeps its own identity.
type Table struct {
	types  []Type
	ranges []RangeInfo
	enums  []EnumInfo
	prims  map[primKey]TypeID // dense fallback slots only
}

type primKey struct {
	Kind PrimKind
	Size uint32
}

// NewTable allocates an empty table.
func NewTable() *Table {
	return &Table{
		prims: make(map[primKey]TypeID, 4),
	}
}

// Len is the number of dense entries (what the debug dump shows).
func (t *Table) Len() int { return len(t.types) }

func (t *Table) alloc(rec Type) TypeID {
	n, err := safecast.Conv[uint32](len(t.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	t.types = append(t.types, rec)
	return TypeID(n)
}

// StringN returns the handle for a fixed-size string. Sizes that fit the
// encoded window stay out of the dense table; oversized ones fall back to
// a shared dense record.
func (t *Table) StringN(size uint32) TypeID {
	if size <= primSizeMask {
		return primTag | TypeID(PrimStringN)<<primKindShift | TypeID(size)
	}
	key := primKey{Kind: PrimStringN, Size: size}
	if id, ok := t.prims[key]; ok {
		return id
	}
	id := t.alloc(Type{Kind: KindPrim, Prim: PrimStringN, Size: size})
	t.prims[key] = id
	return id
}

// InternAlias allocates a fresh alias record pointing at target.
func (t *Table) InternAlias(target TypeID) TypeID {
	return t.alloc(Type{Kind: KindAlias, Elem: target})
}

// InternRange allocates a fresh range record (no deduplication).
func (t *Table) InternRange(info RangeInfo) TypeID {
	payload, err := safecast.Conv[uint32](len(t.ranges))
	if err != nil {
		panic(fmt.Errorf("len(ranges) overflow: %w", err))
	}
	t.ranges = append(t.ranges, info)
	return t.alloc(Type{Kind: KindRange, Payload: payload})
}

// InternArray allocates a fresh array record (no deduplication). The
// caller is responsible for index being a range; the table stores what it
// is given.
func (t *Table) InternArray(index, elem TypeID, flexible bool) TypeID {
	return t.alloc(Type{Kind: KindArray, Index: index, Elem: elem, Flexible: flexible})
}

// InternEnum allocates the enum record and one enum_field record per
// variant, in declaration order with ordinals 0..n. The variant slots are
// filled before the enum handle is returned, so callers never observe a
// half-built enum.
func (t *Table) InternEnum(variants []string) TypeID {
	payload, err := safecast.Conv[uint32](len(t.enums))
	if err != nil {
		panic(fmt.Errorf("len(enums) overflow: %w", err))
	}
	t.enums = append(t.enums, EnumInfo{})
	enumID := t.alloc(Type{Kind: KindEnum, Payload: payload})

	info := EnumInfo{Variants: make([]EnumVariant, 0, len(variants))}
	for i, name := range variants {
		ord, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("enum ordinal overflow: %w", err))
		}
		field := t.alloc(Type{Kind: KindEnumField, Elem: enumID, Ordinal: ord})
		info.Variants = append(info.Variants, EnumVariant{Name: name, Field: field})
	}
	t.enums[payload] = info
	return enumID
}

// Resolve returns the record behind a handle. Primitive handles synthesize
// a KindPrim record on the fly; the poison handle and out-of-range ids
// answer false.
func (t *Table) Resolve(id TypeID) (Type, bool) {
	if id.IsError() {
		return Type{}, false
	}
	if id.IsPrim() {
		kind, size := id.PrimOf()
		return Type{Kind: KindPrim, Prim: kind, Size: size}, true
	}
	idx := id.Index()
	if int(idx) >= len(t.types) {
		return Type{}, false
	}
	return t.types[idx], true
}

// Range returns the payload of a range handle.
func (t *Table) Range(id TypeID) (RangeInfo, bool) {
	rec, ok := t.Resolve(id)
	if !ok || rec.Kind != KindRange {
		return RangeInfo{}, false
	}
	return t.ranges[rec.Payload], true
}

// Enum returns the payload of an enum handle.
func (t *Table) Enum(id TypeID) (EnumInfo, bool) {
	rec, ok := t.Resolve(id)
	if !ok || rec.Kind != KindEnum {
		return EnumInfo{}, false
	}
	return t.enums[rec.Payload], true
}

// ResolveAlias walks alias chains until a non-alias handle. A chain that
// revisits a handle is a cycle: ok is false and the caller substitutes the
// error sentinel after reporting.
func (t *Table) ResolveAlias(id TypeID) (TypeID, bool) {
	seen := make(map[TypeID]bool, 4)
	for {
		rec, ok := t.Resolve(id)
		if !ok {
			return Error, true
		}
		if rec.Kind != KindAlias {
			return id, true
		}
		if seen[id] {
			return Error, false
		}
		seen[id] = true
		id = rec.Elem
	}
}
