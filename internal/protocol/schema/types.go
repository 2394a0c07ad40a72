package schema

// Kind identifies a Type variant.
type Kind int

const (
	KindRef Kind = iota
	KindPString
	KindBuffer
	KindContainer
	KindArray
	KindMapper
	KindSwitch
	KindUnmodeled
)

func (k Kind) String() string {
	switch k {
	case KindRef:
		return "ref"
	case KindPString:
		return "pstring"
	case KindBuffer:
		return "buffer"
	case KindContainer:
		return "container"
	case KindArray:
		return "array"
	case KindMapper:
		return "mapper"
	case KindSwitch:
		return "switch"
	case KindUnmodeled:
		return "unmodeled"
	default:
		return "unknown"
	}
}

// Type is one schema type definition or reference.
type Type interface {
	Kind() Kind
}

// Ref names a primitive or another entry of the document.
type Ref string

// Primitive vocabulary understood by the codec.
const (
	Void   Ref = "void"
	Bool   Ref = "bool"
	Varint Ref = "varint"
	U8     Ref = "u8"
	I8     Ref = "i8"
	U16    Ref = "u16"
	I16    Ref = "i16"
	LI16   Ref = "li16"
	U32    Ref = "u32"
	I32    Ref = "i32"
	U64    Ref = "u64"
	I64    Ref = "i64"
	F32    Ref = "f32"
	F64    Ref = "f64"
)

// String is the document's short-prefixed string entry, not a native type.
const String Ref = "string"

var builtins = map[Ref]struct{}{
	Void: {}, Bool: {}, Varint: {},
	U8: {}, I8: {}, U16: {}, I16: {}, LI16: {}, "lu16": {},
	U32: {}, I32: {}, "li32": {}, "lu32": {},
	U64: {}, I64: {}, "li64": {}, "lu64": {},
	F32: {}, F64: {}, "lf32": {}, "lf64": {},
	"cstring": {},
}

// IsBuiltin reports whether r is part of the codec's native vocabulary.
func IsBuiltin(r Ref) bool {
	_, ok := builtins[r]
	return ok
}

func (Ref) Kind() Kind { return KindRef }

// PString is a string prefixed by its byte count.
type PString struct {
	CountType Ref
}

func (PString) Kind() Kind { return KindPString }

// Buffer is a byte run prefixed by its element count. Type may be empty.
type Buffer struct {
	CountType Ref
	Type      Ref
}

func (Buffer) Kind() Kind { return KindBuffer }

// Container is an ordered field list; order is wire order.
type Container struct {
	Fields []Field
}

func (Container) Kind() Kind { return KindContainer }

// Array repeats Type, prefixed by a count.
type Array struct {
	CountType Ref
	Type      Type
}

func (Array) Kind() Kind { return KindArray }

// Mapper decodes Type and translates the value to a label.
type Mapper struct {
	Type     Ref
	Mappings *OrderedMap
}

func (Mapper) Kind() Kind { return KindMapper }

// Switch picks a type by the decoded value of a sibling field.
// Default is empty when no default applies.
type Switch struct {
	CompareTo string
	Fields    *OrderedMap
	Default   Ref
}

func (Switch) Kind() Kind { return KindSwitch }

// Unmodeled marks a source type without a real definition yet. It encodes
// as Fallback so consumers see the same wire type, while Source keeps the
// original token visible.
type Unmodeled struct {
	Source   string
	Fallback Ref
}

func (Unmodeled) Kind() Kind { return KindUnmodeled }

// Field is a named member of a Container.
type Field struct {
	Name string
	Type Type
}

// NewSwitch builds a Switch from label/ref pairs in order.
func NewSwitch(compareTo string, def Ref, pairs ...string) Switch {
	return Switch{CompareTo: compareTo, Fields: NewOrderedMap(pairs...), Default: def}
}
