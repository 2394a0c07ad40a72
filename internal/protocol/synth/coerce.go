package synth

import "github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"

var fixedWidth = map[string]schema.Ref{
	"byte":  schema.U8,
	"short": schema.I16,
	"int":   schema.I32,
	"uint":  schema.U32,
	"float": schema.F32,
	"long":  schema.I64,
	"ulong": schema.U64,
}

var varints = map[string]struct{}{
	"varint":          {},
	"signedvarint":    {},
	"unsignedvarint":  {},
	"varlong":         {},
	"signedvarlong":   {},
	"unsignedvarlong": {},
}

var byteArrays = map[string]struct{}{
	"bytearray": {},
	"byte[]":    {},
}

// unmodeled lists source types with no schema definition yet. They encode
// as varint, which is wrong on the wire for most of them.
// TODO: model blockcoordinates and playerattributes as containers; their
// layouts are fixed in the source description.
var unmodeled = map[string]struct{}{
	"blockcoordinates":       {},
	"mapinfo":                {},
	"nbt":                    {},
	"item":                   {},
	"itemstacks":             {},
	"recipes":                {},
	"playerrecords":          {},
	"playerattributes":       {},
	"entityattributes":       {},
	"records":                {},
	"metadatadictionary":     {},
	"metadataints":           {},
	"rules":                  {},
	"resourcepackidversions": {},
	"resourcepackinfos":      {},
}

// CoerceType maps a source field type to a schema type. Unknown tokens are
// returned as references and resolved only when the document is consumed.
func CoerceType(raw string) schema.Type {
	token := lowerJoin(raw)
	if _, ok := varints[token]; ok {
		return schema.Varint
	}
	if ref, ok := fixedWidth[token]; ok {
		return ref
	}
	if _, ok := byteArrays[token]; ok {
		return schema.Buffer{CountType: schema.Varint, Type: schema.I8}
	}
	if _, ok := unmodeled[token]; ok {
		return schema.Unmodeled{Source: token, Fallback: schema.Varint}
	}
	return schema.Ref(token)
}
