package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
)

var ErrUnknownFormat = errors.New("schema: unknown output format")

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EncodeOptions controls document serialization.
type EncodeOptions struct {
	Format string
	// Indent is the number of spaces per nesting level.
	Indent int
}

// Encode serializes d in the requested format. Insertion order of types,
// fields and table entries is kept in every format.
func Encode(d *Document, opts EncodeOptions) ([]byte, error) {
	indent := opts.Indent
	if indent <= 0 {
		indent = 4
	}
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatJSON:
		raw, err := d.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return pretty.PrettyOptions(raw, &pretty.Options{
			Width:  80,
			Indent: strings.Repeat(" ", indent),
		}), nil
	case FormatYAML:
		return encodeYAML(d, indent)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// MarshalJSON renders the protodef form: {"types": {name: definition, ...}}.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"types":{`)
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(&buf, name)
		buf.WriteByte(':')
		if err := writeType(&buf, d.types[name]); err != nil {
			return nil, fmt.Errorf("schema: encode %s: %w", name, err)
		}
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

func writeType(buf *bytes.Buffer, t Type) error {
	switch v := t.(type) {
	case Ref:
		writeString(buf, string(v))
	case Unmodeled:
		writeString(buf, string(v.Fallback))
	case PString:
		buf.WriteString(`["pstring",{"countType":`)
		writeString(buf, string(v.CountType))
		buf.WriteString(`}]`)
	case Buffer:
		buf.WriteString(`["buffer",{"countType":`)
		writeString(buf, string(v.CountType))
		if v.Type != "" {
			buf.WriteString(`,"type":`)
			writeString(buf, string(v.Type))
		}
		buf.WriteString(`}]`)
	case Container:
		buf.WriteString(`["container",[`)
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(`{"name":`)
			writeString(buf, f.Name)
			buf.WriteString(`,"type":`)
			if err := writeType(buf, f.Type); err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
			buf.WriteByte('}')
		}
		buf.WriteString(`]]`)
	case Array:
		buf.WriteString(`["array",{"countType":`)
		writeString(buf, string(v.CountType))
		buf.WriteString(`,"type":`)
		if err := writeType(buf, v.Type); err != nil {
			return err
		}
		buf.WriteString(`}]`)
	case Mapper:
		buf.WriteString(`["mapper",{"type":`)
		writeString(buf, string(v.Type))
		buf.WriteString(`,"mappings":`)
		writeTable(buf, v.Mappings)
		buf.WriteString(`}]`)
	case Switch:
		buf.WriteString(`["switch",{"compareTo":`)
		writeString(buf, v.CompareTo)
		buf.WriteString(`,"fields":`)
		writeTable(buf, v.Fields)
		if v.Default != "" {
			buf.WriteString(`,"default":`)
			writeString(buf, string(v.Default))
		}
		buf.WriteString(`}]`)
	case nil:
		return errors.New("nil type")
	default:
		return fmt.Errorf("unsupported type %T", t)
	}
	return nil
}

func writeTable(buf *bytes.Buffer, m *OrderedMap) {
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, _ := m.Get(k)
		writeString(buf, k)
		buf.WriteByte(':')
		writeString(buf, v)
	}
	buf.WriteByte('}')
}

func writeString(buf *bytes.Buffer, s string) {
	// Marshal of a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}
