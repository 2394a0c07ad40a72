package schema

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

func encodeYAML(d *Document, indent int) ([]byte, error) {
	root, err := d.yamlNode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("schema: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("schema: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML lets yaml.v3 keep the document order.
func (d *Document) MarshalYAML() (interface{}, error) {
	return d.yamlNode()
}

func (d *Document) yamlNode() (*yaml.Node, error) {
	types := mappingNode()
	for _, name := range d.names {
		n, err := typeNode(d.types[name])
		if err != nil {
			return nil, fmt.Errorf("schema: encode %s: %w", name, err)
		}
		types.Content = append(types.Content, strNode(name), n)
	}
	root := mappingNode()
	root.Content = append(root.Content, strNode("types"), types)
	return root, nil
}

func typeNode(t Type) (*yaml.Node, error) {
	switch v := t.(type) {
	case Ref:
		return strNode(string(v)), nil
	case Unmodeled:
		return strNode(string(v.Fallback)), nil
	case PString:
		return pairNode("pstring", mappingNode(strNode("countType"), strNode(string(v.CountType)))), nil
	case Buffer:
		opts := mappingNode(strNode("countType"), strNode(string(v.CountType)))
		if v.Type != "" {
			opts.Content = append(opts.Content, strNode("type"), strNode(string(v.Type)))
		}
		return pairNode("buffer", opts), nil
	case Container:
		fields := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, f := range v.Fields {
			ft, err := typeNode(f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			fields.Content = append(fields.Content, mappingNode(
				strNode("name"), strNode(f.Name),
				strNode("type"), ft,
			))
		}
		return pairNode("container", fields), nil
	case Array:
		inner, err := typeNode(v.Type)
		if err != nil {
			return nil, err
		}
		return pairNode("array", mappingNode(
			strNode("countType"), strNode(string(v.CountType)),
			strNode("type"), inner,
		)), nil
	case Mapper:
		return pairNode("mapper", mappingNode(
			strNode("type"), strNode(string(v.Type)),
			strNode("mappings"), tableNode(v.Mappings),
		)), nil
	case Switch:
		opts := mappingNode(
			strNode("compareTo"), strNode(v.CompareTo),
			strNode("fields"), tableNode(v.Fields),
		)
		if v.Default != "" {
			opts.Content = append(opts.Content, strNode("default"), strNode(string(v.Default)))
		}
		return pairNode("switch", opts), nil
	case nil:
		return nil, fmt.Errorf("nil type")
	default:
		return nil, fmt.Errorf("unsupported type %T", t)
	}
}

func tableNode(m *OrderedMap) *yaml.Node {
	n := mappingNode()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		n.Content = append(n.Content, strNode(k), strNode(v))
	}
	return n
}

func pairNode(kind string, opts *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: []*yaml.Node{strNode(kind), opts},
	}
}

func mappingNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
