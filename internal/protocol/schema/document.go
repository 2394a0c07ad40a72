package schema

// OrderedMap is a string table that remembers first-insertion order.
// Setting an existing key replaces its value in place.
type OrderedMap struct {
	keys   []string
	values map[string]string
}

// NewOrderedMap builds a map from key/value pairs. A trailing odd key is ignored.
func NewOrderedMap(pairs ...string) *OrderedMap {
	m := &OrderedMap{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func (m *OrderedMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns a copy of the keys in order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Document is the emitted schema: type name to definition, in insertion order.
type Document struct {
	names []string
	types map[string]Type
}

func NewDocument() *Document {
	return &Document{types: make(map[string]Type)}
}

// Set stores t under name. Replacing an existing name keeps its position.
func (d *Document) Set(name string, t Type) {
	if _, ok := d.types[name]; !ok {
		d.names = append(d.names, name)
	}
	d.types[name] = t
}

func (d *Document) Get(name string) (Type, bool) {
	t, ok := d.types[name]
	return t, ok
}

// Has reports whether name is defined in the document.
func (d *Document) Has(name string) bool {
	_, ok := d.types[name]
	return ok
}

// Names returns a copy of the type names in order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Document) Len() int {
	return len(d.names)
}
