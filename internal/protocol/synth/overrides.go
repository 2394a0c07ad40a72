package synth

import "github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"

// overrides hold field lists for messages whose layout depends on values
// decoded earlier in the same message. Builders return fresh values so
// callers may keep what they receive.
var overrides = map[string]func() []schema.Field{
	NameGameLogin: gameLoginFields,
	NameText:      textFields,
}

// OverrideFields returns the hand-written fields for a canonical message
// name, or nil when the message is derived from its declared fields.
func OverrideFields(name string) []schema.Field {
	build, ok := overrides[name]
	if !ok {
		return nil
	}
	return build()
}

func gameLoginFields() []schema.Field {
	return []schema.Field{
		{Name: "protocol", Type: schema.I32},
		{Name: "edition", Type: schema.I8},
		{Name: "body", Type: schema.Buffer{CountType: schema.Varint}},
	}
}

// textFields: source is present for chat and whisper, message for every
// type up to tip.
func textFields() []schema.Field {
	return []schema.Field{
		{Name: "type", Type: schema.I8},
		{Name: "source", Type: schema.NewSwitch("type", schema.Void,
			"1", string(schema.String),
			"3", string(schema.String),
		)},
		{Name: "message", Type: schema.NewSwitch("type", schema.Void,
			"0", string(schema.String),
			"1", string(schema.String),
			"2", string(schema.String),
			"3", string(schema.String),
			"4", string(schema.String),
			"5", string(schema.String),
		)},
	}
}
