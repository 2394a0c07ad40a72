package synth

import "github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"

// Fixed names of the envelope and dispatch types.
const (
	EnvelopeType  = "encapsulated_packet"
	DispatchType  = "mcpe_packet"
	EnvelopeLabel = "mcpe"
	DefaultTag    = "0xfe"
	DefaultPrefix = "packet_"
	discriminant  = "name"
	payloadField  = "params"
)

func f32Fields(names ...string) []schema.Field {
	fields := make([]schema.Field, 0, len(names))
	for _, n := range names {
		fields = append(fields, schema.Field{Name: n, Type: schema.F32})
	}
	return fields
}

// seedVocabulary writes the fixed entries every document starts with.
// The dispatch entry is written with empty tables and replaced once
// assembly has filled them.
func seedVocabulary(doc *schema.Document, envelopeTag string) {
	doc.Set(string(schema.String), schema.PString{CountType: schema.I16})
	doc.Set("lstring", schema.PString{CountType: schema.LI16})
	doc.Set("vector3", schema.Container{Fields: f32Fields("x", "y", "z")})
	doc.Set("vector2", schema.Container{Fields: f32Fields("x", "y")})
	doc.Set("playerlocation", schema.Array{
		CountType: schema.I16,
		Type:      schema.Container{Fields: f32Fields("x", "y", "z", "yaw", "pitch", "headYaw")},
	})
	doc.Set(EnvelopeType, schema.Container{Fields: []schema.Field{
		{Name: discriminant, Type: schema.Mapper{
			Type:     schema.U8,
			Mappings: schema.NewOrderedMap(envelopeTag, EnvelopeLabel),
		}},
		{Name: payloadField, Type: schema.NewSwitch(discriminant, "", EnvelopeLabel, DispatchType)},
	}})
	doc.Set(DispatchType, dispatchType(schema.NewOrderedMap(), schema.NewOrderedMap()))
}

func dispatchType(byID, byName *schema.OrderedMap) schema.Container {
	return schema.Container{Fields: []schema.Field{
		{Name: discriminant, Type: schema.Mapper{Type: schema.U8, Mappings: byID}},
		{Name: payloadField, Type: schema.Switch{CompareTo: discriminant, Fields: byName}},
	}}
}
