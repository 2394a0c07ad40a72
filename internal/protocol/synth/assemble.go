package synth

import (
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(*Assembler)

// WithEnvelopeTag sets the transport tag routed to the dispatch type.
func WithEnvelopeTag(tag string) Option {
	return func(a *Assembler) {
		if tag != "" {
			a.envelopeTag = tag
		}
	}
}

// WithTypePrefix sets the prefix of generated message type names.
func WithTypePrefix(prefix string) Option {
	return func(a *Assembler) {
		if prefix != "" {
			a.prefix = prefix
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// Assembler builds schema documents. It holds configuration only and can be
// reused.
type Assembler struct {
	envelopeTag string
	prefix      string
	logger      zerolog.Logger
}

func New(opts ...Option) *Assembler {
	a := &Assembler{
		envelopeTag: DefaultTag,
		prefix:      DefaultPrefix,
		logger:      log.Logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Report summarizes one assembly pass. Replaced counts messages whose id or
// canonical name was already recorded earlier in the pass.
type Report struct {
	Kept       int
	Dropped    []string
	Overridden []string
	Replaced   int
	Unmodeled  int
}

// Assemble builds a document with default options.
func Assemble(msgs []protocol.MessageDescriptor) *schema.Document {
	doc, _ := New().Assemble(msgs)
	return doc
}

// TypeName returns the generated type name for a canonical message name.
func (a *Assembler) TypeName(name string) string {
	return a.prefix + name
}

// Assemble runs one pass over msgs in order. A repeated id or canonical
// name replaces the earlier entry and keeps its position.
func (a *Assembler) Assemble(msgs []protocol.MessageDescriptor) (*schema.Document, Report) {
	var report Report
	doc := schema.NewDocument()
	seedVocabulary(doc, a.envelopeTag)

	byID := newIDTable()
	byName := schema.NewOrderedMap()

	for _, msg := range msgs {
		name, ok := NormalizeName(msg.Name)
		if !ok {
			a.logger.Debug().Msgf("synth.Assemble drop name=%q id=%s", msg.Name, msg.ID)
			report.Dropped = append(report.Dropped, msg.Name)
			continue
		}
		typeName := a.TypeName(name)

		fields := OverrideFields(name)
		if len(fields) > 0 {
			report.Overridden = append(report.Overridden, name)
		} else {
			fields = make([]schema.Field, 0, len(msg.Fields))
			for _, f := range msg.Fields {
				t := CoerceType(f.Type)
				if t.Kind() == schema.KindUnmodeled {
					report.Unmodeled++
				}
				fields = append(fields, schema.Field{Name: NormalizeFieldName(f.Name), Type: t})
			}
		}

		_, nameSeen := byName.Get(name)
		idSeen := byID.set(msg.ID, name)
		if idSeen || nameSeen {
			report.Replaced++
			a.logger.Debug().Msgf("synth.Assemble replace name=%s id=%s", name, msg.ID)
		}
		byName.Set(name, typeName)
		doc.Set(typeName, schema.Container{Fields: fields})
		report.Kept++
		a.logger.Debug().Msgf(
			"synth.Assemble keep name=%s id=%s type=%s fields=%d online=%t",
			name,
			msg.ID,
			typeName,
			len(fields),
			msg.Online,
		)
	}

	doc.Set(DispatchType, dispatchType(byID.build(), byName))
	a.logger.Info().Msgf(
		"synth.Assemble ok kept=%d dropped=%d overridden=%d replaced=%d unmodeled=%d",
		report.Kept,
		len(report.Dropped),
		len(report.Overridden),
		report.Replaced,
		report.Unmodeled,
	)
	return doc, report
}

// idTable is the id to canonical name table. Ids are keyed by value and
// rendered with the most recent raw text.
type idTable struct {
	order  []string
	labels map[string]string
	names  map[string]string
}

func newIDTable() *idTable {
	return &idTable{labels: make(map[string]string), names: make(map[string]string)}
}

// set records id and reports whether it was already present.
func (t *idTable) set(id protocol.MessageID, name string) bool {
	key := id.Key()
	_, seen := t.names[key]
	if !seen {
		t.order = append(t.order, key)
	}
	t.labels[key] = id.String()
	t.names[key] = name
	return seen
}

func (t *idTable) build() *schema.OrderedMap {
	m := schema.NewOrderedMap()
	for _, key := range t.order {
		m.Set(t.labels[key], t.names[key])
	}
	return m
}
