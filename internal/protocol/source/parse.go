package source

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol"
	"github.com/rs/zerolog/log"
)

type xmlProtocol struct {
	XMLName xml.Name `xml:"protocol"`
	PDUs    []xmlPDU `xml:"pdu"`
}

type xmlPDU struct {
	ID     string     `xml:"id,attr"`
	Name   string     `xml:"name,attr"`
	Online string     `xml:"online,attr"`
	Fields []xmlField `xml:"field"`
}

type xmlField struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

// Parse decodes a protocol description. Messages and fields keep document
// order; attribute values are passed through untouched.
func Parse(r io.Reader) ([]protocol.MessageDescriptor, error) {
	var doc xmlProtocol
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, protocol.ErrEmptySource
		}
		return nil, fmt.Errorf("%w: %v", protocol.ErrMalformedSource, err)
	}
	if len(doc.PDUs) == 0 {
		return nil, protocol.ErrEmptySource
	}

	out := make([]protocol.MessageDescriptor, 0, len(doc.PDUs))
	for _, pdu := range doc.PDUs {
		msg := protocol.MessageDescriptor{
			Name:   pdu.Name,
			ID:     protocol.ParseMessageID(pdu.ID),
			Online: parseOnline(pdu.Online),
			Fields: make([]protocol.FieldDescriptor, 0, len(pdu.Fields)),
		}
		for _, f := range pdu.Fields {
			msg.Fields = append(msg.Fields, protocol.FieldDescriptor{Name: f.Name, Type: f.Type})
		}
		out = append(out, msg)
	}
	log.Debug().Msgf("source.Parse messages=%d", len(out))
	return out, nil
}

func parseOnline(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}
