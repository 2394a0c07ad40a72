package synth

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	joinSep        = "_"
	sourcePrefix   = "mcpe_"
	reservedPrefix = "id_"
)

// Canonical names that the rename table produces.
const (
	NameGameLogin               = "game_login"
	NameServerToClientHandshake = "server_to_client_handshake"
	NameClientToServerHandshake = "client_to_server_handshake"
	NameText                    = "text"
)

// renames maps a lower-cased source name to its canonical name. An empty value
// drops the message.
var renames = map[string]string{
	"login":             NameGameLogin,
	"ftl_create_player": NameGameLogin,
	"server_exchange":   NameServerToClientHandshake,
	"client_magic":      NameClientToServerHandshake,
	// The transport wrapper is modeled by the envelope type.
	"wrapper": "",
}

// lowerJoin lower-cases raw and joins whitespace runs with an underscore.
func lowerJoin(raw string) string {
	return strings.Join(strings.Fields(cases.Lower(language.Und).String(raw)), joinSep)
}

// NormalizeFieldName lower-cases a field name into its schema form.
func NormalizeFieldName(raw string) string {
	return lowerJoin(raw)
}

// NormalizeName maps a raw message name to its canonical name. The second
// result is false when the message must not appear in the schema.
func NormalizeName(raw string) (string, bool) {
	name := strings.Replace(lowerJoin(raw), sourcePrefix, "", 1)
	if name == "" || strings.HasPrefix(name, reservedPrefix) {
		return "", false
	}
	if canonical, ok := renames[name]; ok {
		return canonical, canonical != ""
	}
	return name, true
}
