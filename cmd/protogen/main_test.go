package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filiphsps/MiNET-protocol-converter/internal/testutil/testlog"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const protocolXML = `<protocol>
	<pdu id="0x01" name="Login" online="false">
		<field name="Protocol" type="int" />
	</pdu>
	<pdu id="0x03" name="Server Exchange" online="false">
		<field name="Server Public Key" type="string" />
		<field name="Token" type="ByteArray" />
	</pdu>
	<pdu id="0x09" name="Text" online="true">
		<field name="Type" type="byte" />
	</pdu>
	<pdu id="0x13" name="Move Player" online="true">
		<field name="Entity Id" type="UnsignedVarLong" />
		<field name="Position" type="Vector3" />
		<field name="Metadata" type="MetadataDictionary" />
	</pdu>
	<pdu id="0xfe" name="Wrapper" online="true" />
</protocol>
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateWritesJSON(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	src := writeFixture(t, dir, "protocol.xml", protocolXML)
	out := filepath.Join(dir, "output.json")

	stdout, err := run(t, "generate", "--source", src, "--output", out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stdout, "wrote 11 types") {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)
	checks := map[string]string{
		"types.mcpe_packet.1.0.type.1.mappings.0x01":                   "game_login",
		"types.mcpe_packet.1.0.type.1.mappings.0x03":                   "server_to_client_handshake",
		"types.mcpe_packet.1.1.type.1.fields.move_player":              "packet_move_player",
		"types.packet_game_login.1.#":                                  "3",
		"types.packet_server_to_client_handshake.1.1.type.1.countType": "varint",
		"types.packet_move_player.1.2.type":                            "varint",
		"types.packet_move_player.1.1.type":                            "vector3",
	}
	for path, want := range checks {
		if got := gjson.Get(doc, path).String(); got != want {
			t.Fatalf("%s = %q, want %q", path, got, want)
		}
	}
	if gjson.Get(doc, "types.packet_wrapper").Exists() {
		t.Fatalf("wrapper must not become a message type")
	}
}

func TestGenerateYAMLFromConfig(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	src := writeFixture(t, dir, "protocol.xml", protocolXML)
	out := filepath.Join(dir, "schema.yaml")
	cfgPath := writeFixture(t, dir, "protogen.toml", fmt.Sprintf(
		"source = %q\noutput = %q\nformat = \"yaml\"\nindent = 2\n", src, out))

	if _, err := run(t, "--config", cfgPath, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var decoded map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if _, ok := decoded["types"]["packet_text"]; !ok {
		t.Fatalf("missing packet_text in yaml output")
	}
}

func TestGenerateStrictFailsOnUnresolved(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	src := writeFixture(t, dir, "protocol.xml", strings.Replace(protocolXML, "Vector3", "Vector4", 1))
	out := filepath.Join(dir, "output.json")

	_, err := run(t, "generate", "--source", src, "--output", out, "--strict")
	if !errors.Is(err, errUnresolved) {
		t.Fatalf("expected errUnresolved, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("strict failure must not write output")
	}

	if _, err := run(t, "generate", "--source", src, "--output", out); err != nil {
		t.Fatalf("non-strict generate: %v", err)
	}
}

func TestCheckPrintsSummary(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	src := writeFixture(t, dir, "protocol.xml", protocolXML)

	stdout, err := run(t, "check", "--source", src)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{
		"messages: kept=4 dropped=1 overridden=2 replaced=0",
		"unmodeled fields: 1",
		"packet_move_player.metadata (metadatadictionary)",
		"unresolved references: 0",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("missing %q in:\n%s", want, stdout)
		}
	}
}

func TestInitWritesTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "protogen.toml")
	if _, err := run(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := run(t, "init", path); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := run(t, "init", "--force", path); err != nil {
		t.Fatalf("forced init: %v", err)
	}
	if _, err := run(t, "--config", path, "check", "--source", path); err == nil {
		t.Fatalf("expected parse failure for a non-xml source")
	}
}
