package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

const template = `# Protocol description: an http(s) URL or a local file.
source = "https://raw.githubusercontent.com/NiclasOlofsson/MiNET/master/src/MiNET/MiNET/Net/MCPE%20Protocol.xml"
output = "output.json"
format = "json"
indent = 4

envelope_tag = "0xfe"
type_prefix = "packet_"

# Fail when the document references undefined types.
strict = false

fetch_timeout = "30s"
fetch_attempts = 3
fetch_initial_delay = "500ms"
fetch_max_delay = "5s"
fetch_jitter = true
`
