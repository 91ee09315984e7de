package config

import (
	"bytes"
	"os"
	"text/template"

	"github.com/pkg/errors"
)

const ConfigTemplate = `key_file = "{{ .KeyFile }}"

[solana]
cluster = "{{ .Solana.Cluster }}"
rpcs = [{{ range $i, $rpc := .Solana.Rpcs }}{{ if $i }}, {{ end }}"{{ $rpc }}"{{ end }}]
commitment = "{{ .Solana.Commitment }}"
skip_preflight = {{ .Solana.SkipPreflight }}
max_attempts = {{ .Solana.MaxAttempts }}
initial_backoff_ms = {{ .Solana.InitialBackoffMs }}
max_backoff_ms = {{ .Solana.MaxBackoffMs }}
poll_interval_ms = {{ .Solana.PollIntervalMs }}
confirm_timeout_ms = {{ .Solana.ConfirmTimeoutMs }}
fee_cache_size = {{ .Solana.FeeCacheSize }}
`

var configTemplate = template.Must(template.New("config").Parse(ConfigTemplate))

func Render(cfg Config) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := configTemplate.Execute(buf, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot render config")
	}

	return buf.Bytes(), nil
}

// Write renders cfg into a new file at path. An existing file is not overwritten.
func Write(path string, cfg Config) error {
	bz, err := Render(cfg)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(bz)
	return err
}
