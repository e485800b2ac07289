package export

import (
	"bytes"

	"github.com/rileyhilliard/sysmon/internal/monitor"
	"gopkg.in/yaml.v3"
)

// YAML writes the snapshot as a YAML document, starting with "---" so a
// stream of cycles splits cleanly into documents.
type YAML struct{}

func (YAML) Name() string      { return "yaml" }
func (YAML) Extension() string { return "yaml" }

// Produce implements Exporter.
func (YAML) Produce(snap monitor.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
