package export

import (
	"encoding/json"

	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// JSON writes the snapshot as an indented JSON document.
type JSON struct{}

func (JSON) Name() string      { return "json" }
func (JSON) Extension() string { return "json" }

// Produce implements Exporter.
func (JSON) Produce(snap monitor.Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(NewDocument(snap), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func tierName(percent float64) string {
	return ui.TierForPercentage(percent).String()
}
