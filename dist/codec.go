package dist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk YAML shape:
//
//	names: [X, Y]          # optional
//	events:
//	  - outcome: ["0", "0"]
//	    p: 0.5
//	  - outcome: ["1", "1"]
//	    p: 0.5
type fileFormat struct {
	Names  []string    `yaml:"names,omitempty"`
	Events []fileEvent `yaml:"events"`
}

type fileEvent struct {
	Outcome []string `yaml:"outcome"`
	P       float64  `yaml:"p"`
}

// Parse decodes a YAML document into a validated distribution.
func Parse(data []byte) (*Distribution, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse distribution: %w", err)
	}
	if len(f.Events) == 0 {
		return nil, fmt.Errorf("parse distribution: no events")
	}
	outcomes := make([]Outcome, len(f.Events))
	pmf := make([]float64, len(f.Events))
	for i, ev := range f.Events {
		outcomes[i] = Outcome(ev.Outcome)
		pmf[i] = ev.P
	}
	d, err := New(outcomes, pmf)
	if err != nil {
		return nil, err
	}
	if f.Names != nil {
		return d.Named(f.Names...)
	}
	return d, nil
}

// Load reads a distribution from a YAML file.
func Load(path string) (*Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load distribution: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a distribution as YAML in the same shape Parse accepts.
func Marshal(d *Distribution) ([]byte, error) {
	f := fileFormat{Names: d.Names(), Events: make([]fileEvent, d.NumOutcomes())}
	for i, o := range d.Outcomes() {
		f.Events[i] = fileEvent{Outcome: []string(o), P: d.Prob(i)}
	}
	return yaml.Marshal(f)
}

// Save writes a distribution to a YAML file.
func Save(path string, d *Distribution) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save distribution: %w", err)
	}
	return nil
}
