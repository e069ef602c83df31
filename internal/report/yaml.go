package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// WriteYAML writes r to path as a YAML document.
func WriteYAML(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadYAML loads a report written by WriteYAML. The tool itself never reads
// reports back; this exists so written reports can be verified.
func ReadYAML(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := &Report{}
	if err := yaml.NewDecoder(f).Decode(r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}
