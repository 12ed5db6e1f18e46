package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes each report as its own YAML document.
func Encode(w io.Writer, reports ...Report) error {
	yamlEncoder := yaml.NewEncoder(w)
	yamlEncoder.SetIndent(2)
	for i := range reports {
		if err := yamlEncoder.Encode(&reports[i]); err != nil {
			return fmt.Errorf("encoding %s to YAML: %w", reports[i].Meet.Name, err)
		}
	}
	if err := yamlEncoder.Close(); err != nil {
		return fmt.Errorf("encoding to YAML failed on close: %w", err)
	}
	return nil
}
