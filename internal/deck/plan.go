package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan returns a YAML description of every slide and shape
func (d *Deck) Plan() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deck plan: %w", err)
	}
	return data, nil
}

// WritePlan writes the YAML plan to path
func (d *Deck) WritePlan(path string) error {
	data, err := d.Plan()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck plan: %w", err)
	}
	return nil
}

// ReadPlan loads a deck from a YAML plan
func ReadPlan(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck plan: %w", err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck plan: %w", err)
	}
	return &d, nil
}
