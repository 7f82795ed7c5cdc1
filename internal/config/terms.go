package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TermGroup binds an industry label to the search terms that target it.
type TermGroup struct {
	Industry string   `yaml:"industry"`
	Terms    []string `yaml:"terms"`
}

// Terms holds both run shapes: the flat list and the grouped list.
// Group order is preserved from the file, it decides fetch order.
type Terms struct {
	Flat   []string    `yaml:"terms"`
	Groups []TermGroup `yaml:"industries"`
}

// DefaultTerms is the built-in search-term set used when no terms file
// is configured.
func DefaultTerms() Terms {
	return Terms{
		Flat: []string{
			"HVAC industry news",
			"heating ventilation air conditioning",
			"battery energy storage systems BESS",
			"smart HVAC technology",
			"heat pump technology",
			"commercial HVAC equipment",
			"Tesla Megapack energy storage",
			"grid scale battery storage",
			"HVAC regulations EPA",
			"energy efficiency HVAC",
		},
		Groups: []TermGroup{
			{
				Industry: "HVAC",
				Terms: []string{
					"HVAC industry news",
					"heating ventilation air conditioning",
					"smart HVAC technology",
					"heat pump technology",
					"commercial HVAC equipment",
					"HVAC regulations EPA",
					"energy efficiency HVAC",
				},
			},
			{
				Industry: "BESS",
				Terms: []string{
					"battery energy storage systems BESS",
					"Tesla Megapack energy storage",
					"grid scale battery storage",
				},
			},
			{
				Industry: "Finance",
				Terms: []string{
					"HVAC industry investment",
					"energy storage funding",
					"climate technology venture capital",
				},
			},
		},
	}
}

// LoadTerms reads the YAML terms file; an empty path selects the
// built-in defaults. A configured-but-broken file is an error: silently
// fetching the wrong terms would be worse than stopping.
func LoadTerms(path string) (Terms, error) {
	if path == "" {
		return DefaultTerms(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Terms{}, fmt.Errorf("open terms config: %w", err)
	}
	defer f.Close()

	var t Terms
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&t); err != nil {
		return Terms{}, fmt.Errorf("parse terms config: %w", err)
	}

	if len(t.Flat) == 0 && len(t.Groups) == 0 {
		return Terms{}, fmt.Errorf("terms config %s defines no terms", path)
	}

	// Fill whichever list the file omitted so both run modes keep working.
	defaults := DefaultTerms()
	if len(t.Flat) == 0 {
		t.Flat = defaults.Flat
	}
	if len(t.Groups) == 0 {
		t.Groups = defaults.Groups
	}

	return t, nil
}
