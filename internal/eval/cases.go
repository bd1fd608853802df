// Package eval runs the screening pipeline against labeled cases and reports
// accuracy metrics. It exists to keep threshold tuning honest: any change to
// scoring or variant generation can be checked against the same suite.
package eval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one labeled screening scenario
type Case struct {
	Name          string `yaml:"name"`
	Article       string `yaml:"article"`
	ExpectedMatch bool   `yaml:"expected_match"`
	Type          string `yaml:"type"`
	Notes         string `yaml:"notes,omitempty"`
}

// LoadCases reads labeled cases from a YAML file
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases in %s", path)
	}

	for i, c := range cases {
		if c.Name == "" || c.Article == "" {
			return nil, fmt.Errorf("case %d: name and article are required", i+1)
		}
	}

	return cases, nil
}

// SyntheticCases is the built-in suite covering the scenarios the matcher is
// designed around. Used when no case file is supplied.
func SyntheticCases() []Case {
	return []Case{
		{
			Name:          "John Smith",
			Article:       "John Smith, a local businessman, was arrested yesterday for fraud.",
			ExpectedMatch: true,
			Type:          "exact_match",
		},
		{
			Name:          "William Johnson",
			Article:       "Bill Johnson announced his retirement from the company today.",
			ExpectedMatch: true,
			Type:          "nickname",
		},
		{
			Name:          "Mary Elizabeth Anderson",
			Article:       "M.E. Anderson was promoted to senior vice president.",
			ExpectedMatch: true,
			Type:          "initials",
		},
		{
			Name:          "James Robert Wilson",
			Article:       "Robert Wilson testified in court about the incident.",
			ExpectedMatch: true,
			Type:          "middle_as_first",
		},
		{
			Name:          "Michael Brown",
			Article:       "Michelle Brown won the award for her outstanding research.",
			ExpectedMatch: false,
			Type:          "false_positive",
		},
		{
			Name:          "Sarah Johnson-Smith",
			Article:       "Sarah Smith was quoted in the article about climate change.",
			ExpectedMatch: true,
			Type:          "hyphenated",
		},
		{
			Name:          "José María González",
			Article:       "Jose Gonzalez announced his candidacy for mayor.",
			ExpectedMatch: true,
			Type:          "cultural_variation",
		},
	}
}
