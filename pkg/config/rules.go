package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cliffordp/charlen/pkg/lengthrule"
)

// ruleFile is the YAML document shape for rule definitions:
//
//	rules:
//	  - form_id: 524
//	    field_id: 1
//	    min_chars: 4
//	    max_chars: 5
//	  - form_id: 746
//	    field_id: [1.3, 1.6]
//	    min_chars: 2
//	    max_chars: 40
type ruleFile struct {
	Rules []lengthrule.Options `yaml:"rules"`
}

// LoadRules decodes a YAML rule document. Only syntax errors are reported
// here; semantically bad rules decode fine and degrade to inert
// configurations during validation.
func LoadRules(r io.Reader) ([]lengthrule.Options, error) {
	var doc ruleFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrParsingRules, err)
	}
	return doc.Rules, nil
}

// LoadRulesFile reads and decodes the rule document at path.
func LoadRulesFile(path string) ([]lengthrule.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadingRules, err)
	}
	defer f.Close()
	return LoadRules(f)
}
