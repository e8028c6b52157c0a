package variant

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type altSchema struct {
	Name  string     `yaml:"name"`
	Arity int        `yaml:"arity"`
	Value *yaml.Node `yaml:"value"`
}

type familySchema struct {
	Name         string      `yaml:"name"`
	Alternatives []altSchema `yaml:"alternatives"`
}

type schemaDoc struct {
	Families []familySchema `yaml:"families"`
}

// ParseFamilies declares families from a YAML document of the form:
//
//	families:
//	  - name: HttpStatus
//	    alternatives:
//	      - name: ok
//	        value: 200
//	      - name: not_found
//	        value: 404
//	      - name: redirect
//	        arity: 1
//
// Arity defaults to 0; a value entry registers the alternative's
// default literal. Declaration failures are the same as with New.
func ParseFamilies(data []byte) (map[string]*Family, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse family schema: %w", err)
	}

	out := make(map[string]*Family, len(doc.Families))
	for _, fs := range doc.Families {
		if fs.Name == "" {
			return nil, fmt.Errorf("family schema: family without a name")
		}
		if _, dup := out[fs.Name]; dup {
			return nil, fmt.Errorf("family schema: family %q declared twice", fs.Name)
		}

		alts := make([]AltDecl, 0, len(fs.Alternatives))
		for _, as := range fs.Alternatives {
			if as.Name == "" {
				return nil, fmt.Errorf("family schema: %s declares an alternative without a name", fs.Name)
			}
			if as.Value == nil {
				alts = append(alts, Alt(as.Name, as.Arity))
				continue
			}
			var value any
			if err := as.Value.Decode(&value); err != nil {
				return nil, fmt.Errorf("family schema: %s.%s value: %w", fs.Name, as.Name, err)
			}
			alts = append(alts, AltValue(as.Name, as.Arity, value))
		}

		f, err := New(fs.Name, alts...)
		if err != nil {
			return nil, err
		}
		out[fs.Name] = f
	}
	return out, nil
}
