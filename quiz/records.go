package quiz

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"linqquiz/sliceutil"
)

// FamilyRecord is a plain Family value, as found in YAML fixtures.
type FamilyRecord struct {
	FamilyID int            `yaml:"id"`
	Members  []PersonRecord `yaml:"persons"`
}

func (f FamilyRecord) ID() int { return f.FamilyID }

func (f FamilyRecord) Persons() []Person {
	return sliceutil.Map(f.Members, func(p PersonRecord) Person { return p })
}

// PersonRecord is a plain Person value.
type PersonRecord struct {
	Years int `yaml:"age"`
}

func (p PersonRecord) Age() int { return p.Years }

type familiesDocument struct {
	Families []FamilyRecord `yaml:"families"`
}

// DecodeFamilies reads a YAML document with a top-level "families" list.
// Unknown keys are rejected. An empty document yields no families.
func DecodeFamilies(r io.Reader) ([]FamilyRecord, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc familiesDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode families: %w", err)
	}
	if doc.Families == nil {
		return []FamilyRecord{}, nil
	}
	return doc.Families, nil
}

// AsFamilies converts records for use with GetFamilyStatistic.
// A nil records slice stays nil.
func AsFamilies(records []FamilyRecord) []Family {
	if records == nil {
		return nil
	}
	return sliceutil.Map(records, func(f FamilyRecord) Family { return f })
}
