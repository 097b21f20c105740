// Package transform provides the value-transformation strategies that derive
// new field values from a template value and a word.
package transform

// Modification is a single derived field value produced by a Strategy.
type Modification struct {
	FieldValue string
}

// Strategy derives one or more modifications from an original field value and
// a word. Implementations are pure: no side effects, no retained state beyond
// construction-time parameters.
type Strategy interface {
	Apply(original, word string) []Modification
}

// Replace discards the original value and substitutes the word.
type Replace struct{}

func (Replace) Apply(_, word string) []Modification {
	return []Modification{{FieldValue: word}}
}

// Prefix prepends the word to the original value.
type Prefix struct{}

func (Prefix) Apply(original, word string) []Modification {
	return []Modification{{FieldValue: word + original}}
}

// Suffix appends the word to the original value.
type Suffix struct{}

func (Suffix) Apply(original, word string) []Modification {
	return []Modification{{FieldValue: original + word}}
}

// Both produces the prefixed and the suffixed value as separate
// modifications, prefixed form first.
type Both struct{}

func (Both) Apply(original, word string) []Modification {
	return []Modification{
		{FieldValue: word + original},
		{FieldValue: original + word},
	}
}

// Generator appends the word to a base value captured at construction. The
// original value passed to Apply is ignored; because the base is fixed for
// the lifetime of the run, each run must construct its own Generator.
type Generator struct {
	base string
}

// NewGenerator creates a Generator seeded with the given base value.
func NewGenerator(base string) Generator {
	return Generator{base: base}
}

func (g Generator) Apply(_, word string) []Modification {
	return []Modification{{FieldValue: g.base + word}}
}
