// Package celltype classifies declared-type labels and checks content against them.
package celltype

import "strconv"

// CellType is the closed set of types a definition row may declare.
type CellType int

const (
	// Empty marks an unrecognized or absent label and never conforms.
	Empty CellType = iota
	Text
	Integer
	Real
)

var labels = map[string]CellType{
	"Text":    Text,
	"Integer": Integer,
	"Real":    Real,
}

// Labels returns the recognized type labels in declaration order.
func Labels() []string {
	return []string{Text.String(), Integer.String(), Real.String()}
}

// Classify maps a label to its CellType, case-sensitive and exact.
func Classify(label string) CellType {
	return labels[label]
}

// Conforms reports whether content is a valid value of the type.
func Conforms(typ CellType, content string) bool {

	switch typ {
	case Text:
		return content != ""
	case Integer:
		_, err := strconv.ParseInt(content, 10, 64)
		return err == nil
	case Real:
		_, err := strconv.ParseFloat(content, 64)
		return err == nil
	case Empty:
		return false
	}
	return false
}

func (typ CellType) String() string {
	switch typ {
	case Text:
		return "Text"
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	}
	return ""
}
