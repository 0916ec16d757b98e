package celltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		typ   CellType
	}{
		{"Text", Text},
		{"Integer", Integer},
		{"Real", Real},
		{"", Empty},
		{"text", Empty},
		{"INTEGER", Empty},
		{" Real", Empty},
		{"int", Empty},
		{"Bogus", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.typ, Classify(tt.label))
		})
	}
}

func TestConforms(t *testing.T) {
	tests := []struct {
		name    string
		typ     CellType
		content string
		ok      bool
	}{
		{"text non-empty", Text, "label", true},
		{"text empty", Text, "", false},
		{"text whitespace", Text, " ", true},
		{"integer", Integer, "42", true},
		{"integer negative", Integer, "-7", true},
		{"integer plus", Integer, "+7", true},
		{"integer decimal", Integer, "42.0", false},
		{"integer residue", Integer, "12abc", false},
		{"integer empty", Integer, "", false},
		{"integer padded", Integer, " 42", false},
		{"integer overflow", Integer, "99999999999999999999", false},
		{"real", Real, "3.14", true},
		{"real whole", Real, "3", true},
		{"real exponent", Real, "1e-3", true},
		{"real nan", Real, "NaN", true},
		{"real inf", Real, "-Inf", true},
		{"real overflow", Real, "1e999", false},
		{"real residue", Real, "3.14x", false},
		{"real empty", Real, "", false},
		{"empty anything", Empty, "anything", false},
		{"empty empty", Empty, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, Conforms(tt.typ, tt.content))
		})
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, label := range Labels() {
		assert.Equal(t, label, Classify(label).String())
	}
	assert.Equal(t, "", Empty.String())
}
