package style

import (
	"testing"

	"charm.land/lipgloss/v2/table"
	"github.com/stretchr/testify/assert"
)

func TestCellStyler(t *testing.T) {

	styler := CellStyler(1, 2)

	assert.Equal(t, HeaderStyle, styler(table.HeaderRow, 2))
	assert.Equal(t, HlCellStyle, styler(1, 2))
	assert.Equal(t, HlRowStyle, styler(1, 0))
	assert.Equal(t, HlColStyle, styler(0, 2))
	assert.Equal(t, UnStyle, styler(0, 0))
}

func TestRowStyler(t *testing.T) {

	styler := RowStyler(3)

	assert.Equal(t, HlRowStyle, styler(3, 0))
	assert.Equal(t, UnStyle, styler(2, 0))
}
