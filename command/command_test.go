package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Of(MoveUp), "move-up"},
		{Of(Quit), "quit"},
		{Char('x'), `append-char('x')`},
		{Switch(2), "switch-view(2)"},
		{Of(Kind(99)), "kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
