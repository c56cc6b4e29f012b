package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeFromCompletion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean in_scope", "in_scope", ScopeIn},
		{"clean out_of_scope", "out_of_scope", ScopeOut},
		{"clean uncertain", "uncertain", ScopeUncertain},
		{"padded label", "  In_Scope\n", ScopeIn},
		{"echoed sentence", "A resposta é: out_of_scope.", ScopeOut},
		{"out wins over in substring", "out_of_scope (contains in_scope)", ScopeOut},
		{"garbage", "não sei dizer", ScopeUncertain},
		{"empty", "", ScopeUncertain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scopeFromCompletion(tt.input))
		})
	}
}
