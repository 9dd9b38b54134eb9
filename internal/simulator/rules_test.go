package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		idNumber string
		want     Decision
	}{
		{"suffix 0000 approves", "D1234560000", DecisionApprove},
		{"bare 0000 approves", "0000", DecisionApprove},
		{"suffix 9999 declines", "D1234569999", DecisionDecline},
		{"anything else goes to manual review", "D1234561234", DecisionManual},
		{"empty id number goes to manual review", "", DecisionManual},
		{"approve pattern must be a suffix", "0000D123456", DecisionManual},
		{"decline pattern must be a suffix", "9999D123456", DecisionManual},
		{"only the trailing digits count", "D12345600009999", DecisionDecline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.idNumber))
		})
	}
}
