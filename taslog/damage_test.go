package taslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamageTypes(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want []string
	}{
		{"none", 0, []string{"Generic"}},
		{"fall", 1 << 5, []string{"fall"}},
		{"several", 1<<1 | 1<<6 | 1<<23, []string{"bullet", "blast", "mortar"}},
		{"unnamed bit", 1 << 11, []string{"Others"}},
		{"named and unnamed", 1<<0 | 1<<30, []string{"crush", "Others"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DamageTypes(tt.bits))
		})
	}
}

func TestDamageTypeString(t *testing.T) {
	assert.Equal(t, "burn, freeze", DamageTypeString(1<<3|1<<4))
	assert.Equal(t, "Generic", DamageTypeString(0))
}
