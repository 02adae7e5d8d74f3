package validate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"valid starting with 9", "9876543210", true},
		{"valid starting with 6", "6000000000", true},
		{"leading digit 5 rejected", "5876543210", false},
		{"eleven digits rejected", "98765432100", false},
		{"nine digits rejected", "987654321", false},
		{"letters rejected", "98765abcde", false},
		{"empty rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidMobile(tt.mobile))
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "nurse1", NormalizeUsername("Nurse1"))
	assert.Equal(t, "admin", NormalizeUsername("  ADMIN  "))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestGeneratePIN(t *testing.T) {
	for i := 0; i < 1000; i++ {
		pin := GeneratePIN()
		assert.Len(t, pin, 4)

		n, err := strconv.Atoi(pin)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
