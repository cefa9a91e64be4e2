package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"ok", "Abc123!", true},
		{"digits spread out", "A1b2c3@", true},
		{"too short", "A12!b", false},
		{"no uppercase", "abc123!", false},
		{"two digits only", "Abcd12!", false},
		{"no special", "Abc1234", false},
		{"special not in allowed set", "Abc123?", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abc123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abc123!", hash)

	assert.True(t, CheckPassword(hash, "Abc123!"))
	assert.False(t, CheckPassword(hash, "Abc123"))
	assert.False(t, CheckPassword("not-a-hash", "Abc123!"))
}
