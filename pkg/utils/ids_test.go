package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequenceID(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{"empty store", "022", nil, "0220000001"},
		{"increments past max", "022", []string{"0220000001", "0220000007", "0220000003"}, "0220000008"},
		{"ignores other prefixes", "022", []string{"0110000005", "0330000009"}, "0220000001"},
		{"ignores malformed ids", "022", []string{"022abc", "0220000002"}, "0220000003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextSequenceID(tt.prefix, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextSequenceIDRejectsBadPrefix(t *testing.T) {
	_, err := NextSequenceID("22", nil)
	assert.Error(t, err)
}

func TestNextSequenceIDNeverReissuesAfterDelete(t *testing.T) {
	// highest survivor drives the counter, so a deleted max is still skipped
	got, err := NextSequenceID("022", []string{"0220000009"})
	require.NoError(t, err)
	assert.Equal(t, "0220000010", got)
}

func TestNextCounterID(t *testing.T) {
	assert.Equal(t, "INV000001", NextCounterID("INV", nil))
	assert.Equal(t, "INV000004", NextCounterID("INV", []string{"INV000003", "PAY000009"}))
	assert.Equal(t, "PAYROLL-000002", NextCounterID("PAYROLL-", []string{"PAYROLL-000001"}))
}
