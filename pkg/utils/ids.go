package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Role ID prefixes. Profile IDs are the 3-digit prefix followed by a
// zero-padded 7-digit sequence number.
const (
	TeacherIDPrefix = "011"
	StudentIDPrefix = "022"
	ParentIDPrefix  = "033"
	AdminIDPrefix   = "011"
)

// NextSequenceID generates the next prefixed ID given the IDs already in use.
// It scans for the highest existing sequence number under the prefix, so
// deleting a record never causes an ID to be reissued out of order.
func NextSequenceID(prefix string, existing []string) (string, error) {
	if len(prefix) != 3 {
		return "", fmt.Errorf("id prefix must be exactly 3 digits, got %q", prefix)
	}

	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[3:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%07d", prefix, max+1), nil
}

// NextCounterID generates the next finance document ID, e.g. INV000001 or
// PAYROLL-000001, with the separator controlled by the caller's prefix.
func NextCounterID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%06d", prefix, max+1)
}
