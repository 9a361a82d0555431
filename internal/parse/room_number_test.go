package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoomNumber(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  ParsedRoomNumber
		expectErr bool
	}{
		{
			name:     "Plain three digits",
			raw:      "204",
			expected: ParsedRoomNumber{Floor: 2, Seq: 4},
		},
		{
			name:     "Four digits",
			raw:      "1203",
			expected: ParsedRoomNumber{Floor: 12, Seq: 3},
		},
		{
			name:     "Wing with dash",
			raw:      "B-204",
			expected: ParsedRoomNumber{Wing: "B", Floor: 2, Seq: 4},
		},
		{
			name:     "Lowercase wing with spaces",
			raw:      "  east 1015 ",
			expected: ParsedRoomNumber{Wing: "EAST", Floor: 10, Seq: 15},
		},
		{
			name:     "Hash separator",
			raw:      "A#310",
			expected: ParsedRoomNumber{Wing: "A", Floor: 3, Seq: 10},
		},
		{
			name:     "Ground floor",
			raw:      "G05",
			expected: ParsedRoomNumber{Floor: 0, Seq: 5},
		},
		{
			name:     "Wing G with floor digits",
			raw:      "G-105",
			expected: ParsedRoomNumber{Wing: "G", Floor: 1, Seq: 5},
		},
		{
			name:      "Too short",
			raw:       "12",
			expectErr: true,
		},
		{
			name:      "No digits",
			raw:       "Penthouse",
			expectErr: true,
		},
		{
			name:      "Empty",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseRoomNumber(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			}
		})
	}
}
