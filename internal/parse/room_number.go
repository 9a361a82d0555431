package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	roomNumberRe = regexp.MustCompile(`^([A-Z]*)[\s\-#]*(\d+)$`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// groundFloorWing marks ground floor rooms such as "G05".
const groundFloorWing = "G"

// ParsedRoomNumber holds the structured data parsed from a room number.
type ParsedRoomNumber struct {
	Wing  string
	Floor int
	Seq   int
}

// ParseRoomNumber extracts wing, floor and sequence from a room number.
// The last two digits are the sequence on the floor and the leading digits are the floor,
// so "B-1204" is wing B, floor 12, room 4.
func ParseRoomNumber(raw string) (ParsedRoomNumber, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = spaceRe.ReplaceAllString(s, " ")

	m := roomNumberRe.FindStringSubmatch(s)
	if m == nil {
		return ParsedRoomNumber{}, fmt.Errorf("unable to parse room number: %q", raw)
	}
	wing, digits := m[1], m[2]

	// "G05": ground floor, room 5.
	if wing == groundFloorWing && len(digits) == 2 {
		seq, _ := strconv.Atoi(digits)
		return ParsedRoomNumber{Floor: 0, Seq: seq}, nil
	}

	if len(digits) < 3 {
		return ParsedRoomNumber{}, fmt.Errorf("room number %q has no floor digits", raw)
	}

	floor, err := strconv.Atoi(digits[:len(digits)-2])
	if err != nil {
		return ParsedRoomNumber{}, fmt.Errorf("invalid floor in room number %q: %w", raw, err)
	}
	seq, err := strconv.Atoi(digits[len(digits)-2:])
	if err != nil {
		return ParsedRoomNumber{}, fmt.Errorf("invalid sequence in room number %q: %w", raw, err)
	}

	return ParsedRoomNumber{Wing: wing, Floor: floor, Seq: seq}, nil
}
