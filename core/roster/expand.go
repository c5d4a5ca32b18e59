package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedRangeError reports a roll-range token that is neither a single
// integer nor a "start-end" range.
type MalformedRangeError struct {
	Token string
}

func (err *MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed roll number range %q", err.Token)
}

// Expand parses a comma-separated roll-range expression ("1-22,25,30-32")
// and returns the concrete roll numbers, each formed as prefix + the number
// zero-padded to at least two digits. Ranges are inclusive and ascending; an
// inverted range produces nothing. Output order follows token order, then
// ascending within each range.
//
// Expand is pure: the whole expression is validated before any caller may
// act on the result.
func Expand(prefix, rangeExpr string) ([]string, error) {
	rolls := make([]string, 0)
	for _, token := range strings.Split(rangeExpr, ",") {
		token = strings.TrimSpace(token)
		parts := strings.Split(token, "-")
		switch len(parts) {
		case 1:
			n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, &MalformedRangeError{Token: token}
			}
			rolls = append(rolls, prefix+pad2(n))
		case 2:
			start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, &MalformedRangeError{Token: token}
			}
			end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, &MalformedRangeError{Token: token}
			}
			for n := start; n <= end; n++ {
				rolls = append(rolls, prefix+pad2(n))
			}
		default:
			return nil, &MalformedRangeError{Token: token}
		}
	}
	return rolls, nil
}

// pad2 zero-pads to two digits; numbers >= 100 keep all their digits.
func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
