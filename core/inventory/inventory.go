package inventory

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for a submission with no non-blank lines.
	ErrEmpty = errors.New("card list is empty")
	// ErrInvalidFormat is wrapped by every ValidationError.
	ErrInvalidFormat = errors.New("invalid card list format")
)

// ValidationError reports the first line that does not match the grammar.
type ValidationError struct {
	// Line is the 1-based position among non-blank lines.
	Line int
	Text string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid card list format at line %d (%q): use one card per line, e.g. \"4 Lightning Bolt\" or \"1 Island\"", e.Line, e.Text)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormat
}

var (
	allowedLine = regexp.MustCompile(`(?i)^(\d+\s+)?[\w\-,'’.()!/:áéíóúãõâêîôûçÁÉÍÓÚÃÕÂÊÎÔÛÇ ]+$`)
	itemLine    = regexp.MustCompile(`^(?:(\d+)\s+)?(.+)`)
)

// Inventory maps a normalised card name to the owned quantity.
type Inventory map[string]int

// Owned returns the quantity owned for an already normalised name.
func (inv Inventory) Owned(name string) int {
	return inv[name]
}

// Validate checks text against the line grammar without parsing it.
func Validate(text string) error {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++
		if !allowedLine.MatchString(line) {
			return &ValidationError{Line: n, Text: line}
		}
	}
	if n == 0 {
		return ErrEmpty
	}
	return nil
}

// Parse converts text into an Inventory. It never fails; lines that do not
// yield a name are ignored.
func Parse(text string) Inventory {
	inv := make(Inventory)
	for _, line := range strings.Split(text, "\n") {
		m := itemLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(m[2]))
		if name == "" {
			continue
		}
		inv[name] = addQuantity(inv[name], parseQuantity(m[1]))
	}
	return inv
}

// ParseStrict validates text and then parses it.
func ParseStrict(text string) (Inventory, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}
	return Parse(text), nil
}

func parseQuantity(s string) int {
	if s == "" {
		return 1
	}
	q, err := strconv.Atoi(s)
	if err != nil {
		// only overflow can fail here, the pattern guarantees digits
		return math.MaxInt32
	}
	return min(q, math.MaxInt32)
}

func addQuantity(a, b int) int {
	return min(a+b, math.MaxInt32)
}
