package symbolic

import (
	"strconv"
	"strings"
)

// Separator joins a base name and an SSA index.
const Separator = "_"

// Name returns the solver symbol for version index of base.
//
// The index is rendered in decimal and never contains Separator, so the
// last Separator in the result always splits it back into (base, index).
// Distinct pairs therefore yield distinct names even when base itself
// contains Separator.
func Name(base string, index int) string {
	return base + Separator + strconv.Itoa(index)
}

// ParseName inverts Name.
func ParseName(name string) (base string, index int, ok bool) {
	i := strings.LastIndex(name, Separator)
	if i < 0 {
		return "", 0, false
	}
	digits := name[i+len(Separator):]
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return "", 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", 0, false
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	return name[:i], index, true
}

// Counter is the SSA version of a single variable.
// The zero value is version 0.
type Counter struct {
	index int
}

// Index returns the current version.
func (c *Counter) Index() int {
	return c.index
}

// Advance moves to the next version and returns it.
func (c *Counter) Advance() int {
	c.index++
	return c.index
}
