package testdata

var (
	counter  int
	enabled  bool
	balances map[int]int
	name     string
)

// Inc stores to counter twice.
func Inc(n int) int {
	counter = counter + n
	counter = counter * 2
	return counter
}

// Toggle flips enabled.
func Toggle() {
	enabled = !enabled
}

// Credit reads balances without replacing the map.
func Credit(who, amount int) {
	balances[who] += amount
}

// Rename stores to a string variable.
func Rename(s string) {
	name = s
}
