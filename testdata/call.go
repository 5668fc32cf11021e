package testdata

import "fmt"

func plus(a, b int) int {
	return a + b
}

// UsePlus applies plus to its own result.
func UsePlus(a, b, c int) {
	x := plus(a, b)
	if x == 10 {
		y := plus(x, c)
		if y == 20 {
			fmt.Println("a + b == 10 and a + b + c == 20")
		}
	}
}

// UsePlusConst passes a constant operand.
func UsePlusConst(a int) int {
	return plus(a, 1)
}

func pair(x int) (int, int) {
	return x, x
}

// UsePair calls a function with two results.
func UsePair(x int) int {
	a, _ := pair(x)
	return a
}
