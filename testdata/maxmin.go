package testdata

// Max2 has two integer parameters and no calls.
func Max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min2 mixes widths: both parameters still encode as Int.
func Min2(a int8, b uint64) int8 {
	if int64(a) <= int64(b) {
		return a
	}
	return int8(b)
}
