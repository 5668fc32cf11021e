package testdata

// BoolAnd has boolean parameters only.
func BoolAnd(a, b bool) bool {
	return a && b
}

// Label has a string parameter, which has no sort.
func Label(s string, ok bool) bool {
	return ok && s != ""
}
