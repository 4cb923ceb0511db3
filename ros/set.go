package ros

// setDifference returns the distinct items of lhs missing from rhs.
func setDifference(lhs []string, rhs []string) []string {
	left := map[string]bool{}
	for _, item := range lhs {
		left[item] = true
	}
	for _, item := range rhs {
		delete(left, item)
	}
	var result []string
	for k := range left {
		result = append(result, k)
	}
	return result
}
