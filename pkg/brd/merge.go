package brd

import "strings"

// AppendMerge joins existing content with an addition using a blank-line
// separator. Existing content is never overwritten; an empty addition leaves
// the value untouched.
func AppendMerge(existing, addition string) string {
	addition = strings.TrimSpace(addition)
	if addition == "" {
		return existing
	}
	if IsEmpty(existing) {
		return addition
	}
	return strings.TrimRight(existing, "\n ") + "\n\n" + addition
}
