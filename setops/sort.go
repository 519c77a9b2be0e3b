// SPDX-License-Identifier: MIT
// File: sort.go
// Role: Fallback sort for inputs too large for the insertion-sort fast path.

package setops

import (
	"cmp"
	"sort"
)

// sortSlice sorts s ascending via the standard library, used only once s
// exceeds insertionThreshold elements.
func sortSlice[T cmp.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
