// Package analysis derives bibliometric indicators from a dataset table:
// per-researcher metrics, h-index, dataset-wide statistics, and the text
// analysis report.
package analysis

import "sort"

// HIndex returns the largest h such that at least h of the papers have
// received at least h citations each. It returns 0 for an empty list and
// never mutates the caller's slice.
func HIndex(citations []int) int {
	sorted := make([]int, len(citations))
	copy(sorted, citations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	h := 0
	for i, c := range sorted {
		if c < i+1 {
			break
		}
		h = i + 1
	}
	return h
}
