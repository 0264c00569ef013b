package main

import (
	"regexp"
	"strconv"
)

// Path segments come from splitting on runs of '.', '[' and ']'. There is no
// escaping, so a key containing a literal dot or bracket cannot be addressed.
var (
	pathSeparators = regexp.MustCompile(`[.\[\]]+`)
	pathIndex      = regexp.MustCompile(`^\d+$`)
)

// splitPath turns "data.items[0].price" into ["data","items","0","price"].
// Empty segments from leading, trailing or doubled separators are dropped.
func splitPath(path string) []string {
	var segs []string
	for _, s := range pathSeparators.Split(path, -1) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// extractPath resolves a dot/bracket path against v. The second result is
// false when the path does not resolve; a path landing on JSON null is still
// found, null being a value and not an absence.
//
// An all-digits segment always means an array index, so an object key that
// happens to look numeric is unreachable through this syntax. That matches
// the established path semantics; changing it would be a behavior change.
func extractPath(v any, path string) (any, bool) {
	cur := v
	for _, seg := range splitPath(path) {
		if cur == nil {
			return nil, false
		}
		if pathIndex.MatchString(seg) {
			arr, ok := cur.(Array)
			if !ok {
				return nil, false
			}
			i, err := strconv.Atoi(seg)
			if err != nil || i >= len(arr) {
				return nil, false
			}
			cur = arr[i]
			continue
		}
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		next, ok := obj.get(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
