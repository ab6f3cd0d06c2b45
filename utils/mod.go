package utils

import "golang.org/x/exp/slices"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove returns a copy of slice without the first occurrence of item.
func Remove[T comparable](slice []T, item T) []T {
	out := slices.Clone(slice)
	if i := FindIndex(out, item); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	return out
}
