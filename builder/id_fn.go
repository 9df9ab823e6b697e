// SPDX-License-Identifier: MIT
//
// File: id_fn.go
// Role: Vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders the index in decimal: 0 → "0".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders spreadsheet column labels: 0 → "A", 25 → "Z", 26 → "AA".
// Labels of equal length sort like their indices, which keeps lexicographic
// tie-breaks readable on small fixtures.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PaddedIDFn returns zero-padded decimal IDs with a prefix, e.g. ("v", 3) → "v007".
// Fixed width makes string order match numeric order.
func PaddedIDFn(prefix string, width int) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PaddedIDFn: idx must be ≥ 0, got %d", idx))
		}

		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPaddedIDs selects PaddedIDFn(prefix, width).
func WithPaddedIDs(prefix string, width int) BuilderOption {
	return WithIDScheme(PaddedIDFn(prefix, width))
}
