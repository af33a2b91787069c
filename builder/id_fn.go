// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// id_fn.go - city naming schemes.
//
// An IDFn turns a zero-based index into a city name. Schemes panic on
// indexes outside their domain; generated maps never pass such indexes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a city name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single upper-case letter: 0 -> "A", 25 -> "Z".
// Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet-style names: A..Z, AA..AZ, BA, ...
// Panics on negative idx.
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

// SymbolNumberIDFn returns an IDFn producing prefix+decimal index,
// e.g. SymbolNumberIDFn("city")(3) == "city3".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb names cities prefix0, prefix1, ...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs restores decimal names.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs names cities A..Z (at most 26 cities).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs names cities A..Z, AA, AB, ...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
