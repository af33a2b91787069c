// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// demo.go - named built-in maps with a suggested route, used by the
// binaries when no map file is given.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDemo is returned by LookupDemo for an unrecognised name.
var ErrUnknownDemo = errors.New("builder: unknown demo map")

// Demo is a built-in map together with its suggested origin and destination.
type Demo struct {
	Name  string
	From  string
	To    string
	Build Constructor
}

// DefaultDemo is the map used when nothing else is requested.
const DefaultDemo = "square"

// Demos lists the built-in maps.
func Demos() []Demo {
	return []Demo{
		{Name: "square", From: "A", To: "D", Build: Square()},
		{Name: "romania", From: "arad", To: RomaniaDestination, Build: Romania()},
	}
}

// LookupDemo finds a built-in map by name, case-insensitively.
func LookupDemo(name string) (Demo, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range Demos() {
		if d.Name == key {
			return d, nil
		}
	}

	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}
