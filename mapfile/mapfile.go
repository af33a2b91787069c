// SPDX-License-Identifier: MIT
//
// Package mapfile loads road maps from a line-oriented text format.
//
// Each non-blank line is one whitespace-separated record; lines starting
// with '#' are comments:
//
//	cidade <name> [x y]              declare a city, optionally with coordinates
//	estrada <a> <b> [label...] <cost> connect two declared cities
//	estimativa <name> <value>        supply a heuristic estimate
//
// The road cost is the last token; a missing or non-numeric cost is 0, as
// is a non-numeric estimate. Records with any other keyword are ignored.
// A city must be declared before a road or estimate names it.
//
// The city whose estimate is 0 marks the implied destination; see
// Map.Destination.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rotas/core"
)

// Map is a loaded road map.
type Map struct {
	Graph *core.Graph

	estimated []string // cities with an estimate record, in record order
}

// Destination returns the first city whose estimate record is 0, in the
// order the records appear. Cities without an estimate record never
// qualify.
func (m *Map) Destination() (*core.Node, error) {
	for _, name := range m.estimated {
		n, err := m.Graph.Node(name)
		if err != nil {
			return nil, err
		}
		if n.SuppliedEstimate() == 0 {
			return n, nil
		}
	}

	return nil, ErrNoDestination
}

// City looks a city up by name, reporting ErrUnknownCity when absent.
func (m *Map) City(name string) (*core.Node, error) {
	n, err := m.Graph.Node(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return n, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses records from r into a new Map.
// The first malformed record or unknown city aborts the load.
func Load(r io.Reader, opts ...Option) (*Map, error) {
	o := loadOptions{mode: core.Supplied}
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{opts: o, m: &Map{Graph: core.NewGraph()}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := p.record(fields[0], fields[1:]); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}

	return p.m, nil
}

type parser struct {
	opts loadOptions
	m    *Map
	line int
}

func (p *parser) record(keyword string, args []string) error {
	switch keyword {
	case KeywordCity:
		return p.city(args)
	case KeywordRoad:
		return p.road(args)
	case KeywordEstimate:
		return p.estimate(args)
	default:
		return nil
	}
}

func (p *parser) city(args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("%w: %s wants <name> [x y], got %d tokens", ErrMalformedRecord, KeywordCity, len(args))
	}
	opts := []core.NodeOption{core.WithMode(p.opts.mode)}
	if len(args) == 3 {
		x, errX := strconv.ParseFloat(args[1], 64)
		y, errY := strconv.ParseFloat(args[2], 64)
		if errX != nil || errY != nil {
			return fmt.Errorf("%w: %s %s: bad coordinates %q %q", ErrMalformedRecord, KeywordCity, args[0], args[1], args[2])
		}
		opts = append(opts, core.WithPoint(x, y))
	}
	_, err := p.m.Graph.AddNode(args[0], opts...)

	return err
}

func (p *parser) road(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: %s wants <a> <b> [label...] <cost>", ErrMalformedRecord, KeywordRoad)
	}
	a, err := p.m.City(args[0])
	if err != nil {
		return err
	}
	b, err := p.m.City(args[1])
	if err != nil {
		return err
	}

	var cost float64
	var label string
	if len(args) > 2 {
		cost = number(args[len(args)-1])
		label = strings.Join(args[2:len(args)-1], " ")
	}
	_, err = p.m.Graph.Connect(a, b, cost, core.WithLabel(label))

	return err
}

func (p *parser) estimate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: %s wants <name> <value>", ErrMalformedRecord, KeywordEstimate)
	}
	n, err := p.m.City(args[0])
	if err != nil {
		return err
	}
	var v float64
	if len(args) > 1 {
		v = number(args[len(args)-1])
	}
	n.SetEstimate(v)
	p.m.estimated = append(p.m.estimated, n.Name())

	return nil
}

// number parses s, treating anything non-numeric as 0.
func number(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
