// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/rotas/search"
)

type config struct {
	MapPath   string
	Terrain   string
	Diagonal  bool
	Demo      string
	From      string
	To        string
	Algos     []search.Algorithm
	Limit     int
	Heuristic string
	NoColor   bool
	Quiet     bool
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseFlags reads the command line. ROTAS_MAP and NO_COLOR supply
// defaults that flags override.
func parseFlags(args []string, usage io.Writer) (config, error) {
	fs := flag.NewFlagSet("rotas", flag.ContinueOnError)
	fs.SetOutput(usage)

	mapPath := fs.String("map", envOrDefault("ROTAS_MAP", ""), "map file (cidade/estrada/estimativa records); empty runs a demo map")
	terrain := fs.String("terrain", "", "terrain grid file (digits, '.' and '#'); cities are named row,col")
	diagonal := fs.Bool("diagonal", false, "join diagonal terrain cells")
	demo := fs.String("demo", "square", "built-in map when -map is empty: square|romania")
	from := fs.String("from", "", "origin city (default: the demo's origin)")
	to := fs.String("to", "", "destination city (default: the demo's destination, or the map's estimate-0 city)")
	algo := fs.String("algo", "all", "comma-separated algorithms, or all")
	limit := fs.Int("limit", 0, "depth limit for depth-limited, ceiling for iterative-deepening (0 = none)")
	heuristic := fs.String("heuristic", search.HeuristicEstimate, "heuristic for greedy/astar: "+strings.Join(search.HeuristicNames(), "|"))
	manhattan := fs.Bool("manhattan", false, "shorthand for -heuristic manhattan")
	noColor := fs.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	quiet := fs.Bool("quiet", false, "omit the visiting lines")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if *limit < 0 {
		return config{}, errors.New("limit cannot be negative")
	}

	if *mapPath != "" && *terrain != "" {
		return config{}, errors.New("-map and -terrain are mutually exclusive")
	}

	algos, err := parseAlgos(*algo)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		MapPath:   strings.TrimSpace(*mapPath),
		Terrain:   strings.TrimSpace(*terrain),
		Diagonal:  *diagonal,
		Demo:      *demo,
		From:      strings.TrimSpace(*from),
		To:        strings.TrimSpace(*to),
		Algos:     algos,
		Limit:     *limit,
		Heuristic: *heuristic,
		NoColor:   *noColor,
		Quiet:     *quiet,
	}
	if *manhattan {
		cfg.Heuristic = search.HeuristicManhattan
	}
	if _, err := search.ParseHeuristic(cfg.Heuristic); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func parseAlgos(s string) ([]search.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return search.All(), nil
	}
	var out []search.Algorithm
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := search.Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, errors.New("no algorithm selected")
	}

	return out, nil
}
