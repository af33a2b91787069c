// SPDX-License-Identifier: MIT
//
// Command rotas runs route searches on a map and prints each one.
//
//	rotas                                 # every algorithm, square demo, A to D
//	rotas -demo romania -algo astar,dijkstra
//	rotas -map grafo.txt -from arad       # destination: the estimate-0 city
//	rotas -algo dls -limit 3 -no-color
//	rotas -terrain hill.grid -from 0,0 -to 3,4 -heuristic euclidean -diagonal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/rotas/builder"
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/gridgraph"
	"github.com/katalvlaran/rotas/mapfile"
	"github.com/katalvlaran/rotas/report"
	"github.com/katalvlaran/rotas/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process: it returns 0 on success, 1 on a
// runtime failure and 2 on a usage error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "rotas:", err)
		return 2
	}

	from, to, err := endpoints(cfg)
	if err != nil {
		log.Error("cannot resolve route endpoints", "error", err)
		return 1
	}
	h, _ := search.ParseHeuristic(cfg.Heuristic)

	rep := report.New(stdout, report.WithNoColor(cfg.NoColor), report.WithVisits(!cfg.Quiet))
	_, err = rep.RunAll(ctx, search.Request{
		Origin:      from,
		Destination: to,
		Limit:       cfg.Limit,
		Heuristic:   h,
	}, cfg.Algos...)
	if err != nil {
		log.Error("search failed", "error", err)
		return 1
	}

	return 0
}

// endpoints loads the map named by cfg and resolves origin and destination.
func endpoints(cfg config) (*core.Node, *core.Node, error) {
	if cfg.MapPath != "" {
		m, err := mapfile.LoadFile(cfg.MapPath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.From == "" {
			return nil, nil, errors.New("-from is required with -map")
		}
		from, err := m.City(cfg.From)
		if err != nil {
			return nil, nil, err
		}
		if cfg.To == "" {
			to, err := m.Destination()
			return from, to, err
		}
		to, err := m.City(cfg.To)

		return from, to, err
	}

	if cfg.Terrain != "" {
		return terrainEndpoints(cfg)
	}

	demo, err := builder.LookupDemo(cfg.Demo)
	if err != nil {
		return nil, nil, err
	}
	g, err := builder.BuildMap(nil, demo.Build)
	if err != nil {
		return nil, nil, err
	}
	fromName, toName := demo.From, demo.To
	if cfg.From != "" {
		fromName = cfg.From
	}
	if cfg.To != "" {
		toName = cfg.To
	}
	from, err := g.Node(fromName)
	if err != nil {
		return nil, nil, err
	}
	to, err := g.Node(toName)

	return from, to, err
}

// terrainEndpoints builds the road map of a terrain grid. Both endpoints
// must be named since no city carries a zero estimate.
func terrainEndpoints(cfg config) (*core.Node, *core.Node, error) {
	if cfg.From == "" || cfg.To == "" {
		return nil, nil, errors.New("-from and -to are required with -terrain")
	}
	opts := gridgraph.DefaultGridOptions()
	if cfg.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.LoadFile(cfg.Terrain, opts)
	if err != nil {
		return nil, nil, err
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, nil, err
	}
	from, err := g.Node(cfg.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := g.Node(cfg.To)

	return from, to, err
}
