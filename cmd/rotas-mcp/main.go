// SPDX-License-Identifier: MIT
//
// Command rotas-mcp serves a road map to MCP clients over stdio.
//
//	rotas-mcp -map grafo.txt
//	ROTAS_DEMO=romania rotas-mcp
//
// Logs go to stderr; stdout carries the protocol.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/rotas/builder"
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/mapfile"
	"github.com/katalvlaran/rotas/mcpserver"
)

var version = "dev"

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	fs := flag.NewFlagSet("rotas-mcp", flag.ExitOnError)
	mapPath := fs.String("map", os.Getenv("ROTAS_MAP"), "map file; empty serves the -demo map")
	demo := fs.String("demo", envOrDefault("ROTAS_DEMO", builder.DefaultDemo), "built-in map: square|romania")
	_ = fs.Parse(os.Args[1:])

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := loadGraph(*mapPath, *demo)
	if err != nil {
		log.Error("map_load_failed", "error", err)
		os.Exit(1)
	}
	log.Info("map_loaded", "cities", g.NodeCount(), "roads", g.EdgeCount())

	if err := mcpserver.NewServer(g, version, log).Serve(); err != nil {
		fmt.Fprintln(os.Stderr, "rotas-mcp:", err)
		os.Exit(1)
	}
}

func loadGraph(path, demo string) (*core.Graph, error) {
	if path != "" {
		m, err := mapfile.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return m.Graph, nil
	}
	d, err := builder.LookupDemo(demo)
	if err != nil {
		return nil, err
	}

	return builder.BuildMap(nil, d.Build)
}
