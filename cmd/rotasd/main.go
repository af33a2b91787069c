// SPDX-License-Identifier: MIT
//
// Command rotasd serves route searches over HTTP.
//
//	rotasd -addr :8090 -map grafo.txt
//	ROTAS_DEMO=romania rotasd
//
// See package api for the endpoints. SIGINT or SIGTERM triggers a
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/rotas/api"
	"github.com/katalvlaran/rotas/builder"
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/mapfile"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rotasd:", err)
		os.Exit(2)
	}
	log := newLogger(cfg, os.Stderr)

	g, err := loadGraph(cfg)
	if err != nil {
		log.Error("map_load_failed", "error", err, "map", cfg.MapPath, "demo", cfg.Demo)
		os.Exit(1)
	}
	log.Info("map_loaded", "cities", g.NodeCount(), "roads", g.EdgeCount())

	srv, err := api.NewServer(g,
		api.WithAddr(cfg.Addr),
		api.WithLogger(log),
		api.WithSearchTimeout(cfg.SearchTimeout),
	)
	if err != nil {
		log.Error("server_init_failed", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", "error", err)
			os.Exit(1)
		}
	case sig := <-sigs:
		log.Info("shutdown_initiated", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			log.Error("shutdown_failed", "error", err)
			os.Exit(1)
		}
		log.Info("shutdown_complete")
	}
}

func loadGraph(cfg Config) (*core.Graph, error) {
	if cfg.MapPath != "" {
		m, err := mapfile.LoadFile(cfg.MapPath)
		if err != nil {
			return nil, err
		}
		return m.Graph, nil
	}
	demo, err := builder.LookupDemo(cfg.Demo)
	if err != nil {
		return nil, err
	}

	return builder.BuildMap(nil, demo.Build)
}
