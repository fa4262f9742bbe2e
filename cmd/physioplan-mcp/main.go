// physioplan-mcp serves the PhysioPlan MCP tools over stdio, against either
// the local record store (-config) or a remote server (-server).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/physioplan/internal/config"
	physiomcp "github.com/claude/physioplan/internal/mcp"
	"github.com/claude/physioplan/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (local store mode)")
	serverURL := flag.String("server", "", "PhysioPlan server URL (remote mode, e.g. https://physioplan.tail1234.ts.net)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("physioplan-mcp", Version)
		return
	}

	// Logs go to stderr: stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds physiomcp.DataSource
	switch {
	case *serverURL != "":
		ds = physiomcp.NewHTTPClient(*serverURL)
		log.Info("MCP server starting", "mode", "remote", "server", *serverURL)
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		store, err := storage.Open(cfg.Store.Path)
		if err != nil {
			log.Error("failed to open store", "path", cfg.Store.Path, "error", err)
			os.Exit(1)
		}
		ds = store
		log.Info("MCP server starting", "mode", "local", "store", cfg.Store.Path)
	default:
		fmt.Fprintf(os.Stderr, "Usage: physioplan-mcp (-config config.yaml | -server <URL>)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := physiomcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
