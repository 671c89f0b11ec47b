// Package main provides the specforge CLI: it parses a message-spec
// spreadsheet (xlsx workbook or CSV) into the canonical IR and writes the
// serialized tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/specforge/specforge/config"
	"github.com/specforge/specforge/emit"
	"github.com/specforge/specforge/parser"
)

func main() {
	src := flag.String("src", "", "source document (.xlsx, .xlsm or .csv)")
	shared := flag.String("shared", "", "optional separate shared-header document")
	out := flag.String("o", "", "output IR path (default: stdout)")
	configPath := flag.String("config", "", "optional YAML config file")
	maxNameLen := flag.Int("max-name-len", 0, "override maximum identifier length")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *src == "" {
		fmt.Fprintln(os.Stderr, "specforge: -src is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	cfg.Logger = log
	if *maxNameLen > 0 {
		cfg.MaxIdentifierLength = *maxNameLen
	}

	ctx := context.Background()
	model, err := parser.New(cfg).ParseFile(ctx, *src, *shared)
	if err != nil {
		log.Error("parse failed", "src", *src, "error", err)
		os.Exit(1)
	}

	serializer := &emit.Serializer{}
	data, err := serializer.Emit(model)
	if err != nil {
		log.Error("serialization failed", "error", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := emit.Write(ctx, *out, data); err != nil {
		log.Error("write failed", "dest", *out, "error", err)
		os.Exit(1)
	}
	log.Debug("wrote IR", "dest", *out, "bytes", len(data))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}
