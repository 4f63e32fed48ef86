// Package internal provides the bundle generation pipeline.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/starford/tfphases/internal/evidence"
	"github.com/starford/tfphases/internal/manifest"
	"github.com/starford/tfphases/internal/materialize"
	"github.com/starford/tfphases/internal/models"
	"github.com/starford/tfphases/internal/render"
	"github.com/starford/tfphases/internal/storage"
)

// Run generates one phase bundle with the given options. Input validation
// happens before anything is written. Two runs sharing an output root at
// the same time are not supported.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		now:    time.Now,
		stdout: os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.request == nil {
		return fmt.Errorf("generate request is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		// Structured logs go to stderr; stdout carries only the result line.
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
		slog.SetDefault(logger)
	}

	req := app.request.Normalize()
	if req.OutRoot == "" {
		req.OutRoot = cfg.Output.Root
	}
	if req.TemplateRoot == "" {
		req.TemplateRoot = cfg.Templates.Root
	}

	if err := req.Validate(); err != nil {
		return err
	}

	bc := models.NewBuildContext(models.Phase(req.Phase), req.Cloud, req.Region, app.now())

	outRoot, err := filepath.Abs(req.OutRoot)
	if err != nil {
		return fmt.Errorf("resolve output root: %w", err)
	}

	logger.InfoContext(ctx, "Generating bundle",
		slog.String("phase", string(bc.Phase)),
		slog.String("cloud", bc.Cloud),
		slog.String("region", bc.Region),
		slog.String("template_dir", req.TemplateDir()),
		slog.String("out_root", outRoot),
		slog.String("generated_at_utc", bc.GeneratedAtUTC()))

	if err := os.MkdirAll(outRoot, 0o755); err != nil {
		return fmt.Errorf("create output root: %w", err)
	}

	store, err := storage.NewFS(outRoot)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	res, err := materialize.Materialize(req.TemplateDir(), store, materialize.BundleDir, render.New(bc))
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "Bundle materialized",
		slog.Int("files", res.Files),
		slog.Int("rendered", res.Rendered),
		slog.Int("copied", res.Copied))

	written, err := evidence.Synthesize(store, bc)
	if err != nil {
		return fmt.Errorf("write evidence: %w", err)
	}
	for _, p := range written {
		logger.DebugContext(ctx, "Evidence written", slog.String("path", p))
	}

	id := manifest.Identity{Name: cfg.Manifest.Name, Profile: cfg.Manifest.Profile}
	m, err := manifest.Build(store, bc, id, materialize.BundleDir, evidence.Dir)
	if err != nil {
		return fmt.Errorf("build manifest: %w", err)
	}
	if err := manifest.Write(store, m); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	logger.InfoContext(ctx, "Manifest written",
		slog.String("path", manifest.FileName),
		slog.Int("files", len(m.Files)))

	fmt.Fprintf(app.stdout, "OK: generated phase='%s' to %s\n", bc.Phase, outRoot)
	return nil
}
