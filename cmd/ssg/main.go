package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/JonHurst/ssg/internal/build"
	"github.com/JonHurst/ssg/internal/config"
	serrors "github.com/JonHurst/ssg/internal/errors"
	"github.com/JonHurst/ssg/internal/library"
	"github.com/JonHurst/ssg/internal/logfields"
	"github.com/JonHurst/ssg/internal/render"
)

var version = "0.1"

var CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Build struct {
		Quick bool `short:"q" help:"Skip rendering outputs newer than all of their known inputs"`
	} `cmd:"" default:"1" help:"Build the site into the public directory"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ssg"),
		kong.Description("Static site generator with incremental rebuilds"),
		kong.Vars{"version": version})

	// A .env next to the invocation can set SSG_ROOT and anything the
	// config expands.
	_ = godotenv.Load()

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	adapter := serrors.NewCLIAdapter(CLI.Verbose, logger)

	switch ctx.Command() {
	case "build":
		if err := runBuild(CLI.Build.Quick); err != nil {
			os.Exit(adapter.Report(err))
		}
	}
}

func runBuild(quick bool) error {
	start := time.Now()
	buildID := uuid.NewString()[:8]

	root := os.Getenv("SSG_ROOT")
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return serrors.IO(".", err)
		}
		found, ok := config.FindSiteRoot(cwd)
		if !ok {
			return serrors.New(serrors.KindIO,
				"could not find site root (a directory with content and templates)")
		}
		root = found
	}

	cfg, err := config.Load(filepath.Join(root, config.DefaultFileName))
	if err != nil {
		return err
	}
	quick = quick || cfg.Quick

	content := filepath.Join(root, cfg.ContentDir)
	templates := filepath.Join(root, cfg.TemplatesDir)
	public := filepath.Join(root, cfg.PublicDir)

	slog.Info("Starting site build",
		logfields.BuildID(buildID),
		logfields.Path(root),
		logfields.Quick(quick))

	if err := build.CopyStatic(content, public); err != nil {
		return err
	}

	lib, err := library.NewBuilder(content).Build()
	if err != nil {
		return err
	}

	renderer := render.NewEngine(templates, lib)
	if err := build.NewEngine(lib, renderer, public).Run(quick); err != nil {
		return err
	}

	slog.Info("Build finished",
		logfields.BuildID(buildID),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))
	return nil
}
