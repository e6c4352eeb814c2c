package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-workbench-mcp/internal/catalog"
	"github.com/ironsheep/image-workbench-mcp/internal/config"
	"github.com/ironsheep/image-workbench-mcp/internal/logging"
	"github.com/ironsheep/image-workbench-mcp/internal/server"
	"github.com/ironsheep/image-workbench-mcp/internal/session"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `image-workbench - MCP server for interactive image processing

Usage: image-workbench [options]

Options:
  --config PATH    YAML configuration file (missing file uses defaults)
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables:
  IMAGE_WORKBENCH_LOG_LEVEL=debug    Override the configured log level

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).
`

func main() {
	flags := flag.NewFlagSet("image-workbench", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {}

	configPath := flags.String("config", "", "YAML configuration file")
	showVersion := flags.Bool("version", false, "Print version information")
	flags.BoolVar(showVersion, "v", false, "Print version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Print(usage)
			return
		}
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("image-workbench %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "image-workbench: %v\n", err)
		os.Exit(1)
	}

	// stdout is reserved for the MCP protocol
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
		"config":  *configPath,
	}).Info("starting image workbench")

	cat, err := catalog.New(cfg.CatalogOptions())
	if err != nil {
		logger.WithError(err).Fatal("invalid transform configuration")
	}

	server.Version = Version
	sess := session.New(cat, logger, cfg.Session.MaxZoom)
	srv := server.New(sess, cat, logger)
	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Fatal("server error")
	}
	logger.Info("stdin closed, shutting down")
}
