package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/ansuz/internal"
	pkgconfig "github.com/starford/ansuz/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func loadOptions(cmd *cli.Command) ([]internal.Option, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return []internal.Option{internal.WithConfig(cfg)}, nil
}

func runBuild(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunBuild(ctx, opts...)
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunWatch(ctx, opts...)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, opts...)
}

// configFlags returns a fresh flag set so every command resolves
// --config locally.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: "config/config.yaml",
			Value:       "config/config.yaml",
			Sources:     cli.EnvVars("APP_CONFIG_FILE"),
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "ansuz",
		Usage:  "Publish a directory of Markdown notes as a static HTML site with a searchable index",
		Action: runBuild,
		Flags:  configFlags(),
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Run one build pass and exit",
				Flags:  configFlags(),
				Action: runBuild,
			},
			{
				Name:   "watch",
				Usage:  "Build, then rebuild whenever a note changes",
				Flags:  configFlags(),
				Action: runWatch,
			},
			{
				Name:   "mcp",
				Usage:  "Serve Ansuz tools over MCP stdio transport",
				Flags:  configFlags(),
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
