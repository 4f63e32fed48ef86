package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/tfphases/internal"
	"github.com/starford/tfphases/internal/apperr"
	pkgconfig "github.com/starford/tfphases/pkg/config"
)

func generate(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	req := internal.GenerateRequest{
		Phase:        cmd.String("phase"),
		Cloud:        cmd.String("cloud"),
		Region:       cmd.String("region"),
		OutRoot:      cmd.String("out"),
		TemplateRoot: cmd.String("templates"),
	}

	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithRequest(req),
		internal.WithStdout(cmd.Root().Writer),
	)
}

func usage(_ context.Context, cmd *cli.Command) error {
	if err := cli.ShowAppHelp(cmd); err != nil {
		return err
	}
	return apperr.ErrUsage
}

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "startup-terraform-phases",
		Usage:  "Generate reproducible, hash-manifested Terraform phase bundles",
		Writer: stdout,
		Action: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Generate a phase bundle into the output root",
				Action: generate,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "phase",
						Usage:   "Phase to generate (preseed, seed, series-a, series-b) (required)",
						Sources: cli.EnvVars("TFP_PHASE"),
					},
					&cli.StringFlag{
						Name:    "cloud",
						Usage:   "Target cloud; only aws is accepted (required)",
						Sources: cli.EnvVars("TFP_CLOUD"),
					},
					&cli.StringFlag{
						Name:    "region",
						Usage:   "Target region (required)",
						Sources: cli.EnvVars("TFP_REGION"),
					},
					&cli.StringFlag{
						Name:        "out",
						Usage:       "Output root",
						DefaultText: "/out",
						Sources:     cli.EnvVars("TFP_OUT"),
					},
					&cli.StringFlag{
						Name:        "templates",
						Usage:       "Template root holding one directory per phase",
						DefaultText: "/app/templates",
						Sources:     cli.EnvVars("TFP_TEMPLATES"),
					},
				},
			},
		},
	}
}

func main() {
	cmd := newCommand(os.Stdout)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, apperr.ErrUsage) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		}
		os.Exit(apperr.ExitCode(err))
	}
}
