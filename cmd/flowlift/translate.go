package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/flowlift/flowlift/pkg/log"
	"github.com/flowlift/flowlift/pkg/mapper"
	"github.com/flowlift/flowlift/pkg/services"
)

// TranslateCommand runs the full pipeline over a document file (or stdin)
// and writes the result as JSON to stdout.
func TranslateCommand() *cli.Command {
	return &cli.Command{
		Name:      "translate",
		Aliases:   []string{"t"},
		Usage:     "Parse, map and translate a workflow export",
		ArgsUsage: "[document file, - for stdin]",
		Flags: append(documentFlags(),
			&cli.StringFlag{
				Name:    "mapping-table",
				Aliases: []string{"m"},
				Usage:   "Path to a YAML or JSON node-type mapping table",
			},
			&cli.StringFlag{
				Name:  "overrides",
				Usage: "Path to a YAML or JSON mapping-table override file",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Base URL prepended to webhook trigger paths",
				Sources: cli.EnvVars("FLOWLIFT_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Report store URL; when set, the report is persisted",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
		),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))
			logger := log.WithModule("translate")

			document, err := readDocument(command)
			if err != nil {
				return err
			}

			table, err := loadTableFlag(command, "mapping-table")
			if err != nil {
				return err
			}

			overrides, err := loadTableFlag(command, "overrides")
			if err != nil {
				return err
			}

			service, cleanup, err := newTranslationService(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			result, err := service.Translate(ctx, services.TranslateRequest{
				Document:     document,
				MappingTable: table,
				Overrides:    overrides,
				BaseURL:      command.String("base-url"),
			})
			if err != nil {
				return err
			}

			return writeJSON(result)
		},
	}
}

// ParseCommand runs only the parser stage and writes the IR to stdout.
func ParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Parse a workflow export into the normalized representation",
		ArgsUsage: "[document file, - for stdin]",
		Flags:     documentFlags(),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))
			logger := log.WithModule("parse")

			document, err := readDocument(command)
			if err != nil {
				return err
			}

			service := services.NewTranslation(nil, logger)

			workflow, err := service.Parse(ctx, document)
			if err != nil {
				return err
			}

			return writeJSON(workflow)
		},
	}
}

func documentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
	}
}

func readDocument(command *cli.Command) ([]byte, error) {
	path := command.Args().First()
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read document from stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return data, nil
}

func loadTableFlag(command *cli.Command, flag string) (map[string]string, error) {
	path := command.String(flag)
	if path == "" {
		return nil, nil
	}

	return mapper.LoadTable(path)
}

func writeJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
