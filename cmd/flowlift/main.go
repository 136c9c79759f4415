package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:                  "flowlift",
		Usage:                 "Translate visual-automation workflow exports into target-native artifacts",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			TranslateCommand(),
			ParseCommand(),
			ServeCommand(),
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
