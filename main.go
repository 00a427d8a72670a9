package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/corpusfreq/internal/count"
	"github.com/dtnitsch/corpusfreq/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "corpusfreq",
		Usage: "concurrent n-gram frequency counts over a directory of text files",
		// Bare invocation prints the quick-start reference instead of the
		// generated flag help.
		Action: func(c *cli.Context) error {
			fmt.Print(help.ColdstartYAML)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "count",
				Usage:  "count n-gram frequencies in all .txt files under a root directory",
				Action: count.CountAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "root",
						Usage: "directory scanned recursively for .txt files",
					},
					&cli.IntFlag{
						Name:    "ngram",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "sliding window width, 1 counts single words",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   4,
						Usage:   "fixed worker pool size",
					},
					&cli.IntFlag{
						Name:  "header",
						Value: 10,
						Usage: "maximum entries printed per worker block",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file; explicit flags override its values",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
