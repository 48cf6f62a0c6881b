// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "exchange-solve",
		Usage: "Utility for settling resource exchange rounds",
		Commands: []*cli.Command{
			solveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Settle the exchange round described by a scenario",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scenario",
			Required: true,
			Usage:    "specify the input scenario (.yaml or .json)",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "specify the sqlite index to record trades into",
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "specify the output trades.jsonl.zst",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every solver decision",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			scenarioFile = ctx.String("scenario")
			dbFile       = ctx.String("db")
			logFile      = ctx.String("log")
			verbose      = ctx.Bool("verbose")
		)
		return doSolve(ctx.Context, scenarioFile, dbFile, logFile, verbose)
	},
}
