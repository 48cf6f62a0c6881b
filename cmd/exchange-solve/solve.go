// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/someonegg/exchange/record"
	"github.com/someonegg/exchange/scenario"
)

func doSolve(ctx context.Context, scenarioFile, dbFile, logFile string, verbose bool) error {
	sc, err := scenario.Load(scenarioFile)
	if err != nil {
		return fmt.Errorf("load scenario file failed: %w", err)
	}
	if verbose {
		sc.Solver.Verbose = true
	}

	res, err := scenario.Run(sc)
	if err != nil {
		return fmt.Errorf("solve round %d failed: %w", sc.Round, err)
	}
	fmt.Printf("%+v perfect:%v\n", res.Summary, res.Perfect)

	if dbFile != "" {
		if err := writeDB(ctx, dbFile, sc.Round, res.Trades); err != nil {
			return fmt.Errorf("write db file failed: %w", err)
		}
	}
	if logFile != "" {
		if err := writeLog(logFile, res.Trades); err != nil {
			return fmt.Errorf("write log file failed: %w", err)
		}
	}
	return nil
}

func writeDB(ctx context.Context, file string, round int, rows []record.Row) error {
	idx, err := record.OpenSQLite(file)
	if err != nil {
		return err
	}
	if err := idx.RecordRound(ctx, round, rows); err != nil {
		_ = idx.Close()
		return err
	}
	return idx.Close()
}

func writeLog(file string, rows []record.Row) error {
	w, err := record.NewJSONLZstdWriter(file)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}
