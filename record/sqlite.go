// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is an index of rounds and their trades.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			round INTEGER PRIMARY KEY,
			trades INTEGER NOT NULL,
			qty REAL NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trades (
			round INTEGER NOT NULL REFERENCES rounds(round) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			requester TEXT NOT NULL,
			supplier TEXT NOT NULL,
			commodity TEXT NOT NULL,
			qty REAL NOT NULL,
			PRIMARY KEY (round, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS trades_by_commodity ON trades(commodity, round);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RecordRound replaces whatever was recorded for round with rows.
func (s *SQLite) RecordRound(ctx context.Context, round int, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades WHERE round=?`, round); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rounds WHERE round=?`, round); err != nil {
		return err
	}

	total := 0.0
	for _, r := range rows {
		total += r.Qty
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rounds(round,trades,qty,recorded_at) VALUES(?,?,?,?)`,
		round, len(rows), total, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trades(round,seq,requester,supplier,commodity,qty) VALUES(?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, round, i, r.Requester, r.Supplier, r.Commodity, r.Qty); err != nil {
			return fmt.Errorf("insert trade %d of round %d: %w", i, round, err)
		}
	}
	return tx.Commit()
}

// Trades returns the rows of round in recording order.
func (s *SQLite) Trades(ctx context.Context, round int) ([]Row, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT requester,supplier,commodity,qty FROM trades WHERE round=? ORDER BY seq`, round)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var rows []Row
	for rs.Next() {
		r := Row{Round: round}
		if err := rs.Scan(&r.Requester, &r.Supplier, &r.Commodity, &r.Qty); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, rs.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
