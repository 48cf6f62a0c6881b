// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_RecordRound(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "exchange.db")

	idx, err := OpenSQLite(path)
	require.NoError(t, err)

	rows := []Row{
		{Round: 3, Requester: "reactor", Supplier: "mine", Commodity: "ore", Qty: 5},
		{Round: 3, Requester: "reactor", Supplier: "mill", Commodity: "ore", Qty: 2.5},
	}
	require.NoError(t, idx.RecordRound(ctx, 3, rows))

	got, err := idx.Trades(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	// recording again replaces the round
	require.NoError(t, idx.RecordRound(ctx, 3, rows[:1]))
	got, err = idx.Trades(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, rows[:1], got)

	got, err = idx.Trades(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, idx.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var (
		trades int
		qty    float64
	)
	row := db.QueryRow(`SELECT trades,qty FROM rounds WHERE round=3`)
	require.NoError(t, row.Scan(&trades, &qty))
	assert.Equal(t, 1, trades)
	assert.Equal(t, 5.0, qty)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
