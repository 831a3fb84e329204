// Package repokit decorates the store seam for the platform lookups
package repokit

import "mastoshim/internal/platform/store"

type (
	// Queryer runs statements
	Queryer = store.RowQuerier

	// TxRunner runs a function inside one transaction
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag is the result of a statement
	CommandTag = store.CommandTag
)
