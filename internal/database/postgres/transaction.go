// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TxContextKey is the context key under which an open transaction travels.
// Every repository checks for it so that statements issued inside a
// WithTransaction callback all run on the same connection.
const TxContextKey = "tx"

// WithTransaction runs fn inside a database transaction. The transaction is
// injected into the context passed to fn; on error the transaction is rolled
// back, otherwise it is committed. Nested transactions are not supported.
func WithTransaction(ctx context.Context, client *Client, fn func(context.Context) error) error {
	tx, err := client.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, TxContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Executor returns the transaction from the context when one is open,
// otherwise the pooled connection.
func Executor(ctx context.Context, client *Client) sqlx.ExtContext {
	if txVal := ctx.Value(TxContextKey); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return client.DB()
}
