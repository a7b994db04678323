package database

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

const envelopeDDL = `id TEXT PRIMARY KEY,
	event TEXT,
	signature TEXT,
	has_succeeded BOOLEAN,
	try_count INTEGER,
	last_returned_code INTEGER,
	received_at TIMESTAMPTZ`

// EnsureEventTables creates the four audit tables for every allowed account.
// The DDL is idempotent so the receiver can run it on every boot; real schema
// migrations stay out of scope.
func (s *EventStore) EnsureEventTables(ctx context.Context, accounts []string) error {
	specs := []tableSpec{stepChangedSpec, leadCreatedSpec, leadDeletedSpec, clientFolderCreatedSpec}

	for _, account := range accounts {
		for _, spec := range specs {
			stmt := fmt.Sprintf(
				"CREATE TABLE IF NOT EXISTS %s (%s, %s, raw_data TEXT)",
				pq.QuoteIdentifier(account+spec.suffix), envelopeDDL, spec.ddl,
			)
			if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create table %s%s: %w", account, spec.suffix, err)
			}
		}
	}
	return nil
}
