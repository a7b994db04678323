package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
)

// EventStore appends webhook deliveries to per-account, per-event audit
// tables. Inserts are keyed on the delivery id with conflict-skip semantics:
// a replayed delivery is dropped, never overwritten — these are audit rows,
// not current state.
type EventStore struct {
	DB *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{DB: db}
}

// envelopeColumns lead every audit table; each tableSpec appends its own
// projection and the raw_data archive closes the row.
var envelopeColumns = []string{
	"id", "event", "signature", "has_succeeded", "try_count", "last_returned_code", "received_at",
}

// tableSpec is one event type's slice of the generic scoped insert: the
// table suffix, the projected columns, their DDL, and how to pull the values
// out of a payload.
type tableSpec struct {
	suffix  string
	columns []string
	ddl     string
	project func(d entity.Payload) []any
}

var stepChangedSpec = tableSpec{
	suffix: "_step_changed",
	columns: []string{
		"lead_id", "lead_title", "lead_status", "lead_step", "lead_amount",
		"lead_created_at", "lead_updated_at", "lead_user_email", "lead_permalink",
		"step_id", "pipeline", "created_at_utc", "updated_at_utc", "moved_by",
	},
	ddl: `lead_id BIGINT, lead_title TEXT, lead_status TEXT, lead_step TEXT,
		lead_amount DOUBLE PRECISION, lead_created_at TEXT, lead_updated_at TEXT,
		lead_user_email TEXT, lead_permalink TEXT, step_id BIGINT, pipeline TEXT,
		created_at_utc TEXT, updated_at_utc TEXT, moved_by TEXT`,
	project: func(d entity.Payload) []any {
		return []any{
			d.Int64("id"), d.String("title"), d.String("status"), d.String("step"),
			d.Float("amount"), d.String("created_at"), d.String("updated_at"),
			d.UserEmail(), d.String("permalink"), d.Int64("step_id"), d.String("pipeline"),
			d.String("created_at"), d.String("updated_at"), d.UserEmail(),
		}
	},
}

var leadCreatedSpec = tableSpec{
	suffix: "_lead_created",
	columns: []string{
		"lead_id", "title", "status", "step", "amount", "created_at_utc",
		"updated_at_utc", "user_email", "permalink", "client_folder_id", "client_folder_name",
	},
	ddl: `lead_id BIGINT, title TEXT, status TEXT, step TEXT, amount DOUBLE PRECISION,
		created_at_utc TEXT, updated_at_utc TEXT, user_email TEXT, permalink TEXT,
		client_folder_id BIGINT, client_folder_name TEXT`,
	project: func(d entity.Payload) []any {
		cfID, cfName := d.ClientFolder()
		return []any{
			d.Int64("id"), d.String("title"), d.String("status"), d.String("step"),
			d.Float("amount"), d.String("created_at"), d.String("updated_at"),
			d.UserEmail(), d.String("permalink"), cfID, cfName,
		}
	},
}

var leadDeletedSpec = tableSpec{
	suffix:  "_lead_deleted",
	columns: []string{"lead_id", "title", "deleted_at_utc", "user_email", "permalink"},
	ddl: `lead_id BIGINT, title TEXT, deleted_at_utc TEXT, user_email TEXT,
		permalink TEXT`,
	project: func(d entity.Payload) []any {
		return []any{
			d.Int64("id"), d.String("title"), d.String("updated_at"),
			d.UserEmail(), d.String("permalink"),
		}
	},
}

var clientFolderCreatedSpec = tableSpec{
	suffix:  "_client_folder_created",
	columns: []string{"folder_id", "folder_name", "created_at_utc"},
	ddl:     `folder_id BIGINT, folder_name TEXT, created_at_utc TEXT`,
	project: func(d entity.Payload) []any {
		return []any{d.Int64("id"), d.String("name"), d.String("created_at")}
	},
}

func (s *EventStore) InsertLeadStepChanged(ctx context.Context, account string, env *entity.EventEnvelope) error {
	return s.insert(ctx, account, stepChangedSpec, env)
}

func (s *EventStore) InsertLeadCreated(ctx context.Context, account string, env *entity.EventEnvelope) error {
	return s.insert(ctx, account, leadCreatedSpec, env)
}

func (s *EventStore) InsertLeadDeleted(ctx context.Context, account string, env *entity.EventEnvelope) error {
	return s.insert(ctx, account, leadDeletedSpec, env)
}

func (s *EventStore) InsertClientFolderCreated(ctx context.Context, account string, env *entity.EventEnvelope) error {
	return s.insert(ctx, account, clientFolderCreatedSpec, env)
}

func (s *EventStore) insert(ctx context.Context, account string, spec tableSpec, env *entity.EventEnvelope) error {
	raw, err := env.Archive()
	if err != nil {
		return fmt.Errorf("archive event %s: %w", env.ID, err)
	}

	columns := make([]string, 0, len(envelopeColumns)+len(spec.columns)+1)
	columns = append(columns, envelopeColumns...)
	columns = append(columns, spec.columns...)
	columns = append(columns, "raw_data")

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	args := make([]any, 0, len(columns))
	args = append(args,
		env.ID, env.Event, env.Signature, env.HasSucceeded,
		env.TryCount, env.LastReturnedCode, time.Now().UTC(),
	)
	args = append(args, spec.project(env.Data)...)
	args = append(args, string(raw))

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING",
		pq.QuoteIdentifier(account+spec.suffix),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s%s: %w", account, spec.suffix, err)
	}
	return nil
}
