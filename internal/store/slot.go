package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// slotRepo implements SlotRepo over the slots table.
type slotRepo struct {
	db *sql.DB
}

func (r *slotRepo) Put(ctx context.Context, name string, payload []byte) error {
	query, args := builder().Insert(SlotsTable.Name).
		Columns("name", "payload", "updated_at").
		Values(name, payload, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put slot %q: %w", name, err)
	}
	return nil
}

func (r *slotRepo) Get(ctx context.Context, name string) ([]byte, error) {
	query, args := builder().Select("payload").
		From(entsql.Table(SlotsTable.Name)).
		Where(entsql.EQ("name", name)).
		Query()

	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot %q: %w", name, err)
	}
	return payload, nil
}

func (r *slotRepo) Delete(ctx context.Context, name string) error {
	query, args := builder().Delete(SlotsTable.Name).
		Where(entsql.EQ("name", name)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}
