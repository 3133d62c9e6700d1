package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
)

// ProgressRepo implements progress.Port on the progress_records table.
type ProgressRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

var _ progress.Port = (*ProgressRepo)(nil)

// ProgressRow is a stored progress record.
type ProgressRow struct {
	LearnerID    string    `sql:"learner_id"`
	Syllabary    string    `sql:"syllabary"`
	CurrentRow   string    `sql:"current_row"`
	CorrectCount int       `sql:"correct_count"`
	UpdatedAt    time.Time `sql:"updated_at"`
}

// LoadProgress returns the stored record for (learnerID, s), or nil if the
// learner has never saved progress for s.
func (r *ProgressRepo) LoadProgress(ctx context.Context, learnerID string, s kana.Syllabary) (*progress.Record, error) {
	rows, err := r.query(ctx, entsql.And(
		entsql.EQ("learner_id", learnerID),
		entsql.EQ("syllabary", string(s)),
	))
	if err != nil {
		return nil, &progress.PersistenceError{Op: "load", Learner: learnerID, Syllabary: s, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec := progress.Record{
		CurrentRow:   rows[0].CurrentRow,
		CorrectCount: rows[0].CorrectCount,
		CharacterSet: s,
	}
	return &rec, nil
}

// SaveProgress upserts the record keyed by (learnerID, s). Saving the same
// record twice leaves a single row.
func (r *ProgressRepo) SaveProgress(ctx context.Context, learnerID string, s kana.Syllabary, rec progress.Record) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableProgress).
		Columns("learner_id", "syllabary", "current_row", "correct_count", "updated_at").
		Values(learnerID, string(s), rec.CurrentRow, rec.CorrectCount, r.timestamp()).
		OnConflict(
			entsql.ConflictColumns("learner_id", "syllabary"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return &progress.PersistenceError{Op: "save", Learner: learnerID, Syllabary: s, Err: err}
	}
	return nil
}

// DeleteProgress removes the stored record for (learnerID, s).
func (r *ProgressRepo) DeleteProgress(ctx context.Context, learnerID string, s kana.Syllabary) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Delete(tableProgress).
		Where(entsql.And(
			entsql.EQ("learner_id", learnerID),
			entsql.EQ("syllabary", string(s)),
		)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return &progress.PersistenceError{Op: "delete", Learner: learnerID, Syllabary: s, Err: err}
	}
	return nil
}

// ListProgress returns every stored record for learnerID, ordered by syllabary.
func (r *ProgressRepo) ListProgress(ctx context.Context, learnerID string) ([]ProgressRow, error) {
	rows, err := r.query(ctx, entsql.EQ("learner_id", learnerID))
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}

func (r *ProgressRepo) query(ctx context.Context, p *entsql.Predicate) ([]ProgressRow, error) {
	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Select("learner_id", "syllabary", "current_row", "correct_count", "updated_at").
		From(b.Table(tableProgress)).
		Where(p).
		OrderBy("syllabary").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProgressRow
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProgressRepo) timestamp() time.Time {
	if r.now != nil {
		return r.now().UTC()
	}
	return time.Now().UTC()
}
