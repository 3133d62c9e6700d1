package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// AppendSessionEvent records the start or end of a quiz session.
func (r *EventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSessions).
		Columns("sequence", "timestamp", "session_id", "learner_id", "syllabary", "action",
			"questions_served", "correct_answers", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.LearnerID, string(data.Syllabary), data.Action,
			data.QuestionsServed, data.CorrectAnswers, data.DurationSecs).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// SessionCount returns the number of completed sessions for learnerID.
func (r *EventRepo) SessionCount(ctx context.Context, learnerID string) (int, error) {
	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Select(entsql.As(entsql.Count("*"), "n")).
		From(b.Table(tableSessions)).
		Where(entsql.And(
			entsql.EQ("learner_id", learnerID),
			entsql.EQ("action", ActionEnd),
		)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	defer rows.Close()

	var n []int
	if err := entsql.ScanSlice(rows, &n); err != nil {
		return 0, fmt.Errorf("scan session count: %w", err)
	}
	if len(n) == 0 {
		return 0, nil
	}
	return n[0], nil
}
