package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hirabolta/internal/kana"
)

// EventRepo appends answer and session events and summarizes them.
type EventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// AppendAnswerEvent records one answered question.
func (r *EventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableAnswers).
		Columns("sequence", "timestamp", "session_id", "learner_id", "syllabary",
			"row", "glyph", "expected", "submitted", "correct", "time_ms").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.LearnerID, string(data.Syllabary),
			data.Row, data.Glyph, data.Expected, data.Submitted, data.Correct, data.TimeMs).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// AnswerStats returns per-syllabary answer totals for learnerID.
func (r *EventRepo) AnswerStats(ctx context.Context, learnerID string) (map[kana.Syllabary]AnswerStats, error) {
	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Select(
		"syllabary",
		entsql.As(entsql.Count("*"), "total"),
		entsql.As(entsql.Sum("correct"), "correct"),
	).
		From(b.Table(tableAnswers)).
		Where(entsql.EQ("learner_id", learnerID)).
		GroupBy("syllabary").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var out []struct {
		Syllabary string `sql:"syllabary"`
		Total     int    `sql:"total"`
		Correct   int    `sql:"correct"`
	}
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan answer stats: %w", err)
	}

	stats := make(map[kana.Syllabary]AnswerStats, len(out))
	for _, o := range out {
		s := kana.Syllabary(o.Syllabary)
		stats[s] = AnswerStats{Syllabary: s, Total: o.Total, Correct: o.Correct}
	}
	return stats, nil
}

// answerTimes returns the timestamps of every answer by learnerID, oldest first.
func (r *EventRepo) answerTimes(ctx context.Context, learnerID string) ([]time.Time, error) {
	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Select("timestamp").
		From(b.Table(tableAnswers)).
		Where(entsql.EQ("learner_id", learnerID)).
		OrderBy("sequence").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer times: %w", err)
	}
	defer rows.Close()

	var out []struct {
		Timestamp time.Time `sql:"timestamp"`
	}
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan answer times: %w", err)
	}

	times := make([]time.Time, len(out))
	for i, o := range out {
		times[i] = o.Timestamp
	}
	return times, nil
}

// Stats summarizes learnerID's answers. Practice days are counted in loc.
func (r *EventRepo) Stats(ctx context.Context, learnerID string, loc *time.Location) (Stats, error) {
	answers, err := r.AnswerStats(ctx, learnerID)
	if err != nil {
		return Stats{}, err
	}
	times, err := r.answerTimes(ctx, learnerID)
	if err != nil {
		return Stats{}, err
	}
	if loc == nil {
		loc = time.Local
	}

	st := Stats{Answers: answers}
	days := make(map[string]struct{})
	for _, ts := range times {
		days[ts.In(loc).Format(time.DateOnly)] = struct{}{}
		if ts.After(st.LastPractice) {
			st.LastPractice = ts
		}
	}
	st.PracticeDays = len(days)
	return st, nil
}
