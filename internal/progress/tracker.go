package progress

import (
	"github.com/abhisek/hirabolta/internal/kana"
)

// Outcome describes what a correct answer did to a record.
type Outcome struct {
	Record Record

	// AdvancedRow is set when the answer completed a row and moved the
	// learner to the next one.
	AdvancedRow bool

	// Completed is set when the learner is on the last row and has reached
	// the threshold. The count stays clamped at the threshold.
	Completed bool

	// FromRow is the row the answer was given in.
	FromRow string
}

// Tracker holds the progress record of each syllabary and applies answer
// transitions to them.
type Tracker struct {
	threshold int
	records   map[kana.Syllabary]*Record
}

// NewTracker creates a tracker with default records for both syllabaries.
// A non-positive threshold falls back to DefaultThreshold.
func NewTracker(threshold int) *Tracker {
	t := &Tracker{
		records: make(map[kana.Syllabary]*Record),
	}
	t.SetThreshold(threshold)
	for _, s := range kana.AllSyllabaries() {
		r := DefaultRecord(s)
		t.records[s] = &r
	}
	return t
}

// Threshold returns the number of correct answers that completes a row.
func (t *Tracker) Threshold() int {
	return t.threshold
}

// SetThreshold changes the characters-per-row setting. Counts already at or
// above the new threshold complete on the next correct answer.
func (t *Tracker) SetThreshold(n int) {
	if n <= 0 {
		n = DefaultThreshold
	}
	t.threshold = n
}

// Get returns a copy of the record for s.
func (t *Tracker) Get(s kana.Syllabary) Record {
	return *t.record(s)
}

// Set installs a record, typically one loaded from storage. A record whose
// row is not in the catalog is replaced by the default.
func (t *Tracker) Set(r Record) Record {
	s := r.CharacterSet
	if kana.RowIndex(kana.For(s), r.CurrentRow) < 0 || r.CorrectCount < 0 {
		r = DefaultRecord(s)
	}
	t.records[s] = &r
	return r
}

// OnCorrectAnswer counts a correct answer and completes the row when the
// threshold is reached.
func (t *Tracker) OnCorrectAnswer(s kana.Syllabary) Outcome {
	r := t.record(s)
	out := Outcome{FromRow: r.CurrentRow}

	r.CorrectCount++
	if r.CorrectCount >= t.threshold {
		c := kana.For(s)
		rows := kana.RowsOf(c)
		i := kana.RowIndex(c, r.CurrentRow)
		if i >= 0 && i < len(rows)-1 {
			r.CurrentRow = rows[i+1]
			r.CorrectCount = 0
			out.AdvancedRow = true
		} else {
			// Last row: nothing left to advance to.
			r.CorrectCount = t.threshold
			out.Completed = true
		}
	}

	out.Record = *r
	return out
}

// OnWrongAnswer leaves the record untouched and returns it.
func (t *Tracker) OnWrongAnswer(s kana.Syllabary) Record {
	return *t.record(s)
}

// Reset moves s back to its first row with no correct answers.
func (t *Tracker) Reset(s kana.Syllabary) Record {
	r := DefaultRecord(s)
	t.records[s] = &r
	return r
}

// IsComplete reports whether s is on its last row at the threshold.
func (t *Tracker) IsComplete(s kana.Syllabary) bool {
	r := t.record(s)
	rows := kana.RowsOf(kana.For(s))
	return len(rows) > 0 && r.CurrentRow == rows[len(rows)-1] && r.CorrectCount >= t.threshold
}

func (t *Tracker) record(s kana.Syllabary) *Record {
	r, ok := t.records[s]
	if !ok {
		d := DefaultRecord(s)
		r = &d
		t.records[s] = r
	}
	return r
}
