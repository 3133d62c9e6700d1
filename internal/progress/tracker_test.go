package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hirabolta/internal/kana"
)

func TestNewTracker_Defaults(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultThreshold, tr.Threshold())

	for _, s := range kana.AllSyllabaries() {
		r := tr.Get(s)
		assert.Equal(t, Record{CurrentRow: "a", CorrectCount: 0, CharacterSet: s}, r)
	}
}

func TestOnCorrectAnswer_BelowThreshold(t *testing.T) {
	tr := NewTracker(5)

	out := tr.OnCorrectAnswer(kana.Hiragana)

	assert.False(t, out.AdvancedRow)
	assert.False(t, out.Completed)
	assert.Equal(t, "a", out.FromRow)
	assert.Equal(t, Record{CurrentRow: "a", CorrectCount: 1, CharacterSet: kana.Hiragana}, out.Record)
}

func TestOnCorrectAnswer_AdvancesAfterThreshold(t *testing.T) {
	tr := NewTracker(5)

	var out Outcome
	for i := 0; i < 5; i++ {
		out = tr.OnCorrectAnswer(kana.Hiragana)
		if i < 4 {
			require.False(t, out.AdvancedRow, "advanced early at answer %d", i+1)
		}
	}

	assert.True(t, out.AdvancedRow)
	assert.Equal(t, "a", out.FromRow)
	assert.Equal(t, Record{CurrentRow: "h", CorrectCount: 0, CharacterSet: kana.Hiragana}, out.Record)
	assert.Equal(t, out.Record, tr.Get(kana.Hiragana))
}

func TestOnCorrectAnswer_WalksAllRows(t *testing.T) {
	tr := NewTracker(2)
	rows := kana.RowsOf(kana.For(kana.Katakana))

	for i := 0; i < len(rows)-1; i++ {
		require.Equal(t, rows[i], tr.Get(kana.Katakana).CurrentRow)
		tr.OnCorrectAnswer(kana.Katakana)
		out := tr.OnCorrectAnswer(kana.Katakana)
		require.True(t, out.AdvancedRow)
		require.Equal(t, rows[i+1], out.Record.CurrentRow)
	}
}

func TestOnCorrectAnswer_LastRowClamps(t *testing.T) {
	tr := NewTracker(5)
	tr.Set(Record{CurrentRow: "y", CorrectCount: 0, CharacterSet: kana.Hiragana})

	var out Outcome
	for i := 0; i < 12; i++ {
		out = tr.OnCorrectAnswer(kana.Hiragana)
	}

	assert.False(t, out.AdvancedRow)
	assert.True(t, out.Completed)
	assert.Equal(t, "y", out.Record.CurrentRow)
	assert.Equal(t, 5, out.Record.CorrectCount)
	assert.True(t, tr.IsComplete(kana.Hiragana))
}

func TestOnCorrectAnswer_SyllabariesIndependent(t *testing.T) {
	tr := NewTracker(5)
	tr.OnCorrectAnswer(kana.Hiragana)
	tr.OnCorrectAnswer(kana.Hiragana)

	assert.Equal(t, 2, tr.Get(kana.Hiragana).CorrectCount)
	assert.Equal(t, 0, tr.Get(kana.Katakana).CorrectCount)
}

func TestOnWrongAnswer_NoMutation(t *testing.T) {
	tr := NewTracker(5)
	tr.OnCorrectAnswer(kana.Katakana)
	before := tr.Get(kana.Katakana)

	got := tr.OnWrongAnswer(kana.Katakana)

	assert.Equal(t, before, got)
	assert.Equal(t, before, tr.Get(kana.Katakana))
}

func TestReset(t *testing.T) {
	tr := NewTracker(1)
	tr.OnCorrectAnswer(kana.Hiragana)
	tr.OnCorrectAnswer(kana.Hiragana)
	require.Equal(t, "k", tr.Get(kana.Hiragana).CurrentRow)

	r := tr.Reset(kana.Hiragana)

	assert.Equal(t, DefaultRecord(kana.Hiragana), r)
	assert.Equal(t, r, tr.Get(kana.Hiragana))
}

func TestSet_InvalidRowFallsBack(t *testing.T) {
	tr := NewTracker(5)
	got := tr.Set(Record{CurrentRow: "zz", CorrectCount: 3, CharacterSet: kana.Katakana})
	assert.Equal(t, DefaultRecord(kana.Katakana), got)
}

func TestSetThreshold_LowerCompletesOnNextAnswer(t *testing.T) {
	tr := NewTracker(5)
	for i := 0; i < 3; i++ {
		tr.OnCorrectAnswer(kana.Hiragana)
	}
	tr.SetThreshold(2)

	out := tr.OnCorrectAnswer(kana.Hiragana)
	assert.True(t, out.AdvancedRow)
	assert.Equal(t, "h", out.Record.CurrentRow)
}

func TestRecord_Fraction(t *testing.T) {
	r := Record{CorrectCount: 2}
	assert.InDelta(t, 0.4, r.Fraction(5), 1e-9)
	assert.Equal(t, 0.0, r.Fraction(0))
	assert.Equal(t, 1.0, Record{CorrectCount: 9}.Fraction(5))
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&PersistenceError{Op: "save", Learner: "aiko", Syllabary: kana.Hiragana, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save progress")
	assert.Contains(t, err.Error(), "aiko")
}
