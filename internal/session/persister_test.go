package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPersister_WritesRecord(t *testing.T) {
	port := newMemPort()
	p := NewPersister(port, "aiko", nil)

	r := progress.Record{CurrentRow: "k", CorrectCount: 2, CharacterSet: kana.Hiragana}
	p.Enqueue(r)
	p.Flush()

	got, ok := port.get("aiko", kana.Hiragana)
	require.True(t, ok)
	assert.Equal(t, r, got)
	p.Close()
}

func TestPersister_CoalescesToLatest(t *testing.T) {
	port := newMemPort()
	port.block = make(chan struct{})
	p := NewPersister(port, "aiko", nil)

	// The first write blocks inside the port; everything queued meanwhile
	// collapses into a single pending record.
	p.Enqueue(progress.Record{CurrentRow: "a", CorrectCount: 1, CharacterSet: kana.Hiragana})
	for i := 2; i <= 4; i++ {
		p.Enqueue(progress.Record{CurrentRow: "a", CorrectCount: i, CharacterSet: kana.Hiragana})
	}
	close(port.block)
	p.Close()

	got, ok := port.get("aiko", kana.Hiragana)
	require.True(t, ok)
	assert.Equal(t, 4, got.CorrectCount, "latest record must win")
	assert.LessOrEqual(t, port.saveCount(), 2)
}

func TestPersister_SyllabariesIndependent(t *testing.T) {
	port := newMemPort()
	p := NewPersister(port, "aiko", nil)

	p.Enqueue(progress.Record{CurrentRow: "h", CorrectCount: 0, CharacterSet: kana.Hiragana})
	p.Enqueue(progress.Record{CurrentRow: "a", CorrectCount: 3, CharacterSet: kana.Katakana})
	p.Close()

	h, ok := port.get("aiko", kana.Hiragana)
	require.True(t, ok)
	assert.Equal(t, "h", h.CurrentRow)
	k, ok := port.get("aiko", kana.Katakana)
	require.True(t, ok)
	assert.Equal(t, 3, k.CorrectCount)
}

func TestPersister_ReportsErrors(t *testing.T) {
	port := newMemPort()
	port.saveErr = errors.New("disk full")
	p := NewPersister(port, "aiko", nil)

	p.Enqueue(progress.DefaultRecord(kana.Hiragana))
	p.Flush()

	err := <-p.Errors()
	var pe *progress.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "save", pe.Op)

	p.Close()
	_, open := <-p.Errors()
	assert.False(t, open, "errors channel closes with the persister")
}

func TestPersister_EnqueueAfterCloseIgnored(t *testing.T) {
	port := newMemPort()
	p := NewPersister(port, "aiko", nil)
	p.Close()
	p.Close()

	p.Enqueue(progress.DefaultRecord(kana.Katakana))
	p.Flush()
	assert.Zero(t, port.saveCount())
}

func TestPersister_ReportForwardsError(t *testing.T) {
	p := NewPersister(newMemPort(), "aiko", nil)
	loadErr := &progress.PersistenceError{Op: "load", Learner: "aiko", Syllabary: kana.Katakana, Err: errors.New("locked")}

	p.Report(loadErr)
	assert.Same(t, loadErr, <-p.Errors())

	p.Close()
	p.Report(loadErr)
	_, open := <-p.Errors()
	assert.False(t, open, "reports after Close are dropped")
}
