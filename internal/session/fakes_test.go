package session

import (
	"context"
	"sync"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
	"github.com/abhisek/hirabolta/internal/store"
)

type portKey struct {
	learner string
	syl     kana.Syllabary
}

// memPort is an in-memory progress.Port.
type memPort struct {
	mu      sync.Mutex
	records map[portKey]progress.Record
	saves   []progress.Record
	saveErr error
	loadErr error
	block   chan struct{} // when set, SaveProgress waits on it
}

func newMemPort() *memPort {
	return &memPort{records: make(map[portKey]progress.Record)}
}

func (p *memPort) LoadProgress(_ context.Context, learner string, s kana.Syllabary) (*progress.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loadErr != nil {
		return nil, &progress.PersistenceError{Op: "load", Learner: learner, Syllabary: s, Err: p.loadErr}
	}
	r, ok := p.records[portKey{learner, s}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (p *memPort) SaveProgress(_ context.Context, learner string, s kana.Syllabary, r progress.Record) error {
	p.mu.Lock()
	block := p.block
	p.mu.Unlock()
	if block != nil {
		<-block
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, r)
	if p.saveErr != nil {
		return &progress.PersistenceError{Op: "save", Learner: learner, Syllabary: s, Err: p.saveErr}
	}
	p.records[portKey{learner, s}] = r
	return nil
}

func (p *memPort) get(learner string, s kana.Syllabary) (progress.Record, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.records[portKey{learner, s}]
	return r, ok
}

func (p *memPort) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.saves)
}

// memEvents records events in memory.
type memEvents struct {
	mu       sync.Mutex
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (e *memEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.answers = append(e.answers, d)
	return nil
}

func (e *memEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions = append(e.sessions, d)
	return nil
}
