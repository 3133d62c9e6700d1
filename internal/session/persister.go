package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
)

// saveTimeout bounds a single durable write.
const saveTimeout = 5 * time.Second

// Persister writes progress records in the background. It keeps at most one
// pending record per syllabary: a newer record replaces an older one that
// has not been written yet, so the last local mutation always wins.
type Persister struct {
	port    progress.Port
	learner string
	logger  *zap.Logger

	mu      sync.Mutex
	pending map[kana.Syllabary]progress.Record
	closed  bool

	wake     chan struct{}
	flushReq chan chan struct{}
	stop     chan struct{}
	done     chan struct{}
	errs     chan error

	closeOnce sync.Once
}

// NewPersister starts the writer goroutine for learner.
func NewPersister(port progress.Port, learner string, logger *zap.Logger) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Persister{
		port:     port,
		learner:  learner,
		logger:   logger,
		pending:  make(map[kana.Syllabary]progress.Record),
		wake:     make(chan struct{}, 1),
		flushReq: make(chan chan struct{}),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		errs:     make(chan error, 8),
	}
	go p.loop()
	return p
}

// Enqueue schedules r for writing. It never blocks.
func (p *Persister) Enqueue(r progress.Record) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.pending[r.CharacterSet] = r
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Errors delivers write failures. Failures are dropped when nobody reads
// them fast enough. The channel is closed by Close.
func (p *Persister) Errors() <-chan error {
	return p.errs
}

// Report delivers err on the Errors channel alongside write failures. It is
// dropped after Close or when nobody reads fast enough.
func (p *Persister) Report(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || err == nil {
		return
	}
	select {
	case p.errs <- err:
	default:
	}
}

// Flush blocks until every record enqueued before the call has been written
// or has failed.
func (p *Persister) Flush() {
	reply := make(chan struct{})
	select {
	case p.flushReq <- reply:
		<-reply
	case <-p.done:
	}
}

// Close writes any pending records and stops the writer goroutine.
func (p *Persister) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.stop)
		<-p.done
	})
}

func (p *Persister) loop() {
	defer close(p.done)
	defer close(p.errs)
	for {
		select {
		case <-p.wake:
			p.writePending()
		case reply := <-p.flushReq:
			p.writePending()
			close(reply)
		case <-p.stop:
			p.writePending()
			return
		}
	}
}

func (p *Persister) writePending() {
	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[kana.Syllabary]progress.Record)
	p.mu.Unlock()

	for _, s := range kana.AllSyllabaries() {
		r, ok := batch[s]
		if !ok {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := p.port.SaveProgress(ctx, p.learner, s, r)
		cancel()
		if err != nil {
			p.logger.Warn("progress write failed",
				zap.String("learner", p.learner),
				zap.String("syllabary", string(s)),
				zap.Error(err))
			select {
			case p.errs <- err:
			default:
			}
			continue
		}
		p.logger.Debug("progress saved",
			zap.String("learner", p.learner),
			zap.String("syllabary", string(s)),
			zap.String("row", r.CurrentRow),
			zap.Int("correct_count", r.CorrectCount))
	}
}
