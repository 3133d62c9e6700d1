// Package session runs quiz sessions: it draws questions, applies answers to
// the progress tracker, and hands durable writes to a background persister.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/store"
)

// ErrNoSession is returned when an operation needs an active session.
var ErrNoSession = errors.New("no active quiz session")

// EventRecorder appends answer and session events. *store.EventRepo
// implements it.
type EventRecorder interface {
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
}

// Config holds the session settings.
type Config struct {
	// Learner identifies whose progress is saved. Empty means guest: no
	// durable progress writes.
	Learner string

	// Threshold is the number of correct answers that completes a row.
	Threshold int

	// OptionCount is the number of choices per question.
	OptionCount int
}

// DefaultConfig returns a guest configuration with default row size.
func DefaultConfig() Config {
	return Config{
		Threshold:   progress.DefaultThreshold,
		OptionCount: quiz.DefaultOptionCount,
	}
}

// Service is the UI-facing quiz API. It is safe for concurrent use.
type Service struct {
	mu sync.Mutex

	cfg       Config
	engine    *quiz.Engine
	tracker   *progress.Tracker
	port      progress.Port
	events    EventRecorder
	persister *Persister
	logger    *zap.Logger

	// unloaded marks syllabaries whose stored record could not be read.
	// Their progress is not written until a reload succeeds, so the
	// in-memory default never overwrites the stored record.
	unloaded map[kana.Syllabary]bool

	state *SessionState
	now   func() time.Time
}

// NewService creates a quiz service. port and events may be nil, in which
// case progress and answers are kept in memory only.
func NewService(cfg Config, engine *quiz.Engine, port progress.Port, events EventRecorder, logger *zap.Logger) *Service {
	if engine == nil {
		engine = quiz.NewEngine(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OptionCount <= 0 {
		cfg.OptionCount = quiz.DefaultOptionCount
	}
	cfg.Learner = strings.TrimSpace(cfg.Learner)

	s := &Service{
		cfg:     cfg,
		engine:  engine,
		tracker: progress.NewTracker(cfg.Threshold),
		port:    port,
		events:  events,
		logger:   logger,
		unloaded: make(map[kana.Syllabary]bool),
		now:      time.Now,
	}
	s.cfg.Threshold = s.tracker.Threshold()
	if s.durable() {
		s.persister = NewPersister(port, cfg.Learner, logger)
	}
	return s
}

// durable reports whether progress is written to the port.
func (s *Service) durable() bool {
	return s.port != nil && s.cfg.Learner != ""
}

// Learner returns the configured learner, empty for guests.
func (s *Service) Learner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Learner
}

// Threshold returns the characters-per-row setting.
func (s *Service) Threshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Threshold()
}

// SetThreshold changes the characters-per-row setting.
func (s *Service) SetThreshold(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.SetThreshold(n)
	s.cfg.Threshold = s.tracker.Threshold()
}

// Record returns the in-memory progress for syl.
func (s *Service) Record(syl kana.Syllabary) progress.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Get(syl)
}

// IsComplete reports whether every row of syl is finished.
func (s *Service) IsComplete(syl kana.Syllabary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsComplete(syl)
}

// State returns a copy of the active session state, or nil.
func (s *Service) State() *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	cp := *s.state
	cp.RowsCompleted = append([]string(nil), s.state.RowsCompleted...)
	return &cp
}

// SaveErrors delivers background write failures. It returns nil for guests.
func (s *Service) SaveErrors() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persister == nil {
		return nil
	}
	return s.persister.Errors()
}

// Load reads the stored progress of both syllabaries concurrently. Records
// that are missing or fail to load keep their defaults; a load failure is
// returned after every syllabary has been tried.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) error {
	if !s.durable() {
		return nil
	}

	syllabaries := kana.AllSyllabaries()
	loaded := make([]*progress.Record, len(syllabaries))
	loadErrs := make([]error, len(syllabaries))

	g, gctx := errgroup.WithContext(ctx)
	for i, syl := range syllabaries {
		g.Go(func() error {
			r, err := s.port.LoadProgress(gctx, s.cfg.Learner, syl)
			if err != nil {
				loadErrs[i] = err
				return nil
			}
			loaded[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, syl := range syllabaries {
		switch {
		case loadErrs[i] != nil:
			s.logger.Warn("progress load failed", zap.String("syllabary", string(syl)), zap.Error(loadErrs[i]))
			s.tracker.Reset(syl)
			s.unloaded[syl] = true
		default:
			s.applyLoaded(syl, loaded[i])
		}
	}
	return errors.Join(loadErrs...)
}

// applyLoaded installs a record read from the port, or the default when
// none is stored.
func (s *Service) applyLoaded(syl kana.Syllabary, r *progress.Record) {
	delete(s.unloaded, syl)
	if r == nil {
		s.tracker.Reset(syl)
		return
	}
	rec := *r
	rec.CharacterSet = syl
	s.tracker.Set(rec)
}

// StartSession begins a quiz session on syl and returns its first question.
func (s *Service) StartSession(ctx context.Context, syl kana.Syllabary) (quiz.QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(ctx, syl)
}

func (s *Service) startLocked(ctx context.Context, syl kana.Syllabary) (quiz.QuizState, error) {
	s.endLocked(ctx)

	now := s.now()
	state := &SessionState{
		ID:        uuid.New().String(),
		Syllabary: syl,
		StartTime: now,
	}
	q, err := s.questionLocked(syl)
	if err != nil {
		return quiz.QuizState{}, err
	}
	state.Current = q
	state.QuestionStartTime = now
	s.state = state

	r := s.tracker.Get(syl)
	s.logger.Info("session started",
		zap.String("session_id", state.ID),
		zap.String("learner", s.cfg.Learner),
		zap.String("syllabary", string(syl)),
		zap.String("row", r.CurrentRow),
		zap.Int("correct_count", r.CorrectCount))
	s.recordSession(ctx, store.SessionEventData{
		SessionID: state.ID,
		LearnerID: s.cfg.Learner,
		Syllabary: syl,
		Action:    store.ActionStart,
	})
	return q, nil
}

// NextQuestion draws a new question from the current row of the active
// session.
func (s *Service) NextQuestion(ctx context.Context) (quiz.QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return quiz.QuizState{}, ErrNoSession
	}
	q, err := s.questionLocked(s.state.Syllabary)
	if err != nil {
		return quiz.QuizState{}, err
	}
	s.state.Current = q
	s.state.QuestionStartTime = s.now()
	return q, nil
}

func (s *Service) questionLocked(syl kana.Syllabary) (quiz.QuizState, error) {
	r := s.tracker.Get(syl)
	q, err := s.engine.NextQuestion(kana.For(syl), r.CurrentRow, s.cfg.OptionCount)
	if err != nil {
		return quiz.QuizState{}, fmt.Errorf("next question: %w", err)
	}
	return q, nil
}

// SubmitAnswer evaluates submitted against question, updates progress and
// schedules a durable write for learners. Write failures surface on
// SaveErrors and never block the quiz.
func (s *Service) SubmitAnswer(ctx context.Context, question quiz.QuizState, submitted string) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	syl := question.Syllabary
	if syl == "" {
		if s.state == nil {
			return AnswerResult{}, ErrNoSession
		}
		syl = s.state.Syllabary
	}

	eval := quiz.EvaluateAnswer(question.Target, submitted)
	res := AnswerResult{
		Correct:  eval.Correct,
		Expected: question.Target.Romaji,
		FromRow:  s.tracker.Get(syl).CurrentRow,
	}

	if eval.Correct {
		out := s.tracker.OnCorrectAnswer(syl)
		res.AdvancedRow = out.AdvancedRow
		res.Completed = out.Completed
		res.FromRow = out.FromRow
		res.Record = out.Record
	} else {
		res.Record = s.tracker.OnWrongAnswer(syl)
	}

	var sessionID string
	var elapsed time.Duration
	if s.state != nil && s.state.Syllabary == syl {
		s.state.TotalQuestions++
		if eval.Correct {
			s.state.TotalCorrect++
		}
		if res.AdvancedRow {
			s.state.RowsCompleted = append(s.state.RowsCompleted, res.FromRow)
		}
		sessionID = s.state.ID
		elapsed = s.now().Sub(s.state.QuestionStartTime)
	}

	if res.AdvancedRow {
		s.logger.Info("row completed",
			zap.String("learner", s.cfg.Learner),
			zap.String("syllabary", string(syl)),
			zap.String("from", res.FromRow),
			zap.String("to", res.Record.CurrentRow))
	}
	if res.Completed {
		s.logger.Info("syllabary completed",
			zap.String("learner", s.cfg.Learner),
			zap.String("syllabary", string(syl)))
	}

	if eval.Correct && s.persister != nil {
		if s.unloaded[syl] {
			s.logger.Debug("progress write held until reload", zap.String("syllabary", string(syl)))
		} else {
			s.persister.Enqueue(res.Record)
		}
	}

	if s.recordsEvents() && sessionID != "" {
		err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID: sessionID,
			LearnerID: s.cfg.Learner,
			Syllabary: syl,
			Row:       question.Target.Row,
			Glyph:     question.Target.Glyph,
			Expected:  question.Target.Romaji,
			Submitted: submitted,
			Correct:   eval.Correct,
			TimeMs:    int(elapsed.Milliseconds()),
		})
		if err != nil {
			s.logger.Warn("answer event not recorded", zap.Error(err))
		}
	}
	return res, nil
}

// ChangeSyllabary switches to syl, reloading its stored record, and starts a
// new session on it. A failed reload keeps the in-memory record and is
// reported on SaveErrors.
func (s *Service) ChangeSyllabary(ctx context.Context, syl kana.Syllabary) (quiz.QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.durable() {
		s.persister.Flush()
		r, err := s.port.LoadProgress(ctx, s.cfg.Learner, syl)
		if err != nil {
			s.logger.Warn("progress load failed", zap.String("syllabary", string(syl)), zap.Error(err))
			s.persister.Report(err)
		} else {
			s.applyLoaded(syl, r)
		}
	}
	return s.startLocked(ctx, syl)
}

// ResetProgress moves syl back to its first row. For learners the reset is
// written durably.
func (s *Service) ResetProgress(ctx context.Context, syl kana.Syllabary) (progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.tracker.Reset(syl)
	delete(s.unloaded, syl)
	s.logger.Info("progress reset", zap.String("learner", s.cfg.Learner), zap.String("syllabary", string(syl)))
	if s.persister != nil {
		s.persister.Enqueue(r)
		s.persister.Flush()
	}
	if s.state != nil && s.state.Syllabary == syl {
		q, err := s.questionLocked(syl)
		if err != nil {
			return r, err
		}
		s.state.Current = q
		s.state.QuestionStartTime = s.now()
	}
	return r, nil
}

// SwitchLearner flushes the current learner's writes and loads the progress
// of learner. An empty name switches to guest mode. Without durable storage
// both syllabaries start again from their first row.
func (s *Service) SwitchLearner(ctx context.Context, learner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	learner = strings.TrimSpace(learner)
	if learner == s.cfg.Learner {
		return nil
	}
	s.endLocked(ctx)
	if s.persister != nil {
		s.persister.Close()
		s.persister = nil
	}
	s.cfg.Learner = learner
	clear(s.unloaded)
	if !s.durable() {
		for _, syl := range kana.AllSyllabaries() {
			s.tracker.Reset(syl)
		}
		return nil
	}
	s.persister = NewPersister(s.port, learner, s.logger)
	return s.loadLocked(ctx)
}

// EndSession closes the active session and returns its summary, or nil if
// none was running.
func (s *Service) EndSession(ctx context.Context) *SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endLocked(ctx)
}

func (s *Service) endLocked(ctx context.Context) *SessionSummary {
	if s.state == nil {
		return nil
	}
	sum := BuildSummary(s.state, s.now())
	s.recordSession(ctx, store.SessionEventData{
		SessionID:       s.state.ID,
		LearnerID:       s.cfg.Learner,
		Syllabary:       s.state.Syllabary,
		Action:          store.ActionEnd,
		QuestionsServed: sum.TotalQuestions,
		CorrectAnswers:  sum.TotalCorrect,
		DurationSecs:    int(sum.Duration.Seconds()),
	})
	s.logger.Info("session ended",
		zap.String("session_id", s.state.ID),
		zap.Int("questions", sum.TotalQuestions),
		zap.Int("correct", sum.TotalCorrect))
	s.state = nil
	return sum
}

// recordsEvents reports whether answers and sessions are logged. Guests
// leave no durable trace.
func (s *Service) recordsEvents() bool {
	return s.events != nil && s.cfg.Learner != ""
}

func (s *Service) recordSession(ctx context.Context, data store.SessionEventData) {
	if !s.recordsEvents() {
		return
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		s.logger.Warn("session event not recorded", zap.String("action", data.Action), zap.Error(err))
	}
}

// Close ends the active session and flushes pending progress writes.
func (s *Service) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endLocked(ctx)
	if s.persister != nil {
		s.persister.Close()
	}
}
