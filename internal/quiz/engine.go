package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/hirabolta/internal/kana"
)

// DefaultOptionCount is the number of answer choices shown per question.
const DefaultOptionCount = 6

// QuizState is the ephemeral state of one question.
type QuizState struct {
	Syllabary kana.Syllabary
	Target    kana.Character
	Options   []string
}

// CorrectIndex returns the position of the target's reading within Options,
// or -1 if it is missing.
func (q QuizState) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Target.Romaji {
			return i
		}
	}
	return -1
}

// Evaluation is the result of checking a submitted answer.
type Evaluation struct {
	Correct bool
}

// Engine selects characters and builds option sets. It is not safe for
// concurrent use; a quiz session drives it from a single goroutine.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine drawing from rng. A nil rng is replaced by a
// clock-seeded PCG source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &Engine{rng: rng}
}

// NewSeededEngine creates an engine with a deterministic source.
func NewSeededEngine(seed uint64) *Engine {
	return NewEngine(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// SelectCharacter draws one character of row uniformly at random. Every call
// is an independent draw.
func (e *Engine) SelectCharacter(c kana.Catalog, row string) (kana.Character, error) {
	chars := kana.CharactersInRow(c, row)
	if len(chars) == 0 {
		return kana.Character{}, &EmptyRowError{Syllabary: c.Syllabary, Row: row}
	}
	return chars[e.rng.IntN(len(chars))], nil
}

// GenerateOptions returns optionCount distinct readings in random order,
// exactly one of which is correct. Distractors come from the de-duplicated
// set of catalog readings, so a reading that occurs twice in the catalog is
// no more likely to be drawn than any other.
func (e *Engine) GenerateOptions(c kana.Catalog, correct string, optionCount int) ([]string, error) {
	pool := distractorPool(c, correct)
	need := optionCount - 1
	if optionCount < 1 || len(pool) < need {
		return nil, &InsufficientOptionsError{Requested: optionCount, Available: len(pool)}
	}

	// Partial Fisher-Yates: the first need entries become a uniform sample
	// without replacement.
	for i := 0; i < need; i++ {
		j := i + e.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := make([]string, 0, optionCount)
	options = append(options, pool[:need]...)
	options = append(options, correct)
	e.shuffle(options)
	return options, nil
}

// EvaluateAnswer reports whether submitted exactly matches the target reading.
// Empty or otherwise malformed answers are simply incorrect.
func EvaluateAnswer(target kana.Character, submitted string) Evaluation {
	return Evaluation{Correct: submitted == target.Romaji}
}

// NextQuestion selects a character from row and builds its option set.
func (e *Engine) NextQuestion(c kana.Catalog, row string, optionCount int) (QuizState, error) {
	target, err := e.SelectCharacter(c, row)
	if err != nil {
		return QuizState{}, err
	}
	options, err := e.GenerateOptions(c, target.Romaji, optionCount)
	if err != nil {
		return QuizState{}, err
	}
	return QuizState{
		Syllabary: c.Syllabary,
		Target:    target,
		Options:   options,
	}, nil
}

// shuffle permutes s in place (Fisher-Yates).
func (e *Engine) shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// distractorPool returns the distinct catalog readings other than correct,
// in catalog order.
func distractorPool(c kana.Catalog, correct string) []string {
	seen := map[string]bool{correct: true}
	var pool []string
	for _, r := range kana.Romaji(c) {
		if seen[r] {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	return pool
}
