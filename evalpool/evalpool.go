package evalpool

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	guuid "github.com/google/uuid"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/goal"
)

var (
	ErrPoolSize    = errors.New("pool limit must be at least 1")
	ErrWrongScorer = errors.New("wrong scorer released")
)

type Scorer struct {
	id   guuid.UUID
	goal goal.Goal
}

func (s *Scorer) ID() guuid.UUID {
	return s.id
}

func (s *Scorer) Score(root *board.Block) int {
	return s.goal.Score(root)
}

/*
	Pool hands out a fixed number of scorers for one goal. Evaluate uses it to
	bound how many candidate boards are scored at the same time.
*/
type Pool struct {
	idSet  map[guuid.UUID]bool
	pool   chan *Scorer
	logger *log.Logger
}

func New(g goal.Goal, limit int, logger *log.Logger) (*Pool, error) {
	if limit < 1 {
		return nil, ErrPoolSize
	}
	if logger == nil {
		logger = log.Default()
	}

	idSet := make(map[guuid.UUID]bool, limit)
	ch := make(chan *Scorer, limit)
	for i := 0; i < limit; i++ {
		id := guuid.New()
		idSet[id] = true
		ch <- &Scorer{
			id:   id,
			goal: g,
		}
	}

	return &Pool{
		idSet:  idSet,
		pool:   ch,
		logger: logger,
	}, nil
}

// Acquire blocks until a scorer is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Scorer, error) {
	select {
	case s := <-p.pool:
		p.logger.Debug("acquired scorer", "id", s.id)
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pool) Release(s *Scorer) error {
	if s == nil || !p.idSet[s.id] {
		return ErrWrongScorer
	}

	p.logger.Debug("released scorer", "id", s.id)
	p.pool <- s
	return nil
}

// Candidate is a move aimed at the block found with root.At(Location, Level).
type Candidate struct {
	Location board.Position
	Level    int
	Move     board.Move
}

type Result struct {
	Candidate
	Valid bool
	Score int
}

/*
	Evaluate scores every candidate against its own copy of root, in parallel
	up to the pool size, and returns the results in candidate order. A
	candidate whose target is missing or whose move fails is reported with
	Valid false. Once ctx is done no further candidate is started and the
	context error is returned. Candidate i smashes with a source seeded by
	seed+i, so results are reproducible. root is only read; callers must not modify it until
	Evaluate returns.
*/
func (p *Pool) Evaluate(ctx context.Context, root *board.Block, candidates []Candidate, seed int64) ([]Result, error) {
	results := make([]Result, len(candidates))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		scorer, err := p.Acquire(ctx)
		if err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func(i int, c Candidate, s *Scorer) {
			defer wg.Done()
			defer func() {
				if err := p.Release(s); err != nil {
					fail(err)
				}
			}()

			results[i] = p.evaluate(root, c, s, rand.New(rand.NewSource(seed+int64(i))))
		}(i, c, scorer)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (p *Pool) evaluate(root *board.Block, c Candidate, s *Scorer, rng *rand.Rand) Result {
	res := Result{Candidate: c}

	b := root.Copy()
	target := b.At(c.Location, c.Level)
	if target == nil || !c.Move.Apply(target, rng) {
		p.logger.Debug("candidate rejected", "move", c.Move, "location", c.Location, "level", c.Level)
		return res
	}

	res.Valid = true
	res.Score = s.Score(b)
	p.logger.Debug("candidate scored", "move", c.Move, "location", c.Location, "level", c.Level, "score", res.Score)
	return res
}
