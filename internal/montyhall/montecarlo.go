package montyhall

import (
	"context"
	"math"
	"sync"
)

// Result aggregates hit counts over a run.
type Result struct {
	Params       Params `yaml:"params"`
	Trials       int    `yaml:"trials"`
	StayedHits   int    `yaml:"stayed_hits"`
	SwitchedHits int    `yaml:"switched_hits"`
}

// StayProb returns StayedHits/Trials; ok is false when no trials ran.
func (r Result) StayProb() (float64, bool) { return ratio(r.StayedHits, r.Trials) }

// SwitchProb returns SwitchedHits/Trials; ok is false when no trials ran.
func (r Result) SwitchProb() (float64, bool) { return ratio(r.SwitchedHits, r.Trials) }

// StayStdErr is the binomial standard error of StayProb (0 with no trials).
func (r Result) StayStdErr() float64 { return stdErr(r.StayedHits, r.Trials) }

// SwitchStdErr is the binomial standard error of SwitchProb (0 with no trials).
func (r Result) SwitchStdErr() float64 { return stdErr(r.SwitchedHits, r.Trials) }

func (r *Result) add(o Outcome) {
	r.Trials++
	if o.Stayed {
		r.StayedHits++
	}
	if o.Switched {
		r.SwitchedHits++
	}
}

func (r *Result) merge(o Result) {
	r.Trials += o.Trials
	r.StayedHits += o.StayedHits
	r.SwitchedHits += o.SwitchedHits
}

func ratio(hits, trials int) (float64, bool) {
	if trials <= 0 {
		return 0, false
	}
	return float64(hits) / float64(trials), true
}

func stdErr(hits, trials int) float64 {
	p, ok := ratio(hits, trials)
	if !ok {
		return 0
	}
	return math.Sqrt(p * (1 - p) / float64(trials))
}

// RunMonteCarlo repeats trials and returns the hit counts.
// trials <= 0 yields an empty Result with no error.
func RunMonteCarlo(p Params, trials int, rng RandomSource) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Params: p}
	if trials <= 0 {
		return res, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	var s simulator
	for i := 0; i < trials; i++ {
		res.add(s.run(p, rng))
	}
	return res, nil
}

// chunk is how many trials a worker runs between cancellation checks.
const chunk = 4096

// RunParallel splits trials across workers, each with its own PCG generator
// derived from seed. The result is deterministic for fixed (seed, workers, trials),
// and workers <= 1 matches RunMonteCarlo(p, trials, NewSeededRNG(seed)).
// Cancellation is checked every chunk trials on every path and reported as ctx.Err().
func RunParallel(ctx context.Context, p Params, trials, workers int, seed uint64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if workers <= 1 || trials <= workers {
		res := Result{Params: p}
		if err := runChunks(ctx, &res, p, trials, NewSeededRNG(seed)); err != nil {
			return Result{}, err
		}
		return res, nil
	}

	per := trials / workers
	rem := trials % workers
	parts := make([]Result, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		n := per
		if i < rem {
			n++
		}
		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			_ = runChunks(ctx, &parts[i], p, n, NewSeededRNG(workerSeed(seed, i)))
		}(i, n)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Result{Params: p}
	for _, part := range parts {
		res.merge(part)
	}
	return res, nil
}

// runChunks adds n trials to res, checking ctx every chunk trials.
func runChunks(ctx context.Context, res *Result, p Params, n int, rng RandomSource) error {
	var s simulator
	for done := 0; done < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(done+chunk, n)
		for ; done < end; done++ {
			res.add(s.run(p, rng))
		}
	}
	return ctx.Err()
}

// Expected holds closed-form win probabilities.
type Expected struct {
	Stay   float64 `yaml:"stay"`
	Switch float64 `yaml:"switch"`
}

// ExpectedProbabilities returns the exact probabilities for p:
// staying wins with 1/n; switching wins only from a wrong first pick, then
// picks the prize out of LeftClosed-1 candidates: (n-1)/(n(k-1)).
func ExpectedProbabilities(p Params) (Expected, error) {
	if err := p.Validate(); err != nil {
		return Expected{}, err
	}
	n := float64(p.Doors)
	k := float64(p.LeftClosed)
	return Expected{
		Stay:   1 / n,
		Switch: (n - 1) / (n * (k - 1)),
	}, nil
}
