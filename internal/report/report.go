package report

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/montyhall/internal/montyhall"
)

// Run is everything printed for one simulation.
type Run struct {
	Result   montyhall.Result
	Expected montyhall.Expected
	Seed     uint64
	Workers  int
	Elapsed  time.Duration
}

// WriteHeader echoes the parameters before the simulation starts.
func WriteHeader(w io.Writer, p montyhall.Params, trials int) error {
	_, err := fmt.Fprintf(w, "doors: %d, to choice: %d, trial: %d\n", p.Doors, p.LeftClosed, trials)
	return err
}

// WriteText prints the staying/changed lines and the elapsed time.
func WriteText(w io.Writer, r Run) error {
	stay, _ := r.Result.StayProb()
	sw, _ := r.Result.SwitchProb()
	lines := []string{
		caseLine("staying", r.Result.StayedHits, r.Result.Trials, stay),
		caseLine("changed", r.Result.SwitchedHits, r.Result.Trials, sw),
		"simulation time: " + FormatDuration(r.Elapsed),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func caseLine(name string, hits, trials int, prob float64) string {
	if trials <= 0 {
		return fmt.Sprintf("%s case: %d hits / %d trials, no trials", name, hits, trials)
	}
	return fmt.Sprintf("%s case: %d hits / %d trials, prob=%.3f", name, hits, trials, prob)
}

type yamlCase struct {
	Hits     int      `yaml:"hits"`
	Prob     *float64 `yaml:"prob"` // null when no trials ran
	StdErr   float64  `yaml:"stderr"`
	Expected float64  `yaml:"expected"`
}

type yamlRun struct {
	Doors      int      `yaml:"doors"`
	LeftClosed int      `yaml:"left_closed"`
	Trials     int      `yaml:"trials"`
	Seed       uint64   `yaml:"seed"`
	Workers    int      `yaml:"workers"`
	Staying    yamlCase `yaml:"staying"`
	Changed    yamlCase `yaml:"changed"`
	Elapsed    string   `yaml:"elapsed"`
}

func probPtr(p float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &p
}

// WriteYAML emits the run as a single YAML document.
func WriteYAML(w io.Writer, r Run) error {
	res := r.Result
	out := yamlRun{
		Doors:      res.Params.Doors,
		LeftClosed: res.Params.LeftClosed,
		Trials:     res.Trials,
		Seed:       r.Seed,
		Workers:    r.Workers,
		Staying: yamlCase{
			Hits:     res.StayedHits,
			Prob:     probPtr(res.StayProb()),
			StdErr:   res.StayStdErr(),
			Expected: r.Expected.Stay,
		},
		Changed: yamlCase{
			Hits:     res.SwitchedHits,
			Prob:     probPtr(res.SwitchProb()),
			StdErr:   res.SwitchStdErr(),
			Expected: r.Expected.Switch,
		},
		Elapsed: r.Elapsed.String(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

// FormatDuration renders d in s, ms or μs.
func FormatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.2f s", d.Seconds())
	} else if d >= time.Millisecond {
		return fmt.Sprintf("%.2f ms", float64(d.Microseconds())/1000)
	} else {
		return fmt.Sprintf("%d μs", d.Microseconds())
	}
}
