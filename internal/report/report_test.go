package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/montyhall/internal/montyhall"
)

var classic = montyhall.Params{Doors: 3, LeftClosed: 2}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, classic, 1000))
	assert.Equal(t, "doors: 3, to choice: 2, trial: 1000\n", buf.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	run := Run{
		Result:  montyhall.Result{Params: classic, Trials: 1000, StayedHits: 331, SwitchedHits: 669},
		Elapsed: 1500 * time.Microsecond,
	}
	require.NoError(t, WriteText(&buf, run))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "staying case: 331 hits / 1000 trials, prob=0.331", lines[0])
	assert.Equal(t, "changed case: 669 hits / 1000 trials, prob=0.669", lines[1])
	assert.Equal(t, "simulation time: 1.50 ms", lines[2])
}

func TestWriteTextNoTrials(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Run{Result: montyhall.Result{Params: classic}}))
	out := buf.String()
	assert.Contains(t, out, "staying case: 0 hits / 0 trials, no trials")
	assert.Contains(t, out, "changed case: 0 hits / 0 trials, no trials")
	assert.NotContains(t, out, "NaN")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	run := Run{
		Result:   montyhall.Result{Params: classic, Trials: 4, StayedHits: 1, SwitchedHits: 3},
		Expected: montyhall.Expected{Stay: 1.0 / 3, Switch: 2.0 / 3},
		Seed:     42,
		Workers:  1,
		Elapsed:  time.Millisecond,
	}
	require.NoError(t, WriteYAML(&buf, run))

	var got yamlRun
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Doors)
	assert.Equal(t, 2, got.LeftClosed)
	assert.Equal(t, uint64(42), got.Seed)
	assert.Equal(t, 3, got.Changed.Hits)
	require.NotNil(t, got.Changed.Prob)
	assert.InDelta(t, 0.75, *got.Changed.Prob, 1e-12)
	assert.InDelta(t, 2.0/3, got.Changed.Expected, 1e-12)
}

func TestWriteYAMLNoTrials(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Run{Result: montyhall.Result{Params: classic}}))
	var got yamlRun
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Nil(t, got.Staying.Prob)
	assert.Nil(t, got.Changed.Prob)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2.50 s", FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "12.34 ms", FormatDuration(12340*time.Microsecond))
	assert.Equal(t, "250 μs", FormatDuration(250*time.Microsecond))
}
