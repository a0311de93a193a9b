package benchmark

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultsOf(pairs ...any) *Results {
	r := NewResults()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(time.Duration))
	}
	return r
}

func TestMergeDisjointKeepsCallOrder(t *testing.T) {
	a := resultsOf("a1", time.Second, "a2", 2*time.Second)
	b := resultsOf("b1", 3*time.Second)
	c := resultsOf("c1", 4*time.Second, "c2", 5*time.Second)

	merged := Merge(a, b, c)
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, merged.Keys())
	assert.Equal(t, 15*time.Second, merged.Total())
}

func TestMergeLastWriteWins(t *testing.T) {
	a := resultsOf("AES", time.Second, "SEED", 2*time.Second)
	b := resultsOf("Blowfish", 3*time.Second, "AES", 4*time.Second)

	merged := Merge(a, b)
	assert.Equal(t, []string{"AES", "SEED", "Blowfish"}, merged.Keys())

	d, ok := merged.Get("AES")
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, d)
}

func TestMergeEmptyAndNil(t *testing.T) {
	merged := Merge(nil, NewResults(), resultsOf("x", time.Millisecond))
	assert.Equal(t, []string{"x"}, merged.Keys())
	assert.Equal(t, 0, Merge().Len())
}

func TestResultsMarshalJSONKeepsOrder(t *testing.T) {
	r := resultsOf("Camellia", 1500*time.Millisecond, "AES", 250*time.Millisecond, "3\"DES", 0*time.Second)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Camellia":1.5,"AES":0.25,"3\"DES":0}`, string(data))

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 3)
}

func TestScore(t *testing.T) {
	score, err := Score(10 * time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, score, 1e-9)

	score, err = Score(100 * time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, score, 1e-9)
	assert.False(t, math.IsInf(score, 0))
}

func TestScoreDegenerate(t *testing.T) {
	for _, total := range []time.Duration{0, 500 * time.Millisecond, time.Second} {
		_, err := Score(total)
		require.Error(t, err, total.String())

		var scoreErr *DegenerateScoreError
		require.True(t, errors.As(err, &scoreErr))
		assert.Equal(t, total, scoreErr.Total)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate())

	cfg.Path = "input.txt"
	assert.NoError(t, cfg.Validate())

	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Path = "input.txt"
	cfg.OutputFile = ""
	assert.Error(t, cfg.Validate())
}

func TestMeasurementThroughput(t *testing.T) {
	m := Measurement{BytesIn: 2 * 1024 * 1024, Elapsed: 2 * time.Second}
	assert.InDelta(t, 1.0, m.MBPerSecond(), 1e-9)
	assert.Zero(t, Measurement{BytesIn: 10}.MBPerSecond())
}
