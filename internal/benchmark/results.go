package benchmark

import (
	"bytes"
	"encoding/json"
	"time"
)

// Results maps algorithm names to elapsed time, keeping insertion order.
type Results struct {
	keys   []string
	values map[string]time.Duration
}

func NewResults() *Results {
	return &Results{values: make(map[string]time.Duration)}
}

// Set stores d under name. An existing name keeps its position.
func (r *Results) Set(name string, d time.Duration) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = d
}

func (r *Results) Get(name string) (time.Duration, bool) {
	d, ok := r.values[name]
	return d, ok
}

// Seconds returns the elapsed time for name in seconds, 0 if absent.
func (r *Results) Seconds(name string) float64 {
	return r.values[name].Seconds()
}

func (r *Results) Len() int { return len(r.keys) }

// Keys returns a copy of the names in insertion order.
func (r *Results) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Each visits entries in insertion order.
func (r *Results) Each(fn func(name string, d time.Duration)) {
	for _, k := range r.keys {
		fn(k, r.values[k])
	}
}

// Total is the sum of all elapsed times.
func (r *Results) Total() time.Duration {
	var sum time.Duration
	for _, d := range r.values {
		sum += d
	}
	return sum
}

// Merge concatenates result sets in call order. When a name repeats, the
// later value wins and the first position is kept. Nil sets are skipped.
func Merge(sets ...*Results) *Results {
	merged := NewResults()
	for _, set := range sets {
		if set == nil {
			continue
		}
		set.Each(merged.Set)
	}
	return merged
}

// MarshalJSON writes a flat object of name to seconds in insertion order.
func (r *Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k].Seconds())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
