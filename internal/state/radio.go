// Package state guards a parameter store for use from several goroutines.
//
// params.Store assumes sequential access. RadioState adds the external
// exclusion: a single RWMutex over the whole store, reads under the read lock
// and sets under the write lock.
package state

import (
	"sort"
	"sync"

	"github.com/sdr-params/internal/params"
	"github.com/sdr-params/internal/result"
)

// SetResult is the outcome of one set
type SetResult = result.Result[result.Unit, *params.Error]

// RadioState represents the thread-safe parameter state of the radio
type RadioState struct {
	mu    sync.RWMutex
	store *params.Store
	table []params.Definition
	opts  []params.Option
}

// Outcome is the result of one key of a batch
type Outcome struct {
	Key    string
	Result SetResult
}

// NewRadioState creates a radio state over the default table
func NewRadioState(opts ...params.Option) *RadioState {
	return NewRadioStateWithTable(params.DefaultTable(), opts...).Unwrap()
}

// NewRadioStateWithTable creates a radio state over table
func NewRadioStateWithTable(table []params.Definition, opts ...params.Option) result.Result[*RadioState, *params.Error] {
	r := params.NewWithTable(table, opts...)
	if r.IsErr() {
		return result.Err[*RadioState](r.UnwrapErr())
	}

	saved := make([]params.Definition, len(table))
	copy(saved, table)

	return result.Ok[*RadioState, *params.Error](&RadioState{
		store: r.Unwrap(),
		table: saved,
		opts:  opts,
	})
}

// SetString sets a text key
func (rs *RadioState) SetString(key, value string) SetResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.store.SetString(key, value)
}

// SetDouble sets a numeric key
func (rs *RadioState) SetDouble(key string, value float64) SetResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.store.SetDouble(key, value)
}

// SetBool sets a boolean key
func (rs *RadioState) SetBool(key string, value bool) SetResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.store.SetBool(key, value)
}

// Set sets key dispatching on the dynamic type of value
func (rs *RadioState) Set(key string, value interface{}) SetResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.store.Set(key, value)
}

// GetString reads any key as its canonical text
func (rs *RadioState) GetString(key string) result.Result[string, *params.Error] {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.store.GetString(key)
}

// GetDouble reads a numeric key
func (rs *RadioState) GetDouble(key string) result.Result[float64, *params.Error] {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.store.GetDouble(key)
}

// GetBool reads a boolean key
func (rs *RadioState) GetBool(key string) result.Result[bool, *params.Error] {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.store.GetBool(key)
}

// Describe returns key's definition with its current value
func (rs *RadioState) Describe(key string) result.Result[params.Definition, *params.Error] {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.store.Describe(key)
}

// Keys returns every key in sorted order
func (rs *RadioState) Keys() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.store.Keys()
}

// Snapshot returns every key's canonical text, read under one lock
func (rs *RadioState) Snapshot() map[string]string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	snap := make(map[string]string, rs.store.Len())
	for _, key := range rs.store.Keys() {
		snap[key] = rs.store.GetString(key).Unwrap()
	}
	return snap
}

// Apply sets every key of values in sorted key order under one write lock.
// Keys are independent: a rejected key leaves its own value unchanged and does
// not stop the others.
func (rs *RadioState) Apply(values map[string]interface{}) []Outcome {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rs.mu.Lock()
	defer rs.mu.Unlock()

	outcomes := make([]Outcome, 0, len(keys))
	for _, k := range keys {
		outcomes = append(outcomes, Outcome{Key: k, Result: rs.store.Set(k, values[k])})
	}
	return outcomes
}

// FactoryReset restores every key to the value of the table the state was
// built from
func (rs *RadioState) FactoryReset() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	// the table was validated at construction
	rs.store = params.NewWithTable(rs.table, rs.opts...).Unwrap()
}
