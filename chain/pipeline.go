package chain

import (
	"github.com/hasbyte1/go-table-utils/table"
)

// Pipeline threads a table through a sequence of transformations, deferring
// error handling to the end of the chain. The first stage that fails parks
// its error; every later stage is skipped, and the error surfaces from
// [Pipeline.Result] (or any other terminal method).
//
// # Creating a pipeline
//
//	p := chain.From(t)
//	p := chain.FromJSON(data)
//	p := chain.FromYAML(data)
//
// # Chaining
//
//	evens, err := chain.From(t).
//	    Filter(func(v, _ any, _ *table.Table) bool { return v.(int)%2 == 0 }).
//	    Reverse().
//	    Slice(1, 3).
//	    Result()
//
// # Immutability
//
// Stages never mutate the source table: every transformation yields a new
// table (Reverse works on a copy), so the input to [From] can be shared
// freely with code outside the pipeline.
type Pipeline struct {
	tab *table.Table
	err error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From starts a pipeline over t. The pipeline never mutates t.
func From(t *table.Table) *Pipeline {
	return &Pipeline{tab: t}
}

// FromJSON starts a pipeline by parsing a JSON document; a parse failure is
// deferred like any stage error.
func FromJSON(data []byte) *Pipeline {
	t, err := table.FromJSON(data)
	return &Pipeline{tab: t, err: err}
}

// FromYAML starts a pipeline by parsing a YAML document.
func FromYAML(data []byte) *Pipeline {
	t, err := table.FromYAML(data)
	return &Pipeline{tab: t, err: err}
}

// FromNative starts a pipeline from a native Go map, slice or array.
func FromNative(v any) *Pipeline {
	t, err := table.FromNative(v)
	return &Pipeline{tab: t, err: err}
}

// next wraps a stage result, preserving an already-parked error.
func (p *Pipeline) next(t *table.Table, err error) *Pipeline {
	if err != nil {
		return &Pipeline{err: err}
	}
	return &Pipeline{tab: t}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stages
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn positionally; see [table.Table.Map] for the skip rule.
func (p *Pipeline) Map(fn table.Mapper) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Map(fn))
}

// Filter keeps the values pred accepts; see [table.Table.Filter].
func (p *Pipeline) Filter(pred table.Predicate) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Filter(pred))
}

// Slice narrows to a positional range; see [table.Table.Slice].
func (p *Pipeline) Slice(bounds ...int) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Slice(bounds...))
}

// Concat appends the given values after the current table's elements,
// flattening array-like tables one level; see [table.Concat].
func (p *Pipeline) Concat(values ...any) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(table.Concat(p.tab, values...), nil)
}

// Reverse reverses the sequence part. Unlike [table.Table.Reverse] this
// works on a copy, keeping the pipeline non-mutating.
func (p *Pipeline) Reverse() *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Copy().Reverse(), nil)
}

// Reconcile fills gaps from a defaults table; see [table.Table.Reconcile].
func (p *Pipeline) Reconcile(defaults *table.Table) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Reconcile(defaults))
}

// Only keeps the given top-level keys; see [table.Table.Only].
func (p *Pipeline) Only(keys ...any) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Only(keys...), nil)
}

// Except drops the given top-level keys; see [table.Table.Except].
func (p *Pipeline) Except(keys ...any) *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Except(keys...), nil)
}

// Dot flattens nested tables into dot-notation keys; see [table.Table.Dot].
func (p *Pipeline) Dot() *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Dot(), nil)
}

// Undot expands dot-notation keys back into nested tables; see
// [table.Table.Undot].
func (p *Pipeline) Undot() *Pipeline {
	if p.err != nil {
		return p
	}
	return p.next(p.tab.Undot(), nil)
}

// Tap calls fn with the current table for inspection (logging, debugging)
// and continues the chain unchanged. fn must not mutate the table.
func (p *Pipeline) Tap(fn func(*table.Table)) *Pipeline {
	if p.err == nil {
		fn(p.tab)
	}
	return p
}

// When applies fn to the pipeline only if cond is true.
//
//	chain.From(t).When(verbose, func(p *chain.Pipeline) *chain.Pipeline {
//	    return p.Tap(dump)
//	})
func (p *Pipeline) When(cond bool, fn func(*Pipeline) *Pipeline) *Pipeline {
	if cond {
		return fn(p)
	}
	return p
}

// Unless applies fn to the pipeline only if cond is false.
func (p *Pipeline) Unless(cond bool, fn func(*Pipeline) *Pipeline) *Pipeline {
	return p.When(!cond, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// Result returns the final table, or the first error any stage produced.
func (p *Pipeline) Result() (*table.Table, error) {
	return p.tab, p.err
}

// Must returns the final table and panics on a deferred error. Reserve it
// for pipelines over inputs known to be well-formed, such as compiled-in
// defaults.
func (p *Pipeline) Must() *table.Table {
	if p.err != nil {
		panic(p.err)
	}
	return p.tab
}

// Err returns the first error any stage produced, or nil.
func (p *Pipeline) Err() error {
	return p.err
}

// Reduce folds the current table; see [table.Table.Reduce].
func (p *Pipeline) Reduce(fn table.Reducer, initial ...any) (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tab.Reduce(fn, initial...)
}

// Find scans the current table; see [table.Table.Find].
func (p *Pipeline) Find(pred table.Predicate) (any, bool, error) {
	if p.err != nil {
		return nil, false, p.err
	}
	return p.tab.Find(pred)
}

// Spread projects the current table onto a []any; see [table.Table.Spread].
func (p *Pipeline) Spread(bounds ...int) ([]any, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tab.Spread(bounds...)
}

// ToJSON serialises the final table.
func (p *Pipeline) ToJSON() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tab.ToJSON()
}

// ToYAML serialises the final table.
func (p *Pipeline) ToYAML() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tab.ToYAML()
}
