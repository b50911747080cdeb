// Package chain provides a fluent, error-deferring pipeline over
// [table.Table] values.
//
// The table package returns an error from every operation that can fail,
// which is exact but noisy in multi-step transformations. A [Pipeline]
// moves that noise to the end of the chain: stages run until one fails,
// later stages are skipped, and the first error comes back from the
// terminal call.
//
//	evens, err := chain.From(t).
//	    Filter(func(v, _ any, _ *table.Table) bool { return v.(int)%2 == 0 }).
//	    Reverse().
//	    Slice(1, 3).
//	    Result()
//
// # Terminals
//
// [Pipeline.Result] returns (table, error); [Pipeline.Must] panics on a
// deferred error; [Pipeline.Reduce], [Pipeline.Find], [Pipeline.Spread],
// [Pipeline.ToJSON] and [Pipeline.ToYAML] combine a final operation with
// error extraction.
//
// # Conditional stages
//
// [Pipeline.When], [Pipeline.Unless] and [Pipeline.Tap] support branching
// and inspection without breaking the chain:
//
//	cfg := chain.FromYAML(raw).
//	    Reconcile(defaults).
//	    When(stripSecrets, func(p *chain.Pipeline) *chain.Pipeline {
//	        return p.Except("credentials")
//	    }).
//	    Must()
package chain
