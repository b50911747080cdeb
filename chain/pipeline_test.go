package chain_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-table-utils/chain"
	"github.com/hasbyte1/go-table-utils/table"
)

func seq(t *testing.T, vals ...any) *table.Table {
	t.Helper()
	return table.New(vals...)
}

func assertResultSeq(t *testing.T, p *chain.Pipeline, want ...any) {
	t.Helper()
	got, err := p.Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if got.Len() != len(want) || got.Size() != len(want) {
		t.Fatalf("Result Len/Size = %d/%d; want %d (table=%v)", got.Len(), got.Size(), len(want), got)
	}
	for i, w := range want {
		if v := got.Get(i + 1); v != w {
			t.Fatalf("position %d = %v; want %v", i+1, v, w)
		}
	}
}

// ─── Happy path ───────────────────────────────────────────────────────────────

func TestPipelineChain(t *testing.T) {
	p := chain.From(seq(t, 1, 2, 3, 4, 5, 6)).
		Filter(func(v, _ any, _ *table.Table) bool { return v.(int)%2 == 0 }).
		Reverse().
		Slice(1, 3)
	assertResultSeq(t, p, 6, 4)
}

func TestPipelineMapSkip(t *testing.T) {
	p := chain.From(seq(t, 1, 2, 3)).
		Map(func(v any, _ int, _ *table.Table) any {
			if v.(int) > 1 {
				return v.(int) * 2
			}
			return nil
		})
	assertResultSeq(t, p, 4, 6)
}

func TestPipelineConcat(t *testing.T) {
	p := chain.From(seq(t, 1)).Concat(table.New(2, 3), nil, 4)
	assertResultSeq(t, p, 1, 2, 3, 4)
}

func TestPipelineDoesNotMutateSource(t *testing.T) {
	src := seq(t, 1, 2, 3)
	if _, err := chain.From(src).Reverse().Concat(99).Result(); err != nil {
		t.Fatalf("Result error: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if src.Get(i) != i {
			t.Fatalf("source mutated at %d: %v", i, src.Get(i))
		}
	}
}

func TestPipelineReconcile(t *testing.T) {
	defaults := table.New()
	defaults.Set("host", "localhost")
	defaults.Set("port", 8080)

	user := table.New()
	user.Set("port", 9090)

	got, err := chain.From(user).Reconcile(defaults).Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if got.Get("host") != "localhost" || got.Get("port") != 9090 {
		t.Fatalf("Reconcile = %v; want {host:localhost, port:9090}", got)
	}
}

func TestPipelineOnlyExceptDotUndot(t *testing.T) {
	src, err := table.FromNative(map[string]any{
		"keep": map[string]any{"a": 1},
		"drop": 2,
	})
	if err != nil {
		t.Fatalf("FromNative error: %v", err)
	}

	flat, err := chain.From(src).Except("drop").Dot().Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if flat.Size() != 1 || flat.Get("keep.a") != 1 {
		t.Fatalf("Dot result = %v; want {keep.a:1}", flat)
	}

	back, err := chain.From(flat).Undot().Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if back.GetPath("keep.a") != 1 {
		t.Fatalf("Undot result = %v; want {keep:{a:1}}", back)
	}

	only, err := chain.From(src).Only("drop").Result()
	if err != nil {
		t.Fatalf("Result error: %v", err)
	}
	if only.Size() != 1 || only.Get("drop") != 2 {
		t.Fatalf("Only result = %v; want {drop:2}", only)
	}
}

// ─── Error deferral ───────────────────────────────────────────────────────────

func TestPipelineDefersFirstError(t *testing.T) {
	mapShaped := table.New()
	mapShaped.Set("k", "v")

	called := false
	_, err := chain.From(mapShaped).
		Map(func(v any, _ int, _ *table.Table) any { return v }). // fails: not array-like
		Filter(func(any, any, *table.Table) bool { called = true; return true }).
		Result()
	if !errors.Is(err, table.ErrNotArray) {
		t.Fatalf("Result err = %v; want ErrNotArray", err)
	}
	if called {
		t.Fatal("stages after a failure must be skipped")
	}
}

func TestPipelineParseErrorDefers(t *testing.T) {
	_, err := chain.FromJSON([]byte(`{"broken`)).Reverse().Result()
	if err == nil {
		t.Fatal("parse failure should surface from Result")
	}
}

func TestPipelineScalarDocument(t *testing.T) {
	if _, err := chain.FromJSON([]byte(`42`)).Result(); !errors.Is(err, table.ErrNotContainer) {
		t.Fatalf("Result err = %v; want ErrNotContainer", err)
	}
}

func TestPipelineErrTerminals(t *testing.T) {
	p := chain.FromJSON([]byte(`42`))
	if p.Err() == nil {
		t.Fatal("Err should report the parse failure")
	}
	if _, err := p.ToJSON(); !errors.Is(err, table.ErrNotContainer) {
		t.Fatalf("ToJSON err = %v; want ErrNotContainer", err)
	}
	if _, err := p.Reduce(func(acc, v any, _ int, _ *table.Table) any { return acc }); !errors.Is(err, table.ErrNotContainer) {
		t.Fatalf("Reduce err = %v; want ErrNotContainer", err)
	}
	if _, _, err := p.Find(func(any, any, *table.Table) bool { return true }); !errors.Is(err, table.ErrNotContainer) {
		t.Fatalf("Find err = %v; want ErrNotContainer", err)
	}
	if _, err := p.Spread(); !errors.Is(err, table.ErrNotContainer) {
		t.Fatalf("Spread err = %v; want ErrNotContainer", err)
	}
}

func TestPipelineMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must should panic on a deferred error")
		}
	}()
	chain.FromJSON([]byte(`42`)).Must()
}

func TestPipelineMustReturnsTable(t *testing.T) {
	got := chain.From(seq(t, 1, 2)).Reverse().Must()
	if got.Get(1) != 2 || got.Get(2) != 1 {
		t.Fatalf("Must = %v; want [2,1]", got)
	}
}

// ─── Conditionals ─────────────────────────────────────────────────────────────

func TestPipelineWhen(t *testing.T) {
	add := func(p *chain.Pipeline) *chain.Pipeline { return p.Concat("extra") }

	p := chain.From(seq(t, "a")).When(true, add)
	assertResultSeq(t, p, "a", "extra")

	p = chain.From(seq(t, "a")).When(false, add)
	assertResultSeq(t, p, "a")
}

func TestPipelineUnless(t *testing.T) {
	add := func(p *chain.Pipeline) *chain.Pipeline { return p.Concat("extra") }

	p := chain.From(seq(t, "a")).Unless(false, add)
	assertResultSeq(t, p, "a", "extra")

	p = chain.From(seq(t, "a")).Unless(true, add)
	assertResultSeq(t, p, "a")
}

func TestPipelineTap(t *testing.T) {
	var seen int
	p := chain.From(seq(t, 1, 2, 3)).Tap(func(tb *table.Table) { seen = tb.Len() })
	assertResultSeq(t, p, 1, 2, 3)
	if seen != 3 {
		t.Fatalf("Tap saw Len %d; want 3", seen)
	}
}

func TestPipelineTapSkippedAfterError(t *testing.T) {
	chain.FromJSON([]byte(`42`)).Tap(func(*table.Table) {
		t.Fatal("Tap must not run on a failed pipeline")
	})
}

// ─── Terminal reductions ──────────────────────────────────────────────────────

func TestPipelineReduce(t *testing.T) {
	got, err := chain.From(seq(t, 1, 2, 3, 4)).
		Filter(func(v, _ any, _ *table.Table) bool { return v.(int) > 1 }).
		Reduce(func(acc, v any, _ int, _ *table.Table) any { return acc.(int) + v.(int) })
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if got != 9 {
		t.Fatalf("Reduce = %v; want 9", got)
	}
}

func TestPipelineFind(t *testing.T) {
	v, ok, err := chain.From(seq(t, 5, 10, 15)).
		Find(func(v, _ any, _ *table.Table) bool { return v.(int) > 7 })
	if err != nil || !ok || v != 10 {
		t.Fatalf("Find = %v, %v, %v; want 10, true, nil", v, ok, err)
	}
}

func TestPipelineToJSON(t *testing.T) {
	out, err := chain.From(seq(t, 1, 2)).Concat(3).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	if string(out) != `[1,2,3]` {
		t.Fatalf("ToJSON = %s; want [1,2,3]", out)
	}
}

func TestPipelineYAMLRoundTrip(t *testing.T) {
	out, err := chain.FromYAML([]byte("a: 1\nb: 2\n")).Except("b").ToYAML()
	if err != nil {
		t.Fatalf("ToYAML error: %v", err)
	}
	back, err := chain.FromYAML(out).Result()
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if back.Size() != 1 || back.Get("a") != 1 {
		t.Fatalf("round trip = %v; want {a:1}", back)
	}
}
