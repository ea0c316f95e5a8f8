// Package pipeline provides a lazy, pull-based item-transform pipeline engine.
//
// Transforms are registered as zero-argument builders on a Registry, in the
// order they should run. A Runner resolves the registry once per run,
// invoking every builder afresh (so closures may carry per-run state), and
// applies the resulting chain to each item pulled from a source. A transform
// may pass an item through (One), remove it (Drop), or fan it out into many
// independent items (Many) that each continue through the remaining chain.
// Fan-out is flattened depth-first: every output of one source item is
// yielded before the next source item is pulled.
//
// Nothing executes until values are pulled via Collect, Drain, or ForEach.
//
// Failures are handled by a pluggable ErrorPolicy consulted once per failing
// item; the default policy logs a diagnostic naming the item and makes the
// failure fatal.
//
//	reg := pipeline.NewRegistry[int]()
//	reg.Add("up_one", pipeline.MapFunc(func(n int) int { return n + 1 }))
//	reg.Add("twofer", pipeline.FlatMapFunc(func(n int) []int { return []int{n, n} }))
//
//	runner := pipeline.New(reg)
//	out, err := runner.RunSlice(ctx, []int{0, 1, 3})
//	results, err := pipeline.Collect(ctx, out) // [1 1 2 2 4 4]
package pipeline
