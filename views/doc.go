// Package views provides View, a composable pipeline of deferred
// transformations over any traversal source.
//
// # Evaluation model
//
// A View is a recipe, not a result. Stage methods (Map, Filter, Take, ...)
// do no element work: each returns a new View wrapping the previous one, in
// O(1). Work happens only when a terminal operation runs the pipeline, and
// then strictly on demand: the terminal pulls one element at a time, each
// stage pulls from the stage above it, and no intermediate collection is
// ever materialized between stages.
//
//	v := views.Over(1, 2, 3, 4, 5, 6).
//	    Map(func(n int) int { return n * n }).  // nothing computed yet
//	    Filter(func(n int) bool { return n%2 == 0 })
//	v.Force() // now each stage runs, element by element
//
// # No caching
//
// Unlike lazy.Seq, a View remembers nothing: every terminal run re-pulls a
// fresh cursor from the source and recomputes every stage. Run a pipeline
// twice and each transformation function runs twice per element. That makes
// a View the right tool for one-shot transformations over live sources (the
// result always reflects the source's current contents) and lazy.Seq the
// right tool when results will be re-read. To pin a pipeline's output, end
// it with Force and keep the list.
//
// # Bounded pulls
//
// Because evaluation is pull-driven, a bounding stage bounds the whole
// pipeline: Take(3) means upstream stages compute at most three surviving
// elements, however long the source. Pipelines over unbounded sources
// (a lazy.Seq generator, for instance) are fine as long as some stage or
// terminal bounds them; Force or Count without a bound does not return.
//
// # Views do not alias
//
// A View never writes to its source and holds no element storage. The one
// write-through view in this module is [containers.Window], a deliberately
// distinct type: keeping mutation out of View means a pipeline can never
// modify a container by accident.
package views
