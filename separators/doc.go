// Package separators implements Marx's branching algorithm for
// enumerating all important (s,t)-vertex separators of size at most k
// in an undirected graph, bounded by 4^k many.
//
// ImportantSeparators is the only entry point; everything else in this
// package is the recursive rec() helper and its memoization table,
// which exist only for the duration of one top-level call and are never
// shared or reused across calls — the same freshness discipline as
// flow.Network and cut's split network (see flow/doc.go, cut/doc.go).
//
// Concurrency model: single-threaded, synchronous recursion with no
// goroutines, no cancellation, and no suspension. A caller that needs
// cancellation wraps ImportantSeparators in its own goroutine and
// context; this package does not thread a context.Context through its
// recursion because the teacher's own Dinic does so only where a run
// can genuinely take long enough to need interrupting, and Marx's
// branching is bounded tightly enough by 4^k that it does not qualify.
package separators
