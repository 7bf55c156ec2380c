/*
Package query implements a lazy, composable sequence-processing engine over
Go 1.23+ iterators (iter.Seq).

A chain is built from a source ([From], [FromSlice], [FromList], [Range],
[Repeat]) and composed with [Select], [Take], [Skip], [TakeLast], [SkipLast],
windowing via Sequence.TakeRange, and ordering via [OrderBy]. Nothing is
evaluated until a terminal operation runs (ToSlice, Count, ElementAt,
First, Last).

# Specialization

Every stage implements the [Sequence] capability contract, so each
composition step inspects its operand and picks the cheapest wrapper:
windowing a slice re-slices it, windowing an integer range narrows the
range, a select after a select composes the two projections into one stage,
and a select over a range fuses into a single object. A window that is
provably empty collapses to the shared [Empty] value.

# Windows

Windows are half-open [start, end) intervals where either bound may be
anchored at the end of the sequence. End-anchored bounds are resolved
against the total length only when that length is needed, so chains over
unknown-length sources never materialize just to answer a range request.

# Concurrency

Evaluation is single-threaded and pull-based. Stages are immutable after
construction; every call to All returns an independent cursor, so one chain
may be enumerated several times or from several goroutines only if each
enumeration owns its own cursor.
*/
package query
