/*
Package seqs provides small building blocks for working with Go 1.23+ iterators (iter.Seq).

It includes:

  - **Generation**: [Range] for half-open integer sequences in either direction.
  - **Functional Transformations**: [Map], [Filter], [TryMap].
  - **Sinks**: [Collect], [TryCollect], [Sum], [Average].
  - **Checked Arithmetic**: [CheckedMul] reports overflow instead of wrapping.

# Error Handling

[TryMap] yields (value, error) pairs and lets the consumer decide whether to keep going.
[TryCollect] is the fail-fast consumer: it stops at the first error and drops the partial result.

	squares, err := seqs.TryCollect(seqs.TryMap(seqs.Range(1, 10, 1), square))
*/
package seqs
