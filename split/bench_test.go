package split_test

import (
	"testing"

	"github.com/lowasser/splitsource/split"
)

// benchDrain measures one full drain of an Indexed range of size n under
// the given strategy.
func benchDrain(b *testing.B, st split.Strategy, n int) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	var sink int
	for i := 0; i < b.N; i++ {
		src, err := split.Indexed(n, func(i int) int { return i }, split.Ordered)
		if err != nil {
			b.Fatal(err)
		}
		if err = split.Drain(st, src, func(v int) { sink += v }); err != nil {
			b.Fatal(err)
		}
	}
	_ = sink
}

func BenchmarkDrain_BulkDrain(b *testing.B)    { benchDrain(b, split.BulkDrain, 1<<16) }
func BenchmarkDrain_StepAdvance(b *testing.B)  { benchDrain(b, split.StepAdvance, 1<<16) }
func BenchmarkDrain_MaximumSplit(b *testing.B) { benchDrain(b, split.MaximumSplit, 1<<16) }

// BenchmarkTrySplit measures the cost of one split level, which must stay
// O(1) regardless of range size.
func BenchmarkTrySplit(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src, _ := split.Indexed(1<<20, func(i int) int { return i }, split.Ordered)
		if src.TrySplit() == nil {
			b.Fatal("split refused on a large range")
		}
	}
}
