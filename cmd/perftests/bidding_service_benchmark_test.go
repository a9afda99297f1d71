package perftests

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// Benchmark 1: PlaceBid - one advert per bid (low contention)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	_, svc := setupService(b.N, 100)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBid(ctx, advertID(i), userID(i%100), 10000+int64(rand.Intn(5000))); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - every goroutine bids on the same advert (high contention).
// Amounts are drawn from a fixed band, so once the leader nears its top most
// bids take the rejection path under the same lock.
func Benchmark_PlaceBid_ConcurrentSharedAdvert(b *testing.B) {
	const users = 500
	_, svc := setupService(1, users)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var accepted, rejected int64

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			amount := 10000 + int64(rnd.Intn(1_000_000))
			if _, err := svc.PlaceBid(ctx, advertID(0), userID(rnd.Intn(users)), amount); err != nil {
				atomic.AddInt64(&rejected, 1)
				continue
			}
			atomic.AddInt64(&accepted, 1)
		}
	})

	b.ReportMetric(float64(accepted), "accepted")
	b.ReportMetric(float64(rejected), "rejected")
}

// Benchmark 3: GetWinningBid - single threaded
func Benchmark_GetWinningBid_SingleThreaded(b *testing.B) {
	_, svc := setupService(b.N, 10)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		amount := int64(10000)
		for j := 0; j < 10; j++ {
			_, _ = svc.PlaceBid(ctx, advertID(i), userID(j), amount)
			amount += amount / 10
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetWinningBid(ctx, advertID(i)); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - concurrent readers on one advert
func Benchmark_GetWinningBid_ConcurrentSharedAdvert(b *testing.B) {
	_, svc := setupService(1, 100)
	ctx := context.Background()

	amount := int64(10000)
	for j := 0; j < 100; j++ {
		_, _ = svc.PlaceBid(ctx, advertID(0), userID(j), amount)
		amount += amount / 10
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetWinningBid(ctx, advertID(0)); err != nil {
				b.Errorf("failed to get winning bid: %v", err)
				return
			}
		}
	})
}

// Benchmark 5: mixed readers and writers on one advert, 70/30
func Benchmark_MixedWorkload_SharedAdvert(b *testing.B) {
	const users = 200
	_, svc := setupService(1, users)
	ctx := context.Background()

	if _, err := svc.PlaceBid(ctx, advertID(0), userID(0), 10000); err != nil {
		b.Fatalf("failed to seed bid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				_, _ = svc.PlaceBid(ctx, advertID(0), userID(rnd.Intn(users)), 10000+int64(rnd.Intn(1_000_000)))
				continue
			}
			if _, err := svc.GetWinningBid(ctx, advertID(0)); err != nil {
				b.Errorf("failed to get winning bid: %v", err)
				return
			}
		}
	})
}
