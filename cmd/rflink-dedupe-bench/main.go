// Command rflink-dedupe-bench drives the duplicate-suppression cache
// with synthetic traffic and reports eviction statistics, letting S6
// from spec.md §8 (11 sources contending for 10 slots) be validated
// against real timing distributions instead of only a unit test's fixed
// sequence. Flag shape follows cmd/ttcalc's small pflag-based CLIs.
package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/pflag"

	"github.com/sebmillet/rflink/engine"
)

func main() {
	var (
		sources    = pflag.IntP("sources", "s", 11, "distinct source addresses to simulate")
		rounds     = pflag.IntP("rounds", "r", 1000, "observations to feed the cache")
		intervalMs = pflag.Uint32P("interval-ms", "i", 100, "average milliseconds between observations")
		seed       = pflag.Int64P("seed", "", 1, "PRNG seed for reproducible runs")
	)
	pflag.Parse()

	if *sources <= 0 || *rounds <= 0 {
		fmt.Println("rflink-dedupe-bench: --sources and --rounds must be positive")
		return
	}

	cache := engine.NewDedupeCache()
	rng := rand.New(rand.NewSource(*seed))

	var now uint32
	duplicates := 0
	firstSeen := 0
	nextPktID := make(map[engine.Address]engine.PacketID, *sources)

	for i := 0; i < *rounds; i++ {
		src := engine.Address(rng.Intn(*sources))
		// 1 in 4 observations replays the last packet-id from that
		// source, to exercise the duplicate path alongside eviction.
		var pktID engine.PacketID
		if rng.Intn(4) == 0 && nextPktID[src] > 0 {
			pktID = nextPktID[src] - 1
		} else {
			pktID = nextPktID[src]
			nextPktID[src] = pktID + 1
		}

		if cache.Observe(src, pktID, now) {
			duplicates++
		} else {
			firstSeen++
		}

		now += uint32(rng.Intn(int(*intervalMs)*2 + 1))
	}

	fmt.Printf("observations=%d first_seen=%d duplicates=%d final_cache_len=%d/%d\n",
		*rounds, firstSeen, duplicates, cache.Len(), engine.CacheCapacity)
}
