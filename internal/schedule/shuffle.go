package schedule

import (
	"math/rand"
	"time"
)

// now is replaced in tests.
var now = time.Now

// resolveSeed returns seed, or a clock reading when seed is negative.
func resolveSeed(seed int64) int64 {
	if seed >= 0 {
		return seed
	}
	return now().UnixNano()
}

// shuffleDays permutes days in place. Games within a day keep their order.
func shuffleDays(days []Day, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(days), func(i, j int) {
		days[i], days[j] = days[j], days[i]
	})
}
