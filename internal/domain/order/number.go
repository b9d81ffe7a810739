package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberPrefix = "EST"

// GenerateOrderNumber builds an order number of the form
// EST<YYYYMMDDHHMMSS><4 random digits>. Collisions within the same
// second are possible, callers retry on a uniqueness check.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s%s%04d", orderNumberPrefix, now.Format("20060102150405"), randomDigits(10000))
}

func randomDigits(bound int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(bound))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to the clock rather than aborting an order.
		return time.Now().UnixNano() % bound
	}
	return n.Int64()
}
