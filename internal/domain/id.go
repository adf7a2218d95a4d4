package domain

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const idSuffixLen = 11

var idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an opaque item id: the base-36 millisecond clock followed by
// a random base-36 suffix. Collisions are not checked.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))

	max := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < idSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms; fall back to
			// the clock so the id stays non-empty.
			n = big.NewInt(now.UnixNano() % int64(len(idAlphabet)))
		}
		b.WriteByte(idAlphabet[n.Int64()])
	}
	return b.String()
}
