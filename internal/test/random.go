package test

import (
	"math/rand"
	"sync"
	"time"
)

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns an alphanumeric string whose length falls in
// [minLen, maxLen]. Equal bounds pin the exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	rngMu.Lock()
	defer rngMu.Unlock()
	buf := make([]byte, minLen+rng.Intn(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphanumerics[rng.Intn(len(alphanumerics))]
	}
	return string(buf)
}
