package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the request integrity
// key. It must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool (re)keys the pool. Every hasher created afterwards uses
// hashKey.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data computed with a pooled hasher. The
// adapter sends it hex-encoded in the request integrity header.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
