package huffzip

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MeanZhang/huffzip/huffman"
)

// CodecCache memoizes built codecs across Compress calls, keyed by the full
// frequency fingerprint. Entries are bucketed by a 64-bit hash of the
// fingerprint and the fingerprint itself is verified on every hit, so a
// hash collision costs a rebuild, never a wrong codec. Safe for concurrent
// use.
type CodecCache struct {
	codecs *lru.Cache[uint64, cacheEntry]
}

type cacheEntry struct {
	fingerprint string
	codec       *huffman.Codec
}

// NewCodecCache returns a cache holding up to size codecs, evicting in LRU
// order.
func NewCodecCache(size int) (*CodecCache, error) {
	codecs, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &CodecCache{codecs: codecs}, nil
}

// Len returns the number of cached codecs.
func (cc *CodecCache) Len() int {
	return cc.codecs.Len()
}

func (cc *CodecCache) get(fingerprint string) (*huffman.Codec, bool) {
	entry, ok := cc.codecs.Get(xxhash.Sum64String(fingerprint))
	if !ok || entry.fingerprint != fingerprint {
		return nil, false
	}
	return entry.codec, true
}

func (cc *CodecCache) add(fingerprint string, codec *huffman.Codec) {
	cc.codecs.Add(xxhash.Sum64String(fingerprint), cacheEntry{
		fingerprint: fingerprint,
		codec:       codec,
	})
}
