package tone

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"sync"
)

// pcmCache keeps rendered tones in memory. Jingles and key clicks repeat
// constantly, so each distinct one is synthesized once. The key is
// sha256 over the volume and every (pitch, duration) pair.
type pcmCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	hits    int64
	misses  int64
}

func newPCMCache() *pcmCache {
	return &pcmCache{entries: make(map[string][]byte)}
}

// render returns the PCM for segs, synthesizing it on a miss.
func (c *pcmCache) render(volume float64, segs ...segment) []byte {
	key := cacheKey(volume, segs)

	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return data
	}

	data = renderPCM(volume, segs...)
	c.mu.Lock()
	c.entries[key] = data
	c.misses++
	c.mu.Unlock()
	return data
}

// stats returns hit and miss counts.
func (c *pcmCache) stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func cacheKey(volume float64, segs []segment) string {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(volume))
	h.Write(buf[:])
	for _, s := range segs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(s.hz))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(s.d))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
