package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests every ball's variant, geometry and color in collection
// order. Two canvases stepped from the same seed have equal fingerprints.
// IDs are left out so hand-built canvases can be compared too.
func (c *Canvas) Fingerprint() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, b := range c.balls {
		buf = buf[:0]
		buf = append(buf, byte(b.Variant), b.Color.R, b.Color.G, b.Color.B)
		for _, f := range [...]float64{b.Radius, b.Position.X, b.Position.Y, b.Direction.X, b.Direction.Y} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
