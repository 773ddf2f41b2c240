package yaz0

import (
	"encoding/binary"
	"fmt"
	"math"
)

// searchDepth bounds how many hash-chain candidates each level inspects.
// Level 0 emits literals only.
var searchDepth = [maxLevel + 1]int{0, 1, 4, 8, 16, 32, 64, 256, 1024, windowSize}

const (
	hashBits = 15
	hashSize = 1 << hashBits
	noPos    = -1
)

// Compress encodes src as a Yaz0 stream. alignment is stored in the header
// as a hint for the decompressed buffer; level ranges from 0 (fastest,
// literals only) to 9 (smallest).
func Compress(src []byte, alignment uint32, level int) ([]byte, error) {
	if level < 0 || level > maxLevel {
		return nil, fmt.Errorf("%w: %d", ErrLevel, level)
	}
	if len(src) > math.MaxInt32 {
		return nil, fmt.Errorf("yaz0: input too large (%d bytes)", len(src))
	}

	out := make([]byte, HeaderSize, HeaderSize+len(src)+len(src)/8+1)
	copy(out, Magic)
	binary.BigEndian.PutUint32(out[sizeOffset:], uint32(len(src)))
	binary.BigEndian.PutUint32(out[alignmentOffset:], alignment)

	m := newMatcher(src, searchDepth[level])
	lazy := level >= 7

	flagPos := -1
	bit := opsPerGroup
	pos := 0
	for pos < len(src) {
		if bit == opsPerGroup {
			flagPos = len(out)
			out = append(out, 0)
			bit = 0
		}

		length, dist := m.find(pos)
		if lazy && length >= minMatch && length < maxMatch && pos+1 < len(src) {
			m.insert(pos)
			if next, _ := m.find(pos + 1); next > length+1 {
				length = 0
			}
		} else {
			m.insert(pos)
		}

		if length < minMatch {
			out[flagPos] |= 0x80 >> bit
			out = append(out, src[pos])
			pos++
			bit++
			continue
		}

		d := dist - 1
		if length <= shortMaxLen {
			out = append(out, byte((length-2)<<4)|byte(d>>8), byte(d))
		} else {
			out = append(out, byte(d>>8), byte(d), byte(length-longLenBias))
		}
		for i := 1; i < length; i++ {
			m.insert(pos + i)
		}
		pos += length
		bit++
	}
	return out, nil
}

// matcher finds back-references with hash chains over 3-byte prefixes.
type matcher struct {
	src      []byte
	depth    int
	head     []int32
	prev     []int32
	inserted int
}

func newMatcher(src []byte, depth int) *matcher {
	m := &matcher{src: src, depth: depth}
	if depth == 0 {
		return m
	}
	m.head = make([]int32, hashSize)
	for i := range m.head {
		m.head[i] = noPos
	}
	m.prev = make([]int32, len(src))
	return m
}

func (m *matcher) hash(pos int) uint32 {
	s := m.src
	v := uint32(s[pos])<<16 | uint32(s[pos+1])<<8 | uint32(s[pos+2])
	return (v * 2654435761) >> (32 - hashBits)
}

// insert records pos in the chains. Positions are inserted in increasing
// order; repeated inserts are ignored.
func (m *matcher) insert(pos int) {
	if m.depth == 0 || pos < m.inserted || pos+minMatch > len(m.src) {
		return
	}
	h := m.hash(pos)
	m.prev[pos] = m.head[h]
	m.head[h] = int32(pos)
	m.inserted = pos + 1
}

// find returns the longest match for pos among earlier inserted positions.
func (m *matcher) find(pos int) (length, dist int) {
	if m.depth == 0 || pos+minMatch > len(m.src) {
		return 0, 0
	}
	limit := min(maxMatch, len(m.src)-pos)
	cand := m.head[m.hash(pos)]
	if pos < m.inserted {
		cand = m.prev[pos]
	}
	for tries := 0; cand != noPos && tries < m.depth; tries++ {
		c := int(cand)
		d := pos - c
		if d > windowSize {
			break
		}
		if d > 0 {
			n := 0
			for n < limit && m.src[c+n] == m.src[pos+n] {
				n++
			}
			if n > length {
				length, dist = n, d
				if n == limit {
					break
				}
			}
		}
		cand = m.prev[c]
	}
	return length, dist
}
