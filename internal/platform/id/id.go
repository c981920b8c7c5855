package id

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strconv"
	"sync/atomic"
	"time"
)

const groupIDBytes = 16

// Generator creates session group ids.
type Generator interface {
	New() string
}

// RandomHex yields 32-char hex ids read from Source, or crypto/rand when
// Source is nil.
type RandomHex struct {
	Source io.Reader
}

var fallbackSeq atomic.Uint64

func (g RandomHex) New() string {
	source := g.Source
	if source == nil {
		source = rand.Reader
	}
	buf := make([]byte, groupIDBytes)
	if _, err := io.ReadFull(source, buf); err != nil {
		// short reads still need a unique id; derive one from the clock
		seed := strconv.FormatUint(fallbackSeq.Add(1), 16) + "-" + strconv.FormatInt(time.Now().UnixNano(), 16)
		copy(buf, seed)
	}
	return hex.EncodeToString(buf)
}
