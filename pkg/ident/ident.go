// Package ident generates the stable identifiers carried by sections and rows.
package ident

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces unique, sortable identifiers. Monotonic entropy keeps
// two calls within the same millisecond from colliding, which happens every
// time a section is created together with its first default row.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewGenerator() *Generator {
	//nolint:gosec // identifiers are not security material
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Generator{entropy: ulid.Monotonic(source, 0)}
}

// New returns the next identifier.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

var defaultGenerator = NewGenerator()

// New returns the next identifier from the shared generator.
func New() string {
	return defaultGenerator.New()
}
