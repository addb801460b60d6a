// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

const (
	shortCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// DefaultShortCodeLength gives 62^8 possible codes
	DefaultShortCodeLength = 8
)

// ShortCodeGenerator generates short random base62 codes for share links
type ShortCodeGenerator struct {
	length int
}

// NewShortCode creates a short code generator. Lengths below 1 use DefaultShortCodeLength.
func NewShortCode(length int) *ShortCodeGenerator {
	if length < 1 {
		length = DefaultShortCodeLength
	}
	return &ShortCodeGenerator{length: length}
}

// Generate creates a new random code
func (g *ShortCodeGenerator) Generate() string {
	base := big.NewInt(int64(len(shortCodeAlphabet)))
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			// crypto/rand failing means the system is unusable
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}
		code[i] = shortCodeAlphabet[n.Int64()]
	}
	return string(code)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
