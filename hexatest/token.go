package hexatest

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// TokenGenerator mints run tokens for scenario reports. A report's token
// is its correlation handle: logs, golden files, and CI output all quote
// it to tie a trace back to one run.
type TokenGenerator interface {
	Generate() string
}

// runToken resolves the token for one scenario run. A token pinned in the
// scenario file wins over the generator — pinning is what keeps golden
// comparison deterministic.
func runToken(pinned string, g TokenGenerator) string {
	if pinned != "" {
		return pinned
	}
	return g.Generate()
}

// UUIDv7Generator is the default generator. UUIDv7 tokens embed a
// timestamp, so reports collected from repeated runs sort by creation
// time. Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator hands out a predetermined token sequence, for tests that
// run unpinned scenarios but still need reproducible reports.
type FixedGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator over tokens, returned in order.
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Generate returns the next token. Once the sequence is exhausted it
// panics: a test that runs more scenarios than it provisioned tokens for
// would otherwise produce reports that collide.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.tokens) {
		panic(fmt.Sprintf("hexatest: all %d fixed tokens exhausted", len(g.tokens)))
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
