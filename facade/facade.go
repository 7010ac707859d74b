package facade

import (
	"go.uber.org/zap"

	"github.com/hgvscore/hgvscore/internal/dataprovider"
	"github.com/hgvscore/hgvscore/internal/equivalence"
	"github.com/hgvscore/hgvscore/internal/formatter"
	"github.com/hgvscore/hgvscore/internal/mapper"
	"github.com/hgvscore/hgvscore/internal/parser"
	"github.com/hgvscore/hgvscore/internal/variant"
)

// Variant re-exports variant.Variant so callers need only import facade
// for the common case.
type Variant = variant.Variant

// Verdict re-exports equivalence.Verdict.
type Verdict = equivalence.Verdict

// Re-export the four equivalence verdicts at package scope.
const (
	Different = equivalence.Different
	Analogous = equivalence.Analogous
	Identity  = equivalence.Identity
	Unknown   = equivalence.Unknown
)

// Parse parses an HGVS variant description. It does not require a
// DataProvider: parsing is purely syntactic.
func Parse(s string) (*Variant, error) {
	return parser.Parse(s)
}

// Format renders v back to its HGVS string form.
func Format(v *Variant) string {
	return formatter.Format(v)
}

// Engine is the stateful entry point for operations that need a
// DataProvider: coordinate mapping, normalization, and equivalence.
// Engines are independent of each other and of any package-level
// global state, so a process may run several concurrently against
// different providers or configs.
type Engine struct {
	mapper *mapper.Mapper
	equiv  *equivalence.Engine
	logger *zap.Logger
}

// NewEngine constructs an Engine. A nil Config uses NewConfig()'s
// defaults.
func NewEngine(dp dataprovider.DataProvider, cfg *Config) *Engine {
	if cfg == nil {
		cfg = NewConfig()
	}
	windowSize := cfg.WindowSize()
	logger := zap.NewNop()
	if windowSize <= 0 {
		logger.Warn("configured window size is non-positive, falling back to default",
			zap.Int("configured", windowSize), zap.Int("default", mapper.DefaultWindowSize))
		windowSize = mapper.DefaultWindowSize
	}
	return &Engine{
		mapper: mapper.New(dp, windowSize),
		equiv:  equivalence.New(dp, windowSize),
		logger: logger,
	}
}

// SetLogger installs a logger on e. NewEngine's one diagnostic (a
// non-positive window size clamped to the default) goes to a no-op
// logger before SetLogger can be called, and no Engine method logs to
// the installed logger. Operation errors are never logged here — they
// are always returned to the caller per the propagation policy.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// GToC projects a g./m. variant onto transcriptAc's c./n. coordinate space.
func (e *Engine) GToC(v *Variant, transcriptAc string) (*Variant, error) {
	return e.mapper.GToC(v, transcriptAc)
}

// CToG projects a c./n. variant back onto genomic coordinates.
func (e *Engine) CToG(v *Variant) (*Variant, error) {
	return e.mapper.CToG(v)
}

// CToP translates a c. variant's effect onto its protein accession.
func (e *Engine) CToP(v *Variant) (*Variant, error) {
	return e.mapper.CToP(v)
}

// Normalize 3'-shifts v's edit to its canonical position in repetitive
// reference sequence within the configured window, per spec §4.3.3.
func (e *Engine) Normalize(v *Variant, ac string, kind dataprovider.IdentifierType) (*Variant, error) {
	return e.mapper.Normalize(v, ac, kind)
}

// Compare reports the equivalence verdict between a and b.
func (e *Engine) Compare(a, b *Variant) (Verdict, error) {
	return e.equiv.Compare(a, b)
}
