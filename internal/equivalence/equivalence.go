// Package equivalence compares two variant descriptions for biological
// equivalence, independent of how each was written. It follows the same
// two-phase shape as the prior Rust reimplementation's
// VariantEquivalence::equivalent_level / analogous_edit::project_na_variant
// (sparse reference merge, then projected-window comparison), but merges
// onto a seqops.Window instead of a sparse position map, since this
// engine has no cache layer beneath the DataProvider boundary.
package equivalence

import (
	"strconv"
	"strings"

	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/dataprovider"
	"github.com/hgvscore/hgvscore/internal/formatter"
	"github.com/hgvscore/hgvscore/internal/herrors"
	"github.com/hgvscore/hgvscore/internal/mapper"
	"github.com/hgvscore/hgvscore/internal/seqops"
	"github.com/hgvscore/hgvscore/internal/variant"
)

// Verdict is the four-way equivalence result. It is deliberately never
// collapsed to a boolean: Analogous carries biological meaning distinct
// from both Identity and Different.
type Verdict int

const (
	Different Verdict = iota
	Analogous
	Identity
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Identity:
		return "Identity"
	case Analogous:
		return "Analogous"
	case Different:
		return "Different"
	default:
		return "Unknown"
	}
}

// rank orders verdicts from most to least specific, used when gene-symbol
// expansion produces multiple candidate pairs and the best result wins.
func rank(v Verdict) int {
	switch v {
	case Identity:
		return 3
	case Analogous:
		return 2
	case Different:
		return 1
	default:
		return 0
	}
}

// Engine compares variants for equivalence using a DataProvider for
// sequence, transcript, and gene-symbol resolution.
type Engine struct {
	dp  dataprovider.DataProvider
	m   *mapper.Mapper
	win int
}

// New constructs an Engine. windowSize <= 0 falls back to
// mapper.DefaultWindowSize.
func New(dp dataprovider.DataProvider, windowSize int) *Engine {
	if windowSize <= 0 {
		windowSize = mapper.DefaultWindowSize
	}
	return &Engine{dp: dp, m: mapper.New(dp, windowSize), win: windowSize}
}

// Compare reports the equivalence verdict between a and b, expanding
// gene-symbol accessions on either side per spec §4.4.1 and taking the
// best verdict across all resulting candidate pairs. A provider failure
// while expanding one input yields Unknown; only a failure on both inputs
// is returned as an error.
func (e *Engine) Compare(a, b *variant.Variant) (Verdict, error) {
	candA, errA := e.expand(a)
	candB, errB := e.expand(b)
	if errA != nil && errB != nil {
		return Unknown, errA
	}
	if errA != nil || errB != nil {
		return Unknown, nil
	}

	best := Unknown
	for _, ca := range candA {
		for _, cb := range candB {
			v, err := e.compareSingle(ca, cb)
			if err != nil {
				return Unknown, err
			}
			if rank(v) > rank(best) {
				best = v
			}
			if best == Identity {
				return Identity, nil
			}
		}
	}
	return best, nil
}

// expand resolves v's accession to its gene-symbol-compatible candidate
// set, or returns []*{v} unchanged if v's accession is not a gene symbol.
func (e *Engine) expand(v *variant.Variant) ([]*variant.Variant, error) {
	kind, err := e.dp.GetIdentifierType(v.Accession)
	if err != nil {
		return nil, &herrors.DataError{Op: "GetIdentifierType", Err: err}
	}
	if kind != dataprovider.GeneSymbol {
		return []*variant.Variant{v}, nil
	}

	targetKind := targetIdentifierKind(v.Kind)
	accs, err := e.dp.GetSymbolAccessions(v.Accession, kind, targetKind)
	if err != nil {
		return nil, &herrors.DataError{Op: "GetSymbolAccessions", Err: err}
	}

	var out []*variant.Variant
	for _, sa := range accs {
		if sa.Type != targetKind {
			continue
		}
		cv := *v
		cv.Accession = sa.Accession
		out = append(out, &cv)
	}
	if len(out) == 0 {
		return []*variant.Variant{v}, nil
	}
	return out, nil
}

func targetIdentifierKind(k variant.Kind) dataprovider.IdentifierType {
	switch k {
	case variant.KindProtein:
		return dataprovider.ProteinAccession
	case variant.KindGenomic, variant.KindMito:
		return dataprovider.GenomicAccession
	default:
		return dataprovider.TranscriptAccession
	}
}

// compareSingle dispatches on the (kind(a), kind(b)) pair per spec
// §4.4.2's dispatch table.
func (e *Engine) compareSingle(a, b *variant.Variant) (Verdict, error) {
	switch {
	case isGenomicKind(a.Kind) && isGenomicKind(b.Kind):
		return e.compareGenomic(a, b)

	case isTranscriptKind(a.Kind) && isTranscriptKind(b.Kind) && a.Kind == b.Kind:
		ga, err := e.m.CToG(a)
		if err != nil {
			return Unknown, nil
		}
		gb, err := e.m.CToG(b)
		if err != nil {
			return Unknown, nil
		}
		return e.compareGenomic(ga, gb)

	case isGenomicKind(a.Kind) && isTranscriptKind(b.Kind):
		gb, err := e.m.CToG(b)
		if err != nil {
			return Unknown, nil
		}
		return e.compareGenomic(a, gb)
	case isTranscriptKind(a.Kind) && isGenomicKind(b.Kind):
		ga, err := e.m.CToG(a)
		if err != nil {
			return Unknown, nil
		}
		return e.compareGenomic(ga, b)

	case isTranscriptKind(a.Kind) && b.Kind == variant.KindProtein:
		pa, err := e.cToPOnAccession(a, b.Accession)
		if err != nil {
			return Unknown, nil
		}
		return e.compareProtein(pa, b)
	case a.Kind == variant.KindProtein && isTranscriptKind(b.Kind):
		pb, err := e.cToPOnAccession(b, a.Accession)
		if err != nil {
			return Unknown, nil
		}
		return e.compareProtein(a, pb)

	case a.Kind == variant.KindProtein && b.Kind == variant.KindProtein:
		return e.compareProtein(a, b)

	default:
		if formatter.Format(a) == formatter.Format(b) {
			return Identity, nil
		}
		return Different, nil
	}
}

func (e *Engine) cToPOnAccession(cVariant *variant.Variant, proteinAc string) (*variant.Variant, error) {
	p, err := e.m.CToP(cVariant)
	if err != nil {
		return nil, err
	}
	p.Accession = proteinAc
	return p, nil
}

func isGenomicKind(k variant.Kind) bool {
	return k == variant.KindGenomic || k == variant.KindMito
}

func isTranscriptKind(k variant.Kind) bool {
	return k == variant.KindCoding || k == variant.KindNonCoding || k == variant.KindRNA
}

// compareGenomic implements spec §4.4.3: normalize both variants, compare
// canonical strings, and fall back to projected-window comparison for
// analogous-but-differently-written descriptions (e.g. ins vs dup).
func (e *Engine) compareGenomic(a, b *variant.Variant) (Verdict, error) {
	if a.Accession != b.Accession {
		return Unknown, nil
	}

	na, errA := e.m.Normalize(a, a.Accession, dataprovider.GenomicAccession)
	nb, errB := e.m.Normalize(b, b.Accession, dataprovider.GenomicAccession)
	if errA != nil || errB != nil {
		na, nb = a, b // normalization needs a real window; fall through to raw comparison
	}

	if formatter.Format(na) == formatter.Format(nb) {
		return Identity, nil
	}

	startA, endA := genomicSpan(na)
	startB, endB := genomicSpan(nb)
	lo, hi := min(startA, startB), max(endA, endB)
	seqA, spanA, errA := e.projectGenomic(na, lo, hi)
	seqB, spanB, errB := e.projectGenomic(nb, lo, hi)
	if errA != nil || errB != nil {
		return Unknown, nil
	}
	if spanA != spanB {
		return Different, nil
	}
	if seqA == seqB {
		return Analogous, nil
	}
	return Different, nil
}

// genomicSpan returns v's location as a 0-based, half-open GenomicPos span.
func genomicSpan(v *variant.Variant) (int64, int64) {
	start := int64(coords.ToZeroBased(v.NaLoc.Start.Genomic))
	end := start + 1
	if v.NaLoc.IsRange() {
		end = int64(coords.ToZeroBased(v.NaLoc.End.Genomic)) + 1
	}
	return start, end
}

// projectGenomic applies v's edit to the reference window padded around
// [lo, hi) and returns the resulting sequence plus the net length change
// (the "span"), used as a cheap pre-check before comparing full
// sequences. Both sides of a comparison pass the same [lo, hi), so their
// projections cover the same reference window.
func (e *Engine) projectGenomic(v *variant.Variant, lo, hi int64) (string, int, error) {
	start, end := genomicSpan(v)
	win, err := seqops.Fetch(e.dp, v.Accession, lo, hi, int64(e.win), dataprovider.GenomicAccession)
	if err != nil {
		return "", 0, err
	}
	return applyEdit(win, start, end, v.Edit)
}

// applyEdit substitutes v's edit into win's sequence over [start, end)
// and returns the whole window's resulting sequence, filling implicit
// del/dup sequences by length from the reference the way
// reconcile_projections does.
func applyEdit(win seqops.Window, start, end int64, e variant.Edit) (string, int, error) {
	before := win.Slice(win.Start, start)
	after := win.Slice(end, win.End)

	switch ed := e.(type) {
	case variant.Substitution:
		return before + strings.ToUpper(ed.Alt) + after, len(ed.Alt) - int(end-start), nil
	case variant.Deletion:
		return before + after, -int(end - start), nil
	case variant.Insertion:
		return before + strings.ToUpper(ed.Seq) + win.Slice(start, end) + after, len(ed.Seq), nil
	case variant.Duplication:
		dup := win.Slice(start, end)
		return before + dup + dup + after, int(end - start), nil
	case variant.Inversion:
		return before + seqops.ReverseComplement(win.Slice(start, end)) + after, 0, nil
	case variant.Delins:
		return before + strings.ToUpper(ed.Seq) + after, len(ed.Seq) - int(end-start), nil
	case variant.Repeat:
		expanded := strings.Repeat(ed.Unit, ed.Count)
		return before + strings.ToUpper(expanded) + after, len(expanded) - int(end-start), nil
	case variant.Identity:
		return win.Seq, 0, nil
	default:
		return "", 0, &herrors.MappingError{Msg: "edit type cannot be projected onto a reference window"}
	}
}

// compareProtein implements spec §4.4.4/§4.4.5: Identity requires the
// canonical strings to match (which also enforces the bracket-state
// rule of §4.4.5, since Format renders p.(...) and p.... differently),
// and failing that, projects both variants onto a shared window of the
// reference protein and compares the resulting sequences — this is what
// detects localized redundancy like Ala2_Ala3dup vs Ala3_Ala4dup inside
// a poly-alanine tract, since both yield the same final sequence once
// projected even though their canonical strings differ.
func (e *Engine) compareProtein(a, b *variant.Variant) (Verdict, error) {
	if a.Accession != b.Accession {
		return Unknown, nil
	}
	if formatter.Format(a) == formatter.Format(b) {
		return Identity, nil
	}

	startA, endA := aaProjectionSpan(a)
	startB, endB := aaProjectionSpan(b)
	lo, hi := min(startA, startB), max(endA, endB)
	seqA, okA := e.projectProtein(a, lo, hi)
	seqB, okB := e.projectProtein(b, lo, hi)
	if !okA || !okB {
		return Unknown, nil
	}
	if seqA == seqB || unify(seqA, seqB) {
		return Analogous, nil
	}
	return Different, nil
}

// aaProjectionSpan returns v's protein edit span in 0-based, half-open
// ProteinPos coordinates.
func aaProjectionSpan(v *variant.Variant) (int64, int64) {
	start := int64(coords.ToZeroBasedProtein(v.AaLoc.Start.Pos))
	end := start + 1
	if v.AaLoc.IsRange() {
		end = int64(coords.ToZeroBasedProtein(v.AaLoc.End.Pos)) + 1
	}
	return start, end
}

// projectProtein fetches the window of v's reference protein sequence
// padded around [lo, hi) and substitutes v's edit into it, the protein
// analogue of projectGenomic.
// ProteinFs/ProteinExt edits extend indefinitely past any fixed window,
// so they fall back to a position+kind token comparison instead.
func (e *Engine) projectProtein(v *variant.Variant, lo, hi int64) (string, bool) {
	switch ed := v.Edit.(type) {
	case variant.ProteinFs:
		return strconv.Itoa(int(v.AaLoc.Start.Pos)) + ":fs:" + string(ed.NewAA), true
	case variant.ProteinExt:
		return strconv.Itoa(int(v.AaLoc.Start.Pos)) + ":ext:" + string(ed.NewAA), true
	}

	start, end := aaProjectionSpan(v)
	win, err := seqops.Fetch(e.dp, v.Accession, lo, hi, int64(e.win), dataprovider.ProteinAccession)
	if err != nil {
		return "", false
	}
	seq, err := applyProteinEdit(win, start, end, v.Edit)
	if err != nil {
		return "", false
	}
	return seq, true
}

// applyProteinEdit substitutes v's edit into win's sequence over
// [start, end), mirroring applyEdit's nucleic-acid substitution but over
// single-letter amino acid codes. Duplication/Deletion carry no payload
// of their own; their content is read back from the reference window.
func applyProteinEdit(win seqops.Window, start, end int64, e variant.Edit) (string, error) {
	before := win.Slice(win.Start, start)
	after := win.Slice(end, win.End)

	switch ed := e.(type) {
	case variant.Substitution:
		return before + ed.Alt + after, nil
	case variant.Deletion:
		return before + after, nil
	case variant.Insertion:
		return before + ed.Seq + win.Slice(start, end) + after, nil
	case variant.Duplication:
		dup := win.Slice(start, end)
		return before + dup + dup + after, nil
	case variant.Delins:
		return before + ed.Seq + after, nil
	case variant.Identity:
		return win.Seq, nil
	default:
		return "", &herrors.MappingError{Msg: "protein edit type cannot be projected onto a reference window"}
	}
}

// unify reports whether two residue-token projections can be reconciled
// under a consistent assignment of Unknown(Xaa) tokens to concrete
// residues — a simplified stand-in for the full UnificationEnv described
// in spec §4.4.4, sufficient to detect the localized-redundancy case
// (e.g. Ala2_Ala3dup vs Ala3_Ala4dup in a poly-alanine tract) once both
// sides have already been projected onto identical final windows.
func unify(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if a[i] == 'X' || b[i] == 'X' {
			continue
		}
		return false
	}
	return true
}
