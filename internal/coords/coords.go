// Package coords defines the six position types used across the engine's
// coordinate spaces and the conversions between them. Each type is a
// distinct Go type so that mixing positions from different spaces is a
// compile error rather than a runtime surprise.
package coords

import "fmt"

// GenomicPos is a 0-based, inclusive position on a chromosome.
type GenomicPos int32

// TranscriptPos is a 0-based, inclusive position on a transcript.
type TranscriptPos int32

// ProteinPos is a 0-based, inclusive position on a protein.
type ProteinPos int32

// HgvsGenomicPos is a 1-based, dense position used in g./m. notation.
type HgvsGenomicPos int32

// HgvsProteinPos is a 1-based, dense position used in p. notation.
type HgvsProteinPos int32

// Anchor identifies which region of a transcript an HgvsTranscriptPos is
// relative to.
type Anchor uint8

const (
	// AnchorCDS anchors the position to the coding sequence: c.1 is the A
	// of the start codon.
	AnchorCDS Anchor = iota
	// AnchorFivePrimeUTR anchors the position upstream of the CDS
	// (negative c. positions, e.g. c.-14).
	AnchorFivePrimeUTR
	// AnchorThreePrimeUTR anchors the position downstream of the stop
	// codon (c.* positions, e.g. c.*6).
	AnchorThreePrimeUTR
)

// HgvsTranscriptPos is the 1-based "c." position type. It skips zero: the
// base immediately 5' of c.1 is c.-1, never c.0. It additionally carries an
// optional intronic offset and an anchor tag for UTR regions.
type HgvsTranscriptPos struct {
	Base   int32  // magnitude of the position within its anchor region, always >= 1
	Anchor Anchor // which region Base is counted from
	Offset int32  // signed intronic offset; 0 means exonic
}

// NewHgvsTranscriptPos constructs an HgvsTranscriptPos, validating the
// zero-skip invariant centrally so no other code path can construct an
// invalid c.0.
func NewHgvsTranscriptPos(base int32, anchor Anchor, offset int32) (HgvsTranscriptPos, error) {
	if base < 1 {
		return HgvsTranscriptPos{}, fmt.Errorf("coords: HgvsTranscriptPos base must be >= 1, got %d", base)
	}
	return HgvsTranscriptPos{Base: base, Anchor: anchor, Offset: offset}, nil
}

// IsIntronic reports whether the position carries a nonzero intronic offset.
func (p HgvsTranscriptPos) IsIntronic() bool {
	return p.Offset != 0
}

// Signed returns the position's base as a signed integer in the classic
// HGVS sense: positive within the CDS and 3'UTR, negative within the
// 5'UTR.
func (p HgvsTranscriptPos) Signed() int32 {
	if p.Anchor == AnchorFivePrimeUTR {
		return -p.Base
	}
	return p.Base
}

// Succ returns the HgvsTranscriptPos that follows p by one base along the
// transcript, implementing the centralized zero-skip rule: the successor
// of c.-1 is c.1, never c.0.
func Succ(p HgvsTranscriptPos) HgvsTranscriptPos {
	if p.Offset != 0 {
		return HgvsTranscriptPos{Base: p.Base, Anchor: p.Anchor, Offset: p.Offset + 1}
	}
	if p.Anchor == AnchorFivePrimeUTR {
		if p.Base == 1 {
			// c.-1 -> c.1 (skip c.0)
			return HgvsTranscriptPos{Base: 1, Anchor: AnchorCDS, Offset: 0}
		}
		return HgvsTranscriptPos{Base: p.Base - 1, Anchor: AnchorFivePrimeUTR, Offset: 0}
	}
	return HgvsTranscriptPos{Base: p.Base + 1, Anchor: p.Anchor, Offset: 0}
}

// Pred returns the HgvsTranscriptPos that precedes p by one base, the
// inverse of Succ.
func Pred(p HgvsTranscriptPos) HgvsTranscriptPos {
	if p.Offset != 0 {
		return HgvsTranscriptPos{Base: p.Base, Anchor: p.Anchor, Offset: p.Offset - 1}
	}
	if p.Anchor == AnchorCDS && p.Base == 1 {
		// c.1 -> c.-1 (skip c.0)
		return HgvsTranscriptPos{Base: 1, Anchor: AnchorFivePrimeUTR, Offset: 0}
	}
	if p.Anchor == AnchorFivePrimeUTR {
		return HgvsTranscriptPos{Base: p.Base + 1, Anchor: AnchorFivePrimeUTR, Offset: 0}
	}
	return HgvsTranscriptPos{Base: p.Base - 1, Anchor: p.Anchor, Offset: 0}
}

// ToGenomic converts a 0-based GenomicPos to the 1-based HgvsGenomicPos.
func ToGenomic(p GenomicPos) HgvsGenomicPos {
	return HgvsGenomicPos(p + 1)
}

// ToZeroBased converts a 1-based HgvsGenomicPos to a 0-based GenomicPos.
func ToZeroBased(p HgvsGenomicPos) GenomicPos {
	return GenomicPos(p - 1)
}

// ToProtein converts a 0-based ProteinPos to the 1-based HgvsProteinPos.
func ToProtein(p ProteinPos) HgvsProteinPos {
	return HgvsProteinPos(p + 1)
}

// ToZeroBasedProtein converts a 1-based HgvsProteinPos to a 0-based ProteinPos.
func ToZeroBasedProtein(p HgvsProteinPos) ProteinPos {
	return ProteinPos(p - 1)
}
