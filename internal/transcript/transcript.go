// Package transcript models a single transcript's exon/CDS structure and
// the genomic<->transcript coordinate conversions that the mapper package
// builds on. It generalizes the exon binary search and CDS arithmetic
// that a VEP-style annotator needs, but expresses CDS bounds as 0-based
// TranscriptPos offsets per the transcript model contract rather than
// as genomic positions, and builds its exon offset table once instead of
// walking the exon list on every lookup.
package transcript

import (
	"sort"

	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/dataprovider"
	"github.com/hgvscore/hgvscore/internal/herrors"
)

// Exon is a single exon's span in both genomic and transcript coordinates,
// all 0-based half-open, plus its cumulative transcript-space offset.
type Exon struct {
	ReferenceStart  coords.GenomicPos
	ReferenceEnd    coords.GenomicPos
	TranscriptStart coords.TranscriptPos
	TranscriptEnd   coords.TranscriptPos
}

// Transcript is the exon/CDS model for one transcript, built once from a
// dataprovider.TranscriptData and reused for every position conversion
// against it.
type Transcript struct {
	Accession    string
	ReferenceAc  string
	ProteinAc    string
	Strand       int8
	CDSStart     coords.TranscriptPos // 0-based inclusive, the A of ATG
	CDSEnd       coords.TranscriptPos // 0-based inclusive, last base of stop codon
	Exons        []Exon               // ordered by TranscriptStart ascending
	Length       coords.TranscriptPos // total transcript length in bases
}

// New builds a Transcript model from provider data, grounded on the same
// exon-walk the VEP-style cache loader performs but materializing the
// cumulative transcript offsets once up front.
func New(td dataprovider.TranscriptData) (*Transcript, error) {
	if len(td.Exons) == 0 {
		return nil, &herrors.CoordinateError{Msg: "transcript has no exons"}
	}

	exons := make([]Exon, len(td.Exons))
	var cum coords.TranscriptPos
	for i, e := range td.Exons {
		length := coords.TranscriptPos(e.TranscriptEnd - e.TranscriptStart)
		exons[i] = Exon{
			ReferenceStart:  coords.GenomicPos(e.ReferenceStart),
			ReferenceEnd:    coords.GenomicPos(e.ReferenceEnd),
			TranscriptStart: cum,
			TranscriptEnd:   cum + length,
		}
		cum += length
	}

	t := &Transcript{
		Accession:   td.TranscriptAc,
		ReferenceAc: td.ReferenceAc,
		ProteinAc:   td.ProteinAc,
		Strand:      td.Strand,
		Exons:       exons,
		Length:      cum,
	}
	if td.CDSStartIndex >= 0 && td.CDSEndIndex >= td.CDSStartIndex {
		t.CDSStart = coords.TranscriptPos(td.CDSStartIndex)
		t.CDSEnd = coords.TranscriptPos(td.CDSEndIndex)
	} else {
		t.CDSStart, t.CDSEnd = -1, -1
	}
	return t, nil
}

// IsProteinCoding reports whether the transcript has a CDS.
func (t *Transcript) IsProteinCoding() bool {
	return t.CDSStart >= 0 && t.CDSEnd >= t.CDSStart
}

// IsForwardStrand reports whether t is on the + strand.
func (t *Transcript) IsForwardStrand() bool { return t.Strand >= 0 }

// CDSLength returns the number of bases in the CDS, including the stop
// codon.
func (t *Transcript) CDSLength() coords.TranscriptPos {
	if !t.IsProteinCoding() {
		return 0
	}
	return t.CDSEnd - t.CDSStart + 1
}

// FindExonByTranscriptPos returns the index of the exon containing the
// given 0-based transcript position via binary search over the
// precomputed cumulative offsets, or -1 if pos falls in an intron or out
// of range (transcript positions are always exonic by construction, so
// -1 here indicates an out-of-range position, not an intron).
func (t *Transcript) FindExonByTranscriptPos(pos coords.TranscriptPos) int {
	idx := sort.Search(len(t.Exons), func(i int) bool {
		return t.Exons[i].TranscriptEnd > pos
	})
	if idx >= len(t.Exons) || pos < t.Exons[idx].TranscriptStart {
		return -1
	}
	return idx
}

// FindExonByGenomicPos returns the index of the exon containing the given
// 0-based genomic position, or -1 if pos is intronic or outside the
// transcript. Handles both strand orderings via binary search, mirroring
// the ascending/descending exon-ordering detection a VEP-style cache
// loader performs once per lookup.
func (t *Transcript) FindExonByGenomicPos(pos coords.GenomicPos) int {
	n := len(t.Exons)
	if n == 0 {
		return -1
	}
	ascending := n < 2 || t.Exons[0].ReferenceStart <= t.Exons[n-1].ReferenceStart
	lo, hi := 0, n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		e := t.Exons[mid]
		if pos >= e.ReferenceStart && pos < e.ReferenceEnd {
			return mid
		}
		if ascending {
			if pos < e.ReferenceStart {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			if pos >= e.ReferenceEnd {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		}
	}
	return -1
}

// GenomicToTranscript converts a 0-based genomic position to a 0-based
// transcript position, or ok=false if pos is intronic or outside any
// exon.
func (t *Transcript) GenomicToTranscript(pos coords.GenomicPos) (coords.TranscriptPos, bool) {
	idx := t.FindExonByGenomicPos(pos)
	if idx < 0 {
		return 0, false
	}
	e := t.Exons[idx]
	if t.IsForwardStrand() {
		return e.TranscriptStart + coords.TranscriptPos(pos-e.ReferenceStart), true
	}
	return e.TranscriptStart + coords.TranscriptPos(e.ReferenceEnd-1-pos), true
}

// TranscriptToGenomic converts a 0-based transcript position to a 0-based
// genomic position, or ok=false if pos is out of range.
func (t *Transcript) TranscriptToGenomic(pos coords.TranscriptPos) (coords.GenomicPos, bool) {
	idx := t.FindExonByTranscriptPos(pos)
	if idx < 0 {
		return 0, false
	}
	e := t.Exons[idx]
	if t.IsForwardStrand() {
		return e.ReferenceStart + coords.GenomicPos(pos-e.TranscriptStart), true
	}
	return e.ReferenceEnd - 1 - coords.GenomicPos(pos-e.TranscriptStart), true
}

// ToHgvs converts a 0-based transcript position into the anchored,
// zero-skipping HgvsTranscriptPos used by c./n./r. notation, given this
// transcript's CDS bounds.
func (t *Transcript) ToHgvs(pos coords.TranscriptPos) coords.HgvsTranscriptPos {
	switch {
	case !t.IsProteinCoding():
		return coords.HgvsTranscriptPos{Base: int32(pos) + 1, Anchor: coords.AnchorCDS}
	case pos > t.CDSEnd:
		return coords.HgvsTranscriptPos{Base: int32(pos - t.CDSEnd), Anchor: coords.AnchorThreePrimeUTR}
	case pos >= t.CDSStart:
		return coords.HgvsTranscriptPos{Base: int32(pos-t.CDSStart) + 1, Anchor: coords.AnchorCDS}
	default:
		return coords.HgvsTranscriptPos{Base: int32(t.CDSStart - pos), Anchor: coords.AnchorFivePrimeUTR}
	}
}

// FromHgvs converts an anchored HgvsTranscriptPos back to a 0-based
// transcript position. Returns an error if the position is intronic (the
// caller must resolve intronic offsets against exon boundaries itself,
// since that requires strand-aware interpretation the pure position type
// cannot carry).
func (t *Transcript) FromHgvs(p coords.HgvsTranscriptPos) (coords.TranscriptPos, error) {
	if p.IsIntronic() {
		return 0, &herrors.CoordinateError{Msg: "intronic offsets must be resolved against exon boundaries, not via FromHgvs"}
	}
	switch p.Anchor {
	case coords.AnchorFivePrimeUTR:
		return t.CDSStart - coords.TranscriptPos(p.Base), nil
	case coords.AnchorThreePrimeUTR:
		return t.CDSEnd + coords.TranscriptPos(p.Base), nil
	default:
		return t.CDSStart + coords.TranscriptPos(p.Base) - 1, nil
	}
}

// CodonPosition converts a 0-based CDS offset (position - CDSStart) into
// the 1-based codon number and 0-based position within that codon.
func CodonPosition(cdsOffset coords.TranscriptPos) (codonNumber coords.ProteinPos, positionInCodon int) {
	codonNumber = coords.ProteinPos(cdsOffset/3) + 1
	positionInCodon = int(cdsOffset % 3)
	return
}
