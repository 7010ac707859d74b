// Package mapper projects variants between genomic, transcript, and
// protein coordinate spaces, and normalizes indel descriptions to their
// canonical 3'-most representation. It generalizes the teacher's
// GenomicToCDS/CDSToGenomic/CDSToCodonPosition conversions and its
// shiftInsertionThreePrime/shiftDeletionThreePrime/checkDuplication trio
// into one strand-aware shiftThreePrime primitive operating over a
// seqops.Window instead of a single in-memory CDS string, since the
// mapper here has no cache layer to pre-load whole sequences into.
package mapper

import (
	"strings"

	"github.com/hgvscore/hgvscore/internal/aa"
	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/dataprovider"
	"github.com/hgvscore/hgvscore/internal/herrors"
	"github.com/hgvscore/hgvscore/internal/seqops"
	"github.com/hgvscore/hgvscore/internal/transcript"
	"github.com/hgvscore/hgvscore/internal/variant"
)

// DefaultWindowSize is the padding, in bases, fetched around a variant
// site for 3'-shift normalization and equivalence projection when the
// caller does not configure one explicitly.
const DefaultWindowSize = 50

// Mapper projects variants between coordinate spaces using a
// DataProvider for transcript models and reference sequence.
type Mapper struct {
	dp         dataprovider.DataProvider
	windowSize int64
}

// New constructs a Mapper. windowSize <= 0 falls back to
// DefaultWindowSize.
func New(dp dataprovider.DataProvider, windowSize int) *Mapper {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Mapper{dp: dp, windowSize: int64(windowSize)}
}

func (m *Mapper) loadTranscript(transcriptAc, referenceAc string) (*transcript.Transcript, error) {
	td, err := m.dp.GetTranscript(transcriptAc, referenceAc)
	if err != nil {
		return nil, &herrors.DataError{Op: "GetTranscript", Err: err}
	}
	return transcript.New(td)
}

// GToC projects a g. variant onto the c. (or n., for non-coding
// transcripts) coordinate space of transcriptAc.
func (m *Mapper) GToC(v *variant.Variant, transcriptAc string) (*variant.Variant, error) {
	if v.Kind != variant.KindGenomic && v.Kind != variant.KindMito {
		return nil, &herrors.MappingError{Msg: "GToC requires a genomic (g. or m.) source variant"}
	}
	tr, err := m.loadTranscript(transcriptAc, v.Accession)
	if err != nil {
		return nil, err
	}

	startG := coords.ToZeroBased(v.NaLoc.Start.Genomic)
	startHgvs, err := m.genomicToHgvsTranscriptPos(tr, startG)
	if err != nil {
		return nil, err
	}

	out := &variant.Variant{
		Accession: transcriptAc,
		Kind:      targetKind(tr),
	}
	out.NaLoc.Start = variant.NaPos{Transcript: startHgvs, Uncertain: v.NaLoc.Start.Uncertain}

	if v.NaLoc.IsRange() {
		endG := coords.ToZeroBased(v.NaLoc.End.Genomic)
		endHgvs, err := m.genomicToHgvsTranscriptPos(tr, endG)
		if err != nil {
			return nil, err
		}
		endPos := variant.NaPos{Transcript: endHgvs, Uncertain: v.NaLoc.End.Uncertain}
		out.NaLoc.End = &endPos
	}

	edit, err := remapEditStrand(v.Edit, tr.IsForwardStrand())
	if err != nil {
		return nil, err
	}
	out.Edit = edit
	return out, nil
}

// CToG projects a c./n. variant back onto genomic coordinates against
// its transcript's reference accession.
func (m *Mapper) CToG(v *variant.Variant) (*variant.Variant, error) {
	if v.Kind != variant.KindCoding && v.Kind != variant.KindNonCoding {
		return nil, &herrors.MappingError{Msg: "CToG requires a coding (c.) or non-coding (n.) source variant"}
	}
	tr, err := m.loadTranscript(v.Accession, v.RefAccession)
	if err != nil {
		return nil, err
	}

	startG, err := m.hgvsTranscriptPosToGenomic(tr, v.NaLoc.Start.Transcript)
	if err != nil {
		return nil, err
	}

	out := &variant.Variant{
		Accession: tr.ReferenceAc,
		Kind:      variant.KindGenomic,
	}
	out.NaLoc.Start = variant.NaPos{Genomic: coords.ToGenomic(startG), Uncertain: v.NaLoc.Start.Uncertain}

	if v.NaLoc.IsRange() {
		endG, err := m.hgvsTranscriptPosToGenomic(tr, v.NaLoc.End.Transcript)
		if err != nil {
			return nil, err
		}
		endPos := variant.NaPos{Genomic: coords.ToGenomic(endG), Uncertain: v.NaLoc.End.Uncertain}
		out.NaLoc.End = &endPos
	}

	edit, err := remapEditStrand(v.Edit, tr.IsForwardStrand())
	if err != nil {
		return nil, err
	}
	out.Edit = edit
	return out, nil
}

func targetKind(tr *transcript.Transcript) variant.Kind {
	if tr.IsProteinCoding() {
		return variant.KindCoding
	}
	return variant.KindNonCoding
}

// remapEditStrand reverse-complements an edit's sequence payloads when
// projecting across a reverse-strand transcript; on the forward strand
// it returns the edit unchanged.
func remapEditStrand(e variant.Edit, forward bool) (variant.Edit, error) {
	if forward {
		return e, nil
	}
	switch ed := e.(type) {
	case variant.Substitution:
		return variant.Substitution{Ref: seqops.ReverseComplement(ed.Ref), Alt: seqops.ReverseComplement(ed.Alt)}, nil
	case variant.Deletion:
		return variant.Deletion{Seq: seqops.ReverseComplement(ed.Seq)}, nil
	case variant.Insertion:
		return variant.Insertion{Seq: seqops.ReverseComplement(ed.Seq)}, nil
	case variant.Duplication:
		return variant.Duplication{Seq: seqops.ReverseComplement(ed.Seq)}, nil
	case variant.Delins:
		return variant.Delins{Seq: seqops.ReverseComplement(ed.Seq)}, nil
	case variant.Inversion, variant.Identity, variant.UncertainEdit:
		return e, nil
	default:
		return nil, &herrors.MappingError{Msg: "edit type cannot be strand-remapped"}
	}
}

// genomicToHgvsTranscriptPos converts a 0-based genomic position into
// the anchored HgvsTranscriptPos, resolving intronic positions against
// the nearest exon boundary the way a splice-site lookup does.
func (m *Mapper) genomicToHgvsTranscriptPos(tr *transcript.Transcript, pos coords.GenomicPos) (coords.HgvsTranscriptPos, error) {
	if tpos, ok := tr.GenomicToTranscript(pos); ok {
		return tr.ToHgvs(tpos), nil
	}

	idx, offset, ok := nearestExonOffset(tr, pos)
	if !ok {
		return coords.HgvsTranscriptPos{}, &herrors.MappingError{Msg: "genomic position does not fall within or near any exon of this transcript"}
	}
	anchorTPos := tr.Exons[idx].TranscriptStart
	if offset > 0 {
		anchorTPos = tr.Exons[idx].TranscriptEnd - 1
	}
	base := tr.ToHgvs(anchorTPos)
	base.Offset = int32(offset)
	return base, nil
}

// nearestExonOffset returns the exon index pos is nearest to and the
// signed intronic offset from that exon's boundary (positive if pos lies
// 3' of the exon, negative if 5' of it, in transcript-sense direction).
func nearestExonOffset(tr *transcript.Transcript, pos coords.GenomicPos) (idx int, offset int, ok bool) {
	for i, e := range tr.Exons {
		var distAfterEnd, distBeforeStart int64
		if tr.IsForwardStrand() {
			distAfterEnd = int64(pos) - int64(e.ReferenceEnd-1)
			distBeforeStart = int64(e.ReferenceStart) - int64(pos)
		} else {
			distAfterEnd = int64(e.ReferenceStart) - int64(pos)
			distBeforeStart = int64(pos) - int64(e.ReferenceEnd-1)
		}
		if distAfterEnd > 0 {
			// pos lies 3' of exon i in transcript orientation: candidate
			// offset anchored to this exon's end, or to the next exon's
			// start if that is closer.
			if i+1 < len(tr.Exons) {
				nextBefore := distanceToNextExonStart(tr, i+1, pos)
				if nextBefore > 0 && nextBefore <= distAfterEnd {
					continue
				}
			}
			return i, int(distAfterEnd), true
		}
		if distBeforeStart > 0 {
			return i, -int(distBeforeStart), true
		}
	}
	return 0, 0, false
}

func distanceToNextExonStart(tr *transcript.Transcript, idx int, pos coords.GenomicPos) int64 {
	e := tr.Exons[idx]
	if tr.IsForwardStrand() {
		return int64(e.ReferenceStart) - int64(pos)
	}
	return int64(pos) - int64(e.ReferenceEnd-1)
}

// hgvsTranscriptPosToGenomic converts an anchored HgvsTranscriptPos back
// to a 0-based genomic position, resolving any intronic offset against
// the exon boundary it was anchored from.
func (m *Mapper) hgvsTranscriptPosToGenomic(tr *transcript.Transcript, p coords.HgvsTranscriptPos) (coords.GenomicPos, error) {
	if !p.IsIntronic() {
		tpos, err := tr.FromHgvs(p)
		if err != nil {
			return 0, &herrors.MappingError{Msg: err.Error()}
		}
		gpos, ok := tr.TranscriptToGenomic(tpos)
		if !ok {
			return 0, &herrors.MappingError{Msg: "transcript position out of range"}
		}
		return gpos, nil
	}

	anchorNoOffset := p
	anchorNoOffset.Offset = 0
	anchorTPos, err := tr.FromHgvs(anchorNoOffset)
	if err != nil {
		return 0, &herrors.MappingError{Msg: err.Error()}
	}
	anchorGPos, ok := tr.TranscriptToGenomic(anchorTPos)
	if !ok {
		return 0, &herrors.MappingError{Msg: "intronic anchor position out of range"}
	}
	if tr.IsForwardStrand() {
		return anchorGPos + coords.GenomicPos(p.Offset), nil
	}
	return anchorGPos - coords.GenomicPos(p.Offset), nil
}

// shiftThreePrime generalizes the teacher's shiftInsertionThreePrime and
// shiftDeletionThreePrime into one primitive over a reference window:
// it slides an edit's [start, end) span rightward for as long as doing
// so yields an identical edited sequence, the textbook 3'-rule for
// normalizing indels in repetitive reference context.
func shiftThreePrime(win seqops.Window, start, end int64, insertedSeq string) (newStart, newEnd int64, newSeq string) {
	ins := []byte(strings.ToUpper(insertedSeq))
	s, e := start, end
	for {
		var nextBase byte
		if len(ins) > 0 {
			nextBase = win.At(e)
			if nextBase == 0 || nextBase != toUpperBase(ins[0]) {
				break
			}
			copy(ins, ins[1:])
			ins[len(ins)-1] = toUpperBase(nextBase)
		} else {
			if e >= win.End || win.At(s) != win.At(e) {
				break
			}
		}
		s++
		e++
	}
	return s, e, string(ins)
}

func toUpperBase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// detectDuplication reports whether insertedSeq, inserted immediately
// after genomic/transcript-space position anchorIdx in win, duplicates
// the reference bases immediately preceding or following the insertion
// point, generalizing checkDuplication to operate over a fetched window
// rather than a fully materialized CDS string.
func detectDuplication(win seqops.Window, anchorIdx int64, insertedSeq string) (start, end int64, isDup bool) {
	n := int64(len(insertedSeq))
	if n == 0 {
		return 0, 0, false
	}
	upper := strings.ToUpper(insertedSeq)

	before := win.Slice(anchorIdx-n+1, anchorIdx+1)
	if strings.ToUpper(before) == upper {
		return anchorIdx - n + 1, anchorIdx + 1, true
	}
	after := win.Slice(anchorIdx+1, anchorIdx+1+n)
	if strings.ToUpper(after) == upper {
		return anchorIdx + 1, anchorIdx + 1 + n, true
	}
	return 0, 0, false
}

// Normalize 3'-shifts v's edit to its canonical position in repetitive
// reference sequence and rewrites insertions that duplicate adjacent
// reference as dup, mirroring the checkDuplication convention. The shift
// only runs within the window fetched around v (windowSize bases of
// padding on each side); a repeat that continues past the window edge is
// not followed further. v must
// already be expressed in transcript (c./n.) or genomic (g.) space; its
// Edit's sequence fields are assumed to be on the same strand as the
// reference window fetched for its Accession.
func (m *Mapper) Normalize(v *variant.Variant, ac string, kind dataprovider.IdentifierType) (*variant.Variant, error) {
	start, end, err := m.naSpan(v)
	if err != nil {
		return nil, err
	}

	win, err := seqops.Fetch(m.dp, ac, start, end, m.windowSize, kind)
	if err != nil {
		return nil, &herrors.DataError{Op: "GetSeq", Err: err}
	}

	switch ed := v.Edit.(type) {
	case variant.Insertion:
		ns, ne, seq := shiftThreePrime(win, start, start, ed.Seq)
		// The shifted insertion sits before ns, i.e. after base ns-1.
		if dStart, dEnd, ok := detectDuplication(win, ns-1, seq); ok {
			return rebuildNaVariant(v, dStart, dEnd, variant.Duplication{Seq: seq}), nil
		}
		return rebuildNaVariant(v, ns, ne, variant.Insertion{Seq: seq}), nil
	case variant.Deletion:
		ns, ne, _ := shiftThreePrime(win, start, end, "")
		return rebuildNaVariant(v, ns, ne, variant.Deletion{Seq: win.Slice(ns, ne)}), nil
	case variant.Duplication:
		ns, ne, _ := shiftThreePrime(win, start, end, "")
		return rebuildNaVariant(v, ns, ne, variant.Duplication{Seq: win.Slice(ns, ne)}), nil
	case variant.Repeat:
		expanded := strings.Repeat(ed.Unit, ed.Count)
		ns, _, _ := shiftThreePrime(win, start, start, expanded)
		return rebuildNaVariant(v, ns, ns, variant.Repeat{Unit: ed.Unit, Count: ed.Count}), nil
	default:
		return v, nil
	}
}

// naSpan returns v's location as a half-open [start, end) span in
// whatever position space its NaLoc is expressed.
func (m *Mapper) naSpan(v *variant.Variant) (int64, int64, error) {
	if v.Kind == variant.KindGenomic || v.Kind == variant.KindMito {
		start := int64(coords.ToZeroBased(v.NaLoc.Start.Genomic))
		end := start + 1
		if v.NaLoc.IsRange() {
			end = int64(coords.ToZeroBased(v.NaLoc.End.Genomic)) + 1
		}
		return start, end, nil
	}
	if v.NaLoc.Start.Transcript.IsIntronic() {
		return 0, 0, &herrors.MappingError{Msg: "cannot normalize an intronic position without transcript context"}
	}
	start := int64(v.NaLoc.Start.Transcript.Base - 1)
	end := start + 1
	if v.NaLoc.IsRange() {
		end = int64(v.NaLoc.End.Transcript.Base)
	}
	return start, end, nil
}

// rebuildNaVariant returns a copy of v with its location replaced by the
// half-open [start, end) span and edit e, re-expressed in v's own
// position space.
func rebuildNaVariant(v *variant.Variant, start, end int64, e variant.Edit) *variant.Variant {
	out := *v
	out.Edit = e
	if v.Kind == variant.KindGenomic || v.Kind == variant.KindMito {
		s := variant.NaPos{Genomic: coords.ToGenomic(coords.GenomicPos(start))}
		out.NaLoc = variant.NaLocation{Start: s}
		if end-start > 1 {
			ePos := variant.NaPos{Genomic: coords.ToGenomic(coords.GenomicPos(end - 1))}
			out.NaLoc.End = &ePos
		}
		return &out
	}
	anchor := v.NaLoc.Start.Transcript.Anchor
	s := variant.NaPos{Transcript: coords.HgvsTranscriptPos{Base: int32(start) + 1, Anchor: anchor}}
	out.NaLoc = variant.NaLocation{Start: s}
	if end-start > 1 {
		ePos := variant.NaPos{Transcript: coords.HgvsTranscriptPos{Base: int32(end), Anchor: anchor}}
		out.NaLoc.End = &ePos
	}
	return &out
}

// CToP translates a c. variant's effect onto its protein accession,
// dispatching on the edit kind the way the teacher's
// predictCodingConsequence/predictIndelConsequence pair does, but
// returning a variant.Variant edit rather than a VEP consequence term.
func (m *Mapper) CToP(v *variant.Variant) (*variant.Variant, error) {
	if v.Kind != variant.KindCoding {
		return nil, &herrors.MappingError{Msg: "CToP requires a coding (c.) source variant"}
	}
	tr, err := m.loadTranscript(v.Accession, v.RefAccession)
	if err != nil {
		return nil, err
	}
	if !tr.IsProteinCoding() {
		return nil, &herrors.MappingError{Msg: "transcript has no CDS"}
	}
	if v.NaLoc.Start.Transcript.IsIntronic() {
		return &variant.Variant{Accession: tr.ProteinAc, Kind: variant.KindProtein, Edit: variant.UncertainEdit{}}, nil
	}

	cdsOffset := coords.TranscriptPos(v.NaLoc.Start.Transcript.Base - 1)
	if v.NaLoc.Start.Transcript.Anchor != coords.AnchorCDS {
		return &variant.Variant{Accession: tr.ProteinAc, Kind: variant.KindProtein, Edit: variant.UncertainEdit{}}, nil
	}

	cds, err := m.dp.GetSeq(v.Accession, int64(tr.CDSStart), int64(tr.CDSEnd)+1, dataprovider.TranscriptAccession)
	if err != nil {
		return nil, &herrors.DataError{Op: "GetSeq", Err: err}
	}

	switch ed := v.Edit.(type) {
	case variant.Substitution:
		return m.substitutionToProtein(tr, cds, cdsOffset, ed)
	case variant.Deletion, variant.Insertion, variant.Duplication, variant.Delins:
		return m.indelToProtein(tr, cds, cdsOffset, v)
	default:
		return &variant.Variant{Accession: tr.ProteinAc, Kind: variant.KindProtein, Edit: variant.UncertainEdit{}}, nil
	}
}

func (m *Mapper) substitutionToProtein(tr *transcript.Transcript, cds string, cdsOffset coords.TranscriptPos, ed variant.Substitution) (*variant.Variant, error) {
	codonNum, posInCodon := transcript.CodonPosition(cdsOffset)
	codon := aa.GetCodon(cds, int64(codonNum))
	if codon == "" {
		return nil, &herrors.TranslationError{Msg: "codon out of range"}
	}
	altCodon := aa.MutateCodon(codon, posInCodon, ed.Alt[0])
	refAA := aa.TranslateCodon(codon)
	altAA := aa.TranslateCodon(altCodon)

	out := &variant.Variant{Accession: tr.ProteinAc, Kind: variant.KindProtein}
	out.AaLoc = variant.AaLocation{Start: variant.AaPos{Pos: coords.HgvsProteinPos(codonNum), AA: refAA}}

	switch {
	case refAA == altAA:
		out.Edit = variant.Identity{}
	case refAA == '*' && altAA != '*':
		utr3, err := m.dp.GetSeq(tr.Accession, int64(tr.CDSEnd)+1, int64(tr.Length), dataprovider.TranscriptAccession)
		if err != nil {
			return nil, &herrors.DataError{Op: "GetSeq", Err: err}
		}
		extLen := computeStopLostExtension(cds[int(codonNum)*3:] + utr3)
		if extLen == 0 {
			out.Edit = variant.ProteinExt{NewAA: altAA, Unknown: true}
		} else {
			out.Edit = variant.ProteinExt{NewAA: altAA, ExtLength: extLen}
		}
	default:
		out.Edit = variant.Substitution{Alt: string(altAA)}
	}
	return out, nil
}

// computeStopLostExtension scans downstream sequence (3'UTR, in frame)
// for the next stop codon after a stop-lost substitution, mirroring the
// teacher's computeStopLostExtension but over an explicit sequence
// argument rather than a cached UTR3Sequence field.
func computeStopLostExtension(downstream string) int {
	dist := 1
	for i := 0; i+3 <= len(downstream); i += 3 {
		if aa.TranslateCodon(downstream[i:i+3]) == '*' {
			return dist
		}
		dist++
	}
	return 0
}

// indelToProtein applies a nucleic indel/delins to the CDS and compares
// the resulting translation to the reference, classifying the result as
// in-frame (Delins/Deletion/Insertion on AaLoc) or a frameshift
// (ProteinFs), the same in-frame-vs-frameshift split the teacher's
// predictIndelConsequence makes on length % 3.
func (m *Mapper) indelToProtein(tr *transcript.Transcript, cds string, cdsOffset coords.TranscriptPos, v *variant.Variant) (*variant.Variant, error) {
	start := int(cdsOffset)
	end := start + 1
	if v.NaLoc.IsRange() {
		end = int(v.NaLoc.End.Transcript.Base)
	}

	var insertedSeq string
	var delLen int
	switch ed := v.Edit.(type) {
	case variant.Deletion:
		delLen = end - start
	case variant.Insertion:
		insertedSeq = ed.Seq
		delLen = 0
		end = start
	case variant.Duplication:
		insertedSeq = cds[start:end]
		delLen = 0
		end = start
	case variant.Delins:
		insertedSeq = ed.Seq
		delLen = end - start
	}

	netShift := len(insertedSeq) - delLen
	out := &variant.Variant{Accession: tr.ProteinAc, Kind: variant.KindProtein}

	if netShift%3 != 0 {
		return m.frameshiftToProtein(tr, cds, start, end, insertedSeq, out)
	}
	return m.inframeToProtein(cds, start, end, insertedSeq, out)
}

func (m *Mapper) frameshiftToProtein(tr *transcript.Transcript, cds string, start, end int, insertedSeq string, out *variant.Variant) (*variant.Variant, error) {
	mutated := cds[:start] + insertedSeq + cds[end:]
	codonStart := (start / 3) * 3

	var protPos coords.ProteinPos
	var refAA, altAA byte
	stopDist := 0
	foundStop := false
	for i := codonStart; i+3 <= len(mutated); i += 3 {
		mutAA := aa.TranslateCodon(mutated[i : i+3])
		if protPos == 0 {
			var origAA byte
			if i+3 <= len(cds) {
				origAA = aa.TranslateCodon(cds[i : i+3])
			}
			if mutAA != origAA {
				protPos = coords.ProteinPos(i/3) + 1
				refAA, altAA = origAA, mutAA
				stopDist = 1
				if mutAA == '*' {
					foundStop = true
					break
				}
			}
			continue
		}
		stopDist++
		if mutAA == '*' {
			foundStop = true
			break
		}
	}
	if !foundStop {
		// No new stop within the available sequence: distance unknown (Ter?).
		stopDist = 0
	}

	out.AaLoc = variant.AaLocation{Start: variant.AaPos{Pos: coords.HgvsProteinPos(protPos), AA: refAA}}
	out.Edit = variant.ProteinFs{NewAA: altAA, StopDist: stopDist, HasStop: protPos != 0}
	return out, nil
}

func (m *Mapper) inframeToProtein(cds string, start, end int, insertedSeq string, out *variant.Variant) (*variant.Variant, error) {
	origAAStart := start / 3
	mutated := cds[:start] + insertedSeq + cds[end:]

	origTail := aa.TranslateSequence(cds[origAAStart*3:])
	mutTail := aa.TranslateSequence(mutated[origAAStart*3:])

	i := 0
	for i < len(origTail) && i < len(mutTail) && origTail[i] == mutTail[i] {
		i++
	}
	j := 0
	for j < len(origTail)-i && j < len(mutTail)-i && origTail[len(origTail)-1-j] == mutTail[len(mutTail)-1-j] {
		j++
	}

	delAAs := origTail[i : len(origTail)-j]
	insAAs := mutTail[i : len(mutTail)-j]
	startPos := coords.HgvsProteinPos(origAAStart + i + 1)

	startAA := byte(0)
	if i < len(origTail) {
		startAA = origTail[i]
	}
	out.AaLoc = variant.AaLocation{Start: variant.AaPos{Pos: startPos, AA: startAA}}
	if len(delAAs) > 1 {
		endAA := origTail[len(origTail)-j-1]
		endPos := variant.AaPos{Pos: startPos + coords.HgvsProteinPos(len(delAAs)-1), AA: endAA}
		out.AaLoc.End = &endPos
	}

	switch {
	case delAAs == "" && insAAs == "":
		out.Edit = variant.Identity{}
	case delAAs == "":
		out.Edit = variant.Insertion{Seq: insAAs}
	case insAAs == "":
		out.Edit = variant.Deletion{}
	default:
		out.Edit = variant.Delins{Seq: insAAs}
	}
	return out, nil
}
