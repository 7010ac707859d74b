package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/dataprovider"
	"github.com/hgvscore/hgvscore/internal/variant"
)

// fakeProvider is a minimal in-memory DataProvider for mapper tests,
// grounded on the shape of dataprovider.DataProvider rather than any
// real backing store.
type fakeProvider struct {
	transcripts map[string]dataprovider.TranscriptData
	sequences   map[string]string // accession -> full 0-based sequence
}

func (f *fakeProvider) GetTranscript(transcriptAc, referenceAc string) (dataprovider.TranscriptData, error) {
	td, ok := f.transcripts[transcriptAc]
	if !ok {
		return dataprovider.TranscriptData{}, &dataprovider.NotFoundError{Identifier: transcriptAc}
	}
	return td, nil
}

func (f *fakeProvider) GetSeq(ac string, start, end int64, kind dataprovider.IdentifierType) (string, error) {
	seq, ok := f.sequences[ac]
	if !ok {
		return "", &dataprovider.NotFoundError{Identifier: ac}
	}
	if start < 0 {
		start = 0
	}
	if end > int64(len(seq)) {
		end = int64(len(seq))
	}
	if start >= end {
		return "", nil
	}
	return seq[start:end], nil
}

func (f *fakeProvider) GetSymbolAccessions(symbol string, sourceKind, targetKind dataprovider.IdentifierType) ([]dataprovider.SymbolAccession, error) {
	return nil, nil
}

func (f *fakeProvider) GetIdentifierType(identifier string) (dataprovider.IdentifierType, error) {
	return dataprovider.Unknown, nil
}

// forwardSingleExon builds a single-exon forward-strand coding
// transcript: genomic [1000,1060) maps 1:1 to transcript [0,60), CDS
// spans transcript [10,34) i.e. 24 bases (8 codons incl. stop).
func forwardSingleExon() (*fakeProvider, string) {
	const transcriptAc = "NM_TEST.1"
	const genomicAc = "NC_TEST.1"
	genomicSeq := strings.Repeat("N", 1000) + "AAAAAAAAAA" + "ATGGGTTGTAAACCCGGGTTTTAA" + "CCCCCCCCCCCCCCCCCCCCCCCCCC"
	return &fakeProvider{
		transcripts: map[string]dataprovider.TranscriptData{
			transcriptAc: {
				TranscriptAc:  transcriptAc,
				ReferenceAc:   genomicAc,
				ProteinAc:     "NP_TEST.1",
				Strand:        1,
				CDSStartIndex: 10,
				CDSEndIndex:   33,
				Exons: []dataprovider.Exon{
					{TranscriptStart: 0, TranscriptEnd: 60, ReferenceStart: 1000, ReferenceEnd: 1060},
				},
			},
		},
		sequences: map[string]string{
			genomicAc:    genomicSeq,
			transcriptAc: genomicSeq[1000:1060],
		},
	}, transcriptAc
}

func TestGToCSimpleSubstitution(t *testing.T) {
	fp, tAc := forwardSingleExon()
	m := New(fp, 10)
	g := &variant.Variant{
		Accession: "NC_TEST.1",
		Kind:      variant.KindGenomic,
		NaLoc:     variant.NaLocation{Start: variant.NaPos{Genomic: 1011}}, // 0-based 1010 -> transcript 10 -> c.1
		Edit:      variant.Substitution{Ref: "A", Alt: "T"},
	}
	out, err := m.GToC(g, tAc)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != variant.KindCoding {
		t.Fatalf("unexpected kind: %v", out.Kind)
	}
	if out.NaLoc.Start.Transcript.Base != 1 || out.NaLoc.Start.Transcript.Anchor != coords.AnchorCDS {
		t.Errorf("unexpected position: %+v", out.NaLoc.Start.Transcript)
	}
}

func TestCToGRoundTrip(t *testing.T) {
	fp, tAc := forwardSingleExon()
	m := New(fp, 10)
	c := &variant.Variant{
		Accession: tAc,
		Kind:      variant.KindCoding,
		NaLoc:     variant.NaLocation{Start: variant.NaPos{Transcript: mustPos(t, 1, coords.AnchorCDS, 0)}},
		Edit:      variant.Substitution{Ref: "A", Alt: "T"},
	}
	g, err := m.CToG(c)
	if err != nil {
		t.Fatal(err)
	}
	if g.NaLoc.Start.Genomic != 1011 {
		t.Errorf("unexpected genomic position: %d", g.NaLoc.Start.Genomic)
	}
	back, err := m.GToC(g, tAc)
	if err != nil {
		t.Fatal(err)
	}
	if back.NaLoc.Start.Transcript != c.NaLoc.Start.Transcript {
		t.Errorf("round trip position = %+v, want %+v", back.NaLoc.Start.Transcript, c.NaLoc.Start.Transcript)
	}
}

func TestCToPMissense(t *testing.T) {
	fp, tAc := forwardSingleExon()
	m := New(fp, 10)
	// c.5 is the second 'G' of GGT (codon 2, Gly); mutate to A -> GAT -> Asp.
	c := &variant.Variant{
		Accession: tAc,
		Kind:      variant.KindCoding,
		NaLoc:     variant.NaLocation{Start: variant.NaPos{Transcript: mustPos(t, 5, coords.AnchorCDS, 0)}},
		Edit:      variant.Substitution{Ref: "G", Alt: "A"},
	}
	p, err := m.CToP(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != variant.KindProtein {
		t.Fatalf("unexpected kind: %v", p.Kind)
	}
	if p.AaLoc.Start.Pos != 2 {
		t.Errorf("unexpected protein position: %d", p.AaLoc.Start.Pos)
	}
}

func mustPos(t *testing.T, base int32, anchor coords.Anchor, offset int32) coords.HgvsTranscriptPos {
	p, err := coords.NewHgvsTranscriptPos(base, anchor, offset)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNormalizeRepeatPreservesUnitAndCount(t *testing.T) {
	fp := &fakeProvider{sequences: map[string]string{
		"NM_REPEAT.1": "AACAGCAGCAGTTT",
	}}
	m := New(fp, 10)
	v := &variant.Variant{
		Accession: "NM_REPEAT.1",
		Kind:      variant.KindCoding,
		NaLoc:     variant.NaLocation{Start: variant.NaPos{Transcript: mustPos(t, 3, coords.AnchorCDS, 0)}},
		Edit:      variant.Repeat{Unit: "CAG", Count: 3},
	}
	out, err := m.Normalize(v, v.Accession, dataprovider.TranscriptAccession)
	require.NoError(t, err)
	rep, ok := out.Edit.(variant.Repeat)
	require.True(t, ok, "expected Repeat edit after normalization, got %T", out.Edit)
	assert.Equal(t, variant.Repeat{Unit: "CAG", Count: 3}, rep)
}

func TestNormalizeInsertionDetectsDuplication(t *testing.T) {
	fp := &fakeProvider{sequences: map[string]string{
		"NM_DUP.1": "AAACAGCAGCAGTTT",
	}}
	m := New(fp, 5)
	// Insert "CAG" before c.7 (0-based index 6), i.e. right after the first
	// CAG repeat unit, which duplicates that unit.
	v := &variant.Variant{
		Accession: "NM_DUP.1",
		Kind:      variant.KindCoding,
		NaLoc:     variant.NaLocation{Start: variant.NaPos{Transcript: mustPos(t, 7, coords.AnchorCDS, 0)}},
		Edit:      variant.Insertion{Seq: "CAG"},
	}
	out, err := m.Normalize(v, v.Accession, dataprovider.TranscriptAccession)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out.Edit.(variant.Duplication); !ok {
		t.Errorf("expected Duplication after normalization, got %T", out.Edit)
	}
}
