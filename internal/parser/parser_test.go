package parser

import (
	"testing"

	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/herrors"
	"github.com/hgvscore/hgvscore/internal/variant"
)

func TestParseCodingSubstitution(t *testing.T) {
	v, err := Parse("NM_000001.1:c.76A>T")
	if err != nil {
		t.Fatal(err)
	}
	if v.Accession != "NM_000001.1" || v.Kind != variant.KindCoding {
		t.Fatalf("unexpected accession/kind: %+v", v)
	}
	if v.NaLoc.Start.Transcript.Base != 76 || v.NaLoc.Start.Transcript.Anchor != coords.AnchorCDS {
		t.Errorf("unexpected position: %+v", v.NaLoc.Start.Transcript)
	}
	sub, ok := v.Edit.(variant.Substitution)
	if !ok || sub.Ref != "A" || sub.Alt != "T" {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseFivePrimeUTRPosition(t *testing.T) {
	v, err := Parse("NM_000001.1:c.-14G>C")
	if err != nil {
		t.Fatal(err)
	}
	if v.NaLoc.Start.Transcript.Anchor != coords.AnchorFivePrimeUTR || v.NaLoc.Start.Transcript.Base != 14 {
		t.Errorf("unexpected position: %+v", v.NaLoc.Start.Transcript)
	}
}

func TestParseThreePrimeUTRPosition(t *testing.T) {
	v, err := Parse("NM_000001.1:c.*6A>G")
	if err != nil {
		t.Fatal(err)
	}
	if v.NaLoc.Start.Transcript.Anchor != coords.AnchorThreePrimeUTR || v.NaLoc.Start.Transcript.Base != 6 {
		t.Errorf("unexpected position: %+v", v.NaLoc.Start.Transcript)
	}
}

func TestParseIntronicOffset(t *testing.T) {
	v, err := Parse("NM_000001.1:c.100+5G>A")
	if err != nil {
		t.Fatal(err)
	}
	if v.NaLoc.Start.Transcript.Offset != 5 {
		t.Errorf("unexpected offset: %+v", v.NaLoc.Start.Transcript)
	}
}

func TestParseIntronicOffsetRejectedOnGenomic(t *testing.T) {
	_, err := Parse("NC_000001.11:g.100+5G>A")
	if err == nil {
		t.Fatal("expected error for intronic offset on genomic kind")
	}
}

func TestParseDeletionRange(t *testing.T) {
	v, err := Parse("NM_000001.1:c.4_6del")
	if err != nil {
		t.Fatal(err)
	}
	if !v.NaLoc.IsRange() {
		t.Fatal("expected range location")
	}
	if v.NaLoc.End.Transcript.Base != 6 {
		t.Errorf("unexpected end: %+v", v.NaLoc.End.Transcript)
	}
	if _, ok := v.Edit.(variant.Deletion); !ok {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseInsertion(t *testing.T) {
	v, err := Parse("NM_000001.1:c.4_5insACGT")
	if err != nil {
		t.Fatal(err)
	}
	ins, ok := v.Edit.(variant.Insertion)
	if !ok || ins.Seq != "ACGT" {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseDelins(t *testing.T) {
	v, err := Parse("NM_000001.1:c.4_6delinsGG")
	if err != nil {
		t.Fatal(err)
	}
	di, ok := v.Edit.(variant.Delins)
	if !ok || di.Seq != "GG" {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseGenomicSubstitution(t *testing.T) {
	v, err := Parse("NC_000001.11:g.12345C>T")
	if err != nil {
		t.Fatal(err)
	}
	if v.NaLoc.Start.Genomic != 12345 {
		t.Errorf("unexpected genomic position: %d", v.NaLoc.Start.Genomic)
	}
}

func TestParseProteinMissense(t *testing.T) {
	v, err := Parse("NP_000001.1:p.Gly12Cys")
	if err != nil {
		t.Fatal(err)
	}
	if v.AaLoc.Start.AA != 'G' || v.AaLoc.Start.Pos != 12 {
		t.Errorf("unexpected location: %+v", v.AaLoc.Start)
	}
	sub, ok := v.Edit.(variant.Substitution)
	if !ok || sub.Alt != "C" {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseProteinFrameshift(t *testing.T) {
	v, err := Parse("NP_000001.1:p.Gly12ValfsTer4")
	if err != nil {
		t.Fatal(err)
	}
	fs, ok := v.Edit.(variant.ProteinFs)
	if !ok || fs.NewAA != 'V' || fs.StopDist != 4 || !fs.HasStop {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseProteinExtension(t *testing.T) {
	v, err := Parse("NP_000001.1:p.Ter110GlnextTer17")
	if err != nil {
		t.Fatal(err)
	}
	if v.AaLoc.Start.AA != '*' {
		t.Errorf("unexpected ref AA: %c", v.AaLoc.Start.AA)
	}
	ext, ok := v.Edit.(variant.ProteinExt)
	if !ok || ext.NewAA != 'Q' || ext.ExtLength != 17 {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseUncertainBracket(t *testing.T) {
	v, err := Parse("NP_000001.1:p.(Gly12Cys)")
	if err != nil {
		t.Fatal(err)
	}
	if !v.UncertainBracket {
		t.Error("expected UncertainBracket to be set")
	}
}

func TestParseUncertainPosition(t *testing.T) {
	v, err := Parse("NM_000001.1:c.(4_6)del")
	if err != nil {
		t.Fatal(err)
	}
	if !v.NaLoc.Start.Uncertain {
		t.Error("expected uncertain start position")
	}
}

func TestParseReferenceAccessionParens(t *testing.T) {
	v, err := Parse("NC_000001.11(NM_000001.1):c.76A>T")
	if err != nil {
		t.Fatal(err)
	}
	if v.RefAccession != "NM_000001.1" {
		t.Errorf("unexpected refAccession: %q", v.RefAccession)
	}
}

func TestParseRepeat(t *testing.T) {
	v, err := Parse("NM_000001.1:c.-128CAG[23]")
	if err != nil {
		t.Fatal(err)
	}
	rep, ok := v.Edit.(variant.Repeat)
	if !ok || rep.Unit != "CAG" || rep.Count != 23 {
		t.Errorf("unexpected edit: %+v", v.Edit)
	}
}

func TestParseInvalidKind(t *testing.T) {
	_, err := Parse("NM_000001.1:z.76A>T")
	if err == nil {
		t.Fatal("expected error for invalid kind")
	}
	pe, ok := err.(*herrors.ParseError)
	if !ok {
		t.Fatalf("expected *herrors.ParseError, got %T", err)
	}
	if pe.Kind != herrors.InvalidChar {
		t.Errorf("unexpected error kind: %v", pe.Kind)
	}
}

func TestParseTrailingGarbageRejected(t *testing.T) {
	_, err := Parse("NM_000001.1:c.76A>Tgarbage")
	if err == nil {
		t.Fatal("expected error for trailing garbage")
	}
}
