package variant

import (
	"testing"

	"github.com/hgvscore/hgvscore/internal/coords"
)

func TestEditTypeSwitch(t *testing.T) {
	edits := []Edit{
		Substitution{Ref: "A", Alt: "G"},
		Deletion{},
		Insertion{Seq: "ATG"},
		Duplication{},
		Inversion{},
		Delins{Seq: "GG"},
		Repeat{Unit: "CAG", Count: 12},
		Identity{},
		UncertainEdit{},
		ProteinExt{NewAA: 'Q', ExtLength: 17},
		ProteinFs{NewAA: 'V', StopDist: 4, HasStop: true},
	}
	for _, e := range edits {
		switch e.(type) {
		case Substitution, Deletion, Insertion, Duplication, Inversion,
			Delins, Repeat, Identity, UncertainEdit, ProteinExt, ProteinFs:
			// recognized
		default:
			t.Errorf("unrecognized edit type %T", e)
		}
	}
}

func TestNaLocationIsRange(t *testing.T) {
	single := NaLocation{Start: NaPos{Genomic: 100}}
	if single.IsRange() {
		t.Error("single position reported as range")
	}
	end := NaPos{Genomic: 110}
	ranged := NaLocation{Start: NaPos{Genomic: 100}, End: &end}
	if !ranged.IsRange() {
		t.Error("two-position location not reported as range")
	}
}

func TestVariantKindString(t *testing.T) {
	want := map[Kind]string{
		KindGenomic: "g", KindMito: "m", KindCoding: "c",
		KindNonCoding: "n", KindRNA: "r", KindProtein: "p",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestIsProtein(t *testing.T) {
	v := &Variant{Kind: KindProtein}
	if !v.IsProtein() {
		t.Error("KindProtein variant should report IsProtein")
	}
	v.Kind = KindCoding
	if v.IsProtein() {
		t.Error("KindCoding variant should not report IsProtein")
	}
}

func TestHgvsTranscriptPosEmbedding(t *testing.T) {
	p, err := coords.NewHgvsTranscriptPos(4, coords.AnchorCDS, 0)
	if err != nil {
		t.Fatal(err)
	}
	loc := NaLocation{Start: NaPos{Transcript: p}}
	if loc.Start.Transcript.Base != 4 {
		t.Errorf("Base = %d, want 4", loc.Start.Transcript.Base)
	}
}
