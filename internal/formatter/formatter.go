// Package formatter renders a variant.Variant back into its HGVS string
// form, the inverse of the parser package. It follows the teacher's
// Sprintf-per-edit-kind style (FormatHGVSc/FormatHGVSp) but dispatches
// through variant.Edit's type switch instead of a Consequence result,
// since the formatter here has no annotation context to consult.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hgvscore/hgvscore/internal/aa"
	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/variant"
)

// Format renders v as its canonical HGVS string.
func Format(v *variant.Variant) string {
	var b strings.Builder
	b.WriteString(v.Accession)
	if v.RefAccession != "" {
		b.WriteByte(':')
		b.WriteString(v.RefAccession)
	}
	b.WriteByte(':')
	b.WriteString(v.Kind.String())
	b.WriteByte('.')

	if v.UncertainBracket {
		b.WriteByte('(')
	}

	if v.IsProtein() {
		b.WriteString(formatAaLocation(v.AaLoc))
		b.WriteString(formatProteinEdit(v.Edit, v.AaLoc))
	} else {
		b.WriteString(formatNaLocation(v.Kind, v.NaLoc))
		b.WriteString(formatNaEdit(v.Kind, v.Edit))
	}

	if v.UncertainBracket {
		b.WriteByte(')')
	}
	return b.String()
}

func formatNaPos(kind variant.Kind, p variant.NaPos) string {
	var s string
	switch kind {
	case variant.KindGenomic, variant.KindMito:
		s = strconv.Itoa(int(p.Genomic))
	default:
		s = formatHgvsTranscriptPos(p.Transcript)
	}
	if p.Uncertain {
		return "(" + s + ")"
	}
	return s
}

func formatHgvsTranscriptPos(p coords.HgvsTranscriptPos) string {
	var base string
	switch p.Anchor {
	case coords.AnchorFivePrimeUTR:
		base = "-" + strconv.Itoa(int(p.Base))
	case coords.AnchorThreePrimeUTR:
		base = "*" + strconv.Itoa(int(p.Base))
	default:
		base = strconv.Itoa(int(p.Base))
	}
	if p.Offset != 0 {
		if p.Offset > 0 {
			base += "+" + strconv.Itoa(int(p.Offset))
		} else {
			base += strconv.Itoa(int(p.Offset))
		}
	}
	return base
}

func formatNaLocation(kind variant.Kind, l variant.NaLocation) string {
	if !l.IsRange() {
		return formatNaPos(kind, l.Start)
	}
	return formatNaPos(kind, l.Start) + "_" + formatNaPos(kind, *l.End)
}

func formatAaPos(p variant.AaPos) string {
	s := aa.Three(p.AA) + strconv.Itoa(int(p.Pos))
	if p.Uncertain {
		return "(" + s + ")"
	}
	return s
}

func formatAaLocation(l variant.AaLocation) string {
	if !l.IsRange() {
		return formatAaPos(l.Start)
	}
	return formatAaPos(l.Start) + "_" + formatAaPos(*l.End)
}

// caseSeq upper/lower-cases a nucleic sequence for the given kind: r.
// notation uses lowercase bases, every other kind uses uppercase.
func caseSeq(kind variant.Kind, seq string) string {
	if kind == variant.KindRNA {
		return strings.ToLower(seq)
	}
	return strings.ToUpper(seq)
}

func formatNaEdit(kind variant.Kind, e variant.Edit) string {
	switch ed := e.(type) {
	case variant.Substitution:
		return caseSeq(kind, ed.Ref) + ">" + caseSeq(kind, ed.Alt)
	case variant.Deletion:
		return "del" + caseSeq(kind, ed.Seq)
	case variant.Insertion:
		return "ins" + caseSeq(kind, ed.Seq)
	case variant.Duplication:
		return "dup" + caseSeq(kind, ed.Seq)
	case variant.Inversion:
		return "inv"
	case variant.Delins:
		return "delins" + caseSeq(kind, ed.Seq)
	case variant.Repeat:
		return fmt.Sprintf("%s[%d]", caseSeq(kind, ed.Unit), ed.Count)
	case variant.Identity:
		return "="
	case variant.UncertainEdit:
		return "?"
	default:
		return ""
	}
}

func formatProteinEdit(e variant.Edit, loc variant.AaLocation) string {
	switch ed := e.(type) {
	case variant.Substitution:
		return aa.Three(ed.Alt[0])
	case variant.Deletion:
		return "del"
	case variant.Insertion:
		return "ins" + threeLetterSeq(ed.Seq)
	case variant.Duplication:
		return "dup"
	case variant.Delins:
		return "delins" + threeLetterSeq(ed.Seq)
	case variant.Identity:
		return "="
	case variant.UncertainEdit:
		return "?"
	case variant.ProteinExt:
		if ed.Unknown {
			return aa.Three(ed.NewAA) + "extTer?"
		}
		return fmt.Sprintf("%sextTer%d", aa.Three(ed.NewAA), ed.ExtLength)
	case variant.ProteinFs:
		var b strings.Builder
		if ed.NewAA != 0 {
			b.WriteString(aa.Three(ed.NewAA))
		}
		b.WriteString("fs")
		if ed.HasStop {
			if ed.StopDist == 0 {
				b.WriteString("Ter?")
			} else {
				fmt.Fprintf(&b, "Ter%d", ed.StopDist)
			}
		}
		return b.String()
	default:
		return ""
	}
}

// threeLetterSeq converts a run of single-letter amino acid codes into
// their concatenated three-letter form, used for ins/delins on protein
// variants.
func threeLetterSeq(singles string) string {
	var b strings.Builder
	for i := 0; i < len(singles); i++ {
		b.WriteString(aa.Three(singles[i]))
	}
	return b.String()
}
