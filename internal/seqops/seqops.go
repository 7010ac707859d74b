// Package seqops provides strand and windowing primitives over raw
// sequence strings: reverse-complement, padded window fetch around a
// variant site. These are the building blocks the mapper and equivalence
// packages use to reconstruct edited sequences and compare them.
package seqops

import "github.com/hgvscore/hgvscore/internal/dataprovider"

// Complement returns the complementary DNA base. Unrecognized bytes map
// to 'N'.
func Complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'g':
		return 'c'
	case 'c':
		return 'g'
	default:
		return 'N'
	}
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return string(out)
}

// ComplementRNA mirrors Complement but emits lowercase RNA bases (r. kind
// uses lowercase acgu on input/output).
func ComplementRNA(base byte) byte {
	c := Complement(base)
	switch c {
	case 'A', 'a':
		return 'a'
	case 'T', 't':
		return 'u'
	case 'G', 'g':
		return 'g'
	case 'C', 'c':
		return 'c'
	default:
		return 'n'
	}
}

// Window is a fetched, padded slice of reference sequence around a
// variant site, in 0-based half-open coordinates on the accession it was
// fetched from.
type Window struct {
	Start int64 // 0-based inclusive start on the accession
	End   int64 // 0-based exclusive end on the accession
	Seq   string
}

// Len returns the number of bases in the window.
func (w Window) Len() int { return len(w.Seq) }

// At returns the base at absolute accession position pos, or 0 if pos
// falls outside the window.
func (w Window) At(pos int64) byte {
	if pos < w.Start || pos >= w.End {
		return 0
	}
	return w.Seq[pos-w.Start]
}

// Slice returns the substring of the window spanning [from, to) in
// absolute accession coordinates, clamped to the window's bounds.
func (w Window) Slice(from, to int64) string {
	if from < w.Start {
		from = w.Start
	}
	if to > w.End {
		to = w.End
	}
	if from >= to {
		return ""
	}
	return w.Seq[from-w.Start : to-w.Start]
}

// Fetch retrieves a window of k bases of padding around [start, end) on
// accession ac, clamped so it never requests a negative start. kind
// identifies the accession's coordinate space for the DataProvider call.
func Fetch(dp dataprovider.DataProvider, ac string, start, end int64, k int64, kind dataprovider.IdentifierType) (Window, error) {
	wStart := start - k
	if wStart < 0 {
		wStart = 0
	}
	wEnd := end + k

	seq, err := dp.GetSeq(ac, wStart, wEnd, kind)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: wStart, End: wStart + int64(len(seq)), Seq: seq}, nil
}
