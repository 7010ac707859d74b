// Package parser implements a hand-written recursive-descent parser for
// HGVS variant descriptions, producing a variant.Variant AST. Unlike the
// teacher's regexp-per-shape dispatch (ParseVariantSpec), HGVS's grammar
// is recursive (locations nest inside edits nest inside uncertainty
// brackets) and is parsed here by walking the input byte by byte rather
// than matching a fixed set of patterns.
package parser

import (
	"strconv"
	"strings"

	"github.com/hgvscore/hgvscore/internal/aa"
	"github.com/hgvscore/hgvscore/internal/coords"
	"github.com/hgvscore/hgvscore/internal/herrors"
	"github.com/hgvscore/hgvscore/internal/variant"
)

type parser struct {
	s   string
	pos int
}

// Parse parses an HGVS variant description into a variant.Variant.
func Parse(s string) (*variant.Variant, error) {
	p := &parser{s: s}
	v, err := p.parseVariant()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf(herrors.UnexpectedEnd, "unexpected trailing characters")
	}
	return v, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.s) {
		return 0
	}
	return p.s[p.pos+off]
}

func (p *parser) advance() byte {
	b := p.peek()
	p.pos++
	return b
}

func (p *parser) errorf(kind herrors.ParseErrorKind, msg string) *herrors.ParseError {
	return &herrors.ParseError{Kind: kind, Offset: p.pos, Msg: msg}
}

func (p *parser) expect(b byte) error {
	if p.peek() != b {
		return p.errorf(herrors.InvalidChar, "expected '"+string(b)+"'")
	}
	p.pos++
	return nil
}

// matchLiteral consumes lit if the input at the current position matches
// it exactly, returning true if consumed.
func (p *parser) matchLiteral(lit string) bool {
	if strings.HasPrefix(p.s[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNaBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'U', 'N', 'a', 'c', 'g', 't', 'u', 'n':
		return true
	}
	return false
}

func isUpperLetter(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLowerLetter(b byte) bool { return b >= 'a' && b <= 'z' }

func (p *parser) readDigits() (string, bool) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.s[start:p.pos], true
}

func (p *parser) readBases() string {
	start := p.pos
	for isNaBase(p.peek()) {
		p.pos++
	}
	return p.s[start:p.pos]
}

// parseVariant parses the full accession:kind.change grammar.
func (p *parser) parseVariant() (*variant.Variant, error) {
	acc, err := p.parseAccession()
	if err != nil {
		return nil, err
	}

	refAcc := ""
	if p.peek() == '(' {
		start := p.pos + 1
		end := strings.IndexByte(p.s[start:], ')')
		if end < 0 {
			return nil, p.errorf(herrors.UnexpectedEnd, "unterminated reference accession")
		}
		refAcc = p.s[start : start+end]
		p.pos = start + end + 1
	}

	if err := p.expect(':'); err != nil {
		return nil, err
	}

	// A reference accession may also follow a second colon
	// ("NC_000001.11:NM_000001.1:c.76A>T"), the form Format writes.
	if refAcc == "" && p.peekAt(1) != '.' {
		refAcc, err = p.parseAccession()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
	}

	kind, err := p.parseKind()
	if err != nil {
		return nil, err
	}

	if err := p.expect('.'); err != nil {
		return nil, err
	}

	uncertainBracket := false
	if p.peek() == '(' {
		uncertainBracket = true
		p.pos++
	}

	v := &variant.Variant{
		Accession:    acc,
		RefAccession: refAcc,
		Kind:         kind,
	}

	if kind == variant.KindProtein {
		loc, err := p.parseAaLocation()
		if err != nil {
			return nil, err
		}
		v.AaLoc = loc
		edit, err := p.parseProteinEdit()
		if err != nil {
			return nil, err
		}
		v.Edit = edit
	} else {
		loc, err := p.parseNaLocation(kind)
		if err != nil {
			return nil, err
		}
		if uncertainBracket && p.peek() == ')' {
			// "(a_b)" closing before the edit marks the location as
			// uncertain rather than bracketing the whole description.
			p.pos++
			uncertainBracket = false
			loc.Start.Uncertain = true
			if loc.End != nil {
				loc.End.Uncertain = true
			}
		}
		v.NaLoc = loc
		edit, err := p.parseNaEdit(kind)
		if err != nil {
			return nil, err
		}
		v.Edit = edit
	}

	if uncertainBracket {
		v.UncertainBracket = true
		if err := p.expect(')'); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (p *parser) parseAccession() (string, error) {
	start := p.pos
	for !p.atEnd() && p.peek() != ':' && p.peek() != '(' {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf(herrors.UnexpectedEnd, "missing accession")
	}
	return p.s[start:p.pos], nil
}

func (p *parser) parseKind() (variant.Kind, error) {
	if p.atEnd() {
		return 0, p.errorf(herrors.UnexpectedEnd, "missing variant kind")
	}
	b := p.advance()
	switch b {
	case 'g':
		return variant.KindGenomic, nil
	case 'm':
		return variant.KindMito, nil
	case 'c':
		return variant.KindCoding, nil
	case 'n':
		return variant.KindNonCoding, nil
	case 'r':
		return variant.KindRNA, nil
	case 'p':
		return variant.KindProtein, nil
	default:
		return 0, p.errorf(herrors.InvalidChar, "unrecognized variant kind '"+string(b)+"'")
	}
}

// parseNaLocation parses a single position or "start_end" range in the
// nucleic-acid position space appropriate to kind.
func (p *parser) parseNaLocation(kind variant.Kind) (variant.NaLocation, error) {
	start, err := p.parseNaPos(kind)
	if err != nil {
		return variant.NaLocation{}, err
	}
	if p.peek() != '_' {
		return variant.NaLocation{Start: start}, nil
	}
	p.pos++
	end, err := p.parseNaPos(kind)
	if err != nil {
		return variant.NaLocation{}, err
	}
	return variant.NaLocation{Start: start, End: &end}, nil
}

func (p *parser) parseNaPos(kind variant.Kind) (variant.NaPos, error) {
	uncertain := false
	if p.peek() == '(' {
		uncertain = true
		p.pos++
	}

	var np variant.NaPos
	switch kind {
	case variant.KindGenomic, variant.KindMito:
		digits, ok := p.readDigits()
		if !ok {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "expected genomic position")
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "malformed genomic position")
		}
		if (p.peek() == '+' || p.peek() == '-') && isDigit(p.peekAt(1)) {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "intronic offsets are only valid for c. and n. positions")
		}
		np.Genomic = coords.HgvsGenomicPos(n)
	default:
		anchor := coords.AnchorCDS
		switch p.peek() {
		case '-':
			anchor = coords.AnchorFivePrimeUTR
			p.pos++
		case '*':
			anchor = coords.AnchorThreePrimeUTR
			p.pos++
		}
		digits, ok := p.readDigits()
		if !ok {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "expected transcript position")
		}
		base, err := strconv.Atoi(digits)
		if err != nil {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "malformed transcript position")
		}

		var offset int
		if p.peek() == '+' || p.peek() == '-' {
			sign := 1
			if p.peek() == '-' {
				sign = -1
			}
			p.pos++
			odigits, ok := p.readDigits()
			if !ok {
				return variant.NaPos{}, p.errorf(herrors.BadPosition, "malformed intronic offset")
			}
			on, err := strconv.Atoi(odigits)
			if err != nil {
				return variant.NaPos{}, p.errorf(herrors.BadPosition, "malformed intronic offset")
			}
			offset = sign * on
		}
		if offset != 0 && kind != variant.KindCoding && kind != variant.KindNonCoding {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, "intronic offsets are only valid for c. and n. positions")
		}

		tp, err := coords.NewHgvsTranscriptPos(int32(base), anchor, int32(offset))
		if err != nil {
			return variant.NaPos{}, p.errorf(herrors.BadPosition, err.Error())
		}
		np.Transcript = tp
	}

	if uncertain {
		if err := p.expect(')'); err != nil {
			return variant.NaPos{}, err
		}
	}
	np.Uncertain = uncertain
	return np, nil
}

func (p *parser) parseNaEdit(kind variant.Kind) (variant.Edit, error) {
	if p.peek() == '=' {
		p.pos++
		return variant.Identity{}, nil
	}
	if p.peek() == '?' {
		p.pos++
		return variant.UncertainEdit{}, nil
	}
	if p.matchLiteral("delins") {
		seq := p.readBases()
		if seq == "" {
			return nil, p.errorf(herrors.BadEdit, "delins requires a replacement sequence")
		}
		return variant.Delins{Seq: seq}, nil
	}
	if p.matchLiteral("del") {
		seq := p.readBases()
		return variant.Deletion{Seq: seq}, nil
	}
	if p.matchLiteral("dup") {
		seq := p.readBases()
		return variant.Duplication{Seq: seq}, nil
	}
	if p.matchLiteral("ins") {
		seq := p.readBases()
		if seq == "" {
			return nil, p.errorf(herrors.BadEdit, "ins requires an inserted sequence")
		}
		return variant.Insertion{Seq: seq}, nil
	}
	if p.matchLiteral("inv") {
		return variant.Inversion{}, nil
	}

	bases := p.readBases()
	if bases == "" {
		return nil, p.errorf(herrors.BadEdit, "unrecognized edit")
	}
	switch p.peek() {
	case '>':
		p.pos++
		alt := p.readBases()
		if alt == "" {
			return nil, p.errorf(herrors.BadEdit, "substitution requires an alt base")
		}
		return variant.Substitution{Ref: bases, Alt: alt}, nil
	case '[':
		p.pos++
		digits, ok := p.readDigits()
		if !ok {
			return nil, p.errorf(herrors.BadEdit, "repeat requires a count")
		}
		count, _ := strconv.Atoi(digits)
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return variant.Repeat{Unit: bases, Count: count}, nil
	default:
		return nil, p.errorf(herrors.BadEdit, "unrecognized edit after sequence")
	}
}

// parseAaLocation parses a single position or "start_end" range in
// protein space, each position carrying its reference amino acid.
func (p *parser) parseAaLocation() (variant.AaLocation, error) {
	start, err := p.parseAaPos()
	if err != nil {
		return variant.AaLocation{}, err
	}
	if p.peek() != '_' {
		return variant.AaLocation{Start: start}, nil
	}
	p.pos++
	end, err := p.parseAaPos()
	if err != nil {
		return variant.AaLocation{}, err
	}
	return variant.AaLocation{Start: start, End: &end}, nil
}

func (p *parser) parseAaPos() (variant.AaPos, error) {
	uncertain := false
	if p.peek() == '(' {
		uncertain = true
		p.pos++
	}

	var aaCode byte
	if p.peek() == '?' {
		p.pos++
		aaCode = 0
	} else {
		three, err := p.readThreeLetterAA()
		if err != nil {
			return variant.AaPos{}, err
		}
		aaCode = three
	}

	digits, ok := p.readDigits()
	if !ok {
		return variant.AaPos{}, p.errorf(herrors.BadPosition, "expected protein position")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return variant.AaPos{}, p.errorf(herrors.BadPosition, "malformed protein position")
	}

	if uncertain {
		if err := p.expect(')'); err != nil {
			return variant.AaPos{}, err
		}
	}
	return variant.AaPos{Pos: coords.HgvsProteinPos(n), AA: aaCode, Uncertain: uncertain}, nil
}

// readThreeLetterAA reads exactly one three-letter amino acid code
// (upper-then-lower-lower, e.g. "Gly") and maps it via aa.Single.
func (p *parser) readThreeLetterAA() (byte, error) {
	if p.pos+3 > len(p.s) {
		return 0, p.errorf(herrors.BadPosition, "expected three-letter amino acid code")
	}
	code := p.s[p.pos : p.pos+3]
	if !isUpperLetter(code[0]) || !isLowerLetter(code[1]) || !isLowerLetter(code[2]) {
		return 0, p.errorf(herrors.BadPosition, "malformed amino acid code "+code)
	}
	single := aa.Single(code)
	if single == 0 {
		return 0, p.errorf(herrors.BadPosition, "unrecognized amino acid code "+code)
	}
	p.pos += 3
	return single, nil
}

func (p *parser) parseProteinEdit() (variant.Edit, error) {
	if p.peek() == '=' {
		p.pos++
		return variant.Identity{}, nil
	}
	if p.peek() == '?' {
		p.pos++
		return variant.UncertainEdit{}, nil
	}
	if p.matchLiteral("delins") {
		seq, err := p.readAaSeq()
		if err != nil {
			return nil, err
		}
		return variant.Delins{Seq: seq}, nil
	}
	if p.matchLiteral("del") {
		return variant.Deletion{}, nil
	}
	if p.matchLiteral("dup") {
		return variant.Duplication{}, nil
	}
	if p.matchLiteral("ins") {
		seq, err := p.readAaSeq()
		if err != nil {
			return nil, err
		}
		return variant.Insertion{Seq: seq}, nil
	}

	// Substitution, frameshift, or extension: an optional new-amino-acid
	// three-letter code followed by "fs"/"ext", or nothing but the code
	// itself for a plain missense substitution.
	var newAA byte
	if isUpperLetter(p.peek()) {
		code, err := p.readThreeLetterAA()
		if err != nil {
			return nil, err
		}
		newAA = code
	}

	switch {
	case p.matchLiteral("fs"):
		fs := variant.ProteinFs{NewAA: newAA}
		if p.matchLiteral("Ter") {
			fs.HasStop = true
			if p.peek() == '?' {
				p.pos++
			} else {
				digits, ok := p.readDigits()
				if !ok {
					return nil, p.errorf(herrors.BadEdit, "frameshift Ter requires a distance or '?'")
				}
				n, _ := strconv.Atoi(digits)
				fs.StopDist = n
			}
		}
		return fs, nil
	case p.matchLiteral("ext"):
		ext := variant.ProteinExt{NewAA: newAA}
		if !p.matchLiteral("Ter") {
			return nil, p.errorf(herrors.BadEdit, "extension requires a new Ter position")
		}
		if p.peek() == '?' {
			p.pos++
			ext.Unknown = true
		} else {
			digits, ok := p.readDigits()
			if !ok {
				return nil, p.errorf(herrors.BadEdit, "extension Ter requires a distance or '?'")
			}
			n, _ := strconv.Atoi(digits)
			ext.ExtLength = n
		}
		return ext, nil
	case newAA != 0:
		return variant.Substitution{Alt: string(newAA)}, nil
	default:
		return nil, p.errorf(herrors.BadEdit, "unrecognized protein edit")
	}
}

// readAaSeq reads a run of three-letter amino acid codes, as used by
// p. ins/delins.
func (p *parser) readAaSeq() (string, error) {
	var b strings.Builder
	for isUpperLetter(p.peek()) {
		code, err := p.readThreeLetterAA()
		if err != nil {
			return "", err
		}
		b.WriteByte(code)
	}
	if b.Len() == 0 {
		return "", p.errorf(herrors.BadEdit, "expected at least one amino acid")
	}
	return b.String(), nil
}
