// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package usercontent

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

const mathNamespace = "http://www.w3.org/1998/Math/MathML"

var (
	greek = map[string]string{
		"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ϵ", "varepsilon": "ε",
		"zeta": "ζ", "eta": "η", "theta": "θ", "vartheta": "ϑ", "iota": "ι", "kappa": "κ",
		"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π", "varpi": "ϖ", "rho": "ρ",
		"sigma": "σ", "tau": "τ", "upsilon": "υ", "phi": "ϕ", "varphi": "φ", "chi": "χ",
		"psi": "ψ", "omega": "ω", "Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
		"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
	}
	identifiers = map[string]string{
		"infty": "∞", "partial": "∂", "nabla": "∇", "emptyset": "∅", "ell": "ℓ", "hbar": "ℏ",
	}
	operators = map[string]string{
		"cdot": "⋅", "times": "×", "div": "÷", "pm": "±", "mp": "∓", "ast": "∗",
		"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠", "approx": "≈",
		"equiv": "≡", "sim": "∼", "propto": "∝", "to": "→", "rightarrow": "→", "leftarrow": "←",
		"Rightarrow": "⇒", "Leftarrow": "⇐", "leftrightarrow": "↔", "Leftrightarrow": "⇔",
		"in": "∈", "notin": "∉", "subset": "⊂", "subseteq": "⊆", "supset": "⊃", "cup": "∪",
		"cap": "∩", "forall": "∀", "exists": "∃", "neg": "¬", "wedge": "∧", "vee": "∨",
		"ldots": "…", "cdots": "⋯", "circ": "∘", "angle": "∠", "perp": "⊥", "parallel": "∥",
		"lbrace": "{", "rbrace": "}", "langle": "⟨", "rangle": "⟩",
	}
	// big operators take limits under and over themselves
	bigOperators = map[string]string{
		"sum": "∑", "prod": "∏", "int": "∫", "oint": "∮", "bigcup": "⋃", "bigcap": "⋂",
	}
	functions = map[string]bool{
		"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
		"arcsin": true, "arccos": true, "arctan": true, "sinh": true, "cosh": true, "tanh": true,
		"log": true, "ln": true, "exp": true, "lim": true, "max": true, "min": true,
		"det": true, "gcd": true, "sup": true, "inf": true,
	}
	spaces = map[string]bool{
		",": true, ";": true, ":": true, "!": true, " ": true, "quad": true, "qquad": true,
	}
	errUnbalanced = errors.New("unbalanced braces")
	errEnd        = errors.New("unexpected end of input")
)

// MathML converts LaTeX equations to MathML. It understands the subset of
// LaTeX equation editors produce: identifiers, numbers, operators, scripts,
// groups, fractions, roots, greek letters, common symbols and functions.
type MathML struct{}

// Convert returns the MathML of latex, or an empty string when latex is
// blank or uses syntax outside of the supported subset
func (MathML) Convert(latex string) string {
	if strings.TrimSpace(latex) == "" {
		return ""
	}
	p := &latexParser{src: latex}
	items, err := p.expr(0)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`<math xmlns="%s" display="inline"><mrow>%s</mrow></math>`, mathNamespace, strings.Join(items, ""))
}

type latexParser struct {
	src string
	pos int
}

func (p *latexParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *latexParser) next() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *latexParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.peek()) {
		p.next()
	}
}

// expr parses terms until end of input or the closing rune stop
func (p *latexParser) expr(stop rune) ([]string, error) {
	var items []string
	for {
		p.skipSpace()
		switch r := p.peek(); {
		case r == 0:
			if stop != 0 {
				return nil, errUnbalanced
			}
			return items, nil
		case r == stop:
			return items, nil
		case r == '}':
			return nil, errUnbalanced
		}
		item, err := p.term()
		if err != nil {
			return nil, err
		}
		if item != "" {
			items = append(items, item)
		}
	}
}

// term parses an atom with optional sub and superscripts
func (p *latexParser) term() (string, error) {
	base, big, err := p.atom()
	if err != nil {
		return "", err
	}
	var sub, sup string
	for {
		p.skipSpace()
		r := p.peek()
		if r != '^' && r != '_' {
			break
		}
		p.next()
		script, _, err := p.atom()
		if err != nil {
			return "", err
		}
		if r == '^' {
			if sup != "" {
				return "", errors.New("double superscript")
			}
			sup = script
		} else {
			if sub != "" {
				return "", errors.New("double subscript")
			}
			sub = script
		}
	}
	if base == "" && (sub != "" || sup != "") {
		base = "<mrow></mrow>"
	}
	under, over, both := "msub", "msup", "msubsup"
	if big {
		under, over, both = "munder", "mover", "munderover"
	}
	switch {
	case sub != "" && sup != "":
		return fmt.Sprintf("<%s>%s%s%s</%s>", both, base, sub, sup, both), nil
	case sub != "":
		return fmt.Sprintf("<%s>%s%s</%s>", under, base, sub, under), nil
	case sup != "":
		return fmt.Sprintf("<%s>%s%s</%s>", over, base, sup, over), nil
	}
	return base, nil
}

// atom parses a single element; big reports a big operator
func (p *latexParser) atom() (string, bool, error) {
	p.skipSpace()
	r := p.next()
	switch {
	case r == 0:
		return "", false, errEnd
	case r == '{':
		items, err := p.expr('}')
		if err != nil {
			return "", false, err
		}
		p.next()
		return row(items), false, nil
	case r == '}' || r == '^' || r == '_':
		return "", false, fmt.Errorf("unexpected %q", r)
	case r == '\\':
		return p.command()
	case isDigit(r):
		start := p.pos - 1
		for isDigit(p.peek()) {
			p.next()
		}
		if p.peek() == '.' && p.pos+1 < len(p.src) && isDigit(rune(p.src[p.pos+1])) {
			p.next()
			for isDigit(p.peek()) {
				p.next()
			}
		}
		return element("mn", p.src[start:p.pos]), false, nil
	case unicode.IsLetter(r):
		return element("mi", string(r)), false, nil
	}
	return element("mo", string(r)), false, nil
}

func (p *latexParser) command() (string, bool, error) {
	start := p.pos
	for unicode.IsLetter(p.peek()) && p.peek() < utf8.RuneSelf {
		p.next()
	}
	if p.pos == start {
		// single character command
		r := p.next()
		if r == 0 {
			return "", false, errEnd
		}
		name := string(r)
		switch {
		case spaces[name]:
			return "", false, nil
		case name == "{" || name == "}" || name == "|" || name == "%" || name == "$" || name == "&" || name == "#":
			return element("mo", name), false, nil
		}
		return "", false, fmt.Errorf("unsupported command \\%s", name)
	}
	name := p.src[start:p.pos]
	switch {
	case spaces[name]:
		return "", false, nil
	case greek[name] != "":
		return element("mi", greek[name]), false, nil
	case identifiers[name] != "":
		return element("mi", identifiers[name]), false, nil
	case operators[name] != "":
		return element("mo", operators[name]), false, nil
	case bigOperators[name] != "":
		return element("mo", bigOperators[name]), true, nil
	case functions[name]:
		return element("mi", name), name == "lim" || name == "max" || name == "min", nil
	}
	switch name {
	case "frac", "dfrac", "tfrac":
		num, _, err := p.atom()
		if err != nil {
			return "", false, err
		}
		den, _, err := p.atom()
		if err != nil {
			return "", false, err
		}
		return "<mfrac>" + num + den + "</mfrac>", false, nil
	case "sqrt":
		p.skipSpace()
		var index []string
		if p.peek() == '[' {
			p.next()
			var err error
			if index, err = p.expr(']'); err != nil {
				return "", false, err
			}
			p.next()
		}
		radicand, _, err := p.atom()
		if err != nil {
			return "", false, err
		}
		if index != nil {
			return "<mroot>" + radicand + row(index) + "</mroot>", false, nil
		}
		return "<msqrt>" + radicand + "</msqrt>", false, nil
	case "text", "textrm", "mathrm", "mbox", "operatorname":
		text, err := p.rawGroup()
		if err != nil {
			return "", false, err
		}
		if name == "operatorname" || name == "mathrm" {
			return element("mi", text), false, nil
		}
		return element("mtext", text), false, nil
	case "left", "right", "big", "Big", "bigl", "bigr", "Bigl", "Bigr":
		return p.delimiter()
	}
	return "", false, fmt.Errorf("unsupported command \\%s", name)
}

// rawGroup returns the source text of a {...} group
func (p *latexParser) rawGroup() (string, error) {
	p.skipSpace()
	if p.next() != '{' {
		return "", errors.New("expected {")
	}
	start, depth := p.pos, 1
	for {
		switch p.next() {
		case 0:
			return "", errUnbalanced
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return p.src[start : p.pos-1], nil
			}
		}
	}
}

func (p *latexParser) delimiter() (string, bool, error) {
	p.skipSpace()
	r := p.next()
	switch r {
	case 0:
		return "", false, errEnd
	case '.':
		return "", false, nil
	case '\\':
		d, _, err := p.command()
		return d, false, err
	}
	return element("mo", string(r)), false, nil
}

func element(name, text string) string {
	return fmt.Sprintf("<%s>%s</%s>", name, html.EscapeString(text), name)
}

func row(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return "<mrow>" + strings.Join(items, "") + "</mrow>"
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
