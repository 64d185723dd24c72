package plugboard

import (
	"fmt"
	"strings"

	"enigma/internal/alphabet"
	domaintypes "enigma/internal/domain/types"
)

// MaxLeads is the number of leads issued with the machine.
const MaxLeads = 10

// Lead connects two distinct letters.
type Lead [2]byte

// String returns the lead as a two-letter token, e.g. "AB".
func (l Lead) String() string { return string(l[:]) }

// Plugboard is an involutive substitution. The zero value has no leads
// and passes every letter through.
type Plugboard struct {
	leads []Lead
}

// ParseLead reads a two-letter token such as "AB" or "ab".
func ParseLead(token string) (Lead, error) {
	if len(token) != 2 {
		return Lead{}, fmt.Errorf("%w: lead %q must connect exactly two letters", domaintypes.ErrInvalidLeadConfiguration, token)
	}
	a, b := token[0], token[1]
	if !alphabet.IsLetter(a) || !alphabet.IsLetter(b) {
		return Lead{}, fmt.Errorf("%w: lead %q must use letters A-Z", domaintypes.ErrInvalidLeadConfiguration, token)
	}
	a, b = alphabet.Upper(a), alphabet.Upper(b)
	if a == b {
		return Lead{}, fmt.Errorf("%w: lead %q connects a letter to itself", domaintypes.ErrInvalidLeadConfiguration, token)
	}
	return Lead{a, b}, nil
}

// New builds a plugboard from two-letter tokens. Leads must be disjoint
// and there may be at most MaxLeads of them.
func New(tokens []string) (*Plugboard, error) {
	if len(tokens) > MaxLeads {
		return nil, fmt.Errorf("%w: you cannot have more than %d plug leads, got %d", domaintypes.ErrInvalidLeadConfiguration, MaxLeads, len(tokens))
	}
	pb := &Plugboard{leads: make([]Lead, 0, len(tokens))}
	var used [alphabet.Size]bool
	for _, tok := range tokens {
		l, err := ParseLead(tok)
		if err != nil {
			return nil, err
		}
		for _, c := range l {
			if used[c-'A'] {
				return nil, fmt.Errorf("%w: letter %c is already connected", domaintypes.ErrInvalidLeadConfiguration, c)
			}
			used[c-'A'] = true
		}
		pb.leads = append(pb.leads, l)
	}
	return pb, nil
}

// Encode returns the letter c is swapped with, or c itself if no lead
// touches it.
func (p *Plugboard) Encode(c byte) byte {
	if p == nil {
		return c
	}
	for _, l := range p.leads {
		switch c {
		case l[0]:
			return l[1]
		case l[1]:
			return l[0]
		}
	}
	return c
}

// Leads returns a copy of the fitted leads.
func (p *Plugboard) Leads() []Lead {
	if p == nil {
		return nil
	}
	return append([]Lead(nil), p.leads...)
}

// String lists the leads space-separated.
func (p *Plugboard) String() string {
	parts := make([]string, 0, len(p.Leads()))
	for _, l := range p.Leads() {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, " ")
}
