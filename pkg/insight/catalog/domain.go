package catalog

import "strings"

// Domain selects the vocabulary a document is read against.
type Domain string

const (
	General   Domain = "general"
	Ecommerce Domain = "ecommerce"
	Beauty    Domain = "beauty"
	Tech      Domain = "tech"
	Food      Domain = "food"
)

// Domains lists every supported domain.
func Domains() []Domain {
	return []Domain{General, Ecommerce, Beauty, Tech, Food}
}

// LookupDomain resolves s (case-insensitive) to a known domain.
func LookupDomain(s string) (Domain, bool) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case General, Ecommerce, Beauty, Tech, Food:
		return d, true
	}
	return General, false
}

// ParseDomain resolves s to a domain; unknown values fall back to General.
func ParseDomain(s string) Domain {
	d, _ := LookupDomain(s)
	return d
}
