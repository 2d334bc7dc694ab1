package enrich

import (
	"strings"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ingest"
)

// InferDomain picks the first domain in table with a keyword occurring as a
// whole word (or phrase) in query. No match, or an empty query, gives General.
func InferDomain(query string, table []catalog.DomainKeywords) catalog.Domain {
	words := ingest.Words(query)
	if len(words) == 0 {
		return catalog.General
	}
	padded := " " + strings.Join(words, " ") + " "

	for _, dk := range table {
		for _, kw := range dk.Keywords {
			kwWords := ingest.Words(kw)
			if len(kwWords) == 0 {
				continue
			}
			if strings.Contains(padded, " "+strings.Join(kwWords, " ")+" ") {
				return dk.Domain
			}
		}
	}
	return catalog.General
}
