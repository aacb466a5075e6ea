package application

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	lev "github.com/agnivade/levenshtein"
	"github.com/zeebo/xxh3"

	"hostpro/domain/catalog"
	"hostpro/logging"
)

// ErrEmptyQuery is returned when a domain search has nothing to look up.
var ErrEmptyQuery = errors.New("domain query is empty")

// availabilityThreshold makes roughly 70% of names available.
const availabilityThreshold = 30

// DomainSearchService answers simulated domain availability lookups.
type DomainSearchService struct {
	catalog *catalog.Catalog
	latency Latency
	logger  *logging.Logger
}

// NewDomainSearchService creates a new domain search service
func NewDomainSearchService(c *catalog.Catalog, latency Latency) *DomainSearchService {
	return &DomainSearchService{
		catalog: c,
		latency: latency,
		logger:  logging.Default().WithComponent("domain_search"),
	}
}

// NormalizeDomainQuery reduces user input to a bare second-level label:
// scheme, www prefix, path and extension are dropped and only letters,
// digits and hyphens are kept.
func NormalizeDomainQuery(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimPrefix(q, "https://")
	q = strings.TrimPrefix(q, "http://")
	q = strings.TrimPrefix(q, "www.")
	if i := strings.IndexAny(q, "/?#"); i >= 0 {
		q = q[:i]
	}
	if i := strings.IndexByte(q, '.'); i >= 0 {
		q = q[:i]
	}

	var b strings.Builder
	for _, r := range q {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

// IsAvailable reports the simulated availability of a fully qualified
// domain. The answer is stable for a given name.
func IsAvailable(domain string) bool {
	return xxh3.HashString(strings.ToLower(domain))%100 >= availabilityThreshold
}

// Search looks up query under each requested extension, or every known
// extension when tlds is empty. It waits the simulated lookup delay and
// returns the context error if the caller gives up first.
func (s *DomainSearchService) Search(ctx context.Context, query string, tlds []string) ([]catalog.DomainResult, error) {
	base := NormalizeDomainQuery(query)
	if base == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	if err := s.latency.Wait(ctx, DomainSearchDelay); err != nil {
		s.logger.Debug("Domain search abandoned", "query", base, "error", err)
		return nil, err
	}

	wanted := make(map[string]bool, len(tlds))
	for _, t := range tlds {
		wanted[strings.TrimPrefix(strings.ToLower(strings.TrimSpace(t)), ".")] = true
	}

	results := make([]catalog.DomainResult, 0, len(s.catalog.TLDs))
	for _, tld := range s.catalog.TLDs {
		if len(wanted) > 0 && !wanted[tld.Name()] {
			continue
		}
		full := base + tld.Extension
		available := IsAvailable(full)
		result := catalog.DomainResult{
			Domain:    full,
			Available: available,
			Price:     tld.Price,
			Popular:   tld.Popular,
		}
		if available {
			result.Features = append([]string(nil), s.catalog.DomainFeatures...)
		}
		results = append(results, result)
	}

	s.logger.Performance("domain_search", time.Since(start), slog.String("query", base), slog.Int("results", len(results)))
	return results, nil
}

// Suggestions proposes names built from the query and the catalog keywords,
// closest keywords to the query first.
func (s *DomainSearchService) Suggestions(query string) []string {
	base := NormalizeDomainQuery(query)

	type candidate struct {
		name     string
		distance int
	}
	candidates := make([]candidate, 0, len(s.catalog.DomainKeywords))
	for _, kw := range s.catalog.DomainKeywords {
		candidates = append(candidates, candidate{
			name:     base + kw,
			distance: lev.ComputeDistance(base, kw),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}
