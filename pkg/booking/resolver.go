package booking

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// maxSearchResults caps the number of search results the resolver inspects.
const maxSearchResults = 5

// platformDomains is the ordered preference list of known booking-platform
// domains. For each search result the domains are tested in this order.
var platformDomains = []struct {
	domain   string
	platform Platform
}{
	{"opentable.com", PlatformOpenTable},
	{"resy.com", PlatformResy},
	{"yelp.com", PlatformYelp},
}

// Resolver locates a candidate booking URL for a venue via the web-search
// collaborator. It is stateless and performs a single best-effort pass with
// no retries.
type Resolver struct {
	searcher Searcher
}

// NewResolver creates a resolver backed by the given search collaborator.
func NewResolver(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve queries the search collaborator for the venue and returns the
// first result whose host matches a known booking platform, iterating
// results in rank order. ErrNoPlatformFound is returned when no result
// matches; any other error indicates the search call itself failed.
func (r *Resolver) Resolve(ctx context.Context, venueName string) (CandidateTarget, error) {
	query := fmt.Sprintf("%s reservation booking", venueName)

	results, err := r.searcher.Search(ctx, query, maxSearchResults)
	if err != nil {
		return CandidateTarget{}, fmt.Errorf("search failed: %w", err)
	}

	for _, res := range results {
		platform, ok := matchPlatform(res.URL)
		if !ok {
			continue
		}
		return CandidateTarget{URL: res.URL, Platform: platform}, nil
	}

	return CandidateTarget{}, fmt.Errorf("venue %q: %w", venueName, ErrNoPlatformFound)
}

// matchPlatform reports which known platform, if any, the URL's host
// belongs to.
func matchPlatform(rawURL string) (Platform, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown, false
	}

	host := strings.ToLower(u.Hostname())
	for _, pd := range platformDomains {
		if host == pd.domain || strings.HasSuffix(host, "."+pd.domain) {
			return pd.platform, true
		}
	}
	return PlatformUnknown, false
}
