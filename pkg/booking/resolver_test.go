package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/bookline/pkg/search"
)

func TestResolveQueryTemplate(t *testing.T) {
	var gotQuery string
	var gotLimit int

	resolver := NewResolver(SearcherFunc(func(ctx context.Context, query string, numResults int) ([]search.Result, error) {
		gotQuery = query
		gotLimit = numResults
		return nil, nil
	}))

	_, _ = resolver.Resolve(context.Background(), "Example Bistro")

	assert.Equal(t, "Example Bistro reservation booking", gotQuery)
	assert.Equal(t, 5, gotLimit)
}

func TestResolveFirstMatchingRankWins(t *testing.T) {
	resolver := NewResolver(stubSearch([]search.Result{
		{URL: "https://blog.example.com/best-restaurants"},
		{URL: "https://www.yelp.com/biz/example-bistro"},
		{URL: "https://www.opentable.com/r/example-bistro"},
	}, nil))

	target, err := resolver.Resolve(context.Background(), "Example Bistro")
	require.NoError(t, err)

	// Rank order decides: the Yelp hit outranks the OpenTable hit.
	assert.Equal(t, PlatformYelp, target.Platform)
	assert.Equal(t, "https://www.yelp.com/biz/example-bistro", target.URL)
}

func TestResolvePlatformTags(t *testing.T) {
	tests := []struct {
		url      string
		platform Platform
	}{
		{"https://www.opentable.com/r/example-bistro", PlatformOpenTable},
		{"https://resy.com/cities/ny/example-bistro", PlatformResy},
		{"https://www.yelp.com/biz/example-bistro", PlatformYelp},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			resolver := NewResolver(stubSearch([]search.Result{{URL: tt.url}}, nil))

			target, err := resolver.Resolve(context.Background(), "Example Bistro")
			require.NoError(t, err)
			assert.Equal(t, tt.platform, target.Platform)
		})
	}
}

func TestResolveHostMatchingIsStrict(t *testing.T) {
	// Look-alike hosts must not match a platform.
	resolver := NewResolver(stubSearch([]search.Result{
		{URL: "https://notopentable.com/r/example"},
		{URL: "https://opentable.com.evil.example/r/example"},
	}, nil))

	_, err := resolver.Resolve(context.Background(), "Example Bistro")
	assert.ErrorIs(t, err, ErrNoPlatformFound)
}

func TestResolveNoPlatformFound(t *testing.T) {
	resolver := NewResolver(stubSearch([]search.Result{
		{URL: "https://example.com"},
		{URL: "https://maps.example.com/place/bistro"},
	}, nil))

	_, err := resolver.Resolve(context.Background(), "Example Bistro")
	assert.ErrorIs(t, err, ErrNoPlatformFound)
}

func TestResolveEmptyResults(t *testing.T) {
	resolver := NewResolver(stubSearch(nil, nil))

	_, err := resolver.Resolve(context.Background(), "Example Bistro")
	assert.ErrorIs(t, err, ErrNoPlatformFound)
}

func TestResolveSearchFailure(t *testing.T) {
	resolver := NewResolver(stubSearch(nil, fmt.Errorf("search unavailable")))

	_, err := resolver.Resolve(context.Background(), "Example Bistro")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPlatformFound)
	assert.Contains(t, err.Error(), "search failed")
}
