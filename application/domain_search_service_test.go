package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/test/helpers"
)

func TestNormalizeDomainQuery(t *testing.T) {
	tests := map[string]string{
		"MyShop":                       "myshop",
		"  https://www.my-shop.com/x ": "my-shop",
		"http://example.org":           "example",
		"hello world!":                 "helloworld",
		"-dash-":                       "dash",
		"...":                          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, application.NormalizeDomainQuery(in), in)
	}
}

func TestDomainSearch_ResultsPerTLD(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{})

	results, err := svc.Search(context.Background(), "www.Acme.com", nil)
	require.NoError(t, err)
	require.Len(t, results, 8)
	assert.Equal(t, "acme.com", results[0].Domain)
	assert.Equal(t, 12.99, results[0].Price)
	assert.True(t, results[0].Popular)

	for _, r := range results {
		assert.Equal(t, application.IsAvailable(r.Domain), r.Available)
		if r.Available {
			assert.Len(t, r.Features, 4)
		} else {
			assert.Empty(t, r.Features)
		}
	}
}

func TestDomainSearch_FiltersRequestedTLDs(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{})

	results, err := svc.Search(context.Background(), "acme", []string{".io", "dev"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "acme.io", results[0].Domain)
	assert.Equal(t, "acme.dev", results[1].Domain)
}

func TestDomainSearch_Deterministic(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{})

	first, err := svc.Search(context.Background(), "stable", nil)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "stable", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDomainSearch_AvailabilityRoughlySeventyPercent(t *testing.T) {
	available := 0
	const total = 2000
	for i := 0; i < total; i++ {
		if application.IsAvailable(time.Duration(i).String() + "name.com") {
			available++
		}
	}
	ratio := float64(available) / total
	assert.InDelta(t, 0.70, ratio, 0.05)
}

func TestDomainSearch_EmptyQuery(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{})
	_, err := svc.Search(context.Background(), "  https://www. ", nil)
	assert.ErrorIs(t, err, application.ErrEmptyQuery)
}

func TestDomainSearch_CancelledDropsResult(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{Scale: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	results, err := svc.Search(ctx, "acme", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, results)
	assert.Less(t, time.Since(start), application.DomainSearchDelay)
}

func TestDomainSearch_Suggestions(t *testing.T) {
	svc := application.NewDomainSearchService(helpers.LoadCatalog(t), application.Latency{})

	suggestions := svc.Suggestions("shop")
	require.Len(t, suggestions, 15)
	assert.Equal(t, "shopshop", suggestions[0])
	assert.Contains(t, suggestions, "shopstore")
}

func TestLatency_Scale(t *testing.T) {
	start := time.Now()
	require.NoError(t, application.Latency{Scale: 0}.Wait(context.Background(), time.Hour))
	assert.Less(t, time.Since(start), time.Second)

	require.NoError(t, application.Latency{Scale: 0.001}.Wait(context.Background(), 5*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, application.Latency{Scale: 0}.Wait(ctx, time.Second), context.Canceled)
}
