package service

import (
	"context"
	"fmt"
	"strings"

	"nadlan_radar/internal/domain"
	"nadlan_radar/internal/domain/entity"
	"nadlan_radar/internal/domain/service/extract"
	"nadlan_radar/internal/domain/service/valuation"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/pkg/errcodes"
)

type ListFilter struct {
	City         string
	MinDeviation float64
	Limit        int
}

type ListingRepository interface {
	CreateBatch(ctx context.Context, listings []entity.AppraisedListing) error
	List(ctx context.Context, filter ListFilter) ([]entity.AppraisedListing, error)
	Reset(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type BenchmarkRepository interface {
	List(ctx context.Context) ([]entity.CityBenchmark, error)
}

type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// ExtractResult is the outcome of one extraction run.
type ExtractResult struct {
	Listings     []entity.AppraisedListing
	AveragePrice int64
}

// ListingService runs the extract → appraise → persist flow and serves the
// stored records back. One invocation fully parses, writes and returns;
// there is no background work.
type ListingService struct {
	listingRepo   ListingRepository
	benchmarkRepo BenchmarkRepository
	fetcher       TextFetcher
	extractor     *extract.Extractor
	appraiser     *valuation.Appraiser
	catalog       value.Catalog
}

func NewListingService(
	listingRepo ListingRepository,
	benchmarkRepo BenchmarkRepository,
	fetcher TextFetcher,
	extractor *extract.Extractor,
	appraiser *valuation.Appraiser,
	catalog value.Catalog,
) *ListingService {
	return &ListingService{
		listingRepo:   listingRepo,
		benchmarkRepo: benchmarkRepo,
		fetcher:       fetcher,
		extractor:     extractor,
		appraiser:     appraiser,
		catalog:       catalog,
	}
}

// ExtractText extracts listings from a raw text blob, appraises them and
// appends them to the store.
func (s *ListingService) ExtractText(ctx context.Context, text string) (ExtractResult, error) {
	if strings.TrimSpace(text) == "" {
		return ExtractResult{}, domain.NewError(errcodes.EmptyInput, "input text is empty")
	}

	listings := s.extractor.Extract(text)

	logger(ctx).Info("extraction finished",
		"candidates", len(listings),
	)

	if len(listings) == 0 {
		return ExtractResult{}, nil
	}

	appraised := make([]entity.AppraisedListing, 0, len(listings))

	var priceSum int64

	for _, listing := range listings {
		appraised = append(appraised, entity.AppraisedListing{
			Listing:   listing,
			Valuation: s.appraiser.Appraise(listing),
		})
		priceSum += listing.Price
	}

	if err := s.listingRepo.CreateBatch(ctx, appraised); err != nil {
		return ExtractResult{}, fmt.Errorf("save listings: %w", err)
	}

	return ExtractResult{
		Listings:     appraised,
		AveragePrice: priceSum / int64(len(appraised)),
	}, nil
}

// ExtractURL fetches a page best-effort and extracts from its visible text.
// A fetch failure aborts the whole run with zero listings; there is no retry
// and no partial salvage at the acquisition stage.
func (s *ListingService) ExtractURL(ctx context.Context, url string) (ExtractResult, error) {
	text, err := s.fetcher.FetchText(ctx, url)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("fetch page text: %w", err)
	}

	return s.ExtractText(ctx, text)
}

func (s *ListingService) Listings(ctx context.Context, filter ListFilter) ([]entity.AppraisedListing, error) {
	listings, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return listings, nil
}

// Reset truncates the listings table. The benchmark table is reference data
// and is left untouched.
func (s *ListingService) Reset(ctx context.Context) error {
	count, err := s.listingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count listings: %w", err)
	}

	if err := s.listingRepo.Reset(ctx); err != nil {
		return fmt.Errorf("reset listings: %w", err)
	}

	logger(ctx).Info("listings store reset", "removed", count)

	return nil
}

func (s *ListingService) Benchmarks(ctx context.Context) ([]entity.CityBenchmark, error) {
	benchmarks, err := s.benchmarkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list benchmarks: %w", err)
	}

	return benchmarks, nil
}

// Presets are the canned search areas offered for URL acquisition.
func (s *ListingService) Presets() []value.SearchPreset {
	return s.catalog.Presets
}
