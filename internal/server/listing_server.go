package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"nadlan_radar/internal/domain/entity"
	service "nadlan_radar/internal/domain/service/listing"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/pkg/httpx/reply"
	"nadlan_radar/pkg/httpx/req"
	"nadlan_radar/pkg/rest"
)

const defaultListLimit = 200

type listingService interface {
	ExtractText(ctx context.Context, text string) (service.ExtractResult, error)
	ExtractURL(ctx context.Context, url string) (service.ExtractResult, error)
	Listings(ctx context.Context, filter service.ListFilter) ([]entity.AppraisedListing, error)
	Reset(ctx context.Context) error
	Benchmarks(ctx context.Context) ([]entity.CityBenchmark, error)
	Presets() []value.SearchPreset
}

type ListingServer struct {
	listingService listingService
}

func NewListingServer(listingService listingService) ListingServer {
	return ListingServer{
		listingService: listingService,
	}
}

func (s ListingServer) postV1Extract(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ExtractTextRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.listingService.ExtractText(ctx, request.Text)
	if err != nil {
		return fmt.Errorf("listingService.ExtractText: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTExtractResponse(result))

	return nil
}

func (s ListingServer) postV1ExtractURL(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ExtractURLRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.listingService.ExtractURL(ctx, request.URL)
	if err != nil {
		return fmt.Errorf("listingService.ExtractURL: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTExtractResponse(result))

	return nil
}

func (s ListingServer) getV1Listings(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	filter := service.ListFilter{
		City:  r.URL.Query().Get("city"),
		Limit: defaultListLimit,
	}

	if raw := r.URL.Query().Get("minDeviation"); raw != "" {
		minDeviation, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			filter.MinDeviation = minDeviation
		}
	}

	listings, err := s.listingService.Listings(ctx, filter)
	if err != nil {
		return fmt.Errorf("listingService.Listings: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTListingsResponse(listings))

	return nil
}

func (s ListingServer) deleteV1Listings(w http.ResponseWriter, r *http.Request) error {
	if err := s.listingService.Reset(r.Context()); err != nil {
		return fmt.Errorf("listingService.Reset: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s ListingServer) getV1Benchmarks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	benchmarks, err := s.listingService.Benchmarks(ctx)
	if err != nil {
		return fmt.Errorf("listingService.Benchmarks: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBenchmarks(benchmarks))

	return nil
}

func (s ListingServer) getV1Presets(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTPresets(s.listingService.Presets()))

	return nil
}
