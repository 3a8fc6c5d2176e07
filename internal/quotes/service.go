package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/types"
)

const noServiceMessage = "no shipping services available"

type carrierClient interface {
	FetchQuote(ctx context.Context, params kurasi.QuoteParams) (*kurasi.QuoteOutcome, error)
}

type feeCalculator interface {
	Fee(weightGrams int, countryCode string) int64
}

// Service orchestrates carrier quotes with the local handling fee.
type Service interface {
	CombinedQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	ServiceCatalog(ctx context.Context, req QuoteRequest) (*CatalogResponse, error)
}

type service struct {
	carrier    carrierClient
	calculator feeCalculator
	countries  *reference.Table
	origin     string
	currency   string
	logg       *logger.Logger
}

// NewService builds the quote service with the required dependencies. Origin
// and currency are fixed per deployment; the carrier settles in them
// regardless of the caller's display preference.
func NewService(carrier carrierClient, calculator feeCalculator, countries *reference.Table, origin, currency string, logg *logger.Logger) (Service, error) {
	if carrier == nil {
		return nil, fmt.Errorf("carrier client required")
	}
	if calculator == nil {
		return nil, fmt.Errorf("fee calculator required")
	}
	if countries == nil {
		return nil, fmt.Errorf("country table required")
	}
	if origin == "" || currency == "" {
		return nil, fmt.Errorf("origin and currency required")
	}
	return &service{
		carrier:    carrier,
		calculator: calculator,
		countries:  countries,
		origin:     origin,
		currency:   currency,
		logg:       logg,
	}, nil
}

// CombinedQuote returns only the serviceable tiers with the local fee folded
// in, sorted ascending by total. A well-formed request for which no tier can
// serve comes back as an explicit FAIL, never an empty SUCCESS.
func (s *service) CombinedQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	countryCode, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	ctx = s.logCountry(ctx, countryCode)
	outcome, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	if outcome.Status != enums.QuoteStatusSuccess {
		return &QuoteResponse{
			Status:         outcome.Status,
			ErrorMessage:   outcome.Message,
			UpstreamStatus: outcome.HTTPStatus,
		}, nil
	}

	localFee := s.calculator.Fee(req.WeightGrams, countryCode)

	lines := Normalize(outcome.Raw)
	merged := make([]ServiceQuoteLine, 0, len(lines))
	for _, line := range lines {
		if !line.Available {
			continue
		}
		line.LocalFeeMinor = localFee
		line.TotalFeeMinor = line.CarrierFeeMinor + localFee
		merged = append(merged, line)
	}

	if len(merged) == 0 {
		if s.logg != nil {
			s.logg.Warn(ctx, "no serviceable carrier tiers for quote")
		}
		return &QuoteResponse{
			Status:       enums.QuoteStatusFail,
			ErrorMessage: noServiceMessage,
		}, nil
	}

	merged = SortByTotal(merged)
	views := make([]ServiceLineView, 0, len(merged))
	for _, line := range merged {
		views = append(views, ServiceLineView{
			Code:      line.Code.String(),
			Title:     line.Title,
			TotalFee:  line.TotalFeeMinor,
			MaxWeight: line.MaxWeightLabel,
		})
	}

	return &QuoteResponse{
		Status:   enums.QuoteStatusSuccess,
		Meta:     buildMeta(outcome.Raw, s.currency),
		Services: views,
	}, nil
}

// ServiceCatalog is the UI-facing variant: all four tiers are returned with
// availability flags, sorted ascending by total with unavailable tiers last,
// and the cheapest available one marked.
func (s *service) ServiceCatalog(ctx context.Context, req QuoteRequest) (*CatalogResponse, error) {
	countryCode, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	ctx = s.logCountry(ctx, countryCode)
	outcome, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	if outcome.Status != enums.QuoteStatusSuccess {
		return &CatalogResponse{
			Status:         outcome.Status,
			ErrorMessage:   outcome.Message,
			UpstreamStatus: outcome.HTTPStatus,
		}, nil
	}

	localFee := s.calculator.Fee(req.WeightGrams, countryCode)

	lines := Normalize(outcome.Raw)
	for i := range lines {
		if lines[i].Available {
			lines[i].LocalFeeMinor = localFee
			lines[i].TotalFeeMinor = lines[i].CarrierFeeMinor + localFee
		}
	}
	lines = SortByTotal(lines)
	cheapest, hasCheapest := Cheapest(lines)

	views := make([]CatalogLineView, 0, len(lines))
	for _, line := range lines {
		view := CatalogLineView{
			Code:      line.Code.String(),
			Title:     line.Title,
			LocalFee:  localFee,
			MaxWeight: line.MaxWeightLabel,
			Available: line.Available,
		}
		if line.Available {
			carrier := line.CarrierFeeMinor
			total := line.TotalFeeMinor
			view.CarrierFee = &carrier
			view.TotalFee = &total
			view.DisplayAmount = types.FormatIDR(total)
			view.Cheapest = hasCheapest && line.Code == cheapest.Code
		}
		views = append(views, view)
	}

	return &CatalogResponse{
		Status:   enums.QuoteStatusSuccess,
		Meta:     buildMeta(outcome.Raw, s.currency),
		Services: views,
	}, nil
}

// resolve validates the request and derives the ISO code from the country
// display name when the caller did not supply one.
func (s *service) resolve(req QuoteRequest) (string, error) {
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "country is required")
	}
	if req.WeightGrams <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "weight must be a positive number of grams")
	}

	if code := strings.TrimSpace(req.CountryCode); code != "" {
		return strings.ToUpper(code), nil
	}

	record, ok := s.countries.ByName(country)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("could not resolve country %q", country))
	}
	return record.ISOCode, nil
}

func (s *service) fetch(ctx context.Context, req QuoteRequest) (*kurasi.QuoteOutcome, error) {
	return s.carrier.FetchQuote(ctx, kurasi.QuoteParams{
		DestinationCountry: strings.TrimSpace(req.Country),
		WeightGrams:        req.WeightGrams,
		LengthCm:           req.LengthCm,
		WidthCm:            req.WidthCm,
		HeightCm:           req.HeightCm,
		OriginCountry:      s.origin,
		Currency:           s.currency,
	})
}

func (s *service) logCountry(ctx context.Context, code string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithCountry(ctx, code)
}

func buildMeta(raw *kurasi.RawQuote, fallbackCurrency string) *QuoteMeta {
	meta := &QuoteMeta{Currency: fallbackCurrency}
	if raw == nil {
		return meta
	}
	if raw.Currency != "" {
		meta.Currency = raw.Currency
	}
	meta.ChargeableWeight = raw.ChargeableWeight
	meta.VolumetricWeight = raw.VolumetricWeight
	return meta
}
