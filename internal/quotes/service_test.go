package quotes

import (
	"context"
	"strings"
	"testing"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/pricing"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
)

type stubCarrier struct {
	outcome  *kurasi.QuoteOutcome
	err      error
	captured kurasi.QuoteParams
}

func (s *stubCarrier) FetchQuote(_ context.Context, params kurasi.QuoteParams) (*kurasi.QuoteOutcome, error) {
	s.captured = params
	return s.outcome, s.err
}

func newTestService(t *testing.T, carrier *stubCarrier) Service {
	t.Helper()
	svc, err := NewService(carrier, pricing.NewCalculator(pricing.DefaultFeeTable()), reference.DefaultTable(), "ID", "IDR", nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func successOutcome(raw *kurasi.RawQuote) *kurasi.QuoteOutcome {
	return &kurasi.QuoteOutcome{Status: enums.QuoteStatusSuccess, HTTPStatus: 200, Raw: raw}
}

// Scenario: 100 g to Albania, all four tiers priced, local fee 5000.
func TestCombinedQuoteMergesAndSorts(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		Express:         &kurasi.ServiceBlock{Amount: amount(90000)},
		EconomyPlus:     &kurasi.ServiceBlock{Amount: amount(60000)},
		EconomyStandard: &kurasi.ServiceBlock{Amount: amount(50000)},
		PacketPremium:   &kurasi.ServiceBlock{Amount: amount(55000)},
		Currency:        "IDR",
	})}
	svc := newTestService(t, carrier)

	resp, err := svc.CombinedQuote(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("combined quote: %v", err)
	}
	if resp.Status != enums.QuoteStatusSuccess {
		t.Fatalf("unexpected status %q", resp.Status)
	}

	want := []struct {
		code  string
		total int64
	}{
		{"ES", 55000},
		{"PP", 60000},
		{"EP", 65000},
		{"EX", 95000},
	}
	if len(resp.Services) != len(want) {
		t.Fatalf("expected %d services, got %d", len(want), len(resp.Services))
	}
	for i, w := range want {
		if resp.Services[i].Code != w.code || resp.Services[i].TotalFee != w.total {
			t.Fatalf("position %d: got {%s %d}, want {%s %d}",
				i, resp.Services[i].Code, resp.Services[i].TotalFee, w.code, w.total)
		}
	}

	if carrier.captured.OriginCountry != "ID" || carrier.captured.Currency != "IDR" {
		t.Fatalf("carrier called with origin %q currency %q", carrier.captured.OriginCountry, carrier.captured.Currency)
	}
	if carrier.captured.DestinationCountry != "Albania" {
		t.Fatalf("carrier called with destination %q", carrier.captured.DestinationCountry)
	}
	if resp.Meta == nil || resp.Meta.Currency != "IDR" {
		t.Fatalf("unexpected meta %+v", resp.Meta)
	}
}

func TestCombinedQuoteExcludesUnpricedTiers(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		EconomyStandard: &kurasi.ServiceBlock{Amount: amount(50000)},
		Express:         &kurasi.ServiceBlock{Amount: nil},
	})}
	svc := newTestService(t, carrier)

	resp, err := svc.CombinedQuote(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("combined quote: %v", err)
	}
	if len(resp.Services) != 1 {
		t.Fatalf("expected only the priced tier, got %+v", resp.Services)
	}
	if resp.Services[0].Code != "ES" || resp.Services[0].TotalFee != 55000 {
		t.Fatalf("unexpected line %+v", resp.Services[0])
	}
}

// Scenario: 50 kg exceeds every tier; the carrier returns all-null blocks.
func TestCombinedQuoteFailsWhenNoTierIsServiceable(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		Express:         &kurasi.ServiceBlock{Amount: nil},
		EconomyPlus:     &kurasi.ServiceBlock{Amount: nil},
		EconomyStandard: &kurasi.ServiceBlock{Amount: nil},
		PacketPremium:   &kurasi.ServiceBlock{Amount: nil},
	})}
	svc := newTestService(t, carrier)

	resp, err := svc.CombinedQuote(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 50000})
	if err != nil {
		t.Fatalf("combined quote: %v", err)
	}
	if resp.Status != enums.QuoteStatusFail {
		t.Fatalf("expected FAIL, got %q", resp.Status)
	}
	if resp.ErrorMessage == "" {
		t.Fatalf("expected a failure message")
	}
	if len(resp.Services) != 0 {
		t.Fatalf("expected no services, got %+v", resp.Services)
	}
}

func TestCombinedQuoteForwardsCarrierFailure(t *testing.T) {
	carrier := &stubCarrier{outcome: &kurasi.QuoteOutcome{
		Status:     enums.QuoteStatusFail,
		Message:    "destination not serviced",
		HTTPStatus: 422,
	}}
	svc := newTestService(t, carrier)

	resp, err := svc.CombinedQuote(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("combined quote: %v", err)
	}
	if resp.Status != enums.QuoteStatusFail {
		t.Fatalf("expected FAIL, got %q", resp.Status)
	}
	if resp.ErrorMessage != "destination not serviced" {
		t.Fatalf("unexpected message %q", resp.ErrorMessage)
	}
	if resp.UpstreamStatus != 422 {
		t.Fatalf("unexpected upstream status %d", resp.UpstreamStatus)
	}
}

// Scenario: a country name with no reference-table match and no explicit code.
func TestCombinedQuoteRejectsUnresolvableCountry(t *testing.T) {
	svc := newTestService(t, &stubCarrier{})

	_, err := svc.CombinedQuote(context.Background(), QuoteRequest{Country: "Nonexistentland", WeightGrams: 100})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if !strings.Contains(typed.Message(), "Nonexistentland") {
		t.Fatalf("error should name the unresolved country, got %q", typed.Message())
	}
}

func TestCombinedQuoteValidation(t *testing.T) {
	svc := newTestService(t, &stubCarrier{})

	cases := []QuoteRequest{
		{Country: "", WeightGrams: 100},
		{Country: "Albania", WeightGrams: 0},
		{Country: "Albania", WeightGrams: -10},
	}
	for _, req := range cases {
		if _, err := svc.CombinedQuote(context.Background(), req); err == nil {
			t.Fatalf("expected validation error for %+v", req)
		}
	}
}

func TestCombinedQuoteAcceptsExplicitCountryCode(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		EconomyStandard: &kurasi.ServiceBlock{Amount: amount(50000)},
	})}
	svc := newTestService(t, carrier)

	// The display name is unknown, but the explicit code skips the lookup.
	resp, err := svc.CombinedQuote(context.Background(), QuoteRequest{
		Country:     "Shqipëria",
		CountryCode: "al",
		WeightGrams: 100,
	})
	if err != nil {
		t.Fatalf("combined quote: %v", err)
	}
	if resp.Status != enums.QuoteStatusSuccess {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if carrier.captured.DestinationCountry != "Shqipëria" {
		t.Fatalf("carrier should receive the caller's display name, got %q", carrier.captured.DestinationCountry)
	}
}

func TestServiceCatalogKeepsAllFourLines(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		EconomyStandard: &kurasi.ServiceBlock{Amount: amount(50000), MaxWeight: label("2 kg")},
		PacketPremium:   &kurasi.ServiceBlock{Amount: amount(55000)},
	})}
	svc := newTestService(t, carrier)

	resp, err := svc.ServiceCatalog(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("service catalog: %v", err)
	}
	if len(resp.Services) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(resp.Services))
	}
	for i, want := range []string{"ES", "PP", "EX", "EP"} {
		if resp.Services[i].Code != want {
			t.Fatalf("line %d = %s, want %s (available lines sorted by total, rest in catalog order)", i, resp.Services[i].Code, want)
		}
	}

	available := 0
	cheapest := 0
	for _, line := range resp.Services {
		if line.Available {
			available++
			if line.TotalFee == nil || line.CarrierFee == nil {
				t.Fatalf("available line missing fees: %+v", line)
			}
			if *line.TotalFee != *line.CarrierFee+line.LocalFee {
				t.Fatalf("total %d != carrier %d + local %d", *line.TotalFee, *line.CarrierFee, line.LocalFee)
			}
		} else {
			if line.TotalFee != nil || line.CarrierFee != nil {
				t.Fatalf("unavailable line carries fees: %+v", line)
			}
			if line.Cheapest {
				t.Fatalf("unavailable line marked cheapest: %+v", line)
			}
		}
		if line.Cheapest {
			cheapest++
			if line.Code != "ES" {
				t.Fatalf("expected ES to be cheapest, got %s", line.Code)
			}
		}
	}
	if available != 2 {
		t.Fatalf("expected 2 available lines, got %d", available)
	}
	if cheapest != 1 {
		t.Fatalf("expected exactly one cheapest line, got %d", cheapest)
	}
}

func TestServiceCatalogSortsAvailableLinesByTotal(t *testing.T) {
	carrier := &stubCarrier{outcome: successOutcome(&kurasi.RawQuote{
		Express:         &kurasi.ServiceBlock{Amount: amount(90000)},
		EconomyPlus:     &kurasi.ServiceBlock{Amount: amount(60000)},
		EconomyStandard: &kurasi.ServiceBlock{Amount: amount(50000)},
	})}
	svc := newTestService(t, carrier)

	resp, err := svc.ServiceCatalog(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("service catalog: %v", err)
	}

	got := make([]string, 0, len(resp.Services))
	for _, line := range resp.Services {
		got = append(got, line.Code)
	}
	want := []string{"ES", "EP", "EX", "PP"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("catalog order %v, want %v", got, want)
		}
	}
	if !resp.Services[0].Cheapest {
		t.Fatalf("first line should be the cheapest, got %+v", resp.Services[0])
	}
}

func TestServiceCatalogForwardsCarrierError(t *testing.T) {
	carrier := &stubCarrier{outcome: &kurasi.QuoteOutcome{
		Status:  enums.QuoteStatusError,
		Message: "carrier unreachable",
	}}
	svc := newTestService(t, carrier)

	resp, err := svc.ServiceCatalog(context.Background(), QuoteRequest{Country: "Albania", WeightGrams: 100})
	if err != nil {
		t.Fatalf("service catalog: %v", err)
	}
	if resp.Status != enums.QuoteStatusError {
		t.Fatalf("expected ERROR, got %q", resp.Status)
	}
	if len(resp.Services) != 0 {
		t.Fatalf("expected no services on error")
	}
}
