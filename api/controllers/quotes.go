package controllers

import (
	"net/http"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/responses"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/validators"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/quotes"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/types"
)

// shippingQuoteRequest is the legacy wire shape. Weight and dimensions keep
// their historical "actual" names.
type shippingQuoteRequest struct {
	Country      string `json:"country" validate:"required"`
	CountryCode  string `json:"countryCode,omitempty"`
	ActualWeight int    `json:"actualWeight" validate:"required,gt=0"`
	ActualLength int    `json:"actualLength,omitempty" validate:"omitempty,gte=0"`
	ActualWidth  int    `json:"actualWidth,omitempty" validate:"omitempty,gte=0"`
	ActualHeight int    `json:"actualHeight,omitempty" validate:"omitempty,gte=0"`
}

func (r shippingQuoteRequest) toInput() quotes.QuoteRequest {
	return quotes.QuoteRequest{
		Country:     r.Country,
		CountryCode: r.CountryCode,
		WeightGrams: r.ActualWeight,
		LengthCm:    r.ActualLength,
		WidthCm:     r.ActualWidth,
		HeightCm:    r.ActualHeight,
	}
}

// ShippingQuote serves the combined quote. It keeps the legacy flat
// {status, ...} envelope because the front-end branches on the status field
// rather than HTTP codes. Validation problems still get a 400 so broken
// requests are visible in access logs; carrier failures reuse the upstream
// status when one was observed.
func ShippingQuote(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var body shippingQuoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			writeQuoteValidationError(w, err)
			return
		}

		result, err := svc.CombinedQuote(r.Context(), body.toInput())
		if err != nil {
			typed := pkgerrors.As(err)
			if typed != nil && typed.Code() == pkgerrors.CodeValidation {
				writeQuoteValidationError(w, typed)
				return
			}
			if logg != nil {
				logg.Error(r.Context(), "quote.failed", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, quotes.QuoteResponse{
				Status:       enums.QuoteStatusError,
				ErrorMessage: "quote unavailable",
			})
			return
		}

		responses.WriteJSON(w, quoteHTTPStatus(result.Status, result.UpstreamStatus), result)
	}
}

// ShippingQuoteServices serves the UI-facing catalog with all four lines.
func ShippingQuoteServices(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var body shippingQuoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			writeQuoteValidationError(w, err)
			return
		}

		result, err := svc.ServiceCatalog(r.Context(), body.toInput())
		if err != nil {
			typed := pkgerrors.As(err)
			if typed != nil && typed.Code() == pkgerrors.CodeValidation {
				writeQuoteValidationError(w, typed)
				return
			}
			if logg != nil {
				logg.Error(r.Context(), "quote.catalog.failed", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, quotes.CatalogResponse{
				Status:       enums.QuoteStatusError,
				ErrorMessage: "quote unavailable",
			})
			return
		}

		responses.WriteJSON(w, quoteHTTPStatus(result.Status, result.UpstreamStatus), result)
	}
}

func writeQuoteValidationError(w http.ResponseWriter, err error) {
	message := "invalid request"
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		message = typed.Message()
	}
	responses.WriteJSON(w, http.StatusBadRequest, types.LegacyFailure{
		Status:       enums.QuoteStatusFail.String(),
		ErrorMessage: message,
	})
}

// quoteHTTPStatus maps a quote outcome onto an HTTP status. SUCCESS and the
// no-service FAIL stay 200; a carrier failure reuses the upstream status. An
// ERROR with no upstream status means the carrier was never reached, which
// is a 500 on our side.
func quoteHTTPStatus(status enums.QuoteStatus, upstream int) int {
	if status == enums.QuoteStatusSuccess {
		return http.StatusOK
	}
	if upstream >= 400 {
		return upstream
	}
	if status == enums.QuoteStatusError {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
