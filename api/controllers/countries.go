package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/responses"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
)

type countryView struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	CallingCode    string `json:"callingCode"`
	Zone           int    `json:"zone"`
	IOSSCode       string `json:"iossCode,omitempty"`
	RequiresRegion bool   `json:"requiresRegion"`
}

type regionListView struct {
	Country string   `json:"country"`
	Regions []string `json:"regions"`
}

// CountryList returns the full destination reference table.
func CountryList(table *reference.Table, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if table == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "country table unavailable"))
			return
		}

		records := table.All()
		views := make([]countryView, 0, len(records))
		for _, record := range records {
			views = append(views, countryView{
				Code:           record.ISOCode,
				Name:           record.DisplayName,
				CallingCode:    record.CallingCode,
				Zone:           record.Zone,
				IOSSCode:       record.IOSSCode,
				RequiresRegion: table.RequiresRegion(record.ISOCode),
			})
		}
		responses.WriteSuccess(w, views)
	}
}

// CountryRegions returns the region list for a single country.
func CountryRegions(table *reference.Table, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if table == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "country table unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		record, ok := table.ByCode(code)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "unknown country code"))
			return
		}

		responses.WriteSuccess(w, regionListView{
			Country: record.DisplayName,
			Regions: table.Regions(record.ISOCode),
		})
	}
}
