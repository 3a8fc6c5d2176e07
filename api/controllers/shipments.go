package controllers

import (
	"context"
	"net/http"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/responses"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/validators"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
)

type shipmentLister interface {
	ListShipments(ctx context.Context, params kurasi.ListShipmentsParams) ([]kurasi.Shipment, error)
}

// ShipmentList proxies the carrier's bulk shipment listing. The carrier is
// slow on this endpoint, so the client behind it runs on the long timeout.
func ShipmentList(carrier shipmentLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carrier == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carrier client unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.ParseQueryInt(r, "pageSize", 50, 1, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipments, err := carrier.ListShipments(r.Context(), kurasi.ListShipmentsParams{
			Status:   r.URL.Query().Get("status"),
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipments)
	}
}
