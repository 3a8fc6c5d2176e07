package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/outbox"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

// Service defines order operations for the controllers.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderView, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filters ListFilters, params pagination.Params) (*OrderList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*OrderView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Submit(ctx context.Context, id uuid.UUID) (*OrderView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*OrderView, error)
	MarkShipped(ctx context.Context, id uuid.UUID) (*OrderView, error)
	Label(ctx context.Context, id uuid.UUID) (*LabelView, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	outbox    outboxPublisher
	buyers    buyerFinder
	carrier   shipmentClient
	countries *reference.Table
}

// ServiceParams bundles the dependencies required to build an order service.
type ServiceParams struct {
	Repo      Repository
	Tx        txRunner
	Outbox    outboxPublisher
	Buyers    buyerFinder
	Carrier   shipmentClient
	Countries *reference.Table
}

// NewService builds the order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	if params.Buyers == nil {
		return nil, fmt.Errorf("buyers repository required")
	}
	if params.Carrier == nil {
		return nil, fmt.Errorf("carrier client required")
	}
	if params.Countries == nil {
		return nil, fmt.Errorf("country table required")
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		outbox:    params.Outbox,
		buyers:    params.Buyers,
		carrier:   params.Carrier,
		countries: params.Countries,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderView, error) {
	code, err := enums.ParseServiceCode(strings.ToUpper(strings.TrimSpace(input.ServiceCode)))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	if input.WeightGrams <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "weight must be a positive number of grams")
	}
	if input.LengthCm < 0 || input.WidthCm < 0 || input.HeightCm < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dimensions cannot be negative")
	}

	buyer, err := s.findBuyer(ctx, input.BuyerID)
	if err != nil {
		return nil, err
	}
	if buyer.CustomerID != input.CustomerID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer does not belong to the customer")
	}

	currency := enums.CurrencyIDR
	if input.Currency != "" {
		parsed, err := enums.ParseCurrency(input.Currency)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		currency = parsed
	}

	order := &models.Order{
		CustomerID:         input.CustomerID,
		BuyerID:            input.BuyerID,
		Status:             enums.OrderStatusDraft,
		ServiceCode:        code,
		WeightGrams:        input.WeightGrams,
		LengthCm:           input.LengthCm,
		WidthCm:            input.WidthCm,
		HeightCm:           input.HeightCm,
		DeclaredValueMinor: input.DeclaredValueMinor,
		Currency:           currency,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := s.repo.WithTx(tx).Create(ctx, order)
		if err != nil {
			return err
		}
		order = created
		return s.emit(ctx, tx, enums.OutboxEventOrderCreated, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	view := FromModel(order)
	return &view, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	view := FromModel(order)
	return &view, nil
}

func (s *service) List(ctx context.Context, filters ListFilters, params pagination.Params) (*OrderList, error) {
	rows, err := s.repo.List(ctx, filters, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &OrderList{Orders: make([]OrderView, 0, len(rows))}
	for i := range rows {
		if i == limit {
			cursor := pagination.EncodeCursor(pagination.Cursor{CreatedAt: rows[i-1].CreatedAt, ID: rows[i-1].ID})
			list.NextCursor = &cursor
			break
		}
		list.Orders = append(list.Orders, FromModel(&rows[i]))
	}
	return list, nil
}

// Update applies draft-only edits. Submitted orders are frozen; staff cancel
// and recreate instead.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*OrderView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enums.OrderStatusDraft {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only draft orders can be edited")
	}

	updates := map[string]any{}
	if input.ServiceCode != nil {
		code, err := enums.ParseServiceCode(strings.ToUpper(strings.TrimSpace(*input.ServiceCode)))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		updates["service_code"] = code
	}
	if input.WeightGrams != nil {
		if *input.WeightGrams <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "weight must be a positive number of grams")
		}
		updates["weight_grams"] = *input.WeightGrams
	}
	if input.LengthCm != nil {
		updates["length_cm"] = *input.LengthCm
	}
	if input.WidthCm != nil {
		updates["width_cm"] = *input.WidthCm
	}
	if input.HeightCm != nil {
		updates["height_cm"] = *input.HeightCm
	}
	if input.DeclaredValueMinor != nil {
		updates["declared_value_minor"] = *input.DeclaredValueMinor
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order")
	}
	view := FromModel(updated)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if order.Status != enums.OrderStatusDraft {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only draft orders can be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete order")
	}
	return nil
}

// Submit registers the shipment with the carrier and moves the order to
// submitted. The carrier call happens before the transaction; a failed write
// leaves an orphaned carrier shipment that staff cancel manually.
func (s *service) Submit(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(enums.OrderStatusSubmitted) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot submit order in status %s", order.Status))
	}

	buyer, err := s.findBuyer(ctx, order.BuyerID)
	if err != nil {
		return nil, err
	}
	record, ok := s.countries.ByCode(buyer.CountryCode)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown country code %q on buyer", buyer.CountryCode))
	}

	postal := ""
	if buyer.PostalCode != nil {
		postal = *buyer.PostalCode
	}
	shipment, err := s.carrier.CreateShipment(ctx, kurasi.ShipmentParams{
		ServiceCode:        order.ServiceCode,
		DestinationCountry: record.DisplayName,
		RecipientName:      buyer.Name,
		RecipientPhone:     buyer.Phone,
		Address:            buyer.Address,
		PostalCode:         postal,
		WeightGrams:        order.WeightGrams,
		LengthCm:           order.LengthCm,
		WidthCm:            order.WidthCm,
		HeightCm:           order.HeightCm,
		DeclaredValueMinor: order.DeclaredValueMinor,
		Currency:           order.Currency.String(),
		Reference:          buyer.SRN,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		updated, err := s.repo.WithTx(tx).Update(ctx, id, map[string]any{
			"status":              enums.OrderStatusSubmitted,
			"carrier_shipment_id": shipment.ID,
			"tracking_number":     shipment.TrackingNumber,
			"submitted_at":        now,
		})
		if err != nil {
			return err
		}
		order = updated
		return s.emit(ctx, tx, enums.OutboxEventOrderSubmitted, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "submit order")
	}

	view := FromModel(order)
	return &view, nil
}

// Cancel moves the order to cancelled, cancelling the carrier shipment first
// when one exists.
func (s *service) Cancel(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(enums.OrderStatusCancelled) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot cancel order in status %s", order.Status))
	}

	if order.CarrierShipmentID != nil {
		if err := s.carrier.CancelShipment(ctx, *order.CarrierShipmentID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		updated, err := s.repo.WithTx(tx).Update(ctx, id, map[string]any{
			"status":       enums.OrderStatusCancelled,
			"cancelled_at": now,
		})
		if err != nil {
			return err
		}
		order = updated
		return s.emit(ctx, tx, enums.OutboxEventOrderCancelled, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel order")
	}

	view := FromModel(order)
	return &view, nil
}

// MarkShipped records that the carrier picked the package up.
func (s *service) MarkShipped(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(enums.OrderStatusShipped) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot mark order shipped in status %s", order.Status))
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		updated, err := s.repo.WithTx(tx).Update(ctx, id, map[string]any{
			"status": enums.OrderStatusShipped,
		})
		if err != nil {
			return err
		}
		order = updated
		return s.emit(ctx, tx, enums.OutboxEventOrderShipped, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark order shipped")
	}

	view := FromModel(order)
	return &view, nil
}

// Label proxies the carrier's printable label location for a submitted order.
func (s *service) Label(ctx context.Context, id uuid.UUID) (*LabelView, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.CarrierShipmentID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order has no carrier shipment")
	}

	url, err := s.carrier.LabelURL(ctx, *order.CarrierShipmentID)
	if err != nil {
		return nil, err
	}
	return &LabelView{LabelURL: url}, nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order")
	}
	return order, nil
}

func (s *service) findBuyer(ctx context.Context, id uuid.UUID) (*models.Buyer, error) {
	buyer, err := s.buyers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find buyer")
	}
	return buyer, nil
}

func (s *service) emit(ctx context.Context, tx *gorm.DB, eventType enums.OutboxEventType, order *models.Order) error {
	return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     eventType,
		AggregateType: enums.OutboxAggregateOrder,
		AggregateID:   order.ID,
		Version:       1,
		Data: OrderEvent{
			OrderID:     order.ID,
			CustomerID:  order.CustomerID,
			BuyerID:     order.BuyerID,
			Status:      order.Status,
			ServiceCode: order.ServiceCode,
			WeightGrams: order.WeightGrams,
		},
	})
}
