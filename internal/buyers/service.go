package buyers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	dbpkg "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

// Service defines buyer operations for the controllers.
type Service interface {
	Create(ctx context.Context, input CreateBuyerInput) (*BuyerView, error)
	Get(ctx context.Context, id uuid.UUID) (*BuyerView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*BuyerList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBuyerInput) (*BuyerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, buyer *models.Buyer) (*models.Buyer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Buyer, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) ([]models.Buyer, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Buyer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      repository
	countries *reference.Table
}

// NewService builds the buyer service over the injected reference table.
func NewService(repo repository, countries *reference.Table) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("buyers repository required")
	}
	if countries == nil {
		return nil, fmt.Errorf("country table required")
	}
	return &service{repo: repo, countries: countries}, nil
}

func (s *service) Create(ctx context.Context, input CreateBuyerInput) (*BuyerView, error) {
	srn := strings.TrimSpace(input.SRN)
	if srn == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "SRN is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer name is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}

	code := strings.ToUpper(strings.TrimSpace(input.CountryCode))
	record, ok := s.countries.ByCode(code)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown country code %q", code))
	}

	region, err := s.validateRegion(code, input.Region)
	if err != nil {
		return nil, err
	}

	phone, err := s.countries.NormalizePhone(input.Phone, code)
	if err != nil {
		return nil, err
	}

	buyer, err := s.repo.Create(ctx, &models.Buyer{
		CustomerID:  input.CustomerID,
		SRN:         srn,
		Name:        strings.TrimSpace(input.Name),
		Phone:       phone,
		CountryCode: code,
		Region:      region,
		Address:     strings.TrimSpace(input.Address),
		PostalCode:  input.PostalCode,
		Tags:        pq.StringArray(input.Tags),
	})
	if err != nil {
		if dbpkg.IsUniqueViolation(err, "ux_buyers_srn") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("SRN %q is already in use", srn))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create buyer")
	}

	view := FromModel(buyer)
	view.Country = record.DisplayName
	return &view, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BuyerView, error) {
	buyer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "buyer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find buyer")
	}
	view := s.withCountry(buyer)
	return &view, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*BuyerList, error) {
	rows, err := s.repo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list buyers")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &BuyerList{Buyers: make([]BuyerView, 0, len(rows))}
	for i := range rows {
		if i == limit {
			cursor := pagination.EncodeCursor(pagination.Cursor{CreatedAt: rows[i-1].CreatedAt, ID: rows[i-1].ID})
			list.NextCursor = &cursor
			break
		}
		list.Buyers = append(list.Buyers, s.withCountry(&rows[i]))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBuyerInput) (*BuyerView, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "buyer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find buyer")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Phone != nil {
		phone, err := s.countries.NormalizePhone(*input.Phone, existing.CountryCode)
		if err != nil {
			return nil, err
		}
		updates["phone"] = phone
	}
	if input.Region != nil {
		region, err := s.validateRegion(existing.CountryCode, input.Region)
		if err != nil {
			return nil, err
		}
		updates["region"] = region
	}
	if input.Address != nil {
		updates["address"] = strings.TrimSpace(*input.Address)
	}
	if input.PostalCode != nil {
		updates["postal_code"] = *input.PostalCode
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(input.Tags)
	}

	buyer, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "buyer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update buyer")
	}
	view := s.withCountry(buyer)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "buyer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete buyer")
	}
	return nil
}

// validateRegion enforces the destination's region requirement: mandatory and
// from the reference list where the country has one, free-form elsewhere.
func (s *service) validateRegion(countryCode string, region *string) (*string, error) {
	required := s.countries.RequiresRegion(countryCode)

	if region == nil || strings.TrimSpace(*region) == "" {
		if required {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("region is required for country %s", countryCode))
		}
		return nil, nil
	}

	trimmed := strings.TrimSpace(*region)
	if required {
		matched := false
		for _, candidate := range s.countries.Regions(countryCode) {
			if strings.EqualFold(candidate, trimmed) {
				trimmed = candidate
				matched = true
				break
			}
		}
		if !matched {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown region %q for country %s", trimmed, countryCode))
		}
	}
	return &trimmed, nil
}

func (s *service) withCountry(buyer *models.Buyer) BuyerView {
	view := FromModel(buyer)
	if record, ok := s.countries.ByCode(buyer.CountryCode); ok {
		view.Country = record.DisplayName
	}
	return view
}
