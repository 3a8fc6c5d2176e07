package buyers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

type stubRepo struct {
	created   *models.Buyer
	createErr error
	byID      map[uuid.UUID]*models.Buyer
	updates   map[string]any
}

func (s *stubRepo) Create(_ context.Context, buyer *models.Buyer) (*models.Buyer, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	buyer.ID = uuid.New()
	s.created = buyer
	return buyer, nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Buyer, error) {
	if buyer, ok := s.byID[id]; ok {
		return buyer, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListByCustomer(_ context.Context, _ uuid.UUID, _ pagination.Params) ([]models.Buyer, error) {
	return nil, nil
}

func (s *stubRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (*models.Buyer, error) {
	buyer, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.updates = updates
	return buyer, nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(repo, reference.DefaultTable())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validInput() CreateBuyerInput {
	return CreateBuyerInput{
		CustomerID:  uuid.New(),
		SRN:         "SRN-2026-0001",
		Name:        "Arben Hoxha",
		Phone:       "069 123 4567",
		CountryCode: "AL",
		Address:     "Rruga e Durresit 1, Tirana",
	}
}

func TestCreateNormalizesPhone(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	view, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create buyer: %v", err)
	}
	if view.Phone != "+355691234567" {
		t.Fatalf("expected normalized phone, got %q", view.Phone)
	}
	if view.Country != "Albania" {
		t.Fatalf("expected country display name, got %q", view.Country)
	}
	if repo.created.Phone != "+355691234567" {
		t.Fatalf("persisted phone not normalized: %q", repo.created.Phone)
	}
}

func TestCreateRejectsUnknownCountry(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	input := validInput()
	input.CountryCode = "ZZ"

	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRequiresRegionForUS(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	input := validInput()
	input.CountryCode = "US"
	input.Phone = "212 555 0100"

	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing region, got %v", err)
	}
	if !strings.Contains(typed.Message(), "region") {
		t.Fatalf("error should mention the region, got %q", typed.Message())
	}

	region := "new york"
	input.Region = &region
	view, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create with region: %v", err)
	}
	// Matching is case-insensitive and canonicalizes to the reference spelling.
	if view.Region == nil || *view.Region != "New York" {
		t.Fatalf("expected canonical region, got %v", view.Region)
	}
}

func TestCreateRejectsUnknownRegion(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	input := validInput()
	input.CountryCode = "US"
	input.Phone = "212 555 0100"
	region := "Atlantis"
	input.Region = &region

	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateMapsSRNConflict(t *testing.T) {
	repo := &stubRepo{createErr: uniqueViolation{}}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), validInput())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !strings.Contains(typed.Message(), "SRN-2026-0001") {
		t.Fatalf("conflict should name the SRN, got %q", typed.Message())
	}
}

func TestUpdatePhoneRenormalizesAgainstExistingCountry(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Buyer{
		id: {ID: id, SRN: "SRN-1", CountryCode: "ID", Phone: "+628123456789"},
	}}
	svc := newTestService(t, repo)

	phone := "0812 0000 111"
	if _, err := svc.Update(context.Background(), id, UpdateBuyerInput{Phone: &phone}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updates["phone"] != "+628120000111" {
		t.Fatalf("unexpected normalized phone %v", repo.updates["phone"])
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

// uniqueViolation mimics the Postgres duplicate-key error surfaced by GORM.
type uniqueViolation struct{}

func (uniqueViolation) Error() string {
	return `ERROR: duplicate key value violates unique constraint "ux_buyers_srn" (SQLSTATE 23505)`
}
