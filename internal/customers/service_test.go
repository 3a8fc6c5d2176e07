package customers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

type stubRepo struct {
	created *models.Customer
	byID    map[uuid.UUID]*models.Customer
	rows    []models.Customer
	updates map[string]any
}

func (s *stubRepo) Create(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.ID = uuid.New()
	s.created = customer
	return customer, nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if customer, ok := s.byID[id]; ok {
		return customer, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(_ context.Context, _ pagination.Params) ([]models.Customer, error) {
	return s.rows, nil
}

func (s *stubRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (*models.Customer, error) {
	customer, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.updates = updates
	return customer, nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateTrimsName(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	view, err := svc.Create(context.Background(), CreateCustomerInput{Name: "  Toko Sinar Jaya  "})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if view.Name != "Toko Sinar Jaya" {
		t.Fatalf("expected trimmed name, got %q", view.Name)
	}
	if repo.created.Name != "Toko Sinar Jaya" {
		t.Fatalf("persisted name not trimmed: %q", repo.created.Name)
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Create(context.Background(), CreateCustomerInput{Name: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
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

func TestListSetsNextCursorWhenPageIsFull(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo := &stubRepo{rows: []models.Customer{
		{ID: uuid.New(), Name: "A", CreatedAt: base},
		{ID: uuid.New(), Name: "B", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Name: "C", CreatedAt: base.Add(2 * time.Minute)},
	}}
	svc := newTestService(t, repo)

	list, err := svc.List(context.Background(), pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Customers) != 2 {
		t.Fatalf("expected 2 customers on the page, got %d", len(list.Customers))
	}
	if list.NextCursor == nil {
		t.Fatal("expected a next cursor for the full page")
	}

	cursor, err := pagination.ParseCursor(*list.NextCursor)
	if err != nil {
		t.Fatalf("decode cursor: %v", err)
	}
	if cursor.ID != repo.rows[1].ID {
		t.Fatalf("cursor should point at the last returned row, got %s", cursor.ID)
	}
}

func TestListWithoutOverflowHasNoCursor(t *testing.T) {
	repo := &stubRepo{rows: []models.Customer{{ID: uuid.New(), Name: "A"}}}
	svc := newTestService(t, repo)

	list, err := svc.List(context.Background(), pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.NextCursor != nil {
		t.Fatalf("expected no cursor, got %v", *list.NextCursor)
	}
}

func TestUpdateRejectsBlankName(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Customer{id: {ID: id, Name: "Old"}}}
	svc := newTestService(t, repo)

	blank := " "
	_, err := svc.Update(context.Background(), id, UpdateCustomerInput{Name: &blank})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
