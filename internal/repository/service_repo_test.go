package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

var serviceCols = []string{
	"id", "title", "description", "icon", "features", "pricing", "published", "sort_order", "updated_at",
}

func TestServiceUpdate_PatchOnlyOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	rows := sqlmock.NewRows(serviceCols).AddRow(
		"s1", "Custom Database Development", "Desc", "database",
		[]byte(`{"Requirements workshops","User training"}`),
		[]byte(`{"starter":"from £1,500"}`),
		true, 5, time.Now(),
	)

	// Only sort_order and updated_at may appear in SET.
	mock.ExpectQuery(`UPDATE services SET updated_at = now\(\), sort_order = \$1 WHERE id = \$2`).
		WithArgs(5, "s1").
		WillReturnRows(rows)

	order := 5
	svc, err := repo.Update(context.Background(), "s1", &models.ServiceUpdate{Order: &order})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if svc.Order != 5 {
		t.Fatalf("order mismatch: got %d want 5", svc.Order)
	}
	if svc.Title != "Custom Database Development" {
		t.Fatalf("title should be untouched, got %q", svc.Title)
	}
	if len(svc.Features) != 2 {
		t.Fatalf("features should be untouched, got %v", svc.Features)
	}
	expectationsMet(t, mock)
}

func TestServiceUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectQuery(`UPDATE services SET`).
		WillReturnRows(sqlmock.NewRows(serviceCols))

	published := false
	_, err := repo.Update(context.Background(), "missing", &models.ServiceUpdate{Published: &published})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestServiceListPublished_SortsByOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	rows := sqlmock.NewRows(serviceCols).
		AddRow("s1", "First", "Desc", "database", []byte(`{"a"}`), nil, true, 1, time.Now()).
		AddRow("s2", "Second", "Desc", "chart", []byte(`{"b"}`), nil, true, 2, time.Now())

	mock.ExpectQuery(`SELECT .+ FROM services WHERE published = TRUE ORDER BY sort_order ASC`).
		WillReturnRows(rows)

	services, err := repo.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].Pricing != nil {
		t.Fatalf("nil pricing should stay nil, got %v", services[0].Pricing)
	}
	expectationsMet(t, mock)
}
