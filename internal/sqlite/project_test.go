package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	custID := seedCustomer(t, db, "Ana")

	now := time.Now()
	proj := &project.Project{
		ID:            "p1",
		CustomerID:    custID,
		Name:          "Wedding cake",
		EventDate:     "2026-02-07",
		DeliveryNotes: "deliver by noon",
		Status:        project.StatusPlanning,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	require.NoError(t, repo.Create(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.EventDate, retrieved.EventDate)
	require.Equal(t, project.StatusPlanning, retrieved.Status)
}

func TestProjectRepository_CreateRejectsUnknownCustomer(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	now := time.Now()
	proj := &project.Project{
		ID:         "p1",
		CustomerID: "missing",
		Name:       "Orphan",
		EventDate:  "2026-02-07",
		Status:     project.StatusPlanning,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	err := repo.Create(context.Background(), proj)
	require.Error(t, err)
}

func TestProjectRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	now := time.Now()
	err := repo.Update(context.Background(), &project.Project{
		ID:         "missing",
		Name:       "x",
		EventDate:  "2026-01-01",
		Status:     project.StatusPlanning,
		ModifiedAt: now,
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListDerivesTotals(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	custID := seedCustomer(t, db, "Ana")
	projID := seedProject(t, db, custID, "wedding", "2026-02-07", project.StatusConfirmed)

	cakeRepo := NewCakeRepository(db)
	now := time.Now()
	require.NoError(t, cakeRepo.Create(ctx, &cake.Cake{
		ID: "k1", ProjectID: projID, Description: "three tier",
		Quantity: 1, UnitPriceCents: 120000, CreatedAt: now, ModifiedAt: now,
	}))
	require.NoError(t, cakeRepo.Create(ctx, &cake.Cake{
		ID: "k2", ProjectID: projID, Description: "cupcakes",
		Quantity: 50, UnitPriceCents: 800, CreatedAt: now, ModifiedAt: now,
	}))

	payRepo := NewPaymentRepository(db)
	require.NoError(t, payRepo.Create(ctx, &payment.Payment{
		ID: "pay1", ProjectID: projID, AmountCents: 50000,
		Method: payment.MethodPix, PaidAt: now, CreatedAt: now,
	}))

	summaries, err := NewProjectRepository(db).List(ctx, project.ListOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	require.Equal(t, "Ana", s.CustomerName)
	require.Equal(t, 2, s.CakeCount)
	require.Equal(t, int64(120000+50*800), s.TotalCents)
	require.Equal(t, int64(50000), s.PaidCents)
}

func TestProjectRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	anaID := seedCustomer(t, db, "Ana")
	biaID := seedCustomer(t, db, "Bia")
	seedProject(t, db, anaID, "a-plan", "2026-02-07", project.StatusPlanning)
	seedProject(t, db, anaID, "a-done", "2026-01-10", project.StatusCompleted)
	seedProject(t, db, biaID, "b-conf", "2026-02-09", project.StatusConfirmed)

	byCustomer, err := repo.List(ctx, project.ListOptions{CustomerID: anaID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)

	open, err := repo.List(ctx, project.ListOptions{
		Statuses: []project.Status{project.StatusPlanning, project.StatusConfirmed},
	})
	require.NoError(t, err)
	require.Len(t, open, 2)

	// Ordered ascending by event date
	require.Equal(t, "a-plan", open[0].Name)
	require.Equal(t, "b-conf", open[1].Name)
}

func TestProjectRepository_DeleteCascadesLineItems(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	custID := seedCustomer(t, db, "Ana")
	projID := seedProject(t, db, custID, "wedding", "2026-02-07", project.StatusPlanning)

	cakeRepo := NewCakeRepository(db)
	now := time.Now()
	require.NoError(t, cakeRepo.Create(ctx, &cake.Cake{
		ID: "k1", ProjectID: projID, Description: "tier",
		Quantity: 1, UnitPriceCents: 100, CreatedAt: now, ModifiedAt: now,
	}))

	require.NoError(t, NewProjectRepository(db).Delete(ctx, projID))

	cakes, err := cakeRepo.ListByProject(ctx, projID)
	require.NoError(t, err)
	require.Empty(t, cakes)
}
