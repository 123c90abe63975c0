package cake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/repository/mocks"
)

func TestCakeService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := cake.NewService(&mocks.CakeRepository{}, &mocks.ProjectRepository{}, nil)

	_, err := svc.Create(ctx, cake.CreateRequest{ProjectID: "p-1", Description: "", Quantity: 1})
	require.ErrorIs(t, err, cake.ErrInvalidInput)

	_, err = svc.Create(ctx, cake.CreateRequest{ProjectID: "p-1", Description: "Red velvet", Quantity: 0})
	require.ErrorIs(t, err, cake.ErrInvalidInput)

	_, err = svc.Create(ctx, cake.CreateRequest{ProjectID: "p-1", Description: "Red velvet", Quantity: 1, UnitPriceCents: -100})
	require.ErrorIs(t, err, cake.ErrInvalidInput)
}

func TestCakeService_CreateUnknownProject(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectRepository{}
	projects.On("Exists", ctx, "ghost").Return(false, nil)

	svc := cake.NewService(&mocks.CakeRepository{}, projects, nil)
	_, err := svc.Create(ctx, cake.CreateRequest{ProjectID: "ghost", Description: "Red velvet", Quantity: 1})
	require.ErrorIs(t, err, cake.ErrProjectNotFound)
}

func TestCakeService_Create(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectRepository{}
	projects.On("Exists", ctx, "p-1").Return(true, nil)
	repo := &mocks.CakeRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := cake.NewService(repo, projects, nil)
	ck, err := svc.Create(ctx, cake.CreateRequest{
		ProjectID:      "p-1",
		Description:    "Red velvet, two tiers",
		Flavor:         "red velvet",
		Size:           "20cm",
		Quantity:       2,
		UnitPriceCents: 18000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, ck.ID)
	require.Equal(t, int64(36000), ck.Total())
}

func TestCakeService_UpdateRejectsZeroQuantity(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.CakeRepository{}
	repo.On("Get", ctx, "ck-1").Return(&cake.Cake{ID: "ck-1", Description: "Red velvet", Quantity: 2}, nil)

	svc := cake.NewService(repo, &mocks.ProjectRepository{}, nil)
	zero := 0
	_, err := svc.Update(ctx, cake.UpdateRequest{ID: "ck-1", Quantity: &zero})
	require.ErrorIs(t, err, cake.ErrInvalidInput)
}
