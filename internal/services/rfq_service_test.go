package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
)

func intPtr(i int) *int { return &i }

func TestRFQCreateValidation(t *testing.T) {
	s := NewRFQService(newTestDB(t))
	buyerID := uuid.New()

	_, err := s.Create(buyerID, &dto.CreateRFQRequest{Description: "bulk", Quantity: intPtr(10)})
	assert.Error(t, err, "missing title")

	_, err = s.Create(buyerID, &dto.CreateRFQRequest{Title: "Bolts", Description: "bulk"})
	assert.Error(t, err, "missing quantity")

	_, err = s.Create(buyerID, &dto.CreateRFQRequest{Title: "Bolts", Description: "bulk", Quantity: intPtr(0)})
	assert.Error(t, err, "non-positive quantity")
}

func TestRFQListScopedToBuyer(t *testing.T) {
	s := NewRFQService(newTestDB(t))
	buyer1 := uuid.New()
	buyer2 := uuid.New()

	created, err := s.Create(buyer1, &dto.CreateRFQRequest{
		Title:       "Bulk bolts",
		Description: "M8 hex bolts, zinc plated",
		Quantity:    intPtr(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RFQStatusOpen, created.Status)

	own, err := s.List(buyer1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, created.ID, own[0].ID)

	other, err := s.List(buyer2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRFQGetScopedToBuyer(t *testing.T) {
	s := NewRFQService(newTestDB(t))
	buyer1 := uuid.New()
	buyer2 := uuid.New()

	created, err := s.Create(buyer1, &dto.CreateRFQRequest{
		Title:       "Cement",
		Description: "50kg bags",
		Quantity:    intPtr(200),
	})
	require.NoError(t, err)

	_, err = s.Get(created.ID, buyer1)
	assert.NoError(t, err)

	// Another buyer's RFQ looks exactly like a missing one.
	_, err = s.Get(created.ID, buyer2)
	assert.ErrorIs(t, err, ErrRFQNotFound)
}

func TestRFQUpdateStatus(t *testing.T) {
	s := NewRFQService(newTestDB(t))
	buyerID := uuid.New()

	created, err := s.Create(buyerID, &dto.CreateRFQRequest{
		Title:       "Rebar",
		Description: "12mm deformed bars",
		Quantity:    intPtr(800),
	})
	require.NoError(t, err)

	updated, err := s.UpdateStatus(created.ID, buyerID, models.RFQStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.RFQStatusClosed, updated.Status)

	_, err = s.UpdateStatus(created.ID, buyerID, "finished")
	assert.Error(t, err)

	_, err = s.UpdateStatus(created.ID, uuid.New(), models.RFQStatusCancelled)
	assert.ErrorIs(t, err, ErrRFQNotFound)
}
