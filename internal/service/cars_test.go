package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarsStore struct {
	cars map[int64]*domain.Car
}

func (f *fakeCarsStore) GetAll(ctx context.Context) ([]domain.Car, error) { return nil, nil }

func (f *fakeCarsStore) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return f.cars[id], nil
}

func (f *fakeCarsStore) Create(ctx context.Context, c *domain.Car) error { return nil }

func (f *fakeCarsStore) Update(ctx context.Context, id int64, patch *domain.CarPatch) (*domain.Car, error) {
	return nil, nil
}

func (f *fakeCarsStore) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.cars[id]; !ok {
		return false, nil
	}
	delete(f.cars, id)
	return true, nil
}

func (f *fakeCarsStore) WithLocation(ctx context.Context) ([]domain.CarWithLocation, error) {
	return nil, nil
}

func (f *fakeCarsStore) BookingStats(ctx context.Context) ([]domain.CarBookingStats, error) {
	return nil, nil
}

func TestCarRemove_DeletesImageFile(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "corolla.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("jpeg"), 0o644))

	fs := &fakeCarsStore{cars: map[int64]*domain.Car{
		5: {ID: 5, CarModel: "Corolla", ImageURL: "/uploads/corolla.jpg"},
	}}
	svc := NewCarService(store.Storage{Cars: fs}, dir)

	deleted, err := svc.Remove(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, deleted)
	_, statErr := os.Stat(imgPath)
	assert.True(t, os.IsNotExist(statErr), "image file should be removed")
}

func TestCarRemove_SurvivesMissingImageFile(t *testing.T) {
	fs := &fakeCarsStore{cars: map[int64]*domain.Car{
		5: {ID: 5, CarModel: "Corolla", ImageURL: "/uploads/already-gone.jpg"},
	}}
	svc := NewCarService(store.Storage{Cars: fs}, t.TempDir())

	deleted, err := svc.Remove(context.Background(), 5)

	require.NoError(t, err, "a missing file never fails the delete")
	assert.True(t, deleted)
}

func TestCarRemove_ReportsMissingRow(t *testing.T) {
	svc := NewCarService(store.Storage{Cars: &fakeCarsStore{cars: map[int64]*domain.Car{}}}, t.TempDir())

	deleted, err := svc.Remove(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, deleted)
}
