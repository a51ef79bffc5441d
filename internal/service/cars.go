package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rentaride/car-rental-api/internal/logger"
	"github.com/rentaride/car-rental-api/internal/store"
)

// CarService wraps car deletion so the uploaded image file is cleaned up
// alongside the row.
type CarService struct {
	store     store.Storage
	uploadDir string
}

func NewCarService(st store.Storage, uploadDir string) *CarService {
	return &CarService{store: st, uploadDir: uploadDir}
}

// Remove deletes the car row and reports whether a row existed. The image
// file removal is best effort: a missing or locked file is logged, never
// surfaced to the caller.
func (s *CarService) Remove(ctx context.Context, id int64) (bool, error) {
	car, err := s.store.Cars.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	deleted, err := s.store.Cars.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted && car != nil && car.ImageURL != "" {
		path := filepath.Join(s.uploadDir, filepath.Base(car.ImageURL))
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			lg := logger.FromContext(ctx)
			lg.Warn().
				Err(err).
				Int64("car_id", id).
				Str("path", path).
				Msg("failed to remove car image file")
		}
	}
	return deleted, nil
}
