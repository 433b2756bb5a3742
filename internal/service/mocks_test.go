package service

import (
	"context"

	"github.com/omarfessi/fyyur/internal/models"
	"gorm.io/gorm"
)

// Hand-rolled repository mocks; unset functions fall back to not-found /
// no-op so each test only wires what it cares about.

type mockVenueRepo struct {
	createFn  func(ctx context.Context, venue *models.Venue) error
	findFn    func(ctx context.Context, id uint) (*models.Venue, error)
	findAllFn func(ctx context.Context) ([]models.Venue, error)
	updateFn  func(ctx context.Context, venue *models.Venue) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if m.createFn != nil {
		return m.createFn(ctx, venue)
	}
	return nil
}

func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVenueRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	return m.FindByID(ctx, id)
}

func (m *mockVenueRepo) FindAll(ctx context.Context) ([]models.Venue, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []models.Venue{}, nil
}

func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, venue)
	}
	return nil
}

func (m *mockVenueRepo) DeleteWithShows(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockArtistRepo struct {
	createFn  func(ctx context.Context, artist *models.Artist) error
	findFn    func(ctx context.Context, id uint) (*models.Artist, error)
	findAllFn func(ctx context.Context) ([]models.Artist, error)
	updateFn  func(ctx context.Context, artist *models.Artist) error
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	if m.createFn != nil {
		return m.createFn(ctx, artist)
	}
	return nil
}

func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockArtistRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	return m.FindByID(ctx, id)
}

func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []models.Artist{}, nil
}

func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, artist)
	}
	return nil
}

type mockShowRepo struct {
	createFn       func(ctx context.Context, show *models.Show) error
	byVenueFn      func(ctx context.Context, venueID uint) ([]models.Show, error)
	byArtistFn     func(ctx context.Context, artistID uint) ([]models.Show, error)
	byVenueRefsFn  func(ctx context.Context, venueID uint) ([]models.Show, error)
	byArtistRefsFn func(ctx context.Context, artistID uint) ([]models.Show, error)
	allRefsFn      func(ctx context.Context) ([]models.Show, error)
}

func (m *mockShowRepo) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	if m.createFn != nil {
		return m.createFn(ctx, show)
	}
	return nil
}

func (m *mockShowRepo) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	if m.byVenueFn != nil {
		return m.byVenueFn(ctx, venueID)
	}
	return []models.Show{}, nil
}

func (m *mockShowRepo) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	if m.byArtistFn != nil {
		return m.byArtistFn(ctx, artistID)
	}
	return []models.Show{}, nil
}

func (m *mockShowRepo) FindByVenueIDWithArtist(ctx context.Context, venueID uint) ([]models.Show, error) {
	if m.byVenueRefsFn != nil {
		return m.byVenueRefsFn(ctx, venueID)
	}
	return []models.Show{}, nil
}

func (m *mockShowRepo) FindByArtistIDWithVenue(ctx context.Context, artistID uint) ([]models.Show, error) {
	if m.byArtistRefsFn != nil {
		return m.byArtistRefsFn(ctx, artistID)
	}
	return []models.Show{}, nil
}

func (m *mockShowRepo) FindAllWithRefs(ctx context.Context) ([]models.Show, error) {
	if m.allRefsFn != nil {
		return m.allRefsFn(ctx)
	}
	return []models.Show{}, nil
}

func (m *mockShowRepo) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
