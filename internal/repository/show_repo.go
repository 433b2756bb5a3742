package repository

import (
	"context"

	"github.com/omarfessi/fyyur/internal/models"
	"gorm.io/gorm"
)

// ShowRepository exposes shows as explicit snapshot queries instead of live
// relations on venue and artist records. Methods taking a tx participate in
// a caller-managed transaction opened via WithTx.
type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error)
	FindByVenueIDWithArtist(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistIDWithVenue(ctx context.Context, artistID uint) ([]models.Show, error)
	FindAllWithRefs(ctx context.Context) ([]models.Show, error)
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return tx.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// FindByVenueIDWithArtist inner-joins the artist so a show whose artist row
// is missing never surfaces with a nil counterpart.
func (r *showRepository) FindByVenueIDWithArtist(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		InnerJoins("Artist").
		Where("shows.venue_id = ?", venueID).
		Order("shows.id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistIDWithVenue(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		InnerJoins("Venue").
		Where("shows.artist_id = ?", artistID).
		Order("shows.id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindAllWithRefs(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		InnerJoins("Venue").
		InnerJoins("Artist").
		Order("shows.id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
