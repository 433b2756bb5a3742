package service

import (
	"context"
	"fmt"
	"time"

	"github.com/omarfessi/fyyur/internal/dto"
	"github.com/omarfessi/fyyur/internal/models"
	"github.com/omarfessi/fyyur/internal/repository"
	"github.com/omarfessi/fyyur/internal/showtime"
	"github.com/omarfessi/fyyur/pkg/rabbitmq"
	"gorm.io/gorm"
)

type ShowService interface {
	List(ctx context.Context) ([]dto.ShowListItem, error)
	Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error)
}

type showService struct {
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	publisher  *rabbitmq.Publisher
}

func NewShowService(showRepo repository.ShowRepository, venueRepo repository.VenueRepository, artistRepo repository.ArtistRepository, publisher *rabbitmq.Publisher) ShowService {
	return &showService{
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		publisher:  publisher,
	}
}

func (s *showService) List(ctx context.Context) ([]dto.ShowListItem, error) {
	shows, err := s.showRepo.FindAllWithRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	items := []dto.ShowListItem{}
	for _, show := range shows {
		if show.Venue == nil || show.Artist == nil {
			continue
		}
		items = append(items, dto.ShowListItem{
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       showtime.FormatStartTime(show.StartTime),
		})
	}
	return items, nil
}

// Create inserts a show after verifying both references inside the same
// transaction, so a show never persists pointing at a venue or artist that
// was not there at creation time.
func (s *showService) Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	if venueID == 0 {
		return nil, fmt.Errorf("%w: venue_id is required", ErrValidation)
	}
	if artistID == 0 {
		return nil, fmt.Errorf("%w: artist_id is required", ErrValidation)
	}
	if startTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", ErrValidation)
	}

	var show *models.Show
	err := s.showRepo.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.venueRepo.FindByIDTx(ctx, tx, venueID); err != nil {
			return fmt.Errorf("%w: venue %d does not exist", ErrValidation, venueID)
		}
		if _, err := s.artistRepo.FindByIDTx(ctx, tx, artistID); err != nil {
			return fmt.Errorf("%w: artist %d does not exist", ErrValidation, artistID)
		}

		created := &models.Show{VenueID: venueID, ArtistID: artistID, StartTime: startTime}
		if err := s.showRepo.Create(ctx, tx, created); err != nil {
			return err
		}
		show = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, "show.created", show)
	}
	return show, nil
}
