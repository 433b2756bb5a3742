package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omarfessi/fyyur/internal/dto"
	"github.com/omarfessi/fyyur/internal/models"
	"github.com/omarfessi/fyyur/internal/repository"
	"github.com/omarfessi/fyyur/internal/showtime"
	"github.com/omarfessi/fyyur/pkg/rabbitmq"
	"gorm.io/gorm"
)

type VenueService interface {
	ListByLocation(ctx context.Context, ref time.Time) ([]showtime.LocationGroup, error)
	Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error)
	GetPage(ctx context.Context, id uint, ref time.Time) (*dto.VenuePage, error)
	Get(ctx context.Context, id uint) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id uint, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	publisher *rabbitmq.Publisher
}

func NewVenueService(venueRepo repository.VenueRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) VenueService {
	return &venueService{venueRepo: venueRepo, showRepo: showRepo, publisher: publisher}
}

// ListByLocation builds the venues index: venues grouped by exact
// (city, state) pair, each with its upcoming-show count at ref. One show
// query per venue; fine at directory scale.
func (s *venueService) ListByLocation(ctx context.Context, ref time.Time) ([]showtime.LocationGroup, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	counts := make(map[uint]int, len(venues))
	for _, v := range venues {
		shows, err := s.showRepo.FindByVenueID(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("shows for venue %d: %w", v.ID, err)
		}
		counts[v.ID] = showtime.UpcomingCount(shows, ref)
	}

	return showtime.GroupByLocation(venues, func(venueID uint) int {
		return counts[venueID]
	}), nil
}

func (s *venueService) Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}

	results := []dto.SearchResult{}
	for _, v := range venues {
		if !showtime.MatchName(v.Name, term) {
			continue
		}
		shows, err := s.showRepo.FindByVenueID(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("shows for venue %d: %w", v.ID, err)
		}
		results = append(results, dto.SearchResult{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: showtime.UpcomingCount(shows, ref),
		})
	}

	return &dto.SearchResponse{Count: len(results), Data: results}, nil
}

func (s *venueService) GetPage(ctx context.Context, id uint, ref time.Time) (*dto.VenuePage, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByVenueIDWithArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows for venue %d: %w", id, err)
	}

	past, upcoming := showtime.Classify(shows, ref)

	page := &dto.VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          venueShowViews(past),
		UpcomingShows:      venueShowViews(upcoming),
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// venueShowViews projects shows onto their artist side. A show whose artist
// did not resolve is dropped rather than rendered with empty fields; the
// inner join in the repository makes this a no-op in practice.
func venueShowViews(shows []models.Show) []dto.VenueShowView {
	views := []dto.VenueShowView{}
	for _, show := range shows {
		if show.Artist == nil {
			continue
		}
		views = append(views, dto.VenueShowView{
			ArtistID:        show.Artist.ID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       showtime.FormatStartTime(show.StartTime),
		})
	}
	return views
}

func (s *venueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Create(ctx context.Context, venue *models.Venue) error {
	if venue.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, "venue.created", venue)
	}
	return nil
}

// Update replaces every field of the stored record with the submitted ones;
// the edit form has no notion of a partial patch.
func (s *venueService) Update(ctx context.Context, id uint, venue *models.Venue) error {
	if venue.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	existing, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}

	venue.ID = existing.ID
	venue.CreatedAt = existing.CreatedAt
	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return fmt.Errorf("update venue %d: %w", id, err)
	}
	return nil
}

// Delete removes the venue together with all of its shows; a venue that
// cannot be deleted leaves its shows untouched too.
func (s *venueService) Delete(ctx context.Context, id uint) error {
	if _, err := s.venueRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}
	if err := s.venueRepo.DeleteWithShows(ctx, id); err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	return nil
}
