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

type ArtistService interface {
	List(ctx context.Context) ([]dto.ArtistSummary, error)
	Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error)
	GetPage(ctx context.Context, id uint, ref time.Time) (*dto.ArtistPage, error)
	Get(ctx context.Context, id uint) (*models.Artist, error)
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id uint, artist *models.Artist) error
}

type artistService struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	publisher  *rabbitmq.Publisher
}

func NewArtistService(artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) ArtistService {
	return &artistService{artistRepo: artistRepo, showRepo: showRepo, publisher: publisher}
}

func (s *artistService) List(ctx context.Context) ([]dto.ArtistSummary, error) {
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	summaries := make([]dto.ArtistSummary, len(artists))
	for i, a := range artists {
		summaries[i] = dto.ArtistSummary{ID: a.ID, Name: a.Name}
	}
	return summaries, nil
}

func (s *artistService) Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error) {
	artists, err := s.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}

	results := []dto.SearchResult{}
	for _, a := range artists {
		if !showtime.MatchName(a.Name, term) {
			continue
		}
		shows, err := s.showRepo.FindByArtistID(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("shows for artist %d: %w", a.ID, err)
		}
		results = append(results, dto.SearchResult{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: showtime.UpcomingCount(shows, ref),
		})
	}

	return &dto.SearchResponse{Count: len(results), Data: results}, nil
}

func (s *artistService) GetPage(ctx context.Context, id uint, ref time.Time) (*dto.ArtistPage, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByArtistIDWithVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("shows for artist %d: %w", id, err)
	}

	past, upcoming := showtime.Classify(shows, ref)

	page := &dto.ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          artistShowViews(past),
		UpcomingShows:      artistShowViews(upcoming),
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

func artistShowViews(shows []models.Show) []dto.ArtistShowView {
	views := []dto.ArtistShowView{}
	for _, show := range shows {
		if show.Venue == nil {
			continue
		}
		views = append(views, dto.ArtistShowView{
			VenueID:        show.Venue.ID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      showtime.FormatStartTime(show.StartTime),
		})
	}
	return views
}

func (s *artistService) Get(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) Create(ctx context.Context, artist *models.Artist) error {
	if artist.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, "artist.created", artist)
	}
	return nil
}

func (s *artistService) Update(ctx context.Context, id uint, artist *models.Artist) error {
	if artist.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	existing, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}
		return err
	}

	artist.ID = existing.ID
	artist.CreatedAt = existing.CreatedAt
	if err := s.artistRepo.Update(ctx, artist); err != nil {
		return fmt.Errorf("update artist %d: %w", id, err)
	}
	return nil
}
