package service

import (
	"context"
	"testing"
	"time"

	"github.com/omarfessi/fyyur/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListArtists_ReturnsSummaries(t *testing.T) {
	artistRepo := &mockArtistRepo{
		findAllFn: func(ctx context.Context) ([]models.Artist, error) {
			return []models.Artist{
				{ID: 1, Name: "The Strokes", City: "New York"},
				{ID: 2, Name: "Nina Simone"},
			}, nil
		},
	}

	svc := NewArtistService(artistRepo, &mockShowRepo{}, nil)
	artists, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, artists, 2)
	assert.Equal(t, uint(1), artists[0].ID)
	assert.Equal(t, "The Strokes", artists[0].Name)
}

func TestSearchArtists_CountsUpcomingPerResult(t *testing.T) {
	artistRepo := &mockArtistRepo{
		findAllFn: func(ctx context.Context) ([]models.Artist, error) {
			return []models.Artist{
				{ID: 1, Name: "The Strokes"},
				{ID: 2, Name: "Stone Roses"},
				{ID: 3, Name: "Nina Simone"},
			}, nil
		},
	}
	showRepo := &mockShowRepo{
		byArtistFn: func(ctx context.Context, artistID uint) ([]models.Show, error) {
			if artistID != 1 {
				return []models.Show{}, nil
			}
			return []models.Show{
				{ID: 10, ArtistID: 1, VenueID: 1, StartTime: refTime.Add(time.Hour)},
				{ID: 11, ArtistID: 1, VenueID: 1, StartTime: refTime.Add(-time.Hour)},
			}, nil
		},
	}

	svc := NewArtistService(artistRepo, showRepo, nil)
	resp, err := svc.Search(context.Background(), "st", refTime)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Data[0].NumUpcomingShows)
	assert.Equal(t, 0, resp.Data[1].NumUpcomingShows)
}

func TestGetArtistPage_MirrorsVenueSide(t *testing.T) {
	artistRepo := &mockArtistRepo{
		findFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return &models.Artist{ID: 7, Name: "The Strokes", SeekingVenue: true, WebsiteLink: "https://strokes.example"}, nil
		},
	}
	venue := &models.Venue{ID: 1, Name: "Starlight Lounge", ImageLink: "https://img.example/starlight.jpg"}
	showRepo := &mockShowRepo{
		byArtistRefsFn: func(ctx context.Context, artistID uint) ([]models.Show, error) {
			return []models.Show{
				{ID: 10, VenueID: 1, ArtistID: 7, Venue: venue, StartTime: time.Date(2023, 6, 1, 20, 0, 0, 0, time.UTC)},
			}, nil
		},
	}

	svc := NewArtistService(artistRepo, showRepo, nil)
	page, err := svc.GetPage(context.Background(), 7, refTime)

	assert.NoError(t, err)
	assert.Equal(t, "The Strokes", page.Name)
	assert.True(t, page.SeekingVenue)
	assert.Equal(t, 0, page.PastShowsCount)
	assert.Equal(t, 1, page.UpcomingShowsCount)
	assert.Equal(t, uint(1), page.UpcomingShows[0].VenueID)
	assert.Equal(t, "Starlight Lounge", page.UpcomingShows[0].VenueName)
	assert.Equal(t, "https://img.example/starlight.jpg", page.UpcomingShows[0].VenueImageLink)
}

func TestGetArtistPage_NotFound(t *testing.T) {
	svc := NewArtistService(&mockArtistRepo{}, &mockShowRepo{}, nil)

	page, err := svc.GetPage(context.Background(), 999, refTime)

	assert.ErrorIs(t, err, ErrArtistNotFound)
	assert.Nil(t, page)
}

func TestCreateArtist_RequiresName(t *testing.T) {
	created := false
	artistRepo := &mockArtistRepo{
		createFn: func(ctx context.Context, artist *models.Artist) error {
			created = true
			return nil
		},
	}

	svc := NewArtistService(artistRepo, &mockShowRepo{}, nil)
	err := svc.Create(context.Background(), &models.Artist{City: "Austin"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, created)
}

func TestUpdateArtist_NotFound(t *testing.T) {
	svc := NewArtistService(&mockArtistRepo{}, &mockShowRepo{}, nil)

	err := svc.Update(context.Background(), 42, &models.Artist{Name: "The Strokes"})

	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestUpdateArtist_ReplacesFullRecord(t *testing.T) {
	var saved *models.Artist
	artistRepo := &mockArtistRepo{
		findFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return &models.Artist{ID: 7, Name: "Old", Genres: []string{"Rock"}}, nil
		},
		updateFn: func(ctx context.Context, artist *models.Artist) error {
			saved = artist
			return nil
		},
	}

	svc := NewArtistService(artistRepo, &mockShowRepo{}, nil)
	err := svc.Update(context.Background(), 7, &models.Artist{Name: "New", Genres: []string{"Jazz", "Soul"}})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), saved.ID)
	assert.Equal(t, []string{"Jazz", "Soul"}, saved.Genres)
}
