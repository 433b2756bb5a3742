package handler

import (
	"context"
	"time"

	"github.com/omarfessi/fyyur/internal/dto"
	"github.com/omarfessi/fyyur/internal/models"
	"github.com/omarfessi/fyyur/internal/showtime"
)

type mockVenueService struct {
	listFn    func(ctx context.Context, ref time.Time) ([]showtime.LocationGroup, error)
	searchFn  func(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error)
	getPageFn func(ctx context.Context, id uint, ref time.Time) (*dto.VenuePage, error)
	getFn     func(ctx context.Context, id uint) (*models.Venue, error)
	createFn  func(ctx context.Context, venue *models.Venue) error
	updateFn  func(ctx context.Context, id uint, venue *models.Venue) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (m *mockVenueService) ListByLocation(ctx context.Context, ref time.Time) ([]showtime.LocationGroup, error) {
	return m.listFn(ctx, ref)
}
func (m *mockVenueService) Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error) {
	return m.searchFn(ctx, term, ref)
}
func (m *mockVenueService) GetPage(ctx context.Context, id uint, ref time.Time) (*dto.VenuePage, error) {
	return m.getPageFn(ctx, id, ref)
}
func (m *mockVenueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) Create(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueService) Update(ctx context.Context, id uint, venue *models.Venue) error {
	return m.updateFn(ctx, id, venue)
}
func (m *mockVenueService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockArtistService struct {
	listFn    func(ctx context.Context) ([]dto.ArtistSummary, error)
	searchFn  func(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error)
	getPageFn func(ctx context.Context, id uint, ref time.Time) (*dto.ArtistPage, error)
	getFn     func(ctx context.Context, id uint) (*models.Artist, error)
	createFn  func(ctx context.Context, artist *models.Artist) error
	updateFn  func(ctx context.Context, id uint, artist *models.Artist) error
}

func (m *mockArtistService) List(ctx context.Context) ([]dto.ArtistSummary, error) {
	return m.listFn(ctx)
}
func (m *mockArtistService) Search(ctx context.Context, term string, ref time.Time) (*dto.SearchResponse, error) {
	return m.searchFn(ctx, term, ref)
}
func (m *mockArtistService) GetPage(ctx context.Context, id uint, ref time.Time) (*dto.ArtistPage, error) {
	return m.getPageFn(ctx, id, ref)
}
func (m *mockArtistService) Get(ctx context.Context, id uint) (*models.Artist, error) {
	return m.getFn(ctx, id)
}
func (m *mockArtistService) Create(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistService) Update(ctx context.Context, id uint, artist *models.Artist) error {
	return m.updateFn(ctx, id, artist)
}

type mockShowService struct {
	listFn   func(ctx context.Context) ([]dto.ShowListItem, error)
	createFn func(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error)
}

func (m *mockShowService) List(ctx context.Context) ([]dto.ShowListItem, error) {
	return m.listFn(ctx)
}
func (m *mockShowService) Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	return m.createFn(ctx, venueID, artistID, startTime)
}
