// Package showtime holds the time-based grouping rules the directory pages
// are built from: past/upcoming partitioning, per-location venue grouping
// and name matching. Everything here is a pure function over row snapshots;
// the reference instant is always passed in by the caller.
package showtime

import (
	"strings"
	"time"

	"github.com/omarfessi/fyyur/internal/models"
)

const startTimeLayout = "2006-01-02 15:04:05"

// Classify partitions shows into past and upcoming relative to ref. A show
// starting exactly at ref counts as past. Input order is preserved within
// each partition.
func Classify(shows []models.Show, ref time.Time) (past, upcoming []models.Show) {
	past = []models.Show{}
	upcoming = []models.Show{}
	for _, s := range shows {
		if s.StartTime.After(ref) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// UpcomingCount reports how many shows start strictly after ref.
func UpcomingCount(shows []models.Show, ref time.Time) int {
	n := 0
	for _, s := range shows {
		if s.StartTime.After(ref) {
			n++
		}
	}
	return n
}

// MatchName reports whether term is a case-insensitive substring of name.
// An empty term matches every name.
func MatchName(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// FormatStartTime renders a start time the way the listing pages expect it,
// as naive local time with second precision.
func FormatStartTime(t time.Time) string {
	return t.Format(startTimeLayout)
}

// ParseStartTime accepts the two timestamp shapes the show form submits,
// "2006-01-02 15:04:05" and its T-separated variant, interpreted as local
// time. No zone handling is done anywhere in the directory.
func ParseStartTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.ParseInLocation(startTimeLayout, v, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", v, time.Local)
}

type VenueSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NumUpcoming int    `json:"num_upcoming"`
}

type LocationGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// GroupByLocation groups venues by their exact (city, state) pair, in order
// of first appearance. Pair identity is case-sensitive string equality on
// both fields. upcomingFor supplies the upcoming-show count per venue; it is
// called once for every venue. Every input venue lands in exactly one group
// and no empty groups are produced.
func GroupByLocation(venues []models.Venue, upcomingFor func(venueID uint) int) []LocationGroup {
	groups := []LocationGroup{}
	index := map[[2]string]int{}
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, LocationGroup{City: v.City, State: v.State, Venues: []VenueSummary{}})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:          v.ID,
			Name:        v.Name,
			NumUpcoming: upcomingFor(v.ID),
		})
	}
	return groups
}
