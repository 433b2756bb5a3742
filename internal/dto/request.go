package dto

// VenueRequest carries both the create and the edit submission; the edit
// form always replaces the full record. The seeking flag has no form tag on
// purpose: checkbox submissions are translated to the boolean once at the
// handler boundary (present in the posted form means true, absent means
// false), while JSON bodies carry it directly.
type VenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Address            string   `json:"address" form:"address"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent" form:"-"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue" form:"-"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

// ShowRequest keeps start_time as the submitted string; the handler parses
// it as naive local time.
type ShowRequest struct {
	VenueID   uint   `json:"venue_id" form:"venue_id" validate:"required"`
	ArtistID  uint   `json:"artist_id" form:"artist_id" validate:"required"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}
