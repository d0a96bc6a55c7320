package domain

// Venue type tags form a closed set; anything else maps to the
// comprehensive label for display.
const (
	TypeCertified     = "certified"
	TypeComprehensive = "comprehensive"
	TypeSpecialty     = "specialty"
)

var typeLabels = map[string]string{
	TypeCertified:     "认证场馆",
	TypeComprehensive: "综合训练馆",
	TypeSpecialty:     "专项训练馆",
}

// TypeLabel maps a raw venue-type tag to its display label.
// The mapping is total: unknown tags fall back to the comprehensive label.
func TypeLabel(t string) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[TypeComprehensive]
}

// WeeklySchedule keys are lowercase English day names ("monday".."sunday").
// A value is one or more comma-separated "HH:MM-HH:MM" ranges, or the
// literal "closed". A missing key means the hours are unknown for that day.
type WeeklySchedule map[string]string

type Venue struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	LocalName   *string        `json:"local_name,omitempty"`
	Address     *string        `json:"address,omitempty"`
	Description *string        `json:"description,omitempty"`
	City        *string        `json:"city,omitempty"`
	District    *string        `json:"district,omitempty"`
	Country     *string        `json:"country,omitempty"`
	Lat         *float64       `json:"lat,omitempty"`
	Lng         *float64       `json:"lng,omitempty"`
	Type        string         `json:"type"`
	Certified   bool           `json:"certified"`
	Programs    []string       `json:"programs"`
	Tags        []string       `json:"tags"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Schedule    WeeklySchedule `json:"schedule"`
	Verified    bool           `json:"verified"`
	Featured    bool           `json:"featured"`
	Images      []string       `json:"images"`
	RawJSON     []byte         `json:"-"` // full upstream payload
}

// HasCoords reports whether the venue carries a usable position.
func (v Venue) HasCoords() bool { return v.Lat != nil && v.Lng != nil }

// HasProgram reports membership in the venue's supported-programs set.
func (v Venue) HasProgram(p string) bool {
	for _, have := range v.Programs {
		if have == p {
			return true
		}
	}
	return false
}

// EnrichedVenue is a Venue plus per-request computed fields. It is created
// fresh for every request and never persisted.
type EnrichedVenue struct {
	Venue
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Open       bool     `json:"open"`
	OpenStatus string   `json:"open_status"`
	TodayHours string   `json:"today_hours"`
	TypeLabel  string   `json:"type_label"`
}
