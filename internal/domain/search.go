package domain

type SortKey string

const (
	SortDistance SortKey = "distance"
	SortRating   SortKey = "rating"
	SortName     SortKey = "name"
)

const (
	DefaultRadiusKm = 10.0
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type SearchRequest struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	City     *string  `json:"city,omitempty"`
	Keyword  *string  `json:"keyword,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Programs []string `json:"programs,omitempty"`
	RadiusKm float64  `json:"radius_km"`
	Sort     SortKey  `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// HasPosition reports whether both coordinates are present. A request with
// exactly one coordinate is malformed; Validate rejects it.
func (r SearchRequest) HasPosition() bool { return r.Lat != nil && r.Lng != nil }

// Validate checks the request before any external call is made.
func (r SearchRequest) Validate() error {
	if (r.Lat == nil) != (r.Lng == nil) {
		return &ValidationError{Field: "lat/lng", Reason: "latitude and longitude must be supplied together"}
	}
	if r.Lat != nil && (*r.Lat < -90 || *r.Lat > 90) {
		return &ValidationError{Field: "lat", Reason: "latitude must be within [-90, 90]"}
	}
	if r.Lng != nil && (*r.Lng < -180 || *r.Lng > 180) {
		return &ValidationError{Field: "lng", Reason: "longitude must be within [-180, 180]"}
	}
	if r.RadiusKm < 0 {
		return &ValidationError{Field: "radius", Reason: "radius must be positive"}
	}
	if r.Page < 0 {
		return &ValidationError{Field: "page", Reason: "page must be >= 1"}
	}
	if r.PageSize < 0 || r.PageSize > MaxPageSize {
		return &ValidationError{Field: "page_size", Reason: "page_size must be between 1 and 100"}
	}
	return nil
}

// Normalized returns a copy with zero-valued fields replaced by defaults.
func (r SearchRequest) Normalized() SearchRequest {
	if r.RadiusKm == 0 {
		r.RadiusKm = DefaultRadiusKm
	}
	switch r.Sort {
	case SortDistance, SortRating, SortName:
	default:
		r.Sort = SortDistance
	}
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// CoarseFilters are the predicates the catalog store can push down:
// city and keyword as substring matches, type as exact match, programs as
// set membership. Radius is deliberately absent: the catalog has no notion
// of geo distance and the engine refines by radius after enrichment.
type CoarseFilters struct {
	City     *string
	Keyword  *string
	Type     *string
	Programs []string
}

// Coarse projects the request's push-down predicates.
func (r SearchRequest) Coarse() CoarseFilters {
	return CoarseFilters{
		City:     r.City,
		Keyword:  r.Keyword,
		Type:     r.Type,
		Programs: r.Programs,
	}
}

type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PageResult struct {
	Items       []EnrichedVenue `json:"items"`
	Meta        PaginationMeta  `json:"meta"`
	CurrentCity string          `json:"current_city"`
	Request     SearchRequest   `json:"request"`
}
