package discovery

import "gymfinder/internal/domain"

// Paginate slices an ordered list into the requested page. page and pageSize
// must already be normalized to positive integers by the caller.
func Paginate(items []domain.EnrichedVenue, page, pageSize int) ([]domain.EnrichedVenue, domain.PaginationMeta) {
	return PaginateTotal(items, len(items), page, pageSize)
}

// PaginateTotal is Paginate with an externally supplied total, for callers
// whose total comes from a count query matched to the same predicates.
// A page past the end yields an empty slice with consistent metadata, not
// an error.
func PaginateTotal(items []domain.EnrichedVenue, total, page, pageSize int) ([]domain.EnrichedVenue, domain.PaginationMeta) {
	skip := (page - 1) * pageSize
	slice := []domain.EnrichedVenue{}
	if skip < len(items) {
		end := skip + pageSize
		if end > len(items) {
			end = len(items)
		}
		slice = items[skip:end]
	}
	return slice, NewPaginationMeta(total, page, pageSize)
}

// NewPaginationMeta computes a mutually consistent metadata tuple:
// totalPages = ceil(total/pageSize), hasNext = page < totalPages,
// hasPrev = page > 1.
func NewPaginationMeta(total, page, pageSize int) domain.PaginationMeta {
	totalPages := (total + pageSize - 1) / pageSize
	return domain.PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
