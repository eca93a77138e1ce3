package geo

import "mutualaid/internal/domain/entity"

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// RequestFilter describes the predicates applied to a request set.
// Distance filtering is active only when all three of MaxDistanceMeters,
// Latitude and Longitude are present.
type RequestFilter struct {
	Category          string
	Statuses          []entity.RequestStatus
	MaxDistanceMeters *float64
	Latitude          *float64
	Longitude         *float64
}

// HasDistance reports whether the filter carries a complete distance predicate.
func (f RequestFilter) HasDistance() bool {
	return f.MaxDistanceMeters != nil && f.Latitude != nil && f.Longitude != nil
}

// Matches applies the filter predicates to a single request.
func (f RequestFilter) Matches(request *entity.Request) bool {
	if f.Category != "" && f.Category != CategoryAll && request.Category != f.Category {
		return false
	}

	if len(f.Statuses) > 0 {
		found := false
		for _, status := range f.Statuses {
			if request.Status == status {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if f.HasDistance() {
		distance := DistanceMeters(*f.Latitude, *f.Longitude, request.Latitude, request.Longitude)
		if distance > *f.MaxDistanceMeters {
			return false
		}
	}

	return true
}

// FilterRequests applies the filter to an already-fetched request set.
func FilterRequests(requests []*entity.Request, f RequestFilter) []*entity.Request {
	matched := make([]*entity.Request, 0, len(requests))
	for _, request := range requests {
		if f.Matches(request) {
			matched = append(matched, request)
		}
	}

	return matched
}
