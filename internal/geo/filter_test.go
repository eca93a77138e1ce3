package geo

import (
	"testing"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newFilterRequest(category string, status entity.RequestStatus, lat, lon float64) *entity.Request {
	return &entity.Request{
		ID:        uuid.New(),
		Category:  category,
		Status:    status,
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestRequestFilter_CategorySentinel(t *testing.T) {
	request := newFilterRequest("errands", entity.RequestStatusActive, 0, 0)

	assert.True(t, RequestFilter{Category: ""}.Matches(request))
	assert.True(t, RequestFilter{Category: CategoryAll}.Matches(request))
	assert.True(t, RequestFilter{Category: "errands"}.Matches(request))
	assert.False(t, RequestFilter{Category: "transport"}.Matches(request))
}

func TestRequestFilter_StatusMembership(t *testing.T) {
	request := newFilterRequest("errands", entity.RequestStatusInProgress, 0, 0)

	assert.True(t, RequestFilter{}.Matches(request))
	assert.True(t, RequestFilter{
		Statuses: []entity.RequestStatus{entity.RequestStatusActive, entity.RequestStatusInProgress},
	}.Matches(request))
	assert.False(t, RequestFilter{
		Statuses: []entity.RequestStatus{entity.RequestStatusCompleted},
	}.Matches(request))
}

func TestRequestFilter_DistanceBoundary(t *testing.T) {
	lat, lon := 0.0, 0.0
	// (0,1) is about 111.19 km from the origin.
	nearMax := 120000.0
	farMax := 50000.0
	request := newFilterRequest("errands", entity.RequestStatusActive, 0, 1)

	assert.True(t, RequestFilter{
		Latitude: &lat, Longitude: &lon, MaxDistanceMeters: &nearMax,
	}.Matches(request))
	assert.False(t, RequestFilter{
		Latitude: &lat, Longitude: &lon, MaxDistanceMeters: &farMax,
	}.Matches(request))
}

func TestRequestFilter_DistanceInactiveWhenIncomplete(t *testing.T) {
	lat := 0.0
	max := 1.0
	request := newFilterRequest("errands", entity.RequestStatusActive, 80, 170)

	// Without all three distance inputs, the distance predicate is skipped.
	assert.True(t, RequestFilter{Latitude: &lat, MaxDistanceMeters: &max}.Matches(request))
}

func TestFilterRequests_CombinesPredicates(t *testing.T) {
	lat, lon := 0.0, 0.0
	max := 50000.0

	matching := newFilterRequest("errands", entity.RequestStatusActive, 0.1, 0.1)
	wrongCategory := newFilterRequest("transport", entity.RequestStatusActive, 0.1, 0.1)
	tooFar := newFilterRequest("errands", entity.RequestStatusActive, 0, 1)
	wrongStatus := newFilterRequest("errands", entity.RequestStatusCancelled, 0.1, 0.1)

	result := FilterRequests(
		[]*entity.Request{matching, wrongCategory, tooFar, wrongStatus},
		RequestFilter{
			Category:          "errands",
			Statuses:          []entity.RequestStatus{entity.RequestStatusActive, entity.RequestStatusInProgress},
			Latitude:          &lat,
			Longitude:         &lon,
			MaxDistanceMeters: &max,
		},
	)

	assert.Len(t, result, 1)
	assert.Equal(t, matching.ID, result[0].ID)
}

func TestFilterRequests_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterRequests(nil, RequestFilter{}))
}
