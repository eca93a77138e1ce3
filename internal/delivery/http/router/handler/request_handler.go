package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mutualaid/internal/delivery/http/response"
	"mutualaid/internal/domain/entity"
	"mutualaid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RequestHandler holds dependencies for request lifecycle handlers
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRequestBody represents the request body for posting a help request
type CreateRequestBody struct {
	Description  string    `json:"description" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Latitude     float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64   `json:"longitude" validate:"min=-180,max=180"`
	DeadlineDate time.Time `json:"deadline_date" validate:"required"`
}

// UpdateStatusBody represents the request body for a direct status override
type UpdateStatusBody struct {
	Status string `json:"status" validate:"required"`
}

// CreateRequest handles posting a new help request
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Request body failed validation")
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), userID, &usecase.CreateRequestInput{
		Description:  body.Description,
		Category:     body.Category,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		DeadlineDate: body.DeadlineDate,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Request created successfully")
}

// GetRequest handles retrieving a single request
func (h *RequestHandler) GetRequest(c echo.Context) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.GetRequestByID(c.Request().Context(), requestID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// GetActiveRequests handles listing all open requests
func (h *RequestHandler) GetActiveRequests(c echo.Context) error {
	requests, err := h.uc.GetActiveRequests(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// FilterRequests handles the combined category/status/distance listing
func (h *RequestHandler) FilterRequests(c echo.Context) error {
	input := &usecase.FilterRequestsInput{
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			input.Statuses = append(input.Statuses, entity.RequestStatus(strings.TrimSpace(s)))
		}
	}

	lat, err := parseFloatParam(c, "lat")
	if err != nil {
		return err
	}
	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		return err
	}
	maxDistance, err := parseFloatParam(c, "max_distance")
	if err != nil {
		return err
	}
	input.Latitude = lat
	input.Longitude = lon
	input.MaxDistanceMeters = maxDistance

	requests, err := h.uc.FilterRequests(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetMyRequests handles listing the caller's own requests
func (h *RequestHandler) GetMyRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetUserRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetHelpedRequests handles listing every request the caller responded to
func (h *RequestHandler) GetHelpedRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetHelpedRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetActiveHelpRequests handles listing requests the caller is helping with
func (h *RequestHandler) GetActiveHelpRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetActiveHelpRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetCompletedHelpRequests handles listing requests where the caller's help was confirmed
func (h *RequestHandler) GetCompletedHelpRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetCompletedHelpRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetArchivedRequests handles listing the caller's archived requests
func (h *RequestHandler) GetArchivedRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetArchivedRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetCompletedRequests handles listing the caller's completed requests
func (h *RequestHandler) GetCompletedRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.GetCompletedRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// RespondToRequest handles a helper volunteering for a request
func (h *RequestHandler) RespondToRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.uc.RespondToRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Response recorded successfully")
}

// CompleteHelp handles a helper reporting their help as done
func (h *RequestHandler) CompleteHelp(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.CompleteHelp(c.Request().Context(), requestID, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Help completion reported, awaiting confirmation")
}

// ConfirmHelpCompletion handles the owner confirming pending help
func (h *RequestHandler) ConfirmHelpCompletion(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.ConfirmHelpCompletion(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Help completion confirmed")
}

// RejectHelpCompletion handles the owner rejecting pending help
func (h *RequestHandler) RejectHelpCompletion(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.RejectHelpCompletion(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Help completion rejected")
}

// CancelHelp handles a helper withdrawing their engagement
func (h *RequestHandler) CancelHelp(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.CancelHelp(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Help cancelled")
}

// ArchiveRequest handles the owner archiving a request
func (h *RequestHandler) ArchiveRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.ArchiveRequest(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request archived")
}

// UpdateRequestStatus handles the owner's direct status override
func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body UpdateStatusBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Status body failed validation")
	}

	request, err := h.uc.UpdateRequestStatus(c.Request().Context(), requestID, entity.RequestStatus(body.Status), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request status updated")
}

// DeleteRequest handles the owner hard-deleting a request
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRequest(c.Request().Context(), requestID, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Request deleted")
}

// parseFloatParam parses an optional float query parameter.
func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Query parameter "+name+" must be a number")
	}

	return &value, nil
}
