package handler

import (
	"log/slog"
	"net/http"

	"mutualaid/internal/delivery/http/response"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddReviewBody represents the request body for reviewing a helper
type AddReviewBody struct {
	HelperID  uuid.UUID `json:"helper_id" validate:"required"`
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Text      string    `json:"text"`
}

// AddReview handles posting a review for a helper
func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body AddReviewBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Review body failed validation")
	}

	review, err := h.uc.AddReview(c.Request().Context(), userID, &usecase.AddReviewInput{
		HelperID:  body.HelperID,
		RequestID: body.RequestID,
		Rating:    body.Rating,
		Text:      body.Text,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added successfully")
}

// GetReviewsForHelper handles listing the reviews a helper received
func (h *ReviewHandler) GetReviewsForHelper(c echo.Context) error {
	helperID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.GetReviewsForHelper(c.Request().Context(), helperID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetReviewsForRequest handles listing the reviews of a request
func (h *ReviewHandler) GetReviewsForRequest(c echo.Context) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.GetReviewsForRequest(c.Request().Context(), requestID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetMyReviews handles listing the reviews the caller wrote
func (h *ReviewHandler) GetMyReviews(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.GetReviewsByAuthor(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
