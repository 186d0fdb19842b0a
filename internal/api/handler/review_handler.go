package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/inventory-system/internal/api/metrics"
	"github.com/cse-motors/inventory-system/internal/api/middleware"
	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

// ReviewHandler serves review creation and admin-only deletion.
type ReviewHandler struct {
	view    *View
	reviews ports.ReviewService
}

func NewReviewHandler(view *View, reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{view: view, reviews: reviews}
}

// Create processes the review form on a vehicle detail page.
func (h *ReviewHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	vehicleID := c.Param("invID")
	detailURL := "/inv/detail/" + vehicleID

	var form reviewForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, detailURL)
	}

	_, err = h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		VehicleID: vehicleID,
		AccountID: identity.AccountID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateReview) {
			h.view.Flash(c, ports.FlashErrors, "You have already reviewed this vehicle.")
			return c.Redirect(http.StatusSeeOther, detailURL)
		}
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	h.view.Flash(c, ports.FlashMessage, "Thanks for your review!")
	return c.Redirect(http.StatusSeeOther, detailURL)
}

// Delete removes a review. The service enforces that only admins may delete.
func (h *ReviewHandler) Delete(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	if err := h.reviews.Delete(c.Request().Context(), c.Param("reviewID"), identity); err != nil {
		return err
	}

	h.view.Flash(c, ports.FlashMessage, "Review deleted.")

	if back := c.FormValue("return_to"); back != "" {
		return c.Redirect(http.StatusSeeOther, back)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
