package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/inventory-system/internal/api/metrics"
	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

// InventoryHandler serves the public browsing views and the employee-gated
// management views.
type InventoryHandler struct {
	view      *View
	inventory ports.InventoryService
	reviews   ports.ReviewService
}

func NewInventoryHandler(view *View, inventory ports.InventoryService, reviews ports.ReviewService) *InventoryHandler {
	return &InventoryHandler{view: view, inventory: inventory, reviews: reviews}
}

// Home renders the landing page.
func (h *InventoryHandler) Home(c echo.Context) error {
	return h.view.Render(c, http.StatusOK, "home", "Home", nil)
}

// Classification renders the vehicle grid for one classification.
func (h *InventoryHandler) Classification(c echo.Context) error {
	page, err := h.inventory.ClassificationPage(c.Request().Context(), c.Param("classificationID"))
	if err != nil {
		return err
	}
	return h.view.Render(c, http.StatusOK, "classification", page.Classification.Name+" Vehicles", page)
}

// detailPage is the payload behind the vehicle detail template.
type detailPage struct {
	Vehicle *domain.Vehicle
	Reviews []domain.Review
	Summary domain.RatingSummary
}

// Detail renders a single vehicle with its reviews and rating summary.
func (h *InventoryHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	vehicle, err := h.inventory.VehicleDetail(ctx, c.Param("invID"))
	if err != nil {
		return err
	}

	vehicleReviews, err := h.reviews.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return err
	}

	return h.view.Render(c, http.StatusOK, "detail", vehicle.Make+" "+vehicle.Model, detailPage{
		Vehicle: vehicle,
		Reviews: vehicleReviews.Reviews,
		Summary: vehicleReviews.Summary,
	})
}

// ManageView renders the employee inventory management menu.
func (h *InventoryHandler) ManageView(c echo.Context) error {
	return h.view.Render(c, http.StatusOK, "inventory-manage", "Inventory Management", nil)
}

// AddClassificationView renders the add-classification form.
func (h *InventoryHandler) AddClassificationView(c echo.Context) error {
	return h.view.Render(c, http.StatusOK, "add-classification", "Add Classification", addClassificationForm{})
}

// AddClassification processes the add-classification form.
func (h *InventoryHandler) AddClassification(c echo.Context) error {
	var form addClassificationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, "/inv/add-classification")
	}

	classification, err := h.inventory.AddClassification(c.Request().Context(), form.Name)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationExists) {
			h.view.Flash(c, ports.FlashErrors, "That classification already exists.")
			return c.Redirect(http.StatusSeeOther, "/inv/add-classification")
		}
		return err
	}

	h.view.Flash(c, ports.FlashMessage, "Classification \""+classification.Name+"\" added.")
	return c.Redirect(http.StatusSeeOther, "/inv/manage")
}

// addVehiclePage is the payload behind the add-vehicle template.
type addVehiclePage struct {
	Classifications []domain.Classification
	Form            addVehicleForm
}

// AddVehicleView renders the add-vehicle form with the classification picker.
func (h *InventoryHandler) AddVehicleView(c echo.Context) error {
	classifications, err := h.inventory.Nav(c.Request().Context())
	if err != nil {
		return err
	}
	return h.view.Render(c, http.StatusOK, "add-vehicle", "Add Vehicle", addVehiclePage{
		Classifications: classifications,
	})
}

// AddVehicle processes the add-vehicle form.
func (h *InventoryHandler) AddVehicle(c echo.Context) error {
	var form addVehicleForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, "/inv/add-vehicle")
	}

	vehicle, err := h.inventory.AddVehicle(c.Request().Context(), ports.AddVehicleInput{
		ClassificationID: form.ClassificationID,
		Make:             form.Make,
		Model:            form.Model,
		Year:             form.Year,
		Description:      form.Description,
		Image:            form.Image,
		Thumbnail:        form.Thumbnail,
		Price:            form.Price,
		Miles:            form.Miles,
		Color:            form.Color,
	})
	if err != nil {
		if errors.Is(err, domain.ErrClassificationNotFound) {
			h.view.Flash(c, ports.FlashErrors, "Please pick a valid classification.")
			return c.Redirect(http.StatusSeeOther, "/inv/add-vehicle")
		}
		return err
	}

	metrics.VehiclesCreatedTotal.Inc()
	h.view.Flash(c, ports.FlashMessage, vehicle.Make+" "+vehicle.Model+" added to inventory.")
	return c.Redirect(http.StatusSeeOther, "/inv/manage")
}

// TriggerError intentionally fails to exercise the top-level error handler.
func (h *InventoryHandler) TriggerError(c echo.Context) error {
	return errors.New("intentional server error")
}
