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

// AccountHandler serves the login/register/manage/update account flows.
type AccountHandler struct {
	view     *View
	accounts ports.AccountService
	secure   bool
}

func NewAccountHandler(view *View, accounts ports.AccountService, secure bool) *AccountHandler {
	return &AccountHandler{view: view, accounts: accounts, secure: secure}
}

// LoginView renders the login form.
func (h *AccountHandler) LoginView(c echo.Context) error {
	return h.view.Render(c, http.StatusOK, "login", "Login", loginForm{})
}

// Login processes the login form. Wrong email and wrong password surface the
// same generic message so accounts cannot be enumerated.
func (h *AccountHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, "/account/login")
	}

	token, account, err := h.accounts.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			h.view.Flash(c, ports.FlashErrors, "Invalid email or password.")
			return c.Redirect(http.StatusSeeOther, "/account/login")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	middleware.SetTokenCookie(c, token, h.secure)
	h.view.Flash(c, ports.FlashMessage, "Welcome back, "+account.FirstName+"!")
	return c.Redirect(http.StatusSeeOther, "/account/manage")
}

// RegisterView renders the registration form.
func (h *AccountHandler) RegisterView(c echo.Context) error {
	return h.view.Render(c, http.StatusOK, "register", "Register", registerForm{})
}

// Register processes the registration form. A taken email redirects back to
// the form with an errors flash and no token issued.
func (h *AccountHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, "/account/register")
	}

	account, token, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			h.view.Flash(c, ports.FlashErrors, "Email address is already in use. Please use a different email.")
			return c.Redirect(http.StatusSeeOther, "/account/register")
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	// Auto-login after registration.
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	middleware.SetTokenCookie(c, token, h.secure)
	h.view.Flash(c, ports.FlashMessage, "Registration successful! Welcome aboard, "+account.FirstName+".")
	return c.Redirect(http.StatusSeeOther, "/account/manage")
}

// ManageView renders the account management page.
func (h *AccountHandler) ManageView(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), identity.AccountID)
	if err != nil {
		return err
	}
	return h.view.Render(c, http.StatusOK, "manage", "Account Management", account)
}

// UpdateView renders the account update form pre-filled with stored data.
// The self-only gate runs before this handler.
func (h *AccountHandler) UpdateView(c echo.Context) error {
	account, err := h.accounts.GetAccount(c.Request().Context(), c.Param("accountID"))
	if err != nil {
		return err
	}
	return h.view.Render(c, http.StatusOK, "update", "Update Account", account)
}

// Update processes the combined profile + optional password form. Whether a
// password change is included is decided here, once, and carried to the
// service as a *SecretChange.
func (h *AccountHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var form updateForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// The update route carries the target id in the body; enforce self-only
	// here exactly like the gate does on the view route.
	if form.AccountID != identity.AccountID {
		h.view.Flash(c, ports.FlashErrors, "You can only update your own account.")
		return c.Redirect(http.StatusSeeOther, "/account/manage")
	}

	if err := c.Validate(&form); err != nil {
		h.view.Flash(c, ports.FlashErrors, err.Error())
		return c.Redirect(http.StatusSeeOther, "/account/update/"+form.AccountID)
	}

	input := ports.UpdateAccountInput{
		AccountID: form.AccountID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	}
	if form.Password != "" {
		input.Secret = &ports.SecretChange{NewPassword: form.Password}
	}

	result, err := h.accounts.UpdateAccount(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			h.view.Flash(c, ports.FlashErrors, "Email address is already in use by another account.")
			return c.Redirect(http.StatusSeeOther, "/account/update/"+form.AccountID)
		}
		return err
	}

	// Claims changed; hand the client the re-issued token.
	middleware.SetTokenCookie(c, result.Token, h.secure)

	messages := []string{"Account information updated successfully."}
	if result.PasswordChanged {
		messages = append(messages, "Password updated successfully.")
	}
	h.view.Flash(c, ports.FlashMessage, messages...)
	return c.Redirect(http.StatusSeeOther, "/account/manage")
}

// Logout discards the session token and returns to the home page.
func (h *AccountHandler) Logout(c echo.Context) error {
	middleware.ClearTokenCookie(c, h.secure)
	h.view.Flash(c, ports.FlashMessage, "You have been logged out successfully.")
	return c.Redirect(http.StatusSeeOther, "/")
}
