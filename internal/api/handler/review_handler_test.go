package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

func TestReviewHandler_Create_Success(t *testing.T) {
	e := newEcho(t)
	flash := newStubFlashStore()
	reviews := &stubReviewService{
		createFn: func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			if input.VehicleID != "v1" || input.AccountID != "a1" || input.Rating != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Review{ID: "r1"}, nil
		},
	}
	h := NewReviewHandler(newTestView(flash), reviews)

	form := url.Values{"rating": {"5"}, "comment": {"Smooth and quiet."}}
	c, rec := newFormContext(t, e, "/inv/detail/v1/reviews", form)
	c.SetParamNames("invID")
	c.SetParamValues("v1")
	c.Set("identity", domain.Identity{LoggedIn: true, AccountID: "a1", FirstName: "Tony", Role: domain.RoleClient})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/inv/detail/v1" {
		t.Fatalf("expected redirect back to detail, got %q", loc)
	}
	if len(flash.pushed[ports.FlashMessage]) != 1 {
		t.Fatalf("expected a thank-you flash, got %v", flash.pushed)
	}
}

func TestReviewHandler_Create_Duplicate(t *testing.T) {
	e := newEcho(t)
	flash := newStubFlashStore()
	reviews := &stubReviewService{
		createFn: func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			return nil, domain.ErrDuplicateReview
		},
	}
	h := NewReviewHandler(newTestView(flash), reviews)

	form := url.Values{"rating": {"4"}, "comment": {"Still great."}}
	c, rec := newFormContext(t, e, "/inv/detail/v1/reviews", form)
	c.SetParamNames("invID")
	c.SetParamValues("v1")
	c.Set("identity", domain.Identity{LoggedIn: true, AccountID: "a1", Role: domain.RoleClient})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/inv/detail/v1" {
		t.Fatalf("expected redirect back to detail, got %q", loc)
	}
	msgs := flash.pushed[ports.FlashErrors]
	if len(msgs) != 1 || msgs[0] != "You have already reviewed this vehicle." {
		t.Fatalf("expected duplicate flash, got %v", msgs)
	}
}

func TestReviewHandler_Create_NotLoggedIn(t *testing.T) {
	e := newEcho(t)
	reviews := &stubReviewService{
		createFn: func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatal("service must not be called without an identity")
			return nil, nil
		},
	}
	h := NewReviewHandler(newTestView(newStubFlashStore()), reviews)

	form := url.Values{"rating": {"5"}, "comment": {"Nice."}}
	c, _ := newFormContext(t, e, "/inv/detail/v1/reviews", form)
	c.SetParamNames("invID")
	c.SetParamValues("v1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestReviewHandler_Delete_AdminOnly(t *testing.T) {
	e := newEcho(t)
	flash := newStubFlashStore()
	reviews := &stubReviewService{
		deleteFn: func(ctx context.Context, reviewID string, actor domain.Identity) error {
			if !actor.IsAdmin() {
				return domain.ErrForbidden
			}
			if reviewID != "r1" {
				t.Fatalf("unexpected review id: %s", reviewID)
			}
			return nil
		},
	}
	h := NewReviewHandler(newTestView(flash), reviews)

	// Employee actor is refused by the service.
	c, _ := newFormContext(t, e, "/reviews/r1/delete", url.Values{})
	c.SetParamNames("reviewID")
	c.SetParamValues("r1")
	c.Set("identity", domain.Identity{LoggedIn: true, AccountID: "a2", Role: domain.RoleEmployee})

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Admin actor succeeds and lands back where the form said.
	c, rec := newFormContext(t, e, "/reviews/r1/delete", url.Values{"return_to": {"/inv/detail/v1"}})
	c.SetParamNames("reviewID")
	c.SetParamValues("r1")
	c.Set("identity", domain.Identity{LoggedIn: true, AccountID: "a3", Role: domain.RoleAdmin})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/inv/detail/v1" {
		t.Fatalf("expected redirect to detail, got %q", loc)
	}
}
