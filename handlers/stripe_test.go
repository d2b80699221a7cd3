package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/payments"
	"github.com/plateformprojob/backend/storage"
)

type stubCheckout struct {
	session *payments.Session
	err     error
}

func (s *stubCheckout) CreateSession(userID string) (*payments.Session, error) {
	return s.session, s.err
}

func (s *stubCheckout) GetSession(sessionID string) (*payments.Session, error) {
	return s.session, s.err
}

type stubCreditStore struct {
	user     *models.UserProfile
	userErr  error
	credited []string
}

func (s *stubCreditStore) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.user, s.userErr
}

func (s *stubCreditStore) AddPurchasedCredit(ctx context.Context, id, sessionID string) error {
	s.credited = append(s.credited, sessionID)
	return nil
}

func newStripeRouter(checkout Checkout, store CreditStore) *gin.Engine {
	h := NewStripeHandler(checkout, store)
	router := gin.New()
	router.POST("/api/stripe/create-checkout-session", h.CreateCheckoutSession)
	router.POST("/api/stripe/fulfill-order", h.FulfillOrder)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{session: &payments.Session{ID: "cs_1", URL: "https://checkout.stripe.com/pay/cs_1"}}
	store := &stubCreditStore{user: &models.UserProfile{ID: "rec-1", Role: models.RoleRecruiter}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/create-checkout-session", models.CheckoutSessionRequest{UserID: "rec-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CheckoutSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SessionID != "cs_1" || resp.URL == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateCheckoutSessionUnknownUser(t *testing.T) {
	t.Parallel()

	router := newStripeRouter(&stubCheckout{}, &stubCreditStore{userErr: storage.ErrNotFound})

	w := postJSON(t, router, "/api/stripe/create-checkout-session", models.CheckoutSessionRequest{UserID: "ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestFulfillOrderCreditsOnce(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{session: &payments.Session{ID: "cs_1", Paid: true, ClientReferenceID: "rec-1"}}
	store := &stubCreditStore{user: &models.UserProfile{ID: "rec-1", PurchasedPostsRemaining: 2}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/fulfill-order", models.FulfillOrderRequest{SessionID: "cs_1", UserID: "rec-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.FulfillOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Credited || resp.PurchasedPostsRemaining != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(store.credited) != 1 || store.credited[0] != "cs_1" {
		t.Fatalf("expected one credit for cs_1, got %v", store.credited)
	}
}

func TestFulfillOrderIdempotent(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{session: &payments.Session{ID: "cs_1", Paid: true, ClientReferenceID: "rec-1"}}
	store := &stubCreditStore{user: &models.UserProfile{
		ID:                      "rec-1",
		PurchasedPostsRemaining: 3,
		FulfilledSessions:       []string{"cs_1"},
	}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/fulfill-order", models.FulfillOrderRequest{SessionID: "cs_1", UserID: "rec-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.FulfillOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Credited {
		t.Fatal("expected no second credit for an already fulfilled session")
	}
	if len(store.credited) != 0 {
		t.Fatalf("expected no store write, got %v", store.credited)
	}
}

func TestFulfillOrderRejectsForeignSession(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{session: &payments.Session{ID: "cs_1", Paid: true, ClientReferenceID: "rec-other"}}
	store := &stubCreditStore{user: &models.UserProfile{ID: "rec-1"}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/fulfill-order", models.FulfillOrderRequest{SessionID: "cs_1", UserID: "rec-1"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if len(store.credited) != 0 {
		t.Fatal("expected no credit for a foreign session")
	}
}

func TestFulfillOrderRejectsUnpaidSession(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{session: &payments.Session{ID: "cs_1", Paid: false, ClientReferenceID: "rec-1"}}
	store := &stubCreditStore{user: &models.UserProfile{ID: "rec-1"}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/fulfill-order", models.FulfillOrderRequest{SessionID: "cs_1", UserID: "rec-1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFulfillOrderSessionLookupFailure(t *testing.T) {
	t.Parallel()

	checkout := &stubCheckout{err: errors.New("no such session")}
	store := &stubCreditStore{user: &models.UserProfile{ID: "rec-1"}}
	router := newStripeRouter(checkout, store)

	w := postJSON(t, router, "/api/stripe/fulfill-order", models.FulfillOrderRequest{SessionID: "cs_missing", UserID: "rec-1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
