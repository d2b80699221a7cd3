package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/payments"
	"github.com/plateformprojob/backend/storage"
)

// Checkout is the payment-processor surface the handler needs.
// Satisfied by *payments.CheckoutClient.
type Checkout interface {
	CreateSession(userID string) (*payments.Session, error)
	GetSession(sessionID string) (*payments.Session, error)
}

// CreditStore reads users and credits purchased job posts. Satisfied by
// *storage.FirestoreClient.
type CreditStore interface {
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	AddPurchasedCredit(ctx context.Context, id, sessionID string) error
}

// StripeHandler handles the job-credit checkout lifecycle
type StripeHandler struct {
	checkout Checkout
	store    CreditStore
}

// NewStripeHandler creates a new Stripe handler
func NewStripeHandler(checkout Checkout, store CreditStore) *StripeHandler {
	return &StripeHandler{checkout: checkout, store: store}
}

// CreateCheckoutSession opens a hosted checkout for one job credit
// @Summary Create a checkout session
// @Description Create a Stripe checkout session for purchasing one job-post credit
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.CheckoutSessionRequest true "Checkout request"
// @Success 200 {object} models.CheckoutSessionResponse "Hosted checkout session"
// @Failure 400 {object} models.ErrorResponse "Missing userId"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Payment processor error"
// @Router /stripe/create-checkout-session [post]
func (h *StripeHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "userId is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if _, err := h.store.GetUser(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load user",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	session, err := h.checkout.CreateSession(req.UserID)
	if err != nil {
		log.Printf("[StripeHandler] Failed to create checkout session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to create checkout session",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	log.Printf("[StripeHandler] Checkout session %s created for user %s", session.ID, req.UserID)
	c.JSON(http.StatusOK, models.CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// FulfillOrder credits a completed checkout session
// @Summary Fulfill a checkout order
// @Description Verify a completed checkout session and credit one purchased job post. A session is credited at most once, and only to the user it references.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.FulfillOrderRequest true "Fulfillment request"
// @Success 200 {object} models.FulfillOrderResponse "Credit applied (or already applied)"
// @Failure 400 {object} models.ErrorResponse "Session not paid"
// @Failure 403 {object} models.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} models.ErrorResponse "User or session not found"
// @Router /stripe/fulfill-order [post]
func (h *StripeHandler) FulfillOrder(c *gin.Context) {
	var req models.FulfillOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "sessionId and userId are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load user",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	session, err := h.checkout.GetSession(req.SessionID)
	if err != nil {
		log.Printf("[StripeHandler] Failed to retrieve session %s: %v", req.SessionID, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Checkout session not found",
			Code:    http.StatusNotFound,
			Details: err.Error(),
		})
		return
	}

	if session.ClientReferenceID != req.UserID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "Checkout session does not belong to this user",
			Code:  http.StatusForbidden,
		})
		return
	}

	if !session.Paid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Checkout session is not paid",
			Code:  http.StatusBadRequest,
		})
		return
	}

	// Already credited: report success without crediting again
	if user.HasFulfilledSession(session.ID) {
		c.JSON(http.StatusOK, models.FulfillOrderResponse{
			Credited:                false,
			PurchasedPostsRemaining: user.PurchasedPostsRemaining,
		})
		return
	}

	if err := h.store.AddPurchasedCredit(c.Request.Context(), req.UserID, session.ID); err != nil {
		log.Printf("[StripeHandler] Failed to credit user %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to apply purchased credit",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	log.Printf("[StripeHandler] Session %s fulfilled: +1 credit for user %s", session.ID, req.UserID)
	c.JSON(http.StatusOK, models.FulfillOrderResponse{
		Credited:                true,
		PurchasedPostsRemaining: user.PurchasedPostsRemaining + 1,
	})
}
