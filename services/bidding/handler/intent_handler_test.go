package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	paymentsvc "auction-house/internal/payments"
	"auction-house/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	stripewebhook "github.com/stripe/stripe-go/v76/webhook"
)

func newIntentRouter(intents *MockIntentServiceInterface, payments *MockPaymentServiceInterface) *gin.Engine {
	h := NewIntentHandler(intents, payments, nil)
	router := gin.New()
	router.POST("/bids/intents", h.CreateIntentHandler)
	router.GET("/users/:user_id/intents", h.ListIntentsHandler)
	router.POST("/webhooks/payments", h.PaymentWebhookHandler)
	router.POST("/payments", h.CreatePaymentHandler)
	return router
}

func webhook(eventType string, metadata map[string]string) helpers.PaymentWebhook {
	var event helpers.PaymentWebhook
	event.Type = eventType
	event.Data.Object.ID = "plink_1"
	event.Data.Object.Metadata = metadata
	return event
}

func TestCreateIntentHandler(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 6, 1, 12, 15, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockIntentServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "created",
			requestBody: helpers.CreateIntentRequest{AdvertID: "a1", UserID: "u1", Amount: 20000},
			mockSetup: func(m *MockIntentServiceInterface) {
				m.EXPECT().CreateBidIntent(gomock.Any(), "a1", "u1", int64(20000)).Return(model.BidIntent{
					IntentID:   "i1",
					AdvertID:   "a1",
					UserID:     "u1",
					BidAmount:  20000,
					Amount:     2000,
					PayableURL: "https://pay.example/i1",
					ExpiresAt:  expires,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid intent created successfully",
		},
		{
			name:           "missing_amount",
			requestBody:    helpers.CreateIntentRequest{AdvertID: "a1", UserID: "u1"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "duplicate",
			requestBody: helpers.CreateIntentRequest{AdvertID: "a1", UserID: "u1", Amount: 20000},
			mockSetup: func(m *MockIntentServiceInterface) {
				m.EXPECT().CreateBidIntent(gomock.Any(), "a1", "u1", int64(20000)).Return(model.BidIntent{}, biddingerrors.ErrDuplicateIntent)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid intent already exists",
		},
		{
			name:        "identity_pending",
			requestBody: helpers.CreateIntentRequest{AdvertID: "a1", UserID: "u1", Amount: 20000},
			mockSetup: func(m *MockIntentServiceInterface) {
				m.EXPECT().CreateBidIntent(gomock.Any(), "a1", "u1", int64(20000)).Return(model.BidIntent{}, biddingerrors.ErrIdentityNotApproved)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "photo id pending approval",
		},
		{
			name:        "provider_down",
			requestBody: helpers.CreateIntentRequest{AdvertID: "a1", UserID: "u1", Amount: 20000},
			mockSetup: func(m *MockIntentServiceInterface) {
				m.EXPECT().CreateBidIntent(gomock.Any(), "a1", "u1", int64(20000)).Return(model.BidIntent{}, biddingerrors.ErrExternalProvider)
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "payment provider unavailable",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			intents := NewMockIntentServiceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(intents)
			}

			status, resp := performRequest(t, newIntentRouter(intents, NewMockPaymentServiceInterface(ctrl)), http.MethodPost, "/bids/intents", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if status == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, 2000.0, data["deposit"])
				require.Equal(t, "2024-06-01T12:15:00Z", data["expires_at"])
			}
		})
	}
}

func TestPaymentWebhookHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		event          any
		mockSetup      func(intents *MockIntentServiceInterface, payments *MockPaymentServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "intent_reconciled",
			event: webhook(checkoutCompleted, map[string]string{"advertId": "a1", "userId": "u1"}),
			mockSetup: func(intents *MockIntentServiceInterface, _ *MockPaymentServiceInterface) {
				intents.EXPECT().ReconcileConfirmedPayment(gomock.Any(), "a1", "u1").
					Return(model.Bid{BidID: "b1", AdvertID: "a1", UserID: "u1", Amount: 20000, BidIntentID: "i1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid intent reconciled",
		},
		{
			name:  "payment_confirmed",
			event: webhook(checkoutCompleted, map[string]string{"paymentId": "p1", "userId": "u1", "advertId": "a1"}),
			mockSetup: func(_ *MockIntentServiceInterface, payments *MockPaymentServiceInterface) {
				payments.EXPECT().ConfirmPayment(gomock.Any(), "p1").
					Return(model.Payment{PaymentID: "p1", Status: model.PaymentApproved}, model.WalletOperation{OperationID: "op1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment confirmed",
		},
		{
			name:           "other_event_ignored",
			event:          webhook("payment_link.updated", map[string]string{"advertId": "a1", "userId": "u1"}),
			expectedStatus: http.StatusOK,
			expectedMsg:    "event ignored",
		},
		{
			name:           "no_metadata_ignored",
			event:          webhook(checkoutCompleted, nil),
			expectedStatus: http.StatusOK,
			expectedMsg:    "event ignored",
		},
		{
			name:  "intent_already_consumed",
			event: webhook(checkoutCompleted, map[string]string{"advertId": "a1", "userId": "u1"}),
			mockSetup: func(intents *MockIntentServiceInterface, _ *MockPaymentServiceInterface) {
				intents.EXPECT().ReconcileConfirmedPayment(gomock.Any(), "a1", "u1").Return(model.Bid{}, biddingerrors.ErrIntentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid intent not found",
		},
		{
			name:  "auction_closed_before_confirmation",
			event: webhook(checkoutCompleted, map[string]string{"advertId": "a1", "userId": "u1"}),
			mockSetup: func(intents *MockIntentServiceInterface, _ *MockPaymentServiceInterface) {
				intents.EXPECT().ReconcileConfirmedPayment(gomock.Any(), "a1", "u1").Return(model.Bid{}, biddingerrors.ErrAuctionExpired)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction expired",
		},
		{
			name:           "missing_type",
			event:          `{"data":{}}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			intents := NewMockIntentServiceInterface(ctrl)
			payments := NewMockPaymentServiceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(intents, payments)
			}

			status, resp := performRequest(t, newIntentRouter(intents, payments), http.MethodPost, "/webhooks/payments", tc.event)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestPaymentWebhookHandler_Signed(t *testing.T) {
	t.Parallel()

	const secret = "whsec_handler_test"
	body, err := json.Marshal(webhook(checkoutCompleted, map[string]string{"paymentId": "p1", "userId": "u1"}))
	require.NoError(t, err)
	sign := func(payload []byte, secret string) string {
		return stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
			Payload:   payload,
			Secret:    secret,
			Timestamp: time.Now(),
		}).Header
	}
	forged := bytes.Replace(body, []byte(`"p1"`), []byte(`"p2"`), 1)

	tests := []struct {
		name           string
		body           []byte
		signature      string
		expectConfirm  bool
		expectedStatus int
	}{
		{name: "signed", body: body, signature: sign(body, secret), expectConfirm: true, expectedStatus: http.StatusOK},
		{name: "unsigned", body: body, expectedStatus: http.StatusUnauthorized},
		{name: "wrong_secret", body: body, signature: sign(body, "whsec_attacker"), expectedStatus: http.StatusUnauthorized},
		{name: "body_swapped", body: forged, signature: sign(body, secret), expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			payments := NewMockPaymentServiceInterface(ctrl)
			if tc.expectConfirm {
				payments.EXPECT().ConfirmPayment(gomock.Any(), "p1").
					Return(model.Payment{PaymentID: "p1", Status: model.PaymentApproved}, model.WalletOperation{OperationID: "op1"}, nil)
			}

			h := NewIntentHandler(NewMockIntentServiceInterface(ctrl), payments, paymentsvc.NewStripeWebhookVerifier(secret))
			router := gin.New()
			router.POST("/webhooks/payments", h.PaymentWebhookHandler)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.signature != "" {
				req.Header.Set(paymentsvc.SignatureHeader, tc.signature)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestListIntentsHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	intents := NewMockIntentServiceInterface(ctrl)
	intents.EXPECT().ListUserIntents(gomock.Any(), "u1").Return([]model.BidIntent{{IntentID: "i1"}, {IntentID: "i2"}}, nil)
	intents.EXPECT().ListUserIntents(gomock.Any(), "broken").Return(nil, errors.New("db down"))
	router := newIntentRouter(intents, NewMockPaymentServiceInterface(ctrl))

	status, resp := performRequest(t, router, http.MethodGet, "/users/u1/intents", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp["data"].([]any), 2)

	status, _ = performRequest(t, router, http.MethodGet, "/users/broken/intents", nil)
	require.Equal(t, http.StatusInternalServerError, status)
}

func TestCreatePaymentHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	payments := NewMockPaymentServiceInterface(ctrl)
	payments.EXPECT().CreatePayment(gomock.Any(), "u1", "", int64(50), "top up").
		Return(model.Payment{}, biddingerrors.ErrValidation)
	payments.EXPECT().CreatePayment(gomock.Any(), "u1", "", int64(5000), "top up").
		Return(model.Payment{PaymentID: "p1", UserID: "u1", Amount: 5000, URL: "https://pay.example/p1"}, nil)
	router := newIntentRouter(NewMockIntentServiceInterface(ctrl), payments)

	status, _ := performRequest(t, router, http.MethodPost, "/payments", helpers.CreatePaymentRequest{UserID: "u1", Amount: 50, Description: "top up"})
	require.Equal(t, http.StatusBadRequest, status)

	status, resp := performRequest(t, router, http.MethodPost, "/payments", helpers.CreatePaymentRequest{UserID: "u1", Amount: 5000, Description: "top up"})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "https://pay.example/p1", resp["data"].(map[string]any)["url"])
}
