package handler

import (
	"net/http"
	"testing"
	"time"

	"auction-house/internal/adverts"
	"auction-house/internal/biddingerrors"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newAdvertRouter(m *MockAdvertServiceInterface) *gin.Engine {
	h := NewAdvertHandler(m)
	router := gin.New()
	router.POST("/adverts", h.CreateAdvertHandler)
	router.GET("/adverts", h.ListAdvertsHandler)
	router.GET("/adverts/featured", h.GetFeaturedAdvertHandler)
	router.GET("/adverts/:advert_id", h.GetAdvertStateHandler)
	router.POST("/adverts/:advert_id/like", h.LikeAdvertHandler)
	router.POST("/adverts/:advert_id/end", h.EndAdvertHandler)
	return router
}

func TestCreateAdvertHandler(t *testing.T) {
	t.Parallel()

	starts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ends := starts.Add(72 * time.Hour)
	reserve := int64(50000)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAdvertServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "created",
			requestBody: helpers.CreateAdvertRequest{
				OwnerID: "owner", Title: "Farm House", State: "tx", Amount: 10000, ReservePrice: &reserve,
				StartsAt: starts, EndsAt: ends,
			},
			mockSetup: func(m *MockAdvertServiceInterface) {
				m.EXPECT().CreateAdvert(gomock.Any(), "owner", adverts.CreateAdvertInput{
					Title: "Farm House", State: "tx", Amount: 10000, ReservePrice: &reserve, StartsAt: starts, EndsAt: ends,
				}).Return(model.Advert{AdvertID: "a1", OwnerID: "owner", State: "TX", DepositPercentage: 5}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "advert created successfully",
		},
		{
			name: "service_validation",
			requestBody: helpers.CreateAdvertRequest{
				OwnerID: "owner", Title: "Cheap", Amount: 50, StartsAt: starts, EndsAt: ends,
			},
			mockSetup: func(m *MockAdvertServiceInterface) {
				m.EXPECT().CreateAdvert(gomock.Any(), "owner", gomock.Any()).Return(model.Advert{}, biddingerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:           "missing_title",
			requestBody:    helpers.CreateAdvertRequest{OwnerID: "owner", Amount: 10000, StartsAt: starts, EndsAt: ends},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := NewMockAdvertServiceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(m)
			}

			status, resp := performRequest(t, newAdvertRouter(m), http.MethodPost, "/adverts", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestListAdvertsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *MockAdvertServiceInterface)
		expectedStatus int
	}{
		{
			name:  "filters_passed_through",
			query: "?status=active&search=barn&limit=2",
			mockSetup: func(m *MockAdvertServiceInterface) {
				m.EXPECT().ListAdverts(gomock.Any(), adverts.ListFilter{Status: model.AdvertStatusActive, Search: "barn", Limit: 2}).
					Return([]model.Advert{{AdvertID: "a1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{name: "unknown_status", query: "?status=lost", expectedStatus: http.StatusBadRequest},
		{name: "bad_limit", query: "?limit=-1", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := NewMockAdvertServiceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(m)
			}

			status, _ := performRequest(t, newAdvertRouter(m), http.MethodGet, "/adverts"+tc.query, nil)
			require.Equal(t, tc.expectedStatus, status)
		})
	}
}

func TestAdvertStateHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockAdvertServiceInterface(ctrl)
	router := newAdvertRouter(m)

	highest := model.Bid{BidID: "b1", UserID: "u2", Amount: 15000}
	m.EXPECT().GetAuctionState(gomock.Any(), "a1").Return(ledger.AuctionState{
		Advert:       model.Advert{AdvertID: "a1"},
		HighestBid:   &highest,
		IsReserveMet: true,
	}, nil)
	m.EXPECT().GetAuctionState(gomock.Any(), "ghost").Return(ledger.AuctionState{}, biddingerrors.ErrAdvertNotFound)

	status, resp := performRequest(t, router, http.MethodGet, "/adverts/a1", nil)
	require.Equal(t, http.StatusOK, status)
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["is_reserve_met"])
	require.Equal(t, 15000.0, data["highest_bid"].(map[string]any)["amount"])

	status, _ = performRequest(t, router, http.MethodGet, "/adverts/ghost", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestGetFeaturedAdvertHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockAdvertServiceInterface(ctrl)
	router := newAdvertRouter(m)

	gomock.InOrder(
		m.EXPECT().GetFeaturedAdvert(gomock.Any()).Return(ledger.AuctionState{}, false, nil),
		m.EXPECT().GetFeaturedAdvert(gomock.Any()).Return(ledger.AuctionState{Advert: model.Advert{AdvertID: "a3"}}, true, nil),
	)

	status, resp := performRequest(t, router, http.MethodGet, "/adverts/featured", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no featured advert", resp["message"])

	status, resp = performRequest(t, router, http.MethodGet, "/adverts/featured", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "a3", resp["data"].(map[string]any)["advert"].(map[string]any)["advert_id"])
}

func TestLikeAndEndAdvertHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockAdvertServiceInterface(ctrl)
	router := newAdvertRouter(m)

	m.EXPECT().LikeAdvert(gomock.Any(), "a1", "u1").Return(model.Advert{AdvertID: "a1", LikedBy: []string{"u1"}}, nil)
	m.EXPECT().EndAdvert(gomock.Any(), "a1").Return(model.Advert{AdvertID: "a1", Status: model.AdvertStatusSold}, nil)
	m.EXPECT().EndAdvert(gomock.Any(), "a2").Return(model.Advert{}, biddingerrors.ErrAuctionNotActive)

	status, resp := performRequest(t, router, http.MethodPost, "/adverts/a1/like", helpers.LikeAdvertRequest{UserID: "u1"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []any{"u1"}, resp["data"].(map[string]any)["liked_by"])

	status, _ = performRequest(t, router, http.MethodPost, "/adverts/a1/like", `{}`)
	require.Equal(t, http.StatusBadRequest, status)

	status, resp = performRequest(t, router, http.MethodPost, "/adverts/a1/end", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "sold", resp["data"].(map[string]any)["status"])

	status, _ = performRequest(t, router, http.MethodPost, "/adverts/a2/end", nil)
	require.Equal(t, http.StatusConflict, status)
}
