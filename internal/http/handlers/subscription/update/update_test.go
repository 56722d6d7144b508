package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/subscription"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, req models.DummySubscriptionUpdate, id int) (*models.Subscription, error) {
	args := m.Called(ctx, req, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestUpdateSubscriptionHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fullBody := `{"user_uid":"0b7aa038-13f1-4e1c-9876-6a704f2ffd02","magazine_id":3,"plan_id":4,` +
		`"price":42.5,"next_renewal_date":"2026-12-01","is_active":false}`

	tests := []struct {
		name           string
		url            string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "полная замена всех полей",
			url:  "/subscriptions/7",
			body: fullBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, models.DummySubscriptionUpdate{
					UserUID:         "0b7aa038-13f1-4e1c-9876-6a704f2ffd02",
					MagazineID:      3,
					PlanID:          4,
					Price:           42.5,
					NextRenewalDate: "2026-12-01",
					IsActive:        false,
				}, 7).Return(&models.Subscription{
					ID:              7,
					UserUID:         "0b7aa038-13f1-4e1c-9876-6a704f2ffd02",
					MagazineID:      3,
					PlanID:          4,
					Price:           42.5,
					NextRenewalDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
					IsActive:        false,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":42.5`,
		},
		{
			name: "подписка не найдена",
			url:  "/subscriptions/99",
			body: fullBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.Anything, 99).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `subscription not found`,
		},
		{
			name: "дата в неверном формате",
			url:  "/subscriptions/7",
			body: `{"user_uid":"0b7aa038-13f1-4e1c-9876-6a704f2ffd02","magazine_id":3,"plan_id":4,` +
				`"price":42.5,"next_renewal_date":"01-12-2026","is_active":false}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.Anything, 7).
					Return(nil, services.ErrInvalidRenewalDate)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `next_renewal_date must be a date in format 2006-01-02`,
		},
		{
			name: "user_uid не uuid",
			url:  "/subscriptions/7",
			body: `{"user_uid":"not-a-uuid","magazine_id":3,"plan_id":4,` +
				`"price":42.5,"next_renewal_date":"2026-12-01","is_active":false}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field UserUID can contain only uuid`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, tt.url, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/subscriptions/"))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
