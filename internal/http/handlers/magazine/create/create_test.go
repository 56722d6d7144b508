package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Magazine), args.Error(1)
}

func TestCreateMagazineHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание",
			body: `{"name":"Nature","base_price":10,"discount_annual":0.3}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.DummyMagazine{
					Name:           "Nature",
					BasePrice:      10,
					DiscountAnnual: 0.3,
				}).Return(&models.Magazine{
					ID:             5,
					Name:           "Nature",
					BasePrice:      10,
					DiscountAnnual: 0.3,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":5`,
		},
		{
			name:           "нулевая базовая цена",
			body:           `{"name":"Nature","base_price":0}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field BasePrice is a required field`,
		},
		{
			name:           "отрицательная базовая цена",
			body:           `{"name":"Nature","base_price":-5}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field BasePrice must be greater than 0`,
		},
		{
			name:           "скидка больше единицы",
			body:           `{"name":"Nature","base_price":10,"discount_annual":1.5}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field DiscountAnnual must be less than 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/magazines", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
