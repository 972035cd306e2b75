package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-service/app/domain"
	mock_port "session-service/app/mocks"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*testing.T, *mock_port.MockSessionCoordinator)
		expectedStatus int
	}{
		{
			name: "hydrated profile",
			setupMock: func(t *testing.T, coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().Snapshot().Return(authenticatedSnapshot(t))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "anonymous caller",
			setupMock: func(t *testing.T, coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().Snapshot().Return(domain.SessionSnapshot{IsInitialized: true})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "profile not hydrated yet",
			setupMock: func(t *testing.T, coordinator *mock_port.MockSessionCoordinator) {
				snap := authenticatedSnapshot(t)
				snap.Profile = nil
				coordinator.EXPECT().Snapshot().Return(snap)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			ctrl := gomock.NewController(t)
			coordinator := mock_port.NewMockSessionCoordinator(ctrl)
			tt.setupMock(t, coordinator)

			handler := NewProfileHandler(coordinator, testHandlerLogger(t))
			c, rec := newJSONContext(http.MethodGet, "/v1/profile", "")

			// Execute
			err := handler.GetProfile(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var profile domain.Profile
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
				assert.Equal(t, "trader", profile.DisplayName)
			}
		})
	}
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mock_port.MockSessionCoordinator)
		expectedStatus int
		checkBody      func(*testing.T, []byte)
	}{
		{
			name: "display name update",
			body: `{"display_name":"Renamed Trader"}`,
			setupMock: func(coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, update domain.ProfileUpdate) error {
						require.NotNil(t, update.DisplayName)
						assert.Equal(t, "Renamed Trader", *update.DisplayName)
						assert.Nil(t, update.RiskPercent)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "risk percent update",
			body: `{"risk_percent":1.5}`,
			setupMock: func(coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, update domain.ProfileUpdate) error {
						require.NotNil(t, update.RiskPercent)
						assert.Equal(t, 1.5, *update.RiskPercent)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "risk percent out of bounds",
			body:           `{"risk_percent":55.0}`,
			setupMock:      func(coordinator *mock_port.MockSessionCoordinator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no user logged in surfaces the domain message",
			body: `{"display_name":"Renamed Trader"}`,
			setupMock: func(coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					Return(domain.ErrNoUserLoggedIn)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body []byte) {
				var response ErrorResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "No user logged in", response.Error)
			},
		},
		{
			name: "empty update is rejected",
			body: `{}`,
			setupMock: func(coordinator *mock_port.MockSessionCoordinator) {
				coordinator.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					Return(domain.ErrEmptyUpdate)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			ctrl := gomock.NewController(t)
			coordinator := mock_port.NewMockSessionCoordinator(ctrl)
			tt.setupMock(coordinator)

			handler := NewProfileHandler(coordinator, testHandlerLogger(t))
			c, rec := newJSONContext(http.MethodPatch, "/v1/profile", tt.body)

			// Execute
			err := handler.UpdateProfile(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
		})
	}
}
