package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpmiddleware "statistics/internal/delivery/http/middleware"
	"statistics/internal/delivery/http/validator"
	"statistics/internal/domain/entity"
	domainerrors "statistics/internal/domain/errors"
	mockUsecase "statistics/internal/mocks/usecase"
	"statistics/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockStatisticsUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	statisticsUC := mockUsecase.NewMockStatisticsUsecase(t)
	h := NewStatisticsHandler(StatisticsHandlerParams{
		StatisticsUC: statisticsUC,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/health", HealthCheck)
	e.GET("/remarks", h.ListRemarks)
	e.GET("/remarks/geojson", h.ListRemarkFeatures)
	e.GET("/remarks/:remarkId/state", h.GetRemarkState)

	return e, statisticsUC
}

func serve(e *echo.Echo, target string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, body := serve(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
}

func TestStatisticsHandler_GetRemarkState(t *testing.T) {
	e, statisticsUC := newTestEcho(t)
	remarkID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	statisticsUC.EXPECT().
		GetRemarkState(mock.Anything, remarkID).
		Return(&usecase.RemarkStateDTO{
			State:       "resolved",
			UserID:      "U1",
			Description: "deep hole",
			Location:    usecase.LocationDTO{Latitude: 52.2, Longitude: 21.0, Address: "Warsaw"},
			CreatedAt:   createdAt,
		}, nil)

	rec, body := serve(e, "/remarks/"+remarkID.String()+"/state")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"state": "resolved",
		"userId": "U1",
		"description": "deep hole",
		"location": {"latitude": 52.2, "longitude": 21, "address": "Warsaw"},
		"createdAt": "2024-05-01T12:00:00Z"
	}`, string(body.Data))
}

func TestStatisticsHandler_GetRemarkState_Errors(t *testing.T) {
	remarkID := uuid.New()

	tests := []struct {
		name       string
		target     string
		setupMock  func(statisticsUC *mockUsecase.MockStatisticsUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed remark id",
			target:     "/remarks/not-a-uuid/state",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:   "unknown remark",
			target: "/remarks/" + remarkID.String() + "/state",
			setupMock: func(statisticsUC *mockUsecase.MockStatisticsUsecase) {
				statisticsUC.EXPECT().
					GetRemarkState(mock.Anything, remarkID).
					Return(nil, domainerrors.ErrRemarkStatisticsNotFound.WithDetails(remarkID.String()))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "REMARK_STATISTICS_NOT_FOUND",
		},
		{
			name:   "unexpected failure",
			target: "/remarks/" + remarkID.String() + "/state",
			setupMock: func(statisticsUC *mockUsecase.MockStatisticsUsecase) {
				statisticsUC.EXPECT().
					GetRemarkState(mock.Anything, remarkID).
					Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, statisticsUC := newTestEcho(t)
			if tt.setupMock != nil {
				tt.setupMock(statisticsUC)
			}

			rec, body := serve(e, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestStatisticsHandler_ListRemarks(t *testing.T) {
	e, statisticsUC := newTestEcho(t)
	resolved := entity.RemarkStateResolved

	statisticsUC.EXPECT().
		ListRemarkStates(mock.Anything, &usecase.ListRemarkStatesInput{
			State:    &resolved,
			Category: "pothole",
			AuthorID: "U1",
			Tag:      "road",
			Limit:    10,
			Offset:   20,
		}).
		Return([]*usecase.RemarkStateDTO{{State: "resolved", UserID: "U1"}}, nil)

	rec, body := serve(e, "/remarks?state=resolved&category=pothole&authorId=U1&tag=road&limit=10&offset=20")

	assert.Equal(t, http.StatusOK, rec.Code)
	var data ListRemarksResponse
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, "resolved", data.Remarks[0].State)
}

func TestStatisticsHandler_ListRemarks_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown state", target: "/remarks?state=archived"},
		{name: "negative limit", target: "/remarks?limit=-1"},
		{name: "non numeric limit", target: "/remarks?limit=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(t)

			rec, body := serve(e, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestStatisticsHandler_ListRemarkFeatures(t *testing.T) {
	e, statisticsUC := newTestEcho(t)
	remarkID := uuid.New()

	feature := geojson.NewFeature(orb.Point{21.0, 52.2})
	feature.ID = remarkID.String()
	feature.Properties["state"] = "created"
	collection := geojson.NewFeatureCollection().Append(feature)

	statisticsUC.EXPECT().
		ListRemarkFeatures(mock.Anything, &usecase.ListRemarkStatesInput{}).
		Return(collection, nil)

	req := httptest.NewRequest(http.MethodGet, "/remarks/geojson", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, geoJSONContentType, rec.Header().Get(echo.HeaderContentType))

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, orb.Point{21.0, 52.2}, decoded.Features[0].Geometry)
	assert.Equal(t, "created", decoded.Features[0].Properties["state"])
}
