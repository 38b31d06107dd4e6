package handler

import (
	"log/slog"
	"net/http"

	"statistics/internal/delivery/http/response"
	"statistics/internal/domain/entity"
	"statistics/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// StatisticsHandlerParams holds dependencies for StatisticsHandler, injected by Fx.
type StatisticsHandlerParams struct {
	fx.In

	StatisticsUC usecase.StatisticsUsecase
	Logger       *slog.Logger
}

// StatisticsHandler serves the remark statistics read API
type StatisticsHandler struct {
	statisticsUC usecase.StatisticsUsecase
	logger       *slog.Logger
}

// NewStatisticsHandler is the constructor for StatisticsHandler
func NewStatisticsHandler(params StatisticsHandlerParams) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsUC: params.StatisticsUC,
		logger:       params.Logger,
	}
}

// ListRemarksRequest represents the query parameters of the listing endpoints
type ListRemarksRequest struct {
	State    string `query:"state" validate:"omitempty,oneof=created resolved deleted"`
	Category string `query:"category"`
	AuthorID string `query:"authorId"`
	Tag      string `query:"tag"`
	Limit    int    `query:"limit" validate:"omitempty,min=1"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// ListRemarksResponse is the payload of GET /remarks
type ListRemarksResponse struct {
	Remarks []*usecase.RemarkStateDTO `json:"remarks"`
	Count   int                       `json:"count"`
}

// GetRemarkState handles retrieving the state of a single remark
func (h *StatisticsHandler) GetRemarkState(c echo.Context) error {
	remarkID, err := uuid.Parse(c.Param("remarkId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid remark ID")
	}

	state, err := h.statisticsUC.GetRemarkState(c.Request().Context(), remarkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Remark state retrieved successfully")
}

// ListRemarks handles listing remark states
func (h *StatisticsHandler) ListRemarks(c echo.Context) error {
	input, err := h.bindListInput(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	states, err := h.statisticsUC.ListRemarkStates(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListRemarksResponse{
		Remarks: states,
		Count:   len(states),
	}, "Remark states retrieved successfully")
}

// ListRemarkFeatures handles listing remarks as a GeoJSON FeatureCollection.
// The collection is written without the response envelope so map clients can load it directly.
func (h *StatisticsHandler) ListRemarkFeatures(c echo.Context) error {
	input, err := h.bindListInput(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	collection, err := h.statisticsUC.ListRemarkFeatures(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := collection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode feature collection")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}

// bindListInput binds and validates the listing query.
// A nil input with a nil error means the error response has already been written.
func (h *StatisticsHandler) bindListInput(c echo.Context) (*usecase.ListRemarkStatesInput, error) {
	var req ListRemarksRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
	}

	input := &usecase.ListRemarkStatesInput{
		Category: req.Category,
		AuthorID: req.AuthorID,
		Tag:      req.Tag,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.State != "" {
		state, err := entity.ParseRemarkState(req.State)
		if err != nil {
			return nil, response.BadRequest(c, "VALIDATION_ERROR", "Invalid remark state")
		}
		input.State = &state
	}

	return input, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
