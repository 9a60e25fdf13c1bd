// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"wakeup/internal/delivery/http/response"
	"wakeup/internal/domain/entity"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlarmHandlerParams holds dependencies for AlarmHandler, injected by Fx.
type AlarmHandlerParams struct {
	fx.In

	AlarmUC usecase.AlarmUsecase
	Logger  *slog.Logger
}

// AlarmHandler holds dependencies for alarm-related handlers
type AlarmHandler struct {
	alarmUC usecase.AlarmUsecase
	logger  *slog.Logger
}

// NewAlarmHandler is the constructor for AlarmHandler
func NewAlarmHandler(params AlarmHandlerParams) *AlarmHandler {
	return &AlarmHandler{
		alarmUC: params.AlarmUC,
		logger:  params.Logger,
	}
}

// AlarmRequest represents the request body for creating or updating an alarm
type AlarmRequest struct {
	Hours        int   `json:"hours" validate:"min=0,max=23"`
	Minutes      int   `json:"minutes" validate:"min=0,max=59"`
	SelectedDays []int `json:"selected_days" validate:"required,min=1,dive,min=0,max=6"`
	IsEnabled    bool  `json:"is_enabled"`
}

// SetEnabledRequest represents the request body for toggling an alarm
type SetEnabledRequest struct {
	IsEnabled bool `json:"is_enabled"`
}

// CreateAlarm handles alarm creation
func (h *AlarmHandler) CreateAlarm(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AlarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alarm, err := h.alarmUC.CreateAlarm(c.Request().Context(), userID, toAlarmInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alarm, "Alarm created successfully")
}

// ListAlarms handles retrieving all alarms for the user
func (h *AlarmHandler) ListAlarms(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	alarms, err := h.alarmUC.ListAlarms(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarms, "Alarms retrieved successfully")
}

// UpdateAlarm handles updating an existing alarm
func (h *AlarmHandler) UpdateAlarm(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	var req AlarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alarm, err := h.alarmUC.UpdateAlarm(c.Request().Context(), userID, alarmID, toAlarmInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm updated successfully")
}

// SetAlarmEnabled handles toggling an alarm on or off
func (h *AlarmHandler) SetAlarmEnabled(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	var req SetEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	alarm, err := h.alarmUC.SetAlarmEnabled(c.Request().Context(), userID, alarmID, req.IsEnabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm toggled successfully")
}

// DeleteAlarm handles deleting an alarm
func (h *AlarmHandler) DeleteAlarm(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	alarmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	if err := h.alarmUC.DeleteAlarm(c.Request().Context(), userID, alarmID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Alarm deleted successfully"}, "Alarm deleted successfully")
}

func toAlarmInput(req AlarmRequest) usecase.AlarmInput {
	days := make([]entity.Weekday, 0, len(req.SelectedDays))
	for _, d := range req.SelectedDays {
		days = append(days, entity.Weekday(d))
	}

	return usecase.AlarmInput{
		Hours:        req.Hours,
		Minutes:      req.Minutes,
		SelectedDays: days,
		IsEnabled:    req.IsEnabled,
	}
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
