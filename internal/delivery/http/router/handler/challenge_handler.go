package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wakeup/internal/delivery/http/response"
	"wakeup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	SessionUC   usecase.SessionUsecase
	Logger      *slog.Logger
}

// ChallengeHandler holds dependencies for challenge and session handlers
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	sessionUC   usecase.SessionUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		sessionUC:   params.SessionUC,
		logger:      params.Logger,
	}
}

// AttemptRequest represents the request body for a phrase submission
type AttemptRequest struct {
	Text string `json:"text" validate:"required"`
}

// GetPending handles retrieving the user's open challenge, if any
func (h *ChallengeHandler) GetPending(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	challenge, err := h.challengeUC.GetPending(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge, "Pending challenge retrieved successfully")
}

// GetHistory handles retrieving the user's challenge history
func (h *ChallengeHandler) GetHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be a positive integer")
		}
		limit = min(parsed, maxHistoryLimit)
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_QUERY", "offset must be a non-negative integer")
		}
		offset = parsed
	}

	history, err := h.challengeUC.GetHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Challenge history retrieved successfully")
}

// RecoverSession handles opening or restoring the user's live challenge session
func (h *ChallengeHandler) RecoverSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	session, err := h.sessionUC.Recover(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if session == nil {
		return response.Success(c, http.StatusOK, nil, "No pending challenge")
	}

	return response.Success(c, http.StatusOK, session, "Challenge session recovered successfully")
}

// SubmitAttempt handles one phrase submission against the live session
func (h *ChallengeHandler) SubmitAttempt(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AttemptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attempt input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.sessionUC.Attempt(c.Request().Context(), userID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Attempt processed successfully")
}

// CloseSession handles tearing down the live session without resolving it
func (h *ChallengeHandler) CloseSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	h.sessionUC.Close(userID)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session closed"}, "Session closed successfully")
}
