package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"wakeup/internal/domain/entity"
	"wakeup/internal/domain/repository"
	"wakeup/internal/domain/service"
	"wakeup/internal/usecase"

	"go.uber.org/fx"
)

// ReminderHandler receives reminder deliveries from the registry and turns
// each one into the full delivery side effect: a challenge record and a push
// notification to every active device of the alarm's owner.
type ReminderHandler struct {
	logger       *slog.Logger
	challengeSvc usecase.ChallengeUsecase
	pushSvc      service.PushService
	deviceRepo   repository.DeviceRepository
}

// ReminderHandlerParams holds dependencies for the ReminderHandler
type ReminderHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	ChallengeSvc usecase.ChallengeUsecase
	PushSvc      service.PushService
	DeviceRepo   repository.DeviceRepository
}

// NewReminderHandler creates a new reminder delivery handler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		logger:       params.Logger,
		challengeSvc: params.ChallengeSvc,
		pushSvc:      params.PushSvc,
		deviceRepo:   params.DeviceRepo,
	}
}

// HandleReminder processes one fired reminder. Errors never propagate back
// into the registry; a reminder that could not be delivered is logged and
// the rest of the burst carries on.
func (h *ReminderHandler) HandleReminder(ctx context.Context, payload service.ReminderPayload) {
	challenge, err := h.challengeSvc.LogFired(ctx, payload.UserID, payload.AlarmID)
	if err != nil {
		h.logger.Error("[Reminder] Failed to log fired reminder",
			slog.String("alarm_id", payload.AlarmID.String()),
			slog.Int("reminder_index", payload.Index),
			slog.Any("error", err),
		)

		return
	}

	// Push delivery is optional; the challenge record above is not.
	if h.pushSvc == nil {
		h.logger.Warn("[Reminder] Push service not configured, skipping notification",
			slog.String("alarm_id", payload.AlarmID.String()),
		)

		return
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, payload.UserID)
	if err != nil {
		h.logger.Error("[Reminder] Failed to load devices",
			slog.String("user_id", payload.UserID.String()),
			slog.Any("error", err),
		)

		return
	}

	if len(devices) == 0 {
		h.logger.Info("[Reminder] No active devices for user",
			slog.String("user_id", payload.UserID.String()),
			slog.String("alarm_id", payload.AlarmID.String()),
		)

		return
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	title, body, data := h.prepareReminderContent(challenge, payload)

	sent, failed, invalidTokens, err := h.pushSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		h.logger.Error("[Reminder] Failed to send push notifications",
			slog.String("alarm_id", payload.AlarmID.String()),
			slog.Any("error", err),
		)

		return
	}

	h.cleanupInvalidTokens(ctx, invalidTokens, deviceMap)

	h.logger.Info("[Reminder] Reminder delivered",
		slog.String("alarm_id", payload.AlarmID.String()),
		slog.String("challenge_id", challenge.ID.String()),
		slog.Int("reminder_index", payload.Index),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)
}

// prepareReminderContent creates the notification title, body, and data
func (h *ReminderHandler) prepareReminderContent(challenge *entity.Challenge, payload service.ReminderPayload) (title, body string, data map[string]string) {
	title = "Wake up!"
	body = fmt.Sprintf("Your %s alarm is ringing. Say your phrase to dismiss it.",
		payload.OccurrenceAt.Format("15:04"))

	data = map[string]string{
		"alarm_id":       payload.AlarmID.String(),
		"challenge_id":   challenge.ID.String(),
		"occurrence_at":  payload.OccurrenceAt.Format(time.RFC3339),
		"reminder_index": strconv.Itoa(payload.Index),
	}

	return title, body, data
}

// cleanupInvalidTokens removes devices with invalid FCM tokens
func (h *ReminderHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				h.logger.Warn("[Reminder] Failed to delete invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}
