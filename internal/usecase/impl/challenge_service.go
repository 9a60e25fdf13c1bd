package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wakeup/internal/domain/entity"
	"wakeup/internal/domain/repository"
	"wakeup/internal/domain/service"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type challengeService struct {
	logger        *slog.Logger
	challengeRepo repository.ChallengeRepository
	alarmRepo     repository.AlarmRepository
	scheduler     usecase.ScheduleUsecase
	publisher     service.EventPublisher

	// Serializes the lookup-then-create in LogFired. The store call sequence
	// is not transactional, so without this two reminder deliveries racing
	// each other could both miss the existing pending record and create two.
	mu sync.Mutex

	now func() time.Time
}

// NewChallengeService creates a new challenge service instance
func NewChallengeService(
	logger *slog.Logger,
	challengeRepo repository.ChallengeRepository,
	alarmRepo repository.AlarmRepository,
	scheduler usecase.ScheduleUsecase,
	publisher service.EventPublisher,
) usecase.ChallengeUsecase {
	return &challengeService{
		logger:        logger,
		challengeRepo: challengeRepo,
		alarmRepo:     alarmRepo,
		scheduler:     scheduler,
		publisher:     publisher,
		now:           time.Now,
	}
}

// LogFired records a reminder delivery, creating a pending challenge only on
// the first delivery of an occurrence. Repeated calls for the same (user,
// alarm) pair return the existing pending challenge unchanged, which is what
// keeps a multi-reminder burst down to exactly one record.
func (s *challengeService) LogFired(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.challengeRepo.FindPendingChallenge(ctx, userID, alarmID)
	if err == nil {
		s.logger.Debug("Reusing pending challenge",
			slog.String("challengeID", existing.ID.String()),
			slog.String("alarmID", alarmID.String()),
		)

		return existing, nil
	}
	if !errors.Is(err, repository.ErrChallengeNotFound) {
		return nil, errors.Wrap(err, "failed to look up pending challenge")
	}

	challenge := &entity.Challenge{
		ID:      uuid.New(),
		UserID:  userID,
		AlarmID: alarmID,
		SentAt:  s.now(),
		Status:  entity.ChallengeStatusPending,
	}

	if err := s.challengeRepo.CreateChallenge(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	s.logger.Info("Challenge created",
		slog.String("challengeID", challenge.ID.String()),
		slog.String("alarmID", alarmID.String()),
	)

	return challenge, nil
}

// ResolveSuccess moves the challenge to its success terminal status and
// schedules the alarm's next occurrence.
func (s *challengeService) ResolveSuccess(ctx context.Context, challengeID uuid.UUID, attemptsMade int, alarmID uuid.UUID) error {
	return s.resolve(ctx, challengeID, entity.ChallengeStatusSuccess, attemptsMade, alarmID)
}

// ResolveFailure is the timeout path: identical bookkeeping with the failed
// terminal status. Incorrect attempt submissions never reach here.
func (s *challengeService) ResolveFailure(ctx context.Context, challengeID uuid.UUID, attemptsMade int, alarmID uuid.UUID) error {
	return s.resolve(ctx, challengeID, entity.ChallengeStatusFailed, attemptsMade, alarmID)
}

func (s *challengeService) resolve(ctx context.Context, challengeID uuid.UUID, status entity.ChallengeStatus, attemptsMade int, alarmID uuid.UUID) error {
	completedAt := s.now()

	// The challenge record is authoritative: a failed write propagates to the
	// caller so the UI never shows a resolution that was not persisted.
	if err := s.challengeRepo.ResolveChallenge(ctx, challengeID, status, completedAt, attemptsMade); err != nil {
		return errors.Wrapf(err, "failed to resolve challenge %s", challengeID)
	}

	s.logger.Info("Challenge resolved",
		slog.String("challengeID", challengeID.String()),
		slog.String("status", string(status)),
		slog.Int("attempts", attemptsMade),
	)

	s.publishResolution(ctx, challengeID, status, attemptsMade, alarmID, completedAt)
	s.rescheduleAlarm(ctx, alarmID)

	return nil
}

// publishResolution emits the challenge outcome event. Publishing is
// best-effort: the resolution already persisted, so a publish failure is
// logged and swallowed.
func (s *challengeService) publishResolution(ctx context.Context, challengeID uuid.UUID, status entity.ChallengeStatus, attemptsMade int, alarmID uuid.UUID, completedAt time.Time) {
	if s.publisher == nil {
		return
	}

	event := &service.ChallengeEvent{
		ChallengeID:  challengeID.String(),
		AlarmID:      alarmID.String(),
		Status:       string(status),
		AttemptsMade: attemptsMade,
		CompletedAt:  completedAt,
	}
	if challenge, err := s.challengeRepo.FindChallengeByID(ctx, challengeID); err == nil {
		event.UserID = challenge.UserID.String()
		event.SentAt = challenge.SentAt
	}

	if err := s.publisher.PublishChallengeEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish challenge event",
			slog.String("challengeID", challengeID.String()),
			slog.Any("error", err),
		)
	}
}

// rescheduleAlarm is the recurrence mechanism: after a terminal transition
// the current occurrence's outstanding reminders come down and, if the alarm
// still exists and is enabled, the next occurrence is computed from now.
// A stale alarm (deleted or disabled since firing) is a no-op, not an error.
func (s *challengeService) rescheduleAlarm(ctx context.Context, alarmID uuid.UUID) {
	s.scheduler.CancelOccurrence(ctx, alarmID)

	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			s.logger.Debug("Alarm deleted before resolution, skipping reschedule",
				slog.String("alarmID", alarmID.String()),
			)

			return
		}

		s.logger.Warn("Failed to load alarm for reschedule",
			slog.String("alarmID", alarmID.String()),
			slog.Any("error", err),
		)

		return
	}

	if !alarm.IsEnabled {
		s.logger.Debug("Alarm disabled before resolution, skipping reschedule",
			slog.String("alarmID", alarmID.String()),
		)

		return
	}

	if _, err := s.scheduler.ScheduleOccurrence(ctx, alarm); err != nil {
		// Scheduling failures never abort a resolution that already persisted.
		s.logger.Warn("Failed to schedule next occurrence",
			slog.String("alarmID", alarmID.String()),
			slog.Any("error", err),
		)
	}
}

// GetPending returns the user's most recently sent pending challenge, or nil.
func (s *challengeService) GetPending(ctx context.Context, userID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.FindLatestPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up pending challenge")
	}

	return challenge, nil
}

// GetHistory returns the user's challenge history, newest first.
func (s *challengeService) GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Challenge, error) {
	return s.challengeRepo.FindChallengesByUser(ctx, userID, limit, offset)
}
