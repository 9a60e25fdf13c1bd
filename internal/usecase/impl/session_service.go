package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wakeup/config"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// liveSession is the mutable per-user state behind a ChallengeSession. The
// stop channel tears down the countdown watcher when the session ends for
// any reason other than expiry.
type liveSession struct {
	challengeID uuid.UUID
	alarmID     uuid.UUID
	phrase      string
	deadline    time.Time
	attempts    int
	stop        chan struct{}
}

type sessionService struct {
	logger  *slog.Logger
	tracker usecase.ChallengeUsecase

	window         time.Duration
	tickInterval   time.Duration
	matchThreshold float64
	wordCount      int

	mu       sync.Mutex
	sessions map[uuid.UUID]*liveSession

	now func() time.Time
}

// NewSessionService creates the live challenge session manager. It keeps at
// most one open session per user and is the only component that resolves a
// challenge as failed.
func NewSessionService(
	logger *slog.Logger,
	cfg *config.Config,
	tracker usecase.ChallengeUsecase,
) usecase.SessionUsecase {
	return &sessionService{
		logger:         logger,
		tracker:        tracker,
		window:         cfg.Challenge.Window,
		tickInterval:   cfg.Challenge.TickInterval,
		matchThreshold: cfg.Challenge.MatchThreshold,
		wordCount:      cfg.Challenge.PhraseWordCount,
		sessions:       make(map[uuid.UUID]*liveSession),
		now:            time.Now,
	}
}

// Recover surfaces the user's pending challenge as a live session. The
// deadline derives from the stored sent time, so a process restart does not
// reset the countdown; the phrase is always freshly generated because it is
// never persisted.
func (s *sessionService) Recover(ctx context.Context, userID uuid.UUID) (*usecase.ChallengeSession, error) {
	s.mu.Lock()
	if existing, ok := s.sessions[userID]; ok {
		snapshot := snapshotSession(existing)
		s.mu.Unlock()

		return snapshot, nil
	}
	s.mu.Unlock()

	pending, err := s.tracker.GetPending(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up pending challenge")
	}
	if pending == nil {
		return nil, nil
	}

	deadline := pending.Deadline(s.window)
	if !deadline.After(s.now()) {
		// The window ran out while no process was watching it. Record the
		// failure now instead of surfacing an already dead session.
		if err := s.tracker.ResolveFailure(ctx, pending.ID, 0, pending.AlarmID); err != nil {
			return nil, errors.Wrap(err, "failed to expire stale challenge")
		}

		return nil, nil
	}

	session := &liveSession{
		challengeID: pending.ID,
		alarmID:     pending.AlarmID,
		phrase:      generatePhrase(s.wordCount),
		deadline:    deadline,
		stop:        make(chan struct{}),
	}

	s.mu.Lock()
	if existing, ok := s.sessions[userID]; ok {
		// Lost the race against a concurrent Recover; keep the winner.
		snapshot := snapshotSession(existing)
		s.mu.Unlock()

		return snapshot, nil
	}
	s.sessions[userID] = session
	s.mu.Unlock()

	go s.watchDeadline(userID, session)

	s.logger.Info("Challenge session recovered",
		slog.String("userID", userID.String()),
		slog.String("challengeID", session.challengeID.String()),
		slog.Time("deadline", session.deadline),
	)

	return snapshotSession(session), nil
}

// Attempt matches one candidate submission against the session's phrase.
// Every submission counts toward the attempt total, including the one that
// passes. A mismatch only touches in-memory state and re-prompts the same
// phrase; the stored record changes on success alone.
func (s *sessionService) Attempt(ctx context.Context, userID uuid.UUID, candidate string) (*usecase.AttemptResult, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()

		return nil, domainerrors.ErrNoActiveSession
	}

	session.attempts++
	attempts := session.attempts
	phrase := session.phrase
	passed := matchPhrase(session.phrase, candidate, s.matchThreshold)
	if passed {
		close(session.stop)
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	if !passed {
		return &usecase.AttemptResult{Passed: false, Attempts: attempts, Phrase: phrase}, nil
	}

	if err := s.tracker.ResolveSuccess(ctx, session.challengeID, attempts, session.alarmID); err != nil {
		return nil, errors.Wrap(err, "failed to resolve challenge")
	}

	return &usecase.AttemptResult{Passed: true, Attempts: attempts, Phrase: phrase}, nil
}

// Close drops the user's live session without resolving anything. The
// challenge record stays pending and can be recovered later, with the
// original deadline still in force.
func (s *sessionService) Close(userID uuid.UUID) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if ok {
		close(session.stop)
		delete(s.sessions, userID)
	}
	s.mu.Unlock()
}

// watchDeadline is the countdown behind one session. It checks the clock at
// the configured tick resolution and resolves the challenge as failed the
// moment the deadline passes. This is the only caller of ResolveFailure
// during a live session.
func (s *sessionService) watchDeadline(userID uuid.UUID, session *liveSession) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-session.stop:
			return
		case <-ticker.C:
			if s.now().Before(session.deadline) {
				continue
			}

			s.mu.Lock()
			current, ok := s.sessions[userID]
			if !ok || current != session {
				s.mu.Unlock()

				return
			}
			attempts := session.attempts
			delete(s.sessions, userID)
			s.mu.Unlock()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.tracker.ResolveFailure(ctx, session.challengeID, attempts, session.alarmID); err != nil {
				s.logger.Error("Failed to record challenge expiry",
					slog.String("challengeID", session.challengeID.String()),
					slog.Any("error", err),
				)
			}
			cancel()

			s.logger.Info("Challenge window expired",
				slog.String("userID", userID.String()),
				slog.String("challengeID", session.challengeID.String()),
				slog.Int("attempts", attempts),
			)

			return
		}
	}
}

func snapshotSession(session *liveSession) *usecase.ChallengeSession {
	return &usecase.ChallengeSession{
		ChallengeID: session.challengeID,
		AlarmID:     session.alarmID,
		Phrase:      session.phrase,
		Deadline:    session.deadline,
		Attempts:    session.attempts,
	}
}
