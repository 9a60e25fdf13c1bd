package postgres

import (
	"context"
	"time"

	"wakeup/internal/domain/entity"
	domainerrors "wakeup/internal/domain/errors"
	"wakeup/internal/domain/repository"
	"wakeup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// challengeRepository implements the repository.ChallengeRepository interface.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

// CreateChallenge persists a new pending challenge.
func (repo *challengeRepository) CreateChallenge(ctx context.Context, challenge *entity.Challenge) error {
	challengeM := fromChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChallengeWriteFailed.WrapMessage("invalid user or alarm reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	// Update the entity with generated values
	challenge.ID = challengeM.ID

	return nil
}

// FindChallengeByID retrieves a challenge by its unique ID.
func (repo *challengeRepository) FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by ID")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindPendingChallenge retrieves the most recently sent pending challenge
// for a specific (user, alarm) pair.
func (repo *challengeRepository) FindPendingChallenge(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND alarm_id = ? AND status = ?", userID, alarmID, string(entity.ChallengeStatusPending)).
		Order("sent_at DESC").
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending challenge")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindLatestPendingByUser retrieves the user's most recently sent pending
// challenge across all alarms.
func (repo *challengeRepository) FindLatestPendingByUser(ctx context.Context, userID uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.ChallengeStatusPending)).
		Order("sent_at DESC").
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest pending challenge")
	}

	return toChallengeDomain(&challengeM), nil
}

// ResolveChallenge moves a pending challenge to a terminal status. The guard
// on the current status makes the transition forward-only at the database
// level: a row that already resolved is never overwritten, whichever caller
// loses the race.
func (repo *challengeRepository) ResolveChallenge(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus, completedAt time.Time, attemptsMade int) error {
	if !status.IsTerminal() {
		return errors.Errorf("cannot resolve challenge to non-terminal status %q", status)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeModel{}).
		Where("id = ? AND status = ?", id, string(entity.ChallengeStatusPending)).
		Updates(map[string]any{
			"status":        string(status),
			"completed_at":  completedAt,
			"attempts_made": attemptsMade,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve challenge")
	}

	if result.RowsAffected == 0 {
		// Either the row does not exist or it already reached a terminal
		// status; look it up to report which.
		var challengeM model.ChallengeModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", id).
			First(&challengeM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrChallengeNotFound
			}

			return errors.Wrap(err, "failed to resolve challenge")
		}

		return repository.ErrChallengeTerminal
	}

	return nil
}

// FindChallengesByUser retrieves the user's challenge history, newest first.
func (repo *challengeRepository) FindChallengesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Challenge, error) {
	var challengeModels []*model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&challengeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find challenges by user")
	}

	challenges := make([]*entity.Challenge, 0, len(challengeModels))
	for _, challengeM := range challengeModels {
		challenges = append(challenges, toChallengeDomain(challengeM))
	}

	return challenges, nil
}

// --- Mapper Functions ---

// toChallengeDomain converts a GORM ChallengeModel to a domain Challenge entity.
func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	if data == nil {
		return nil
	}

	return &entity.Challenge{
		ID:           data.ID,
		UserID:       data.UserID,
		AlarmID:      data.AlarmID,
		SentAt:       data.SentAt,
		Status:       entity.ChallengeStatus(data.Status),
		CompletedAt:  data.CompletedAt,
		AttemptsMade: data.AttemptsMade,
	}
}

// fromChallengeDomain converts a domain Challenge entity to a GORM ChallengeModel.
func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	if data == nil {
		return nil
	}

	return &model.ChallengeModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AlarmID:      data.AlarmID,
		SentAt:       data.SentAt,
		Status:       string(data.Status),
		CompletedAt:  data.CompletedAt,
		AttemptsMade: data.AttemptsMade,
	}
}
