package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/repository"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultSkill          = "General Help"
	DefaultPlatformFeePct = 12.5
	completionLockTTL     = 30 * time.Second
	completionLockKeyFmt  = "SESSION:COMPLETE:%s"
)

type SessionUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	UserRepository    UserStore
	SessionRepository SessionStore
	Config            *viper.Viper
	Redis             redis.UniversalClient
	Analytics         EventTracker
}

func NewSessionUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
	sessionRepository SessionStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	analytics EventTracker,
) *SessionUseCase {
	return &SessionUseCase{
		Log:               logger,
		Validate:          validate,
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		Config:            cfg,
		Redis:             redisClient,
		Analytics:         analytics,
	}
}

func (c *SessionUseCase) Create(ctx context.Context, request *model.CreateSessionRequest) utils.Result {
	var result utils.Result

	request.Problem = strings.TrimSpace(request.Problem)
	request.Skill = strings.TrimSpace(request.Skill)
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("session-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}
	if request.StudentID == request.TutorID {
		errObj := httpError.NewBadRequest()
		errObj.Message = "you cannot request a session with yourself"
		result.Error = errObj
		return result
	}

	student, err := c.UserRepository.FindByID(ctx, request.StudentID)
	if err != nil {
		result.Error = c.lookupError("Create", "student", request.StudentID, err)
		return result
	}
	tutor, err := c.UserRepository.FindByID(ctx, request.TutorID)
	if err != nil {
		result.Error = c.lookupError("Create", "tutor", request.TutorID, err)
		return result
	}
	if student.SkillCoins < request.SkillCoinsOffered {
		errObj := httpError.NewPaymentRequired()
		errObj.Message = fmt.Sprintf("insufficient SkillCoins: you have %d, offered %d", student.SkillCoins, request.SkillCoinsOffered)
		result.Error = errObj
		return result
	}

	skill := request.Skill
	if skill == "" {
		skill = defaultSkill
	}
	now := time.Now().UTC()
	session := &entity.SessionRequest{
		ID:                uuid.NewString(),
		StudentID:         student.UserID,
		StudentName:       student.FullName,
		TutorID:           tutor.UserID,
		TutorName:         tutor.FullName,
		Skill:             skill,
		Problem:           request.Problem,
		SkillCoinsOffered: request.SkillCoinsOffered,
		Status:            entity.SessionPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := c.SessionRepository.Create(ctx, session); err != nil {
		result.Error = c.internalError("Create", err)
		return result
	}

	c.Log.Info("session-usecase", "session requested", "Create", session.ID)
	c.track(model.EventTutorRequest, student.UserID, map[string]interface{}{
		"tutor_id": tutor.UserID, "skill": skill, "coins": session.SkillCoinsOffered,
	})
	result.Data = model.CreateSessionResponse{ID: session.ID, Status: string(session.Status)}
	return result
}

// SetStatus applies a tutor's accept/reject decision. Completion is routed through Complete.
func (c *SessionUseCase) SetStatus(ctx context.Context, request *model.UpdateSessionStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	next := entity.SessionStatus(request.Status)
	if next == entity.SessionCompleted {
		return c.Complete(ctx, &model.CompleteSessionRequest{ID: request.ID, ActorID: request.ActorID})
	}

	session, err := c.SessionRepository.FindByID(ctx, request.ID)
	if err != nil {
		result.Error = c.lookupError("SetStatus", "session", request.ID, err)
		return result
	}
	if session.TutorID != request.ActorID {
		errObj := httpError.NewForbidden()
		errObj.Message = "only the requested tutor can accept or reject this session"
		result.Error = errObj
		return result
	}
	if !session.Status.CanTransitionTo(next) {
		result.Error = transitionError(session.Status, next)
		return result
	}

	ok, err := c.SessionRepository.UpdateStatus(ctx, session.ID, session.Status, next)
	if err != nil {
		result.Error = c.internalError("SetStatus", err)
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "session was updated by someone else, reload and try again"
		result.Error = errObj
		return result
	}

	c.Log.Info("session-usecase", fmt.Sprintf("session %s -> %s", session.Status, next), "SetStatus", session.ID)
	session.Status = next
	session.UpdatedAt = time.Now().UTC()
	result.Data = session
	return result
}

// Complete transfers the offered coins from student to tutor at most once.
func (c *SessionUseCase) Complete(ctx context.Context, request *model.CompleteSessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	session, err := c.SessionRepository.FindByID(ctx, request.ID)
	if err != nil {
		result.Error = c.lookupError("Complete", "session", request.ID, err)
		return result
	}
	if !session.Participant(request.ActorID) {
		errObj := httpError.NewForbidden()
		errObj.Message = "only participants can complete this session"
		result.Error = errObj
		return result
	}
	if !session.Status.CanTransitionTo(entity.SessionCompleted) {
		result.Error = transitionError(session.Status, entity.SessionCompleted)
		return result
	}

	lockKey := fmt.Sprintf(completionLockKeyFmt, session.ID)
	locked, err := c.Redis.SetNX(ctx, lockKey, request.ActorID, completionLockTTL).Result()
	if err != nil {
		result.Error = c.internalError("Complete", err)
		return result
	}
	if !locked {
		errObj := httpError.NewConflict()
		errObj.Message = "session completion is already in progress"
		result.Error = errObj
		return result
	}
	defer c.Redis.Del(context.WithoutCancel(ctx), lockKey)

	if err := c.SessionRepository.Complete(ctx, session); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidTransition):
			result.Error = transitionError(session.Status, entity.SessionCompleted)
		case errors.Is(err, repository.ErrInsufficientBalance):
			errObj := httpError.NewPaymentRequired()
			errObj.Message = "student does not have enough SkillCoins to complete this session"
			result.Error = errObj
		case errors.Is(err, repository.ErrNotFound):
			errObj := httpError.NewNotFound()
			errObj.Message = "tutor profile no longer exists"
			result.Error = errObj
		default:
			result.Error = c.internalError("Complete", err)
		}
		return result
	}

	c.Log.Info("session-usecase", "session completed", "Complete", session.ID)
	amount := session.SkillCoinsOffered
	c.track(model.EventSessionComplete, request.ActorID, map[string]interface{}{
		"session_id": session.ID, "coins": amount,
	})
	c.track(model.EventCoinTransaction, session.StudentID, map[string]interface{}{
		"type": entity.TransactionSpent, "amount": amount, "session_id": session.ID,
	})
	c.track(model.EventCoinTransaction, session.TutorID, map[string]interface{}{
		"type": entity.TransactionEarned, "amount": amount, "session_id": session.ID,
	})

	session.Status = entity.SessionCompleted
	session.UpdatedAt = time.Now().UTC()
	result.Data = session
	return result
}

func (c *SessionUseCase) ListPending(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	sessions, err := c.SessionRepository.FindPendingByTutor(ctx, request.ID)
	if err != nil {
		result.Error = c.internalError("ListPending", err)
		return result
	}
	result.Data = sessions
	return result
}

func (c *SessionUseCase) ListForUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	sessions, err := c.SessionRepository.FindByUser(ctx, request.ID)
	if err != nil {
		result.Error = c.internalError("ListForUser", err)
		return result
	}
	result.Data = sessions
	return result
}

func (c *SessionUseCase) Get(ctx context.Context, request *model.GetSessionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	session, err := c.SessionRepository.FindByID(ctx, request.ID)
	if err != nil {
		result.Error = c.lookupError("Get", "session", request.ID, err)
		return result
	}
	if !session.Participant(request.ActorID) {
		// non-participants cannot learn the session exists
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("session with id %s not found", request.ID)
		result.Error = errObj
		return result
	}
	result.Data = session
	return result
}

// ExpireStale rejects requests left pending longer than sessions.pending_ttl; a zero ttl disables it.
func (c *SessionUseCase) ExpireStale(ctx context.Context) utils.Result {
	var result utils.Result

	ttl := c.Config.GetDuration("sessions.pending_ttl")
	if ttl <= 0 {
		result.Data = int64(0)
		return result
	}
	n, err := c.SessionRepository.ExpirePending(ctx, time.Now().UTC().Add(-ttl))
	if err != nil {
		result.Error = c.internalError("ExpireStale", err)
		return result
	}
	if n > 0 {
		c.Log.Info("session-usecase", fmt.Sprintf("%d stale requests rejected", n), "ExpireStale", ttl.String())
	}
	result.Data = n
	return result
}

// Pricing breaks a booking down the way the booking form shows it: the fee is
// taken out of the subtotal, so the student pays the subtotal and the tutor gets the rest.
func (c *SessionUseCase) Pricing(ctx context.Context, request *model.PricingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	pct := c.Config.GetFloat64("pricing.platform_fee_percentage")
	if request.FeePercentage != nil {
		pct = *request.FeePercentage
	}
	result.Data = PricingBreakdown(request.HourlyRate, request.Hours, pct)
	return result
}

// PricingBreakdown rounds half away from zero at whole coins.
func PricingBreakdown(hourlyRate int64, hours, feePct float64) model.PricingBreakdown {
	subtotal := decimal.NewFromInt(hourlyRate).Mul(decimal.NewFromFloat(hours)).Round(0).IntPart()
	fee := decimal.NewFromInt(subtotal).Mul(decimal.NewFromFloat(feePct)).Div(decimal.NewFromInt(100)).Round(0).IntPart()
	return model.PricingBreakdown{
		HourlyRate:            hourlyRate,
		EstimatedHours:        hours,
		Subtotal:              subtotal,
		PlatformFee:           fee,
		PlatformFeePercentage: feePct,
		Total:                 subtotal,
		TutorReceives:         subtotal - fee,
	}
}

func transitionError(from, to entity.SessionStatus) error {
	errObj := httpError.NewConflict()
	errObj.Message = fmt.Sprintf("cannot move session from %s to %s", from, to)
	return errObj
}

func (c *SessionUseCase) lookupError(scope, what, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("%s with id %s not found", what, id)
		return errObj
	}
	return c.internalError(scope, err)
}

func (c *SessionUseCase) internalError(scope string, err error) error {
	c.Log.Error("session-usecase", err.Error(), scope, "")
	errObj := httpError.NewInternalServerError()
	errObj.Message = "something went wrong, please try again"
	return errObj
}

func (c *SessionUseCase) track(name, userID string, params map[string]interface{}) {
	if c.Analytics != nil {
		c.Analytics.Track(name, userID, params)
	}
}
