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
)

type ReviewUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	UserRepository    UserStore
	SessionRepository SessionStore
	ReviewRepository  ReviewStore
	Analytics         EventTracker
}

func NewReviewUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
	sessionRepository SessionStore,
	reviewRepository ReviewStore,
	analytics EventTracker,
) *ReviewUseCase {
	return &ReviewUseCase{
		Log:               logger,
		Validate:          validate,
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		ReviewRepository:  reviewRepository,
		Analytics:         analytics,
	}
}

// Create records a participant's review of the other side of a completed session.
func (c *ReviewUseCase) Create(ctx context.Context, request *model.CreateReviewRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	session, err := c.SessionRepository.FindByID(ctx, request.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("session with id %s not found", request.SessionID)
			result.Error = errObj
			return result
		}
		result.Error = c.internalError("Create", err)
		return result
	}
	if !session.Participant(request.ReviewerID) {
		errObj := httpError.NewForbidden()
		errObj.Message = "only participants can review this session"
		result.Error = errObj
		return result
	}
	if session.Status != entity.SessionCompleted {
		errObj := httpError.NewConflict()
		errObj.Message = "reviews open once the session is completed"
		result.Error = errObj
		return result
	}

	revieweeID, kind := session.TutorID, entity.ReviewOfTutor
	if request.ReviewerID == session.TutorID {
		revieweeID, kind = session.StudentID, entity.ReviewOfStudent
	}

	reviewer, err := c.UserRepository.FindByID(ctx, request.ReviewerID)
	if err != nil {
		result.Error = c.internalError("Create", err)
		return result
	}

	review := &entity.Review{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		ReviewerID:    reviewer.UserID,
		ReviewerName:  reviewer.FullName,
		ReviewerPhoto: reviewer.PhotoURL,
		RevieweeID:    revieweeID,
		Type:          kind,
		Rating:        request.Rating,
		Comment:       strings.TrimSpace(request.Comment),
		Tags:          normalizeSkills(request.Tags),
		CreatedAt:     time.Now().UTC(),
	}
	if err := c.ReviewRepository.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			errObj := httpError.NewConflict()
			errObj.Message = "you have already reviewed this session"
			result.Error = errObj
			return result
		}
		result.Error = c.internalError("Create", err)
		return result
	}

	if kind == entity.ReviewOfTutor {
		if err := c.UserRepository.AddRating(ctx, revieweeID, review.Rating); err != nil {
			c.Log.Error("review-usecase", err.Error(), "Create", "rating not folded in for "+revieweeID)
		}
	}

	if c.Analytics != nil {
		c.Analytics.Track(model.EventReviewSubmitted, reviewer.UserID, map[string]interface{}{
			"session_id": session.ID, "rating": review.Rating, "type": kind,
		})
	}
	result.Data = review
	return result
}

func (c *ReviewUseCase) ListForUser(ctx context.Context, request *model.ListReviewsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	reviews, err := c.ReviewRepository.ListByReviewee(ctx, request.RevieweeID)
	if err != nil {
		result.Error = c.internalError("ListForUser", err)
		return result
	}
	result.Data = reviews
	return result
}

func (c *ReviewUseCase) MarkHelpful(ctx context.Context, request *model.MarkHelpfulRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	review, err := c.ReviewRepository.IncrementHelpful(ctx, request.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("review with id %s not found", request.ID)
			result.Error = errObj
			return result
		}
		result.Error = c.internalError("MarkHelpful", err)
		return result
	}
	result.Data = review
	return result
}

func (c *ReviewUseCase) internalError(scope string, err error) error {
	c.Log.Error("review-usecase", err.Error(), scope, "")
	errObj := httpError.NewInternalServerError()
	errObj.Message = "something went wrong, please try again"
	return errObj
}
