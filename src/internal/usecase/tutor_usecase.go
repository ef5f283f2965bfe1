package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/model/converter"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

const matchCacheTTL = 10 * time.Minute

type TutorUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository UserStore
	Redis          redis.UniversalClient
	Ranker         *TutorRanker
	Analytics      EventTracker
}

func NewTutorUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
	redisClient redis.UniversalClient,
	ranker *TutorRanker,
	analytics EventTracker,
) *TutorUseCase {
	return &TutorUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Redis:          redisClient,
		Ranker:         ranker,
		Analytics:      analytics,
	}
}

// List returns every profile except the caller's as a tutor listing.
func (c *TutorUseCase) List(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	tutors, err := c.listings(ctx, request.ID)
	if err != nil {
		result.Error = err
		return result
	}
	result.Data = tutors
	return result
}

func (c *TutorUseCase) Search(ctx context.Context, request *model.MatchRequest) utils.Result {
	var result utils.Result

	request.Problem = strings.TrimSpace(request.Problem)
	request.Subject = strings.TrimSpace(request.Subject)
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tutors, err := c.listings(ctx, request.UserID)
	if err != nil {
		result.Error = err
		return result
	}

	problem := request.Problem
	if request.Subject != "" {
		problem = request.Subject + ": " + problem
	}

	key := matchCacheKey(problem, tutors)
	if cached, ok := c.cachedMatch(ctx, key, tutors); ok {
		c.track(request.UserID, request.Problem, cached)
		result.Data = cached
		return result
	}

	match := c.Ranker.Rank(ctx, problem, tutors)
	if match.Source == model.MatchSourceAI {
		c.storeMatch(ctx, key, match)
	}

	c.track(request.UserID, request.Problem, match)
	result.Data = match
	return result
}

func (c *TutorUseCase) listings(ctx context.Context, excludeID string) ([]model.Tutor, error) {
	users, err := c.UserRepository.ListTutors(ctx, excludeID)
	if err != nil {
		c.Log.Error("tutor-usecase", err.Error(), "listings", excludeID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "could not load tutors, please try again"
		return nil, errObj
	}
	tutors := make([]model.Tutor, 0, len(users))
	for i := range users {
		tutors = append(tutors, converter.UserToTutor(&users[i]))
	}
	return tutors, nil
}

// cachedRanking keeps only the generator's verdict; tutor details are always read fresh.
type cachedRanking struct {
	TutorIDs   []string `json:"tutorIds"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// storeMatch caches AI rankings only, so a keyword fallback never hides a recovered generator.
func (c *TutorUseCase) storeMatch(ctx context.Context, key string, match model.MatchResponse) {
	entry := cachedRanking{TutorIDs: make([]string, 0, len(match.Tutors)), Confidence: match.Confidence, Reasoning: match.Reasoning}
	for _, t := range match.Tutors {
		entry.TutorIDs = append(entry.TutorIDs, t.ID)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, key, raw, matchCacheTTL).Err(); err != nil {
		c.Log.Error("tutor-usecase", err.Error(), "storeMatch", key)
	}
}

func (c *TutorUseCase) cachedMatch(ctx context.Context, key string, tutors []model.Tutor) (model.MatchResponse, bool) {
	raw, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.Log.Error("tutor-usecase", err.Error(), "cachedMatch", key)
		}
		return model.MatchResponse{}, false
	}
	var entry cachedRanking
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.MatchResponse{}, false
	}

	byID := make(map[string]model.Tutor, len(tutors))
	for _, t := range tutors {
		byID[t.ID] = t
	}
	ranked := make([]model.Tutor, 0, len(entry.TutorIDs))
	for _, id := range entry.TutorIDs {
		t, ok := byID[id]
		if !ok {
			return model.MatchResponse{}, false
		}
		ranked = append(ranked, t)
	}
	return model.MatchResponse{
		Tutors:     ranked,
		Confidence: entry.Confidence,
		Source:     model.MatchSourceAI,
		Reasoning:  entry.Reasoning,
	}, true
}

func (c *TutorUseCase) track(userID, term string, match model.MatchResponse) {
	if c.Analytics == nil {
		return
	}
	c.Analytics.Track(model.EventSearch, userID, map[string]interface{}{
		"search_term":   term,
		"results_count": len(match.Tutors),
		"source":        match.Source,
	})
}

// matchCacheKey changes whenever the problem or the candidate set changes.
func matchCacheKey(problem string, tutors []model.Tutor) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(problem)))
	for _, t := range tutors {
		h.Write([]byte{0})
		h.Write([]byte(t.ID))
		h.Write([]byte(strings.Join(t.Skills, ",")))
	}
	return "MATCH:" + hex.EncodeToString(h.Sum(nil))
}
