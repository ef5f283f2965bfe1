package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/gateway/identity"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/model/converter"
	"skillswitch-service/src/internal/repository"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/token"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	WelcomeBonus      = 100
	defaultHourlyRate = 50
	defaultRating     = 4.5
	transactionsLimit = 50
)

type UserUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	UserRepository   UserStore
	WalletRepository WalletStore
	Config           *viper.Viper
	Redis            redis.UniversalClient
	Identity         identity.Verifier
	Analytics        EventTracker
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
	walletRepository WalletStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	verifier identity.Verifier,
	analytics EventTracker,
) *UserUseCase {
	return &UserUseCase{
		Log:              logger,
		Validate:         validate,
		UserRepository:   userRepository,
		WalletRepository: walletRepository,
		Config:           cfg,
		Redis:            redisClient,
		Identity:         verifier,
		Analytics:        analytics,
	}
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	request.StudentID = strings.TrimSpace(request.StudentID)
	request.Name = strings.TrimSpace(request.Name)
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", utils.ConvertString(request.StudentID))
		return result
	}

	_, err := c.UserRepository.FindByStudentID(ctx, request.StudentID)
	if err == nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("student ID %s is already registered", request.StudentID)
		result.Error = errObj
		return result
	}
	if !errors.Is(err, repository.ErrNotFound) {
		result.Error = c.internalError("Register", err)
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), c.bcryptCost())
	if err != nil {
		result.Error = c.internalError("Register", err)
		return result
	}
	passwordHash := string(hash)
	studentID := request.StudentID

	now := time.Now().UTC()
	user := &entity.User{
		UserID:       uuid.NewString(),
		StudentID:    &studentID,
		PasswordHash: &passwordHash,
		Provider:     entity.ProviderCredentials,
		FullName:     request.Name,
		University:   strings.TrimSpace(request.University),
		Skills:       normalizeSkills(request.Skills),
		SkillCoins:   WelcomeBonus,
		HourlyRate:   defaultHourlyRate,
		Rating:       defaultRating,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.UserRepository.Create(ctx, user, welcomeBonus(user.UserID, now)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("student ID %s is already registered", request.StudentID)
			result.Error = errObj
			return result
		}
		result.Error = c.internalError("Register", err)
		return result
	}

	auth, err := c.issueSession(ctx, user, true)
	if err != nil {
		result.Error = c.internalError("Register", err)
		return result
	}

	c.Log.Info("user-usecase", "user registered", "Register", user.UserID)
	c.track(model.EventSignUp, user.UserID, map[string]interface{}{"method": entity.ProviderCredentials})
	c.track(model.EventCoinTransaction, user.UserID, map[string]interface{}{"type": entity.TransactionBonus, "amount": WelcomeBonus})
	result.Data = auth
	return result
}

func (c *UserUseCase) SignInWithCredentials(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	request.StudentID = strings.TrimSpace(request.StudentID)
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	invalid := httpError.NewUnauthorized()
	invalid.Message = "invalid student ID or password"

	user, err := c.UserRepository.FindByStudentID(ctx, request.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			result.Error = invalid
			return result
		}
		result.Error = c.internalError("SignInWithCredentials", err)
		return result
	}
	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(request.Password)) != nil {
		c.Log.Info("user-usecase", "password mismatch", "SignInWithCredentials", request.StudentID)
		result.Error = invalid
		return result
	}

	auth, err := c.issueSession(ctx, user, false)
	if err != nil {
		result.Error = c.internalError("SignInWithCredentials", err)
		return result
	}

	c.track(model.EventLogin, user.UserID, map[string]interface{}{"method": entity.ProviderCredentials})
	result.Data = auth
	return result
}

// SignInWithProvider verifies a Google ID token and provisions a profile on first sign-in.
func (c *UserUseCase) SignInWithProvider(ctx context.Context, request *model.ProviderLoginRequest) utils.Result {
	var result utils.Result

	if c.Identity == nil {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = "Google sign-in is not configured"
		result.Error = errObj
		return result
	}
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	id, err := c.Identity.Verify(ctx, request.IDToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidIDToken) {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "Google sign-in failed, token rejected"
			result.Error = errObj
			return result
		}
		c.Log.Error("user-usecase", err.Error(), "SignInWithProvider", "")
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = "Google sign-in is unavailable, please try again"
		result.Error = errObj
		return result
	}

	user, err := c.UserRepository.FindByProviderSubject(ctx, entity.ProviderGoogle, id.Subject)
	isNew := false
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		user, err = c.provision(ctx, id)
		if errors.Is(err, repository.ErrDuplicate) {
			// a concurrent first sign-in won the insert
			user, err = c.UserRepository.FindByProviderSubject(ctx, entity.ProviderGoogle, id.Subject)
		} else {
			isNew = err == nil
		}
		if err != nil {
			result.Error = c.internalError("SignInWithProvider", err)
			return result
		}
	default:
		result.Error = c.internalError("SignInWithProvider", err)
		return result
	}

	auth, err := c.issueSession(ctx, user, isNew)
	if err != nil {
		result.Error = c.internalError("SignInWithProvider", err)
		return result
	}

	event := model.EventLogin
	if isNew {
		event = model.EventSignUp
		c.track(model.EventCoinTransaction, user.UserID, map[string]interface{}{"type": entity.TransactionBonus, "amount": WelcomeBonus})
	}
	c.track(event, user.UserID, map[string]interface{}{"method": entity.ProviderGoogle})
	result.Data = auth
	return result
}

func (c *UserUseCase) provision(ctx context.Context, id *identity.Identity) (*entity.User, error) {
	now := time.Now().UTC()
	subject := id.Subject
	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = "Student"
	}

	user := &entity.User{
		UserID:          uuid.NewString(),
		Provider:        entity.ProviderGoogle,
		ProviderSubject: &subject,
		FullName:        name,
		Skills:          entity.StringList{},
		SkillCoins:      WelcomeBonus,
		HourlyRate:      defaultHourlyRate,
		Rating:          defaultRating,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if id.Email != "" {
		email := id.Email
		user.Email = &email
	}
	if id.PhotoURL != "" {
		photo := id.PhotoURL
		user.PhotoURL = &photo
	}

	if err := c.UserRepository.Create(ctx, user, welcomeBonus(user.UserID, now)); err != nil {
		return nil, err
	}
	c.Log.Info("user-usecase", "provisioned profile for provider account", "provision", user.UserID)
	return user, nil
}

func (c *UserUseCase) SignOut(ctx context.Context, request *model.LogoutUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}
	if err := c.Redis.Del(ctx, token.SessionKey(request.SessionID)).Err(); err != nil {
		result.Error = c.internalError("SignOut", err)
		return result
	}

	result.Data = map[string]string{"status": model.AuthStateAnonymous}
	return result
}

// SessionState never fails: anything short of a live session is reported as anonymous.
func (c *UserUseCase) SessionState(ctx context.Context, rawToken string) utils.Result {
	anonymous := utils.Result{Data: model.SessionStateResponse{Status: model.AuthStateAnonymous}}
	if rawToken == "" {
		return anonymous
	}

	claim, err := token.Parse(c.Config.GetString("auth.jwt.secret"), rawToken)
	if err != nil {
		return anonymous
	}
	owner, err := c.Redis.Get(ctx, token.SessionKey(claim.ID)).Result()
	if err != nil || owner != claim.Metadata.UserID {
		return anonymous
	}
	user, err := c.UserRepository.FindByID(ctx, claim.Metadata.UserID)
	if err != nil {
		return anonymous
	}

	return utils.Result{Data: model.SessionStateResponse{
		Status: model.AuthStateAuthenticated,
		User:   converter.UserToResponse(user),
	}}
}

func (c *UserUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("GetUser-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	user, err := c.findUser(ctx, request.ID)
	if err != nil {
		result.Error = err
		return result
	}
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) UpdateProfile(ctx context.Context, request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.findUser(ctx, request.ID)
	if err != nil {
		result.Error = err
		return result
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			errObj := httpError.NewBadRequest()
			errObj.Message = "name must not be blank"
			result.Error = errObj
			return result
		}
		user.FullName = name
	}
	if request.University != nil {
		user.University = strings.TrimSpace(*request.University)
	}
	if request.Bio != nil {
		bio := strings.TrimSpace(*request.Bio)
		user.Bio = &bio
	}
	if request.PhotoURL != nil {
		photo := strings.TrimSpace(*request.PhotoURL)
		user.PhotoURL = &photo
	}
	if request.Skills != nil {
		user.Skills = normalizeSkills(request.Skills)
	}
	if request.HourlyRate != nil {
		user.HourlyRate = *request.HourlyRate
	}
	user.UpdatedAt = time.Now().UTC()

	if err := c.UserRepository.UpdateProfile(ctx, user); err != nil {
		result.Error = c.internalError("UpdateProfile", err)
		return result
	}

	c.Log.Info("user-usecase", "profile updated", "UpdateProfile", user.UserID)
	result.Data = converter.UserToResponse(user)
	return result
}

// Verify marks the profile verified when the supplied student ID matches the registered one.
func (c *UserUseCase) Verify(ctx context.Context, request *model.VerifyUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.findUser(ctx, request.ID)
	if err != nil {
		result.Error = err
		return result
	}
	if user.IsVerified {
		result.Data = converter.UserToResponse(user)
		return result
	}

	matched := user.StudentID != nil && strings.EqualFold(strings.TrimSpace(*user.StudentID), strings.TrimSpace(request.StudentID))
	c.track(model.EventVerificationAttempt, user.UserID, map[string]interface{}{"success": matched})
	if !matched {
		errObj := httpError.NewBadRequest()
		errObj.Message = "student ID does not match this profile"
		result.Error = errObj
		return result
	}

	now := time.Now().UTC()
	if err := c.UserRepository.MarkVerified(ctx, user.UserID, now); err != nil {
		result.Error = c.internalError("Verify", err)
		return result
	}
	user.IsVerified = true
	user.VerifiedAt = &now
	user.UpdatedAt = now

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Transactions(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	rows, err := c.WalletRepository.ListByUser(ctx, request.ID, transactionsLimit)
	if err != nil {
		result.Error = c.internalError("Transactions", err)
		return result
	}

	res := make([]model.TransactionResponse, 0, len(rows))
	for i := range rows {
		res = append(res, converter.TransactionToResponse(&rows[i]))
	}
	result.Data = res
	return result
}

func (c *UserUseCase) findUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := c.UserRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("user with id %s not found", id)
			return nil, errObj
		}
		return nil, c.internalError("findUser", err)
	}
	return user, nil
}

func (c *UserUseCase) issueSession(ctx context.Context, user *entity.User, isNew bool) (*model.AuthResponse, error) {
	ttl := c.Config.GetDuration("auth.jwt.ttl")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	signed, claim, err := token.Issue(
		c.Config.GetString("auth.jwt.secret"),
		c.Config.GetString("app.name"),
		ttl,
		token.Metadata{UserID: user.UserID, FullName: user.FullName},
	)
	if err != nil {
		return nil, err
	}
	if err := c.Redis.Set(ctx, token.SessionKey(claim.ID), user.UserID, ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &model.AuthResponse{
		Token:     signed,
		ExpiresAt: claim.ExpiresAt.Time,
		IsNewUser: isNew,
		User:      *converter.UserToResponse(user),
	}, nil
}

func (c *UserUseCase) bcryptCost() int {
	cost := c.Config.GetInt("auth.bcrypt_cost")
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

func (c *UserUseCase) internalError(scope string, err error) error {
	c.Log.Error("user-usecase", err.Error(), scope, "")
	errObj := httpError.NewInternalServerError()
	errObj.Message = "something went wrong, please try again"
	return errObj
}

func (c *UserUseCase) track(name, userID string, params map[string]interface{}) {
	if c.Analytics != nil {
		c.Analytics.Track(name, userID, params)
	}
}

func welcomeBonus(userID string, at time.Time) *entity.WalletTransaction {
	return &entity.WalletTransaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        entity.TransactionBonus,
		Amount:      WelcomeBonus,
		Description: "Welcome bonus",
		CreatedAt:   at,
	}
}

// normalizeSkills trims entries and drops blanks and case-insensitive duplicates, keeping first spelling.
func normalizeSkills(skills []string) entity.StringList {
	out := entity.StringList{}
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
