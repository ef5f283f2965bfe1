package usecase

import (
	"context"
	"time"

	"skillswitch-service/src/internal/entity"
)

// The usecases depend on these narrow views of the repositories so tests can swap in fakes.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByStudentID(ctx context.Context, studentID string) (*entity.User, error)
	FindByProviderSubject(ctx context.Context, provider, subject string) (*entity.User, error)
	ListTutors(ctx context.Context, excludeID string) ([]entity.User, error)
	Create(ctx context.Context, user *entity.User, bonus *entity.WalletTransaction) error
	UpdateProfile(ctx context.Context, user *entity.User) error
	MarkVerified(ctx context.Context, id string, at time.Time) error
	AddRating(ctx context.Context, id string, rating int) error
}

type WalletStore interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.WalletTransaction, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *entity.SessionRequest) error
	FindByID(ctx context.Context, id string) (*entity.SessionRequest, error)
	FindPendingByTutor(ctx context.Context, tutorID string) ([]entity.SessionRequest, error)
	FindByUser(ctx context.Context, userID string) ([]entity.SessionRequest, error)
	RecentProblems(ctx context.Context, studentID string, limit int) ([]string, error)
	UpdateStatus(ctx context.Context, id string, from, to entity.SessionStatus) (bool, error)
	ExpirePending(ctx context.Context, before time.Time) (int64, error)
	Complete(ctx context.Context, s *entity.SessionRequest) error
}

type ReviewStore interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByReviewee(ctx context.Context, revieweeID string) ([]entity.Review, error)
	IncrementHelpful(ctx context.Context, id string) (*entity.Review, error)
}

type ResourceStore interface {
	List(ctx context.Context, category, sort string) ([]entity.Resource, error)
	FindByID(ctx context.Context, id string) (*entity.Resource, error)
	IncrementDownloads(ctx context.Context, id string) error
}

// EventTracker records product analytics; implementations must not block or fail the caller.
type EventTracker interface {
	Track(name, userID string, params map[string]interface{})
}
