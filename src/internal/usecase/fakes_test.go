package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/repository"
	"skillswitch-service/src/pkg/log"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var errStore = errors.New("store unavailable")

func newRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func testConfig() *viper.Viper {
	v := viper.New()
	v.Set("app.name", "skillswitch-test")
	v.Set("auth.jwt.secret", "test-secret")
	v.Set("auth.jwt.ttl", "1h")
	v.Set("auth.bcrypt_cost", 4)
	v.Set("pricing.platform_fee_percentage", DefaultPlatformFeePct)
	return v
}

func testDeps() (log.Log, *validator.Validate) {
	return log.Discard(), validator.New()
}

type trackedEvent struct {
	Name   string
	UserID string
	Params map[string]interface{}
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (r *recordingTracker) Track(name, userID string, params map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{Name: name, UserID: userID, Params: params})
}

func (r *recordingTracker) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// memoryUsers keeps profiles and the ledger in memory; sessions share it to move coins.
type memoryUsers struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	ledger  []entity.WalletTransaction
	failAll bool
}

func newMemoryUsers(users ...*entity.User) *memoryUsers {
	m := &memoryUsers{users: map[string]*entity.User{}}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *memoryUsers) get(id string) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *m.users[id]
	return &u
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStore
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) FindByStudentID(ctx context.Context, studentID string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStore
	}
	for _, u := range m.users {
		if u.StudentID != nil && *u.StudentID == studentID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) FindByProviderSubject(ctx context.Context, provider, subject string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Provider == provider && u.ProviderSubject != nil && *u.ProviderSubject == subject {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) ListTutors(ctx context.Context, excludeID string) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errStore
	}
	out := []entity.User{}
	for _, u := range m.users {
		if u.UserID != excludeID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (m *memoryUsers) Create(ctx context.Context, user *entity.User, bonus *entity.WalletTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.UserID]; ok {
		return repository.ErrDuplicate
	}
	cp := *user
	m.users[user.UserID] = &cp
	if bonus != nil {
		m.ledger = append(m.ledger, *bonus)
	}
	return nil
}

func (m *memoryUsers) UpdateProfile(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.UserID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *memoryUsers) MarkVerified(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsVerified = true
	u.VerifiedAt = &at
	return nil
}

func (m *memoryUsers) AddRating(ctx context.Context, id string, rating int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Rating = (u.Rating*float64(u.RatingCount) + float64(rating)) / float64(u.RatingCount+1)
	u.RatingCount++
	return nil
}

func (m *memoryUsers) ListByUser(ctx context.Context, userID string, limit int) ([]entity.WalletTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.WalletTransaction{}
	for i := len(m.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if m.ledger[i].UserID == userID {
			out = append(out, m.ledger[i])
		}
	}
	return out, nil
}

type memorySessions struct {
	mu       sync.Mutex
	users    *memoryUsers
	sessions map[string]*entity.SessionRequest
	order    []string
}

func newMemorySessions(users *memoryUsers, sessions ...*entity.SessionRequest) *memorySessions {
	m := &memorySessions{users: users, sessions: map[string]*entity.SessionRequest{}}
	for _, s := range sessions {
		m.sessions[s.ID] = s
		m.order = append(m.order, s.ID)
	}
	return m
}

func (m *memorySessions) Create(ctx context.Context, s *entity.SessionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
	m.order = append(m.order, s.ID)
	return nil
}

func (m *memorySessions) FindByID(ctx context.Context, id string) (*entity.SessionRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memorySessions) filter(keep func(*entity.SessionRequest) bool) []entity.SessionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.SessionRequest{}
	for i := len(m.order) - 1; i >= 0; i-- {
		if s := m.sessions[m.order[i]]; keep(s) {
			out = append(out, *s)
		}
	}
	return out
}

func (m *memorySessions) FindPendingByTutor(ctx context.Context, tutorID string) ([]entity.SessionRequest, error) {
	return m.filter(func(s *entity.SessionRequest) bool {
		return s.TutorID == tutorID && s.Status == entity.SessionPending
	}), nil
}

func (m *memorySessions) FindByUser(ctx context.Context, userID string) ([]entity.SessionRequest, error) {
	return m.filter(func(s *entity.SessionRequest) bool { return s.Participant(userID) }), nil
}

func (m *memorySessions) RecentProblems(ctx context.Context, studentID string, limit int) ([]string, error) {
	out := []string{}
	for _, s := range m.filter(func(s *entity.SessionRequest) bool { return s.StudentID == studentID }) {
		if len(out) == limit {
			break
		}
		out = append(out, s.Problem)
	}
	return out, nil
}

func (m *memorySessions) UpdateStatus(ctx context.Context, id string, from, to entity.SessionStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (m *memorySessions) ExpirePending(ctx context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, s := range m.sessions {
		if s.Status == entity.SessionPending && s.CreatedAt.Before(before) {
			s.Status = entity.SessionRejected
			n++
		}
	}
	return n, nil
}

func (m *memorySessions) Complete(ctx context.Context, in *entity.SessionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users.mu.Lock()
	defer m.users.mu.Unlock()

	s, ok := m.sessions[in.ID]
	if !ok || s.Status != entity.SessionAccepted {
		return repository.ErrInvalidTransition
	}
	student, tutor := m.users.users[s.StudentID], m.users.users[s.TutorID]
	if student == nil || student.SkillCoins < s.SkillCoinsOffered {
		return repository.ErrInsufficientBalance
	}
	if tutor == nil {
		return repository.ErrNotFound
	}
	s.Status = entity.SessionCompleted
	student.SkillCoins -= s.SkillCoinsOffered
	tutor.SkillCoins += s.SkillCoinsOffered
	sid := s.ID
	m.users.ledger = append(m.users.ledger,
		entity.WalletTransaction{UserID: student.UserID, SessionID: &sid, Type: entity.TransactionSpent, Amount: s.SkillCoinsOffered},
		entity.WalletTransaction{UserID: tutor.UserID, SessionID: &sid, Type: entity.TransactionEarned, Amount: s.SkillCoinsOffered},
	)
	return nil
}

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func strPtr(s string) *string { return &s }
