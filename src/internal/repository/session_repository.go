package repository

import (
	"context"
	"fmt"
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

const sessionColumns = `id, student_id, student_name, tutor_id, tutor_name, skill, problem, skill_coins_offered,
	status, created_at, updated_at`

type SessionRepository struct {
	DB mysql.DBInterface
}

func NewSessionRepository(db mysql.DBInterface) *SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.SessionRequest) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO session_requests (id, student_id, student_name, tutor_id, tutor_name, skill, problem,
			skill_coins_offered, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.StudentID, s.StudentName, s.TutorID, s.TutorName, s.Skill, s.Problem,
		s.SkillCoinsOffered, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	return translate(err)
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entity.SessionRequest, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var s entity.SessionRequest
	query := fmt.Sprintf("SELECT %s FROM session_requests WHERE id = ?", sessionColumns)
	if err := db.GetContext(ctx, &s, query, id); err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SessionRepository) FindPendingByTutor(ctx context.Context, tutorID string) ([]entity.SessionRequest, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	sessions := []entity.SessionRequest{}
	query := fmt.Sprintf(
		"SELECT %s FROM session_requests WHERE tutor_id = ? AND status = ? ORDER BY created_at DESC", sessionColumns)
	if err := db.SelectContext(ctx, &sessions, query, tutorID, entity.SessionPending); err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindByUser returns sessions where the user is either side, newest first.
func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]entity.SessionRequest, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	sessions := []entity.SessionRequest{}
	query := fmt.Sprintf(
		"SELECT %s FROM session_requests WHERE student_id = ? OR tutor_id = ? ORDER BY created_at DESC", sessionColumns)
	if err := db.SelectContext(ctx, &sessions, query, userID, userID); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) RecentProblems(ctx context.Context, studentID string, limit int) ([]string, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	problems := []string{}
	query := "SELECT problem FROM session_requests WHERE student_id = ? ORDER BY created_at DESC LIMIT ?"
	if err := db.SelectContext(ctx, &problems, query, studentID, limit); err != nil {
		return nil, err
	}
	return problems, nil
}

// UpdateStatus moves a session from one status to another only if it is still in `from`.
func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, from, to entity.SessionStatus) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx,
		"UPDATE session_requests SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		to, time.Now().UTC(), id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ExpirePending rejects every request still pending since before the cutoff.
func (r *SessionRepository) ExpirePending(ctx context.Context, before time.Time) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx,
		"UPDATE session_requests SET status = ?, updated_at = ? WHERE status = ? AND created_at < ?",
		entity.SessionRejected, time.Now().UTC(), entity.SessionPending, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Complete marks an accepted session completed and moves the offered coins from student to tutor.
// Everything happens in one transaction; any failure leaves balances and status untouched.
func (r *SessionRepository) Complete(ctx context.Context, s *entity.SessionRequest) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	amount := s.SkillCoinsOffered

	res, err := tx.ExecContext(ctx,
		"UPDATE session_requests SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		entity.SessionCompleted, now, s.ID, entity.SessionAccepted)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n != 1 {
		return ErrInvalidTransition
	}

	res, err = tx.ExecContext(ctx,
		"UPDATE users SET skill_coins = skill_coins - ?, updated_at = ? WHERE id = ? AND skill_coins >= ?",
		amount, now, s.StudentID, amount)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n != 1 {
		return ErrInsufficientBalance
	}

	res, err = tx.ExecContext(ctx,
		"UPDATE users SET skill_coins = skill_coins + ?, updated_at = ? WHERE id = ?",
		amount, now, s.TutorID)
	if err != nil {
		return err
	}
	if err := expectOneRow(res); err != nil {
		return err
	}

	sessionID := s.ID
	entries := []*entity.WalletTransaction{
		{
			ID: uuid.NewString(), UserID: s.StudentID, SessionID: &sessionID, Type: entity.TransactionSpent,
			Amount: amount, Description: fmt.Sprintf("%s session with %s", s.Skill, s.TutorName), CreatedAt: now,
		},
		{
			ID: uuid.NewString(), UserID: s.TutorID, SessionID: &sessionID, Type: entity.TransactionEarned,
			Amount: amount, Description: fmt.Sprintf("%s session with %s", s.Skill, s.StudentName), CreatedAt: now,
		},
	}
	for _, e := range entries {
		if err := insertTransaction(ctx, tx, e); err != nil {
			return err
		}
	}

	return tx.Commit()
}
