package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswitch-service/src/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionRowColumns = []string{
	"id", "student_id", "student_name", "tutor_id", "tutor_name", "skill", "problem",
	"skill_coins_offered", "status", "created_at", "updated_at",
}

func acceptedSession() *entity.SessionRequest {
	return &entity.SessionRequest{
		ID: "s1", StudentID: "stu", StudentName: "Asha", TutorID: "tut", TutorName: "Ravi",
		Skill: "Python", Problem: "loops", SkillCoinsOffered: 50, Status: entity.SessionAccepted,
	}
}

func TestSessionRepositoryFindPendingByTutor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM session_requests WHERE tutor_id = \\? AND status = \\?").
		WithArgs("tut", entity.SessionPending).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).
			AddRow("s2", "stu", "Asha", "tut", "Ravi", "Python", "loops", 50, "pending", now, now))

	got, err := repo.FindPendingByTutor(context.Background(), "tut")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.SessionPending, got[0].Status)
	assert.Equal(t, int64(50), got[0].SkillCoinsOffered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "moved", affected: 1, want: true},
		{name: "status already changed", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSessionRepository(db)

			mock.ExpectExec("UPDATE session_requests SET status = \\?").
				WithArgs(entity.SessionAccepted, sqlmock.AnyArg(), "s1", entity.SessionPending).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.UpdateStatus(context.Background(), "s1", entity.SessionPending, entity.SessionAccepted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepositoryExpirePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE session_requests SET status = \\?, updated_at = \\? WHERE status = \\? AND created_at < \\?").
		WithArgs(entity.SessionRejected, sqlmock.AnyArg(), entity.SessionPending, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ExpirePending(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryComplete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	s := acceptedSession()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE session_requests SET status = \\?").
		WithArgs(entity.SessionCompleted, sqlmock.AnyArg(), "s1", entity.SessionAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET skill_coins = skill_coins - \\?").
		WithArgs(int64(50), sqlmock.AnyArg(), "stu", int64(50)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET skill_coins = skill_coins \\+ \\?").
		WithArgs(int64(50), sqlmock.AnyArg(), "tut").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WithArgs(sqlmock.AnyArg(), "stu", "s1", entity.TransactionSpent, int64(50), "Python session with Ravi", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WithArgs(sqlmock.AnyArg(), "tut", "s1", entity.TransactionEarned, int64(50), "Python session with Asha", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Complete(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCompleteRollsBack(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "not accepted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE session_requests").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "student cannot pay",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE session_requests").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("skill_coins - \\?").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name: "tutor gone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE session_requests").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("skill_coins - \\?").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("skill_coins \\+ \\?").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSessionRepository(db)

			mock.ExpectBegin()
			tt.setup(mock)
			mock.ExpectRollback()

			err := repo.Complete(context.Background(), acceptedSession())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepositoryCompleteLedgerFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	boom := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE session_requests").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("skill_coins - \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("skill_coins \\+ \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Complete(context.Background(), acceptedSession())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryRecentProblems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT problem FROM session_requests WHERE student_id = \\?").
		WithArgs("stu", 5).
		WillReturnRows(sqlmock.NewRows([]string{"problem"}).AddRow("loops").AddRow("recursion"))

	got, err := repo.RecentProblems(context.Background(), "stu", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"loops", "recursion"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
