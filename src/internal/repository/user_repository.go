package repository

import (
	"context"
	"fmt"
	"time"

	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/pkg/databases/mysql"
)

const userColumns = `id, student_id, email, password_hash, provider, provider_subject, name, university,
	photo_url, bio, skills, skill_coins, hourly_rate, rating, rating_count, is_verified, verified_at,
	created_at, updated_at`

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByStudentID(ctx context.Context, studentID string) (*entity.User, error) {
	return r.findOne(ctx, "student_id = ?", studentID)
}

func (r *UserRepository) FindByProviderSubject(ctx context.Context, provider, subject string) (*entity.User, error) {
	return r.findOne(ctx, "provider = ? AND provider_subject = ?", provider, subject)
}

func (r *UserRepository) findOne(ctx context.Context, where string, args ...interface{}) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, where)
	if err := db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListTutors returns every profile except excludeID, best rated first.
func (r *UserRepository) ListTutors(ctx context.Context, excludeID string) ([]entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	users := []entity.User{}
	query := fmt.Sprintf("SELECT %s FROM users WHERE id <> ? ORDER BY rating DESC, name ASC", userColumns)
	if err := db.SelectContext(ctx, &users, query, excludeID); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts the profile and its welcome bonus ledger row in one transaction.
func (r *UserRepository) Create(ctx context.Context, user *entity.User, bonus *entity.WalletTransaction) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, student_id, email, password_hash, provider, provider_subject, name, university,
			photo_url, bio, skills, skill_coins, hourly_rate, rating, rating_count, is_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.StudentID, user.Email, user.PasswordHash, user.Provider, user.ProviderSubject,
		user.FullName, user.University, user.PhotoURL, user.Bio, user.Skills, user.SkillCoins,
		user.HourlyRate, user.Rating, user.RatingCount, user.IsVerified, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return translate(err)
	}

	if bonus != nil {
		if err := insertTransaction(ctx, tx, bonus); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE users SET name = ?, university = ?, bio = ?, photo_url = ?, skills = ?, hourly_rate = ?, updated_at = ?
		WHERE id = ?`,
		user.FullName, user.University, user.Bio, user.PhotoURL, user.Skills, user.HourlyRate, user.UpdatedAt, user.UserID,
	)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *UserRepository) MarkVerified(ctx context.Context, id string, at time.Time) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		"UPDATE users SET is_verified = TRUE, verified_at = ?, updated_at = ? WHERE id = ?", at, at, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// AddRating folds one more review into the running average.
func (r *UserRepository) AddRating(ctx context.Context, id string, rating int) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE users
		SET rating = ((rating * rating_count) + ?) / (rating_count + 1), rating_count = rating_count + 1
		WHERE id = ?`, rating, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
