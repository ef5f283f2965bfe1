package repository

import (
	"context"
	"testing"

	"skillswitch-service/src/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRepositoryList(t *testing.T) {
	tests := []struct {
		name     string
		category string
		sort     string
		query    string
	}{
		{name: "all popular", category: "all", sort: "", query: "SELECT \\* FROM `resources` ORDER BY downloads DESC,id ASC"},
		{name: "notes cheapest", category: "notes", sort: "price-low", query: "SELECT \\* FROM `resources` WHERE category = \\? ORDER BY price ASC,id ASC"},
		{name: "unknown sort", category: "", sort: "random", query: "ORDER BY downloads DESC"},
		{name: "newest", category: "code", sort: "newest", query: "ORDER BY created_at DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockGorm(t)
			repo := NewResourceRepository(db)

			mock.ExpectQuery(tt.query).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "price"}).AddRow("1", "Notes", "notes", 0))

			got, err := repo.List(context.Background(), tt.category, tt.sort)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.True(t, got[0].Free())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepositoryIncrementDownloads(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewResourceRepository(db)

	mock.ExpectExec("UPDATE `resources` SET `downloads`=downloads \\+ \\?").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementDownloads(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepositorySeedIfEmpty(t *testing.T) {
	seed := []entity.Resource{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}

	t.Run("fresh database", func(t *testing.T) {
		db, mock := newMockGorm(t)
		repo := NewResourceRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `resources`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO `resources`").WillReturnResult(sqlmock.NewResult(0, 2))

		seeded, err := repo.SeedIfEmpty(context.Background(), seed)
		require.NoError(t, err)
		assert.True(t, seeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already seeded", func(t *testing.T) {
		db, mock := newMockGorm(t)
		repo := NewResourceRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `resources`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

		seeded, err := repo.SeedIfEmpty(context.Background(), seed)
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
