package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a sqlx.DB speaking the PostgreSQL dialect over sqlmock.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func TestCategoryDatabaseAdapter_ListAll(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(2, "Art").
		AddRow(5, "Entertainment").
		AddRow(1, "Science")
	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).WillReturnRows(rows)

	categories, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Category{
		{ID: 2, Type: "Art"},
		{ID: 5, Type: "Entertainment"},
		{ID: 1, Type: "Science"},
	}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDatabaseAdapter_ListAll_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))

	categories, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDatabaseAdapter_ListAll_StoreError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	dbErr := errors.New("relation \"categories\" does not exist")
	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).WillReturnError(dbErr)

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeStore))
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
