package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"surveyapi/models"
	"surveyapi/pkg/apperror"
	"surveyapi/services/dto"
	"surveyapi/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestCategoryService_Create_TrimsAndStores tests the happy path.
func TestCategoryService_Create_TrimsAndStores(t *testing.T) {
	srv := NewCategoryService(testutil.NewDB(t))

	res, err := srv.Create(context.Background(), dto.CategoryInput{Name: "  Drinks "})
	require.NoError(t, err)
	assert.Equal(t, uint(1), res.ID)
	assert.Equal(t, "Drinks", res.Name)
}

// TestCategoryService_Create_DuplicateIsConflict tests that a repeated name never creates a second row.
func TestCategoryService_Create_DuplicateIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	srv := NewCategoryService(db)
	ctx := context.Background()

	_, err := srv.Create(ctx, dto.CategoryInput{Name: "Drinks"})
	require.NoError(t, err)

	_, err = srv.Create(ctx, dto.CategoryInput{Name: " Drinks"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = srv.Create(ctx, dto.CategoryInput{Name: "drinks"})
	assert.NoError(t, err, "comparison is case-sensitive")

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Where("name = ?", "Drinks").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// TestCategoryService_Create_InvalidNameIs422 tests the create validation status.
func TestCategoryService_Create_InvalidNameIs422(t *testing.T) {
	srv := NewCategoryService(testutil.NewDB(t))

	for _, name := range []string{"", "   ", strings.Repeat("n", 101)} {
		_, err := srv.Create(context.Background(), dto.CategoryInput{Name: name})
		assert.Equal(t, http.StatusUnprocessableEntity, apperror.HTTPStatus(err), "name %q", name)
	}
}

// TestCategoryService_GetAndList tests reads.
func TestCategoryService_GetAndList(t *testing.T) {
	db := testutil.NewDB(t)
	srv := NewCategoryService(db)
	ctx := context.Background()

	drinks, err := srv.Create(ctx, dto.CategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	_, err = srv.Create(ctx, dto.CategoryInput{Name: "Food"})
	require.NoError(t, err)

	got, err := srv.Get(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", got.Name)

	_, err = srv.Get(ctx, 404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// rows that do not fit the public shape are skipped
	require.NoError(t, db.Exec("INSERT INTO categories (name) VALUES (?)", "").Error)

	list, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Drinks", list[0].Name)
	assert.Equal(t, "Food", list[1].Name)
}

// TestCategoryService_Rename tests the rename rules.
func TestCategoryService_Rename(t *testing.T) {
	srv := NewCategoryService(testutil.NewDB(t))
	ctx := context.Background()

	drinks, err := srv.Create(ctx, dto.CategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	_, err = srv.Create(ctx, dto.CategoryInput{Name: "Food"})
	require.NoError(t, err)

	renamed, err := srv.Rename(ctx, drinks.ID, dto.CategoryInput{Name: " Beverages "})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", renamed.Name)

	_, err = srv.Rename(ctx, drinks.ID, dto.CategoryInput{Name: "Beverages"})
	assert.NoError(t, err, "keeping its own name is not a conflict")

	_, err = srv.Rename(ctx, drinks.ID, dto.CategoryInput{Name: "Food"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = srv.Rename(ctx, drinks.ID, dto.CategoryInput{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, apperror.HTTPStatus(err))
	assert.Contains(t, err.Error(), "No name category provided")

	_, err = srv.Rename(ctx, drinks.ID, dto.CategoryInput{Name: strings.Repeat("n", 101)})
	assert.Equal(t, http.StatusBadRequest, apperror.HTTPStatus(err))

	_, err = srv.Rename(ctx, 999, dto.CategoryInput{Name: "Anything"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// TestCategoryService_Delete_RefusesWhileReferenced tests the owned-questions guard.
func TestCategoryService_Delete_RefusesWhileReferenced(t *testing.T) {
	db := testutil.NewDB(t)
	categories := NewCategoryService(db)
	questions := NewQuestionService(db, nil)
	ctx := context.Background()

	drinks, err := categories.Create(ctx, dto.CategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	q, err := questions.Create(ctx, dto.QuestionCreate{Question: strPtr("Do you like tea?"), CategoryID: uintPtr(drinks.ID)})
	require.NoError(t, err)

	err = categories.Delete(ctx, drinks.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Contains(t, err.Error(), "related questions")

	require.NoError(t, questions.Delete(ctx, q.ID))
	require.NoError(t, categories.Delete(ctx, drinks.ID))

	_, err = categories.Get(ctx, drinks.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, categories.Delete(ctx, drinks.ID), apperror.ErrNotFound)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

// TestCategoryService_Create_StoreFailureRollsBack tests that an insert failure rolls back and maps to 500.
func TestCategoryService_Create_StoreFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `categories` WHERE name = ?")).
		WithArgs("Drinks").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `categories`")).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := NewCategoryService(db).Create(context.Background(), dto.CategoryInput{Name: "Drinks"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperror.HTTPStatus(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCategoryService_Create_RaceLoserGetsConflict tests a unique index hit after the name check passed.
func TestCategoryService_Create_RaceLoserGetsConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `categories` WHERE name = ?")).
		WithArgs("Drinks").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `categories`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'Drinks' for key 'idx_categories_name'"})
	mock.ExpectRollback()

	_, err := NewCategoryService(db).Create(context.Background(), dto.CategoryInput{Name: "Drinks"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, http.StatusConflict, apperror.HTTPStatus(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
