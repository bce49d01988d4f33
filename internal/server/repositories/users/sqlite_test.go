package users

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userColumns() []string {
	return []string{"id", "name", "username", "password", "age", "is_married"}
}

func TestSQLiteRepository_List(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "John Doe", "john", "password123", 30, true).
		AddRow(2, "Jane Smith", "jane", "password456", 25, false)

	mock.ExpectQuery("SELECT id, name, username, password, age, is_married FROM users").
		WillReturnRows(rows)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "john", list[0].Username)
	assert.Equal(t, "2", list[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_GetByID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(3, "Alice Johnson", "alice", "password789", 28, false))

	u, err := r.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "3", u.ID)
	assert.Equal(t, "Alice Johnson", u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_GetByID_Miss(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteRepository_GetByID_NonNumericIDIsMiss(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	// no queries expected: a non-numeric id cannot exist
	_, err := r.GetByID(context.Background(), "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE username = ?")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Bob", "bob", "pw", 40, false).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	u, err := r.Create(context.Background(), &models.User{
		Name: "Bob", Username: "bob", Password: "pw", Age: 40, IsMarried: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "4", u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Create_Conflict(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE username = ?")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := r.Create(context.Background(), &models.User{
		Name: "Bob2", Username: "bob", Password: "pw2", Age: 22, IsMarried: true,
	})
	assert.ErrorIs(t, err, common.ErrorConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Update_PartialFields(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(3, "Alice Johnson", "alice", "password789", 28, false))
	mock.ExpectExec("UPDATE users SET").
		WithArgs("Alice Johnson", 29, false, "3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	age := 29
	u, err := r.Update(context.Background(), "3", &models.UserUpdate{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 29, u.Age)
	assert.Equal(t, "Alice Johnson", u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Update_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	r := NewSQLiteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	name := "X"
	_, err := r.Update(context.Background(), "999", &models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
