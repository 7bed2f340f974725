package postgres

import (
	"testing"
	"time"

	"realtybot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var userCols = []string{"id", "telegram_id", "username", "first_name", "role", "created_at"}

func TestUserRepo_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows(userCols).
		AddRow(int64(1), int64(555), "alice", "Alice", "user", time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(int64(555), "alice", "Alice", domain.RoleUser).
		WillReturnRows(rows)

	user, err := repo.Upsert(555, "alice", "Alice", domain.RoleUser)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int64(555), user.TelegramID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		found    bool
	}{
		{
			name:  "user found",
			id:    1,
			found: true,
		},
		{
			name:  "user not found",
			id:    99,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT id, telegram_id, username, first_name, role, created_at FROM users WHERE id = \\$1"
			if tt.found {
				rows := sqlmock.NewRows(userCols).
					AddRow(tt.id, int64(555), "alice", "Alice", "user", time.Now())
				mock.ExpectQuery(query).WithArgs(tt.id).WillReturnRows(rows)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.id).WillReturnRows(sqlmock.NewRows(userCols))
			}

			user, err := repo.GetByID(tt.id)

			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, user)
				assert.Equal(t, tt.id, user.ID)
			} else {
				assert.Nil(t, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetByTelegramID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows(userCols).
		AddRow(int64(1), int64(555), "alice", "Alice", "user", time.Now())

	mock.ExpectQuery("SELECT id, telegram_id, username, first_name, role, created_at FROM users WHERE telegram_id = \\$1").
		WithArgs(int64(555)).
		WillReturnRows(rows)

	user, err := repo.GetByTelegramID(555)

	assert.NoError(t, err)
	assert.Equal(t, int64(555), user.TelegramID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	count, err := repo.Count()

	assert.NoError(t, err)
	assert.Equal(t, 17, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"role", "count"}).
		AddRow("user", 16).
		AddRow("admin", 1)

	mock.ExpectQuery("SELECT role, COUNT\\(\\*\\) FROM users GROUP BY role").
		WillReturnRows(rows)

	counts, err := repo.CountByRole()

	assert.NoError(t, err)
	assert.Equal(t, 16, counts[domain.RoleUser])
	assert.Equal(t, 1, counts[domain.RoleAdmin])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountCreatedSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	since := time.Now().Truncate(24 * time.Hour)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE created_at >= \\$1").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountCreatedSince(since)

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
