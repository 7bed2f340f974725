package postgres

import (
	"database/sql"
	"time"

	"realtybot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert creates the user on first interaction and refreshes the
// profile fields on subsequent ones. Role is only set on insert.
func (r *UserRepo) Upsert(telegramID int64, username, firstName string, role domain.Role) (*domain.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, first_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id)
		DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name
		RETURNING id, telegram_id, username, first_name, role, created_at
	`
	var u domain.User
	err := r.db.QueryRow(query, telegramID, username, firstName, role).Scan(
		&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a user by internal id
func (r *UserRepo) GetByID(id int64) (*domain.User, error) {
	query := `
		SELECT id, telegram_id, username, first_name, role, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetByTelegramID returns a user by external Telegram identity
func (r *UserRepo) GetByTelegramID(telegramID int64) (*domain.User, error) {
	query := `
		SELECT id, telegram_id, username, first_name, role, created_at
		FROM users
		WHERE telegram_id = $1
	`
	return r.scanUser(r.db.QueryRow(query, telegramID))
}

func (r *UserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Count returns the total number of users
func (r *UserRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// CountByRole returns user counts grouped by role
func (r *UserRepo) CountByRole() (map[domain.Role]int, error) {
	query := `
		SELECT role, COUNT(*)
		FROM users
		GROUP BY role
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Role]int)
	for rows.Next() {
		var role domain.Role
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}

	return counts, rows.Err()
}

// CountCreatedSince returns the number of users created since the given time
func (r *UserRepo) CountCreatedSince(since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE created_at >= $1`
	err := r.db.QueryRow(query, since).Scan(&count)
	return count, err
}
