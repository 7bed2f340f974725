package postgres

import (
	"database/sql"
	"time"

	"realtybot/internal/domain"

	"github.com/lib/pq"
)

// AdRepo implements repository.AdRepository
type AdRepo struct {
	db *sql.DB
}

// NewAdRepo creates a new ad repository
func NewAdRepo(db *sql.DB) *AdRepo {
	return &AdRepo{db: db}
}

const adColumns = `id, user_id, type, title, description, price, currency, location, photos, status, rejection_reason, created_at, published_at`

// Insert stores a new ad and returns its assigned id
func (r *AdRepo) Insert(ad *domain.Ad) (int64, error) {
	query := `
		INSERT INTO ads (user_id, type, title, description, price, currency, location, photos, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query,
		ad.UserID, ad.Type, ad.Title, ad.Description, ad.Price,
		ad.Currency, ad.Location, pq.Array(ad.Photos), ad.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns an ad by id
func (r *AdRepo) GetByID(id int64) (*domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`

	ad, err := scanAd(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// ListPending returns pending ads oldest first (FIFO review order)
func (r *AdRepo) ListPending() ([]domain.Ad, error) {
	query := `
		SELECT ` + adColumns + `
		FROM ads
		WHERE status = 'pending'
		ORDER BY created_at ASC, id ASC
	`
	return r.listAds(query)
}

// ApprovePending transitions a pending ad to approved. The update is a
// compare-and-swap on the current status: a concurrent or repeated
// transition on the same id gets domain.ErrAlreadyProcessed.
func (r *AdRepo) ApprovePending(id int64) error {
	query := `
		UPDATE ads
		SET status = 'approved'
		WHERE id = $1 AND status = 'pending'
	`
	return r.execTransition(query, id)
}

// RejectPending transitions a pending ad to rejected with a reason
func (r *AdRepo) RejectPending(id int64, reason string) error {
	query := `
		UPDATE ads
		SET status = 'rejected', rejection_reason = $2
		WHERE id = $1 AND status = 'pending'
	`
	return r.execTransition(query, id, reason)
}

func (r *AdRepo) execTransition(query string, id int64, args ...interface{}) error {
	res, err := r.db.Exec(query, append([]interface{}{id}, args...)...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: either the id is unknown or the ad left pending already
	var status domain.AdStatus
	err = r.db.QueryRow(`SELECT status FROM ads WHERE id = $1`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return domain.ErrAdNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrAlreadyProcessed
}

// MarkPublished records successful channel delivery
func (r *AdRepo) MarkPublished(id int64) error {
	query := `
		UPDATE ads
		SET published_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(query, id)
	return err
}

// ListUnpublished returns approved ads that never reached the channel
func (r *AdRepo) ListUnpublished() ([]domain.Ad, error) {
	query := `
		SELECT ` + adColumns + `
		FROM ads
		WHERE status = 'approved' AND published_at IS NULL
		ORDER BY created_at ASC, id ASC
	`
	return r.listAds(query)
}

// CountByStatus returns ad counts grouped by status
func (r *AdRepo) CountByStatus() (map[domain.AdStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM ads
		GROUP BY status
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.AdStatus]int)
	for rows.Next() {
		var status domain.AdStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CountByType returns ad counts grouped by property type
func (r *AdRepo) CountByType() (map[domain.PropertyType]int, error) {
	query := `
		SELECT type, COUNT(*)
		FROM ads
		GROUP BY type
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.PropertyType]int)
	for rows.Next() {
		var propType domain.PropertyType
		var count int
		if err := rows.Scan(&propType, &count); err != nil {
			return nil, err
		}
		counts[propType] = count
	}

	return counts, rows.Err()
}

// CountCreatedSince returns the number of ads created since the given time
func (r *AdRepo) CountCreatedSince(since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM ads WHERE created_at >= $1`
	err := r.db.QueryRow(query, since).Scan(&count)
	return count, err
}

func (r *AdRepo) listAds(query string, args ...interface{}) ([]domain.Ad, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}

	return ads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var ad domain.Ad
	var reason sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&ad.ID, &ad.UserID, &ad.Type, &ad.Title, &ad.Description,
		&ad.Price, &ad.Currency, &ad.Location, pq.Array(&ad.Photos),
		&ad.Status, &reason, &ad.CreatedAt, &publishedAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		ad.RejectionReason = reason.String
	}
	if publishedAt.Valid {
		ad.PublishedAt = &publishedAt.Time
	}

	return &ad, nil
}
