package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates user with the given language if not exists
func (r *UserRepo) EnsureUser(userID int64, lang string) error {
	query := `
		INSERT INTO users (user_id, lang)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, lang)
	return err
}

// GetLanguage returns stored language code, "" when user doesn't exist
func (r *UserRepo) GetLanguage(userID int64) (string, error) {
	var lang string
	query := `SELECT lang FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&lang)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return lang, nil
}

// IsPremium checks if user has the premium entitlement
func (r *UserRepo) IsPremium(userID int64) (bool, error) {
	var premium bool
	query := `SELECT premium FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&premium)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return premium, nil
}

// SetLanguage updates user's language, creating the record if needed
func (r *UserRepo) SetLanguage(userID int64, lang string) error {
	query := `
		INSERT INTO users (user_id, lang)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET lang = EXCLUDED.lang
	`
	_, err := r.db.Exec(query, userID, lang)
	return err
}

// SetPremium flips user's premium flag, creating the record if needed
func (r *UserRepo) SetPremium(userID int64, premium bool) error {
	query := `
		INSERT INTO users (user_id, premium)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET premium = EXCLUDED.premium
	`
	_, err := r.db.Exec(query, userID, premium)
	return err
}
