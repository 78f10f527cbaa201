package database

import (
	"context"
	"errors"
	"fmt"

	"bank_clients/internal/config/connections/postgres"
	"bank_clients/internal/models"

	"github.com/jackc/pgx/v5"
)

// ErrClientNotFound is returned when a query matched no row. The HTTP layer
// translates it into 401 (login) or 404 (profile fetch).
var ErrClientNotFound = errors.New("client not found")

type ClientRepo struct {
	pg           *postgres.Postgres
	authTable    string
	profileTable string
}

func NewClientRepo(pg *postgres.Postgres) *ClientRepo {
	return &ClientRepo{
		pg:           pg,
		authTable:    "clients_auth",
		profileTable: "clients_profile",
	}
}

const profileColumns = `p.profile_id, p.client_id, p.last_name, p.first_name, p.middle_name,
		p.gender, p.age, p.marital_status, p.account_number, p.capital`

// Authenticate looks up the credential tuple in the auth table and returns the
// joined profile. Parameters are always bound, never concatenated.
func (r *ClientRepo) Authenticate(ctx context.Context, login models.LoginRequest) (*models.ClientProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM ` + r.authTable + ` a
		JOIN ` + r.profileTable + ` p ON a.client_id = p.client_id
		WHERE a.passport_series = $1
		  AND a.passport_number = $2
		  AND a.password = $3
	`

	row := r.pg.Pool.QueryRow(ctx, query,
		login.PassportSeries, login.PassportNumber, login.Password,
	)
	return scanProfile(row)
}

// GetByClientID returns the profile row for one client id.
func (r *ClientRepo) GetByClientID(ctx context.Context, clientID int64) (*models.ClientProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM ` + r.profileTable + ` p
		WHERE p.client_id = $1
	`

	row := r.pg.Pool.QueryRow(ctx, query, clientID)
	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*models.ClientProfile, error) {
	var c models.ClientProfile
	err := row.Scan(
		&c.ProfileID, &c.ClientID, &c.LastName, &c.FirstName, &c.MiddleName,
		&c.Gender, &c.Age, &c.MaritalStatus, &c.AccountNumber, &c.Capital,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &c, nil
}
