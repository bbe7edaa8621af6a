package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	_ ports.CredentialStore = (*Store)(nil)
	_ ports.ProfileStore    = (*Store)(nil)
)

// Store provides Postgres-backed persistence for accounts and profiles.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FindByEmail fetches an account from the table selected by role.
func (s *Store) FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	q, err := queriesFor(role)
	if err != nil {
		return nil, err
	}
	return scanAccount(s.pool.QueryRow(ctx, q.findByEmail, email))
}

// Create inserts a new account row. A duplicate email in the same role's
// table is reported as domain.ErrAccountExists.
func (s *Store) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	q, err := queriesFor(account.Role)
	if err != nil {
		return nil, err
	}
	row := s.pool.QueryRow(ctx, q.insert, account.Email, account.PasswordHash, string(account.Role), account.CreatedAt)
	created, err := scanAccount(row)
	if err != nil {
		if isPgCode(err, uniqueViolation) {
			return nil, domain.ErrAccountExists
		}
		return nil, err
	}
	return created, nil
}

// CreateProfile inserts the role's profile row for an existing account.
func (s *Store) CreateProfile(ctx context.Context, p *domain.Profile) error {
	q, err := queriesFor(p.Role)
	if err != nil {
		return err
	}

	id, err := parseID(p.AccountID)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	var args []any
	switch p.Role {
	case domain.RoleClient:
		args = []any{id, p.Name, p.Age, p.Gender, p.PhotoPath, p.Company, p.CreatedAt}
	case domain.RoleFreelancer:
		skills := p.Skills
		if skills == nil {
			skills = []string{}
		}
		args = []any{id, p.Name, p.Age, p.Gender, p.PhotoPath, p.Headline, skills, p.HourlyRate, p.CreatedAt}
	}

	if _, err := s.pool.Exec(ctx, q.insertProfile, args...); err != nil {
		switch {
		case isPgCode(err, uniqueViolation):
			return domain.ErrProfileExists
		case isPgCode(err, foreignKeyViolation):
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("%w: insert profile: %w", domain.ErrStore, err)
	}
	return nil
}

// FindProfile fetches the profile of accountID from the role's info table.
func (s *Store) FindProfile(ctx context.Context, role domain.Role, accountID string) (*domain.Profile, error) {
	q, err := queriesFor(role)
	if err != nil {
		return nil, err
	}

	id, err := parseID(accountID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	p := domain.Profile{Role: role}
	row := s.pool.QueryRow(ctx, q.findProfile, id)
	switch role {
	case domain.RoleClient:
		err = row.Scan(&p.AccountID, &p.Name, &p.Age, &p.Gender, &p.PhotoPath, &p.Company, &p.CreatedAt)
	case domain.RoleFreelancer:
		err = row.Scan(&p.AccountID, &p.Name, &p.Age, &p.Gender, &p.PhotoPath, &p.Headline, &p.Skills, &p.HourlyRate, &p.CreatedAt)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%w: find profile: %w", domain.ErrStore, err)
	}
	return &p, nil
}

// Ping reports whether the pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &role, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStore, err)
	}
	a.Role = domain.Role(role)
	return &a, nil
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
