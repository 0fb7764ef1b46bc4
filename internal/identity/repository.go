package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shopfront/shopfront/internal/infra"
)

const uniqueViolation = "23505"

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db infra.DBTX
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db infra.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, firstname, lastname, address, mobile, date_of_creation`

// Create inserts a new user and returns it with its assigned id and creation time.
func (r *PostgresRepository) Create(ctx context.Context, user User) (User, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (email, password_hash, firstname, lastname, address, mobile)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, date_of_creation`,
		user.Email, user.PasswordHash, user.Firstname, user.Lastname, user.Address, user.Mobile)
	if err := row.Scan(&user.ID, &user.DateOfCreation); err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	user.DateOfCreation = user.DateOfCreation.UTC()
	return user, nil
}

// FindByEmail fetches a user by login email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// FindByID fetches a user by id.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// UpdateProfile writes the present fields of upd in a single statement.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	stmt, err := BuildUpdate(id, upd)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Firstname, &user.Lastname,
		&user.Address, &user.Mobile, &user.DateOfCreation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.DateOfCreation = user.DateOfCreation.UTC()
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
