package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/grievance-service/internal/domain"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

const pgUniqueViolation = "23505"

// ErrDuplicateID signals that the generated id is already taken.
var ErrDuplicateID = errors.New("grievance id already exists")

// GrievanceRepository encapsulates grievance persistence.
type GrievanceRepository interface {
	Create(ctx context.Context, grievance *domain.Grievance) error
	List(ctx context.Context) ([]domain.Grievance, error)
}

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type grievanceRepository struct {
	pool DB
}

// NewGrievanceRepository instantiates repository.
func NewGrievanceRepository(pool DB) GrievanceRepository {
	return &grievanceRepository{pool: pool}
}

func (r *grievanceRepository) Create(ctx context.Context, grievance *domain.Grievance) error {
	const query = `
        INSERT INTO grievances (id, name, email, message, anonymous)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		grievance.ID,
		grievance.Name,
		grievance.Email,
		grievance.Message,
		grievance.Anonymous,
	).Scan(&grievance.CreatedAt)
	return classifyError(err)
}

func (r *grievanceRepository) List(ctx context.Context) ([]domain.Grievance, error) {
	const query = `
        SELECT id, name, email, message, anonymous, created_at
        FROM grievances
        ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	result := make([]domain.Grievance, 0)
	for rows.Next() {
		var g domain.Grievance
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Message, &g.Anonymous, &g.CreatedAt); err != nil {
			return nil, classifyError(err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return result, nil
}

// classifyError maps driver errors onto the storage error taxonomy.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateID
	}
	return apperrors.NewStorageUnavailable(err)
}
