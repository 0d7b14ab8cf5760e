package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/performance"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewColumns = `id, employee_id, employee_name, period, reviewer_name, review_date,
	overall_score, status, strengths, areas_for_improvement, kpis, employee_feedback,
	created_at, updated_at`

func scanReview(row pgx.Row) (performance.Review, error) {
	var rv performance.Review
	err := row.Scan(
		&rv.ID,
		&rv.EmployeeID,
		&rv.EmployeeName,
		&rv.Period,
		&rv.ReviewerName,
		&rv.ReviewDate,
		&rv.OverallScore,
		&rv.Status,
		&rv.Strengths,
		&rv.AreasForImprovement,
		&rv.KPIs,
		&rv.EmployeeFeedback,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	return rv, err
}

func (r *reviewRepositoryImpl) Create(ctx context.Context, rv performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, employee_name, period, reviewer_name, review_date,
			overall_score, status, strengths, areas_for_improvement, kpis,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING ` + reviewColumns

	created, err := scanReview(q.QueryRow(ctx, query,
		rv.EmployeeID, rv.EmployeeName, rv.Period, rv.ReviewerName, rv.ReviewDate,
		rv.OverallScore, rv.Status, rv.Strengths, rv.AreasForImprovement, rv.KPIs,
	))
	if err != nil {
		return performance.Review{}, err
	}
	return created, nil
}

func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews WHERE id = $1`
	rv, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, err
	}
	return rv, nil
}

func (r *reviewRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews WHERE employee_id = $1 ORDER BY review_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *reviewRepositoryImpl) List(ctx context.Context, period *string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews`
	args := []interface{}{}
	if period != nil {
		query += ` WHERE period = $1`
		args = append(args, *period)
	}
	query += ` ORDER BY review_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReviews(rows)
}

// SetEmployeeFeedback fills the feedback column only when it is still empty.
// Zero rows affected means the review either does not exist or already has
// feedback; the service distinguishes the two.
func (r *reviewRepositoryImpl) SetEmployeeFeedback(ctx context.Context, id, feedback string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE performance_reviews SET employee_feedback = $1, updated_at = NOW()
		 WHERE id = $2 AND employee_feedback IS NULL`,
		feedback, id,
	)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func collectReviews(rows pgx.Rows) ([]performance.Review, error) {
	var reviews []performance.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
