package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jogging_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// JoggingRepository defines operations for jogging record data
type JoggingRepository interface {
	Create(ctx context.Context, jog *model.JoggingRecord) error
	FindByID(ctx context.Context, id int64) (*model.JoggingRecord, error)
	FindByUser(ctx context.Context, userID int, filters model.JoggingFilters) ([]model.JoggingRecord, error)
	FindAll(ctx context.Context, filters model.JoggingFilters) ([]model.JoggingRecord, error)
	Update(ctx context.Context, jog *model.JoggingRecord) error
	Delete(ctx context.Context, id int64) error
	WeeklyReport(ctx context.Context, userID int) ([]model.WeeklyReportRow, error)
}

type joggingRepository struct {
	db DB
}

// NewJoggingRepository creates a new JoggingRepository
func NewJoggingRepository(db DB) JoggingRepository {
	return &joggingRepository{db: db}
}

const joggingColumns = `id, user_id, date, duration_seconds, distance, created_at, updated_at`

func scanJogging(row pgx.Row, j *model.JoggingRecord) error {
	var secs int64
	if err := row.Scan(&j.ID, &j.UserID, &j.Date.Time, &secs, &j.Distance, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return err
	}
	j.Duration = model.Duration(secs)
	return nil
}

// Create inserts a new jogging record into the database
func (r *joggingRepository) Create(ctx context.Context, j *model.JoggingRecord) error {
	sql := `INSERT INTO joggings (user_id, date, duration_seconds, distance, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, j.UserID, j.Date.Time, j.Duration.Seconds(), j.Distance, j.CreatedAt, j.UpdatedAt).
		Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create jogging record: %w", err)
	}
	return nil
}

// FindByID retrieves a jogging record by its ID
func (r *joggingRepository) FindByID(ctx context.Context, id int64) (*model.JoggingRecord, error) {
	j := &model.JoggingRecord{}
	sql := `SELECT ` + joggingColumns + ` FROM joggings WHERE id = $1`
	if err := scanJogging(r.db.QueryRow(ctx, sql, id), j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find jogging record by ID: %w", err)
	}
	return j, nil
}

// FindByUser retrieves jogging records for a specific user with an optional
// date range. The range only applies when both bounds are present.
func (r *joggingRepository) FindByUser(ctx context.Context, userID int, filters model.JoggingFilters) ([]model.JoggingRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + joggingColumns + ` FROM joggings WHERE user_id = $1`)
	args := []interface{}{userID}

	if filters.From != nil && filters.To != nil {
		queryBuilder.WriteString(" AND date BETWEEN $2 AND $3")
		args = append(args, filters.From.Time, filters.To.Time)
	}
	queryBuilder.WriteString(" ORDER BY date DESC, id DESC")

	return r.queryJoggings(ctx, queryBuilder.String(), args...)
}

// FindAll retrieves jogging records across all users, for admin callers
func (r *joggingRepository) FindAll(ctx context.Context, filters model.JoggingFilters) ([]model.JoggingRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + joggingColumns + ` FROM joggings`)
	args := []interface{}{}

	if filters.From != nil && filters.To != nil {
		queryBuilder.WriteString(" WHERE date BETWEEN $1 AND $2")
		args = append(args, filters.From.Time, filters.To.Time)
	}
	queryBuilder.WriteString(" ORDER BY date DESC, id DESC")

	return r.queryJoggings(ctx, queryBuilder.String(), args...)
}

func (r *joggingRepository) queryJoggings(ctx context.Context, sql string, args ...interface{}) ([]model.JoggingRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jogging records: %w", err)
	}
	defer rows.Close()

	var jogs []model.JoggingRecord
	for rows.Next() {
		var j model.JoggingRecord
		if err := scanJogging(rows, &j); err != nil {
			return nil, fmt.Errorf("failed to scan jogging row: %w", err)
		}
		jogs = append(jogs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jogging rows: %w", err)
	}
	return jogs, nil
}

// Update modifies an existing jogging record
func (r *joggingRepository) Update(ctx context.Context, j *model.JoggingRecord) error {
	sql := `UPDATE joggings
            SET date = $1, duration_seconds = $2, distance = $3, updated_at = NOW()
            WHERE id = $4 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, j.Date.Time, j.Duration.Seconds(), j.Distance, j.ID).Scan(&j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("jogging record not found for update")
		}
		return fmt.Errorf("failed to update jogging record: %w", err)
	}
	return nil
}

// Delete removes a jogging record from the database
func (r *joggingRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM joggings WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete jogging record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("jogging record not found for deletion")
	}
	return nil
}

// WeeklyReport aggregates a user's records by ISO year and week, averaging
// distance and speed (distance over duration in hours). The grouping is done
// entirely in the database.
func (r *joggingRepository) WeeklyReport(ctx context.Context, userID int) ([]model.WeeklyReportRow, error) {
	sql := `
        SELECT
            EXTRACT(ISOYEAR FROM date)::INT AS year,
            EXTRACT(WEEK FROM date)::INT AS week,
            AVG(distance) AS avg_distance,
            AVG(distance / (duration_seconds / 3600.0)) AS avg_speed
        FROM joggings
        WHERE user_id = $1
        GROUP BY year, week
        ORDER BY year, week`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly report: %w", err)
	}
	defer rows.Close()

	var report []model.WeeklyReportRow
	for rows.Next() {
		var row model.WeeklyReportRow
		if err := rows.Scan(&row.Year, &row.Week, &row.AvgDistance, &row.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report = append(report, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return report, nil
}
