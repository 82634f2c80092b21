package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLRepo implements Repo on database/sql. It works against both the
// Postgres (pgx) and SQLite drivers; every query sticks to $N placeholders
// and ON CONFLICT upserts, which both dialects accept.
type SQLRepo struct {
	DB *sql.DB
}

const courseColumns = `id, title, description, credits, prerequisites, department, level,
	difficulty_rating, career_relevance, topics, semester_offered, professor,
	rating, avg_rating, total_ratings, enrollment_count`

// GetAll returns every course ordered by id, a consistent snapshot for one
// recommendation pass.
func (r *SQLRepo) GetAll(ctx context.Context) ([]Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY id`, courseColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// GetByID returns a course by its ID.
func (r *SQLRepo) GetByID(ctx context.Context, courseID string) (Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)
	row := r.DB.QueryRowContext(ctx, query, courseID)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	return course, err
}

// Search finds courses matching the text query and filters.
func (r *SQLRepo) Search(ctx context.Context, query string, filters SearchFilters) ([]Course, error) {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, `SELECT %s FROM courses WHERE (title LIKE $1 OR description LIKE $1 OR topics LIKE $1 OR career_relevance LIKE $1)`, courseColumns)
	args := []any{"%" + strings.TrimSpace(query) + "%"}
	if filters.Department != "" {
		args = append(args, filters.Department)
		fmt.Fprintf(&sb, " AND department = $%d", len(args))
	}
	if filters.Level != "" {
		args = append(args, filters.Level)
		fmt.Fprintf(&sb, " AND level = $%d", len(args))
	}
	if filters.MaxDifficulty > 0 {
		args = append(args, filters.MaxDifficulty)
		fmt.Fprintf(&sb, " AND difficulty_rating <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY id")

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

// Upsert inserts or replaces a course row.
func (r *SQLRepo) Upsert(ctx context.Context, course Course) error {
	if strings.TrimSpace(course.ID) == "" {
		return ErrMissingID
	}
	query := fmt.Sprintf(`
INSERT INTO courses (%s)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	credits = EXCLUDED.credits,
	prerequisites = EXCLUDED.prerequisites,
	department = EXCLUDED.department,
	level = EXCLUDED.level,
	difficulty_rating = EXCLUDED.difficulty_rating,
	career_relevance = EXCLUDED.career_relevance,
	topics = EXCLUDED.topics,
	semester_offered = EXCLUDED.semester_offered,
	professor = EXCLUDED.professor,
	rating = EXCLUDED.rating,
	enrollment_count = EXCLUDED.enrollment_count`, courseColumns)
	_, err := r.DB.ExecContext(ctx, query,
		course.ID, course.Title, course.Description, course.Credits,
		course.Prerequisites, course.Department, course.Level,
		course.DifficultyRating, course.CareerRelevance, course.Topics,
		course.SemesterOffered, course.Professor, course.Rating,
		course.AvgRating, course.TotalRatings, course.EnrollmentCount,
	)
	if err != nil {
		return fmt.Errorf("upsert course %s: %w", course.ID, err)
	}
	return nil
}

// Departments returns the distinct department names, sorted.
func (r *SQLRepo) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT department FROM courses WHERE department <> '' ORDER BY department`)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			return nil, err
		}
		out = append(out, dept)
	}
	return out, rows.Err()
}

// Statistics summarizes the stored catalog.
func (r *SQLRepo) Statistics(ctx context.Context) (Stats, error) {
	stats := Stats{Departments: make(map[string]int)}

	row := r.DB.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(AVG(difficulty_rating), 0), COALESCE(AVG(avg_rating), 0) FROM courses`)
	if err := row.Scan(&stats.TotalCourses, &stats.AverageDifficulty, &stats.AverageRating); err != nil {
		return Stats{}, fmt.Errorf("course statistics: %w", err)
	}
	stats.AverageDifficulty = round2(stats.AverageDifficulty)
	stats.AverageRating = round2(stats.AverageRating)

	rows, err := r.DB.QueryContext(ctx, `SELECT department, COUNT(*) FROM courses GROUP BY department`)
	if err != nil {
		return Stats{}, fmt.Errorf("department counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dept string
		var count int
		if err := rows.Scan(&dept, &count); err != nil {
			return Stats{}, err
		}
		stats.Departments[dept] = count
	}
	return stats, rows.Err()
}

// UpdateRatingStats stores a recomputed rating aggregate on the course row.
func (r *SQLRepo) UpdateRatingStats(ctx context.Context, courseID string, avgRating float64, totalRatings int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE courses SET avg_rating = $1, total_ratings = $2 WHERE id = $3`, avgRating, totalRatings, courseID)
	if err != nil {
		return fmt.Errorf("update rating stats: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (Course, error) {
	var c Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Credits, &c.Prerequisites,
		&c.Department, &c.Level, &c.DifficultyRating, &c.CareerRelevance,
		&c.Topics, &c.SemesterOffered, &c.Professor, &c.Rating,
		&c.AvgRating, &c.TotalRatings, &c.EnrollmentCount,
	)
	return c, err
}

func scanCourses(rows *sql.Rows) ([]Course, error) {
	var out []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
