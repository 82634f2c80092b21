package ratings

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLRepo implements Repo on database/sql, portable across the Postgres and
// SQLite drivers.
type SQLRepo struct {
	DB *sql.DB
}

// Upsert stores a rating keyed by (student_email, course_id).
func (r *SQLRepo) Upsert(ctx context.Context, rating Rating) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO student_ratings (id, student_email, course_id, rating, review, completed_semester, would_recommend, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (student_email, course_id) DO UPDATE SET
	rating = EXCLUDED.rating,
	review = EXCLUDED.review,
	completed_semester = EXCLUDED.completed_semester,
	would_recommend = EXCLUDED.would_recommend,
	created_at = EXCLUDED.created_at`,
		rating.ID, rating.StudentEmail, rating.CourseID, rating.Rating,
		rating.Review, rating.CompletedSemester, rating.WouldRecommend, rating.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rating for %s: %w", rating.CourseID, err)
	}
	return nil
}

// ListByCourse returns all ratings for a course, newest first.
func (r *SQLRepo) ListByCourse(ctx context.Context, courseID string) ([]Rating, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, student_email, course_id, rating, review, completed_semester, would_recommend, created_at
FROM student_ratings
WHERE course_id = $1
ORDER BY created_at DESC`, courseID)
	if err != nil {
		return nil, fmt.Errorf("query ratings for %s: %w", courseID, err)
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(
			&rt.ID, &rt.StudentEmail, &rt.CourseID, &rt.Rating,
			&rt.Review, &rt.CompletedSemester, &rt.WouldRecommend, &rt.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// Aggregate returns the average rating and rating count for a course.
func (r *SQLRepo) Aggregate(ctx context.Context, courseID string) (float64, int, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM student_ratings WHERE course_id = $1`, courseID)
	var avg float64
	var total int
	if err := row.Scan(&avg, &total); err != nil {
		return 0, 0, fmt.Errorf("aggregate ratings for %s: %w", courseID, err)
	}
	return avg, total, nil
}

// SaveFeedback stores one feedback submission. Course lists are stored as
// comma-joined text.
func (r *SQLRepo) SaveFeedback(ctx context.Context, f Feedback) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO feedback (id, student_id, recommended_courses, selected_courses, rating, comments, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.StudentID,
		strings.Join(f.RecommendedCourses, ","),
		strings.Join(f.SelectedCourses, ","),
		f.Rating, f.Comments, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}
