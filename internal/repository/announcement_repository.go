package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

const announcementColumns = `id, title, content, priority, created_by, created_at, expires_at,
		 is_active, for_students, for_parents, for_staff, for_management`

// AnnouncementRepository handles announcement data access.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func scanAnnouncement(row interface{ Scan(...any) error }) (*model.Announcement, error) {
	a := &model.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Priority, &a.CreatedBy, &a.CreatedAt,
		&a.ExpiresAt, &a.IsActive, &a.ForStudents, &a.ForParents, &a.ForStaff, &a.ForManagement)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID retrieves an announcement by ID.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	return scanAnnouncement(r.pool.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
}

// ListActiveForRole retrieves active, unexpired announcements targeting
// the role, newest first. Admins see everything.
func (r *AnnouncementRepository) ListActiveForRole(ctx context.Context, role model.Role) ([]model.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements
		 WHERE is_active AND (expires_at IS NULL OR expires_at > CURRENT_TIMESTAMP)`

	switch role {
	case model.RoleAdmin:
		// no audience filter
	case model.RoleStudent:
		query += ` AND for_students`
	case model.RoleParent:
		query += ` AND for_parents`
	case model.RoleStaff:
		query += ` AND for_staff`
	case model.RoleManagement:
		query += ` AND for_management`
	default:
		return nil, nil
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, *a)
	}
	return announcements, rows.Err()
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, content, priority, created_by, expires_at,
		 is_active, for_students, for_parents, for_staff, for_management)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		a.Title, a.Content, a.Priority, a.CreatedBy, a.ExpiresAt,
		a.IsActive, a.ForStudents, a.ForParents, a.ForStaff, a.ForManagement,
	).Scan(&a.ID, &a.CreatedAt)
}

// Deactivate retires an announcement without deleting it.
func (r *AnnouncementRepository) Deactivate(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE announcements SET is_active = FALSE WHERE id = $1`, id)
	return err
}

// Delete removes an announcement by ID.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}
