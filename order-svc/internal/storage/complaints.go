package storage

import (
	"database/sql"
	"log"

	"feastly/order-svc/internal/domain"
)

type PostgresComplaints struct {
	DB *sql.DB
}

func NewPostgresComplaints(db *sql.DB) *PostgresComplaints {
	return &PostgresComplaints{DB: db}
}

func (r *PostgresComplaints) CreateComplaint(c *domain.Complaint) error {
	return r.DB.QueryRow(`
		INSERT INTO complaints (order_id, user_id, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.OrderID, c.UserID, c.Description, string(c.Status)).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresComplaints) GetComplaint(id int) (*domain.Complaint, error) {
	var c domain.Complaint
	var notes sql.NullString
	var resolvedAt sql.NullTime

	err := r.DB.QueryRow(`
		SELECT id, order_id, user_id, description, status, resolution_notes, created_at, resolved_at
		FROM complaints
		WHERE id = $1
	`, id).Scan(&c.ID, &c.OrderID, &c.UserID, &c.Description, &c.Status,
		&notes, &c.CreatedAt, &resolvedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrComplaintNotFound
	}
	if err != nil {
		return nil, err
	}

	c.ResolutionNotes = notes.String
	if resolvedAt.Valid {
		t := resolvedAt.Time
		c.ResolvedAt = &t
	}
	return &c, nil
}

func (r *PostgresComplaints) ListComplaints(status domain.ComplaintStatus, userID int) ([]domain.Complaint, error) {
	query := `
		SELECT id, order_id, user_id, description, status, resolution_notes, created_at, resolved_at
		FROM complaints
		WHERE 1=1`
	args := []interface{}{}

	if status != "" {
		args = append(args, string(status))
		query += " AND status = $1"
	}
	if userID != 0 {
		args = append(args, userID)
		if len(args) == 1 {
			query += " AND user_id = $1"
		} else {
			query += " AND user_id = $2"
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []domain.Complaint{}
	for rows.Next() {
		var c domain.Complaint
		var notes sql.NullString
		var resolvedAt sql.NullTime

		err := rows.Scan(&c.ID, &c.OrderID, &c.UserID, &c.Description, &c.Status,
			&notes, &c.CreatedAt, &resolvedAt)
		if err != nil {
			log.Printf("[order-svc] skipping complaint row: %v", err)
			continue
		}

		c.ResolutionNotes = notes.String
		if resolvedAt.Valid {
			t := resolvedAt.Time
			c.ResolvedAt = &t
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// UpdateComplaint progresses the status; reaching resolved or closed stamps
// resolved_at.
func (r *PostgresComplaints) UpdateComplaint(id int, status domain.ComplaintStatus, notes string) error {
	_, err := r.DB.Exec(`
		UPDATE complaints
		SET status = $1,
			resolution_notes = COALESCE(NULLIF($2, ''), resolution_notes),
			resolved_at = CASE WHEN $1 IN ('resolved', 'closed') THEN CURRENT_TIMESTAMP ELSE resolved_at END
		WHERE id = $3
	`, string(status), notes, id)
	return err
}
