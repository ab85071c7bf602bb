package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

var _ repository.EnquiryRepository = (*EnquiryRepo)(nil)

// EnquiryRepo implementación de EnquiryRepository sobre PostgreSQL (usable con pool o tx).
type EnquiryRepo struct {
	q Querier
}

// NewEnquiryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEnquiryRepository(q Querier) *EnquiryRepo {
	return &EnquiryRepo{q: q}
}

const enquiryColumns = `id, name, email, phone, location, city, state, message, status,
	hr_notes, operational_notes, hr_approved_by, hr_approved_at,
	operational_approved_by, operational_approved_at, partner_type, submitted_at`

// Create persiste una solicitud nueva.
func (r *EnquiryRepo) Create(ctx context.Context, e *entity.Enquiry) error {
	query := `
		INSERT INTO franchise_enquiries (id, name, email, phone, location, city, state, message, status,
			hr_notes, operational_notes, hr_approved_by, hr_approved_at,
			operational_approved_by, operational_approved_at, partner_type, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Email, e.Phone, e.Location, e.City, e.State, e.Message, e.Status,
		e.HRNotes, e.OperationalNotes, e.HRApprovedBy, e.HRApprovedAt,
		e.OperationalApprovedBy, e.OperationalApprovedAt, e.PartnerType, e.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID (nil si no existe).
func (r *EnquiryRepo) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+enquiryColumns+` FROM franchise_enquiries WHERE id = $1`, id)
	e, err := scanEnquiry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enquiry by id: %w", err)
	}
	return e, nil
}

// ListByStatuses lista solicitudes por conjunto de estados, más recientes primero.
func (r *EnquiryRepo) ListByStatuses(ctx context.Context, statuses []string, limit, offset int) ([]*entity.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + `
		FROM franchise_enquiries
		WHERE status = ANY($1)
		ORDER BY submitted_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, statuses, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// UpdateIfStatus aplica la decisión con un UPDATE condicional sobre el estado.
// Cero filas afectadas + la solicitud existe => ErrInvalidTransition (otra
// petición concurrente ya la procesó); cero filas + no existe => ErrNotFound.
func (r *EnquiryRepo) UpdateIfStatus(ctx context.Context, e *entity.Enquiry, expectedStatus string) error {
	query := `
		UPDATE franchise_enquiries
		SET status = $2, hr_notes = $3, operational_notes = $4,
			hr_approved_by = $5, hr_approved_at = $6,
			operational_approved_by = $7, operational_approved_at = $8
		WHERE id = $1 AND status = $9`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.Status, e.HRNotes, e.OperationalNotes,
		e.HRApprovedBy, e.HRApprovedAt,
		e.OperationalApprovedBy, e.OperationalApprovedAt,
		expectedStatus,
	)
	if err != nil {
		return fmt.Errorf("update enquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		exists, err := r.exists(ctx, e.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// CountByStatus agrupa el total de solicitudes por estado.
func (r *EnquiryRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM franchise_enquiries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count enquiries by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *EnquiryRepo) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM franchise_enquiries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists enquiry: %w", err)
	}
	return exists, nil
}

func scanEnquiry(row pgx.Row) (*entity.Enquiry, error) {
	var e entity.Enquiry
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Location, &e.City, &e.State, &e.Message, &e.Status,
		&e.HRNotes, &e.OperationalNotes, &e.HRApprovedBy, &e.HRApprovedAt,
		&e.OperationalApprovedBy, &e.OperationalApprovedAt, &e.PartnerType, &e.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
