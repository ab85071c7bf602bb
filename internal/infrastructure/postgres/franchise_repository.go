package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

var _ repository.FranchiseRepository = (*FranchiseRepo)(nil)

// FranchiseRepo implementación de FranchiseRepository sobre PostgreSQL (usable con pool o tx).
type FranchiseRepo struct {
	q Querier
}

// NewFranchiseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFranchiseRepository(q Querier) *FranchiseRepo {
	return &FranchiseRepo{q: q}
}

const franchiseColumns = `id, enquiry_id, user_id, franchise_code, partner_type,
	owner_name, business_name, email, phone,
	address_street, address_city, address_state, address_pincode, address_country,
	id_proof_type, id_proof_number, id_proof_document_url, business_details,
	profile_status, agreement_status, agreement_accepted_at, created_at, updated_at`

// Create persiste la franquicia. Un UNIQUE violado en franchise_code se traduce
// a ErrDuplicate (el caller regenera el código y reintenta); en user_id a
// ErrConflict (el usuario ya tiene franquicia, el 1:1 es estricto).
//
// El INSERT corre en una sub-transacción (savepoint dentro de la tx de
// aprovisionamiento, transacción propia sobre el pool): un 23505 dejaría la
// transacción envolvente abortada (25P02) y el reintento de código del caller
// no podría ejecutar ninguna consulta más.
func (r *FranchiseRepo) Create(ctx context.Context, f *entity.Franchise) error {
	query := `
		INSERT INTO franchises (id, enquiry_id, user_id, franchise_code, partner_type,
			owner_name, business_name, email, phone,
			address_street, address_city, address_state, address_pincode, address_country,
			id_proof_type, id_proof_number, id_proof_document_url, business_details,
			profile_status, agreement_status, agreement_accepted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)`
	sub, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin franchise insert: %w", err)
	}
	_, err = sub.Exec(ctx, query,
		f.ID, f.EnquiryID, f.UserID, f.FranchiseCode, f.PartnerType,
		f.OwnerName, f.BusinessName, f.Email, f.Phone,
		f.Address.Street, f.Address.City, f.Address.State, f.Address.Pincode, f.Address.Country,
		nullIfEmpty(f.IDProof.Type), f.IDProof.Number, f.IDProof.DocumentURL, f.BusinessDetails,
		f.ProfileStatus, f.AgreementStatus, f.AgreementAcceptedAt, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		_ = sub.Rollback(ctx)
		if isUniqueViolation(err) {
			if uniqueConstraintName(err) == "franchises_user_id_key" {
				return domain.ErrConflict
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert franchise: %w", err)
	}
	if err := sub.Commit(ctx); err != nil {
		return fmt.Errorf("commit franchise insert: %w", err)
	}
	return nil
}

// GetByID obtiene una franquicia por ID (nil si no existe).
func (r *FranchiseRepo) GetByID(ctx context.Context, id string) (*entity.Franchise, error) {
	return r.getOne(ctx, `SELECT `+franchiseColumns+` FROM franchises WHERE id = $1`, id)
}

// GetByUserID obtiene la franquicia del usuario (nil si no existe).
func (r *FranchiseRepo) GetByUserID(ctx context.Context, userID string) (*entity.Franchise, error) {
	return r.getOne(ctx, `SELECT `+franchiseColumns+` FROM franchises WHERE user_id = $1`, userID)
}

// GetByEnquiryID obtiene la franquicia aprovisionada para una solicitud (nil si no existe).
func (r *FranchiseRepo) GetByEnquiryID(ctx context.Context, enquiryID string) (*entity.Franchise, error) {
	return r.getOne(ctx, `SELECT `+franchiseColumns+` FROM franchises WHERE enquiry_id = $1 LIMIT 1`, enquiryID)
}

// MaxCodeForPrefix devuelve el código más alto con el prefijo dado ("" si no hay).
// El orden por longitud y luego lexicográfico hace que FR10000 supere a FR9999.
func (r *FranchiseRepo) MaxCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	var code string
	err := r.q.QueryRow(ctx, `
		SELECT franchise_code FROM franchises
		WHERE franchise_code ~ ('^' || $1 || '\d+$')
		ORDER BY length(franchise_code) DESC, franchise_code DESC
		LIMIT 1`, prefix).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("max franchise code: %w", err)
	}
	return code, nil
}

// List lista franquicias con paginación, más recientes primero.
func (r *FranchiseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Franchise, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+franchiseColumns+` FROM franchises ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list franchises: %w", err)
	}
	defer rows.Close()
	var list []*entity.Franchise
	for rows.Next() {
		f, err := scanFranchise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan franchise: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// UpdateProfile sobrescribe los campos del perfil. El franchise_code y las
// referencias no se tocan: son inmutables una vez asignados.
func (r *FranchiseRepo) UpdateProfile(ctx context.Context, f *entity.Franchise) error {
	query := `
		UPDATE franchises
		SET owner_name = $2, business_name = $3,
			address_street = $4, address_city = $5, address_state = $6,
			address_pincode = $7, address_country = $8,
			id_proof_type = $9, id_proof_number = $10, id_proof_document_url = $11,
			business_details = $12, profile_status = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		f.ID, f.OwnerName, f.BusinessName,
		f.Address.Street, f.Address.City, f.Address.State,
		f.Address.Pincode, f.Address.Country,
		nullIfEmpty(f.IDProof.Type), f.IDProof.Number, f.IDProof.DocumentURL,
		f.BusinessDetails, f.ProfileStatus, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update franchise profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AcceptAgreement marca el contrato como aceptado con un UPDATE condicional:
// solo si sigue pending y el perfil está completo. Cero filas afectadas sobre
// una franquicia existente => ErrConflict (ya aceptado o perfil incompleto en
// una carrera); el caller ya validó las precondiciones para el mensaje fino.
func (r *FranchiseRepo) AcceptAgreement(ctx context.Context, franchiseID string, acceptedAt time.Time) error {
	query := `
		UPDATE franchises
		SET agreement_status = $2, agreement_accepted_at = $3, updated_at = $3
		WHERE id = $1 AND agreement_status = $4 AND profile_status = $5`
	tag, err := r.q.Exec(ctx, query,
		franchiseID, entity.AgreementStatusAccepted, acceptedAt,
		entity.AgreementStatusPending, entity.ProfileStatusComplete,
	)
	if err != nil {
		return fmt.Errorf("accept agreement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Count total de franquicias.
func (r *FranchiseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM franchises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count franchises: %w", err)
	}
	return n, nil
}

// CountByAgreementStatus total de franquicias por estado de contrato.
func (r *FranchiseRepo) CountByAgreementStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM franchises WHERE agreement_status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count franchises by agreement status: %w", err)
	}
	return n, nil
}

func (r *FranchiseRepo) getOne(ctx context.Context, query string, arg any) (*entity.Franchise, error) {
	f, err := scanFranchise(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get franchise: %w", err)
	}
	return f, nil
}

func scanFranchise(row pgx.Row) (*entity.Franchise, error) {
	var f entity.Franchise
	var idProofType *string
	err := row.Scan(
		&f.ID, &f.EnquiryID, &f.UserID, &f.FranchiseCode, &f.PartnerType,
		&f.OwnerName, &f.BusinessName, &f.Email, &f.Phone,
		&f.Address.Street, &f.Address.City, &f.Address.State, &f.Address.Pincode, &f.Address.Country,
		&idProofType, &f.IDProof.Number, &f.IDProof.DocumentURL, &f.BusinessDetails,
		&f.ProfileStatus, &f.AgreementStatus, &f.AgreementAcceptedAt, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if idProofType != nil {
		f.IDProof.Type = *idProofType
	}
	return &f, nil
}

// nullIfEmpty mapea "" a NULL para columnas con CHECK de enum que admiten NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
