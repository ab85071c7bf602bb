package agreement

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de la aceptación
// atados a la tx: el cambio de agreement_status y el append al log de auditoría
// persisten juntos o ninguno.
type TxRunner interface {
	RunAgreement(ctx context.Context, fn func(
		franchiseRepo repository.FranchiseRepository,
		logRepo repository.AgreementLogRepository,
	) error) error
}

// PDFGenerator contrato del renderizador externo del contrato. El caso de uso
// verifica agreement_status=accepted ANTES de invocarlo.
type PDFGenerator interface {
	GenerateAgreementPDF(ctx context.Context, franchise *entity.Franchise, companyName string) ([]byte, error)
}
