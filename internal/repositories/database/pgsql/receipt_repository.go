package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/mapping"
)

const receiptColumns = `id, numero, fecha, tipo, cliente_id, proveedor_id, factura_id, efectivo, transferencia, otros, observaciones, total, created_at, created_by, last_updated_at, last_updated_by`

const checkColumns = `id, recibo_id, posicion, tipo, fecha_cobro, banco, numero, monto`

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ID,
		&m.Numero,
		&m.Fecha,
		&m.Tipo,
		&m.ClienteID,
		&m.ProveedorID,
		&m.FacturaID,
		&m.Efectivo,
		&m.Transferencia,
		&m.Otros,
		&m.Observaciones,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReceiptRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO recibos (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		m.ID,
		m.Numero,
		m.Fecha,
		m.Tipo,
		m.ClienteID,
		m.ProveedorID,
		m.FacturaID,
		m.Efectivo,
		m.Transferencia,
		m.Otros,
		m.Observaciones,
		m.Total,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "failed to insert receipt "+m.ID)
	}

	if err := insertChecks(ctx, tx, checks); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxReceiptRepository) ReplaceReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReceipt(receipt)
	query := `
		UPDATE recibos
		SET numero = $1, fecha = $2, tipo = $3, cliente_id = $4, proveedor_id = $5, factura_id = $6,
		    efectivo = $7, transferencia = $8, otros = $9, observaciones = $10, total = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE id = $14;
	`
	tag, err := tx.Exec(ctx, query,
		m.Numero,
		m.Fecha,
		m.Tipo,
		m.ClienteID,
		m.ProveedorID,
		m.FacturaID,
		m.Efectivo,
		m.Transferencia,
		m.Otros,
		m.Observaciones,
		m.Total,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ID,
	)
	if err != nil {
		return mapStoreError(err, "failed to update receipt "+m.ID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recibo_cheques WHERE recibo_id = $1;`, m.ID); err != nil {
		return mapStoreError(err, "failed to clear checks of receipt "+m.ID)
	}
	if err := insertChecks(ctx, tx, checks); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertChecks(ctx context.Context, tx pgx.Tx, checks []domain.Check) error {
	if len(checks) == 0 {
		return nil
	}
	query := `INSERT INTO recibo_cheques (` + checkColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	batch := &pgx.Batch{}
	for _, c := range checks {
		mc := mapping.ToModelReceiptCheck(c)
		batch.Queue(query,
			mc.ID,
			mc.ReciboID,
			mc.Posicion,
			mc.Tipo,
			mc.FechaCobro,
			mc.Banco,
			mc.Numero,
			mc.Monto,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapStoreError(err, "failed to insert receipt checks")
	}
	return nil
}

func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM recibos WHERE id = $1;`, receiptID)
	if err != nil {
		return mapStoreError(err, "failed to delete receipt "+receiptID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + receiptColumns + ` FROM recibos WHERE id = $1;`
	m, err := scanReceipt(tx.QueryRow(ctx, query, receiptID))
	if err != nil {
		return nil, mapStoreError(err, "failed to find receipt "+receiptID)
	}
	receipt := mapping.ToDomainReceipt(m)

	checks, err := checksFor(ctx, tx, []string{receiptID})
	if err != nil {
		return nil, err
	}
	receipt.Checks = checks[receiptID]
	if receipt.Checks == nil {
		receipt.Checks = []domain.Check{}
	}
	return &receipt, nil
}

// ListReceipts returns receipts matching the filter, newest first, with
// their checks attached. Headers and checks come from one snapshot.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	receipts, ids, err := listReceiptHeaders(ctx, tx, filter)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return receipts, nil
	}

	checks, err := checksFor(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].Checks = checks[receipts[i].ReceiptID]
		if receipts[i].Checks == nil {
			receipts[i].Checks = []domain.Check{}
		}
	}
	return receipts, nil
}

func listReceiptHeaders(ctx context.Context, tx pgx.Tx, filter domain.ReceiptFilter) ([]domain.Receipt, []string, error) {
	where, args := ledgerWhere(string(filter.Type), filter.Type.PartyKind(), filter.PartyIDs, filter.DateRange)
	query := `SELECT ` + receiptColumns + ` FROM recibos` + where + ` ORDER BY fecha DESC, id;`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapStoreError(err, "failed to query receipts")
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	ids := []string{}
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(m))
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating receipt rows", err)
	}
	return receipts, ids, nil
}

func checksFor(ctx context.Context, tx pgx.Tx, receiptIDs []string) (map[string][]domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM recibo_cheques WHERE recibo_id = ANY($1) ORDER BY recibo_id, posicion;`
	rows, err := tx.Query(ctx, query, receiptIDs)
	if err != nil {
		return nil, mapStoreError(err, "failed to query receipt checks")
	}
	defer rows.Close()

	byReceipt := make(map[string][]domain.Check, len(receiptIDs))
	for rows.Next() {
		var mc models.ReceiptCheck
		if err := rows.Scan(&mc.ID, &mc.ReciboID, &mc.Posicion, &mc.Tipo, &mc.FechaCobro, &mc.Banco, &mc.Numero, &mc.Monto); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt check row", err)
		}
		byReceipt[mc.ReciboID] = append(byReceipt[mc.ReciboID], mapping.ToDomainCheck(mc))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating receipt check rows", err)
	}
	return byReceipt, nil
}
