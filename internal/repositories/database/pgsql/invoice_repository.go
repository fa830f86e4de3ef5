package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/mapping"
)

const invoiceColumns = `id, numero, fecha, tipo, subtipo, cliente_id, proveedor_id, subtotal, iva, total, created_at, created_by, last_updated_at, last_updated_by`

const insertInvoiceItemQuery = `
	INSERT INTO factura_items (id, factura_id, posicion, descripcion, cantidad, precio_unitario)
	VALUES ($1, $2, $3, $4, $5, $6);
`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.ID,
		&m.Numero,
		&m.Fecha,
		&m.Tipo,
		&m.Subtipo,
		&m.ClienteID,
		&m.ProveedorID,
		&m.Subtotal,
		&m.IVA,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateInvoice inserts the invoice header and its items in one transaction.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO facturas (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		m.ID,
		m.Numero,
		m.Fecha,
		m.Tipo,
		m.Subtipo,
		m.ClienteID,
		m.ProveedorID,
		m.Subtotal,
		m.IVA,
		m.Total,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "failed to insert invoice "+m.ID)
	}

	if err := insertInvoiceItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceInvoice overwrites the header and swaps the whole item set.
func (r *PgxInvoiceRepository) ReplaceInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE facturas
		SET numero = $1, fecha = $2, tipo = $3, subtipo = $4, cliente_id = $5, proveedor_id = $6,
		    subtotal = $7, iva = $8, total = $9, last_updated_at = $10, last_updated_by = $11
		WHERE id = $12;
	`
	tag, err := tx.Exec(ctx, query,
		m.Numero,
		m.Fecha,
		m.Tipo,
		m.Subtipo,
		m.ClienteID,
		m.ProveedorID,
		m.Subtotal,
		m.IVA,
		m.Total,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ID,
	)
	if err != nil {
		return mapStoreError(err, "failed to update invoice "+m.ID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM factura_items WHERE factura_id = $1;`, m.ID); err != nil {
		return mapStoreError(err, "failed to clear items of invoice "+m.ID)
	}
	if err := insertInvoiceItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertInvoiceItems(ctx context.Context, tx pgx.Tx, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, item := range items {
		mi := mapping.ToModelInvoiceItem(item)
		batch.Queue(insertInvoiceItemQuery,
			mi.ID,
			mi.FacturaID,
			mi.Posicion,
			mi.Descripcion,
			mi.Cantidad,
			mi.PrecioUnitario,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapStoreError(err, "failed to insert invoice items")
	}
	return nil
}

// DeleteInvoice removes an invoice; items cascade. Receipts pointing at it
// keep their row with the link cleared.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM facturas WHERE id = $1;`, invoiceID)
	if err != nil {
		return mapStoreError(err, "failed to delete invoice "+invoiceID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + invoiceColumns + ` FROM facturas WHERE id = $1;`
	m, err := scanInvoice(tx.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, mapStoreError(err, "failed to find invoice "+invoiceID)
	}
	invoice := mapping.ToDomainInvoice(m)

	rows, err := tx.Query(ctx, `
		SELECT id, factura_id, posicion, descripcion, cantidad, precio_unitario
		FROM factura_items
		WHERE factura_id = $1
		ORDER BY posicion;
	`, invoiceID)
	if err != nil {
		return nil, mapStoreError(err, "failed to query items of invoice "+invoiceID)
	}
	defer rows.Close()

	invoice.Items = []domain.LineItem{}
	for rows.Next() {
		var mi models.InvoiceItem
		if err := rows.Scan(&mi.ID, &mi.FacturaID, &mi.Posicion, &mi.Descripcion, &mi.Cantidad, &mi.PrecioUnitario); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		invoice.Items = append(invoice.Items, mapping.ToDomainLineItem(mi))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}
	return &invoice, nil
}

// ListInvoices returns invoice headers matching the filter, newest first.
// Items are not loaded.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	where, args := ledgerWhere(string(filter.Type), filter.Type.PartyKind(), filter.PartyIDs, filter.DateRange)
	query := `SELECT ` + invoiceColumns + ` FROM facturas` + where + ` ORDER BY fecha DESC, id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError(err, "failed to query invoices")
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

// ledgerWhere builds the WHERE clause shared by invoice and receipt listings.
// A nil partyIDs means no party restriction; an empty non-nil slice matches
// nothing.
func ledgerWhere(tipo string, kind domain.PartyKind, partyIDs []string, dates domain.DateRange) (string, []any) {
	var conds []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if tipo != "" {
		conds = append(conds, "tipo = "+next(tipo))
	}
	if partyIDs != nil {
		col := "cliente_id"
		if kind == domain.PartySupplier {
			col = "proveedor_id"
		}
		conds = append(conds, col+" = ANY("+next(partyIDs)+")")
	}
	if dates.From != nil {
		conds = append(conds, "fecha >= "+next(*dates.From))
	}
	if dates.To != nil {
		conds = append(conds, "fecha <= "+next(*dates.To))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
