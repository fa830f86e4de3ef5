package models

// Party is a row of the clientes or proveedores table. Both tables share
// the same columns.
type Party struct {
	ID        string  `db:"id"`
	Nombre    string  `db:"nombre"`
	Domicilio *string `db:"domicilio"`
	CUIT      *string `db:"cuit"`
	Email     *string `db:"email"`
	Telefono  *string `db:"telefono"`
	AuditFields
}
