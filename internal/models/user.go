package models

// User is a row of the usuarios table.
type User struct {
	ID           string `db:"id"`
	Nombre       string `db:"nombre"`
	Email        string `db:"email"`
	PasswordHash string `db:"contrasena_hash"`
	Rol          string `db:"rol"`
	AuditFields
}
