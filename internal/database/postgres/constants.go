package postgres

// PostgreSQL error codes checked via pgconn.PgError
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
