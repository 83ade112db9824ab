package queries

const (
	GetAdminByEmail = `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`

	GetAdminByID = `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`

	UpsertAdmin = `
		INSERT INTO admin_users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id, email, password_hash, created_at, updated_at
	`
)
