package queries

const (
	InsertBooking = `
		INSERT INTO bookings (slot_id, status, client_name, client_email, client_phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	DeleteBooking = `
		DELETE FROM bookings
		WHERE id = $1
	`
)
