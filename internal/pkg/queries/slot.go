package queries

const (
	InsertSlot = `
		INSERT INTO slots (start_at, end_at, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	// Free slots win over booked ones sharing the same start.
	GetSlotByStart = `
		SELECT s.id, s.start_at, s.end_at, s.capacity, s.created_at
		FROM slots s
		WHERE s.start_at = $1
		ORDER BY EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id), s.end_at
		LIMIT 1
	`

	// $1 range start, $2 range end (exclusive), $3 now; a slot starting exactly now is still bookable
	GetAvailableSlots = `
		SELECT s.id, s.start_at, s.end_at, s.capacity, s.created_at
		FROM slots s
		WHERE s.start_at >= $1
			AND s.start_at < $2
			AND s.start_at >= $3
			AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id)
		ORDER BY s.start_at
	`

	GetSlotsWithBookings = `
		SELECT s.id, s.start_at, s.end_at, s.capacity, s.created_at,
			b.id, b.status, b.client_name, b.client_email, b.client_phone, b.created_at
		FROM slots s
		LEFT JOIN bookings b ON b.slot_id = s.id
		WHERE s.start_at >= $1 AND s.start_at < $2
		ORDER BY s.start_at
	`

	DeleteSlot = `
		DELETE FROM slots
		WHERE id = $1
	`

	DeletePastUnbookedSlots = `
		DELETE FROM slots s
		WHERE s.end_at < $1
			AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id)
	`
)
