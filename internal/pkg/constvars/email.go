package constvars

const (
	EmailBookingSubjectFormat = "Nowa rezerwacja: %s %s"
	EmailBasicMessageFormat   = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n"
)
