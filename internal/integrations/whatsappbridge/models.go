package whatsappbridge

// ConfirmationMessage is the payload for a booking confirmation
type ConfirmationMessage struct {
	AppointmentID int64  `json:"appointment_id"`
	PatientID     int64  `json:"patient_id"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"date"`       // YYYY-MM-DD
	StartTime     string `json:"start_time"` // HH:MM
}
