package doctorservice

// Doctor is the directory's doctor record
type Doctor struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	CRM       string `json:"crm"` // medical council registration
	Phone     string `json:"phone"`
	Active    bool   `json:"active"`
}

// ErrorResponse is the directory's error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
