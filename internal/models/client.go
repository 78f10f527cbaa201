package models

// LoginRequest is the body of POST /api/login. Passport series and number
// stand in for a username; the password is compared as-is against the
// authentication table.
type LoginRequest struct {
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
	Password       string `json:"password"`
}

// ClientProfile is one row of clients_profile. MiddleName is nullable in the
// schema and serialized as null when absent.
type ClientProfile struct {
	ProfileID     int64   `json:"profile_id"`
	ClientID      int64   `json:"client_id"`
	LastName      string  `json:"last_name"`
	FirstName     string  `json:"first_name"`
	MiddleName    *string `json:"middle_name"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	MaritalStatus string  `json:"marital_status"`
	AccountNumber string  `json:"account_number"`
	Capital       float64 `json:"capital"`
}
