package domain

// Passenger is a pure record; all mutation goes through the store layer.
type Passenger struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	PassportNumber string `json:"passportNumber"`
}
