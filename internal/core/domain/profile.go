package domain

import "time"

// Profile holds the mutable display attributes of an account. Client and
// freelancer profiles share the common fields; the rest are role-specific.
type Profile struct {
	AccountID string    `json:"account_id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	PhotoPath string    `json:"photo_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// client_info
	Company string `json:"company,omitempty"`

	// freelancer_info
	Headline   string   `json:"headline,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	HourlyRate float64  `json:"hourly_rate,omitempty"`
}
