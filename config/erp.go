package config

import "time"

// ERPConfig contains configuration for the remote ERP API that owns
// candidate records, rosters, and offer state.
type ERPConfig struct {
	// BaseURL is the API root, including the /api path segment.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.kylianerp.com/api"`

	// FileBaseURL is the host used for document links (offer letters)
	// returned by the API as host-relative paths.
	FileBaseURL string `env:"FILE_BASE_URL" envDefault:"https://api.kylianerp.com"`

	// Timeout bounds each outbound request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// DefaultEmployeeID is sent as the roster "id" query parameter when the
	// session user has no resolvable employee id. The roster endpoint rejects
	// requests without some id value.
	DefaultEmployeeID int `env:"DEFAULT_EMPLOYEE_ID" envDefault:"911115"`

	// DefaultCompanyID is used for roster fetches when the session user has
	// no resolvable company id.
	DefaultCompanyID int `env:"DEFAULT_COMPANY_ID" envDefault:"59"`
}

// Sanitize applies guardrails to ERP configuration values.
func (e *ERPConfig) Sanitize() {
	if e.Timeout <= 0 {
		e.Timeout = 30 * time.Second
	}
}
