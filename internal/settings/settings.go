// Package settings manages the single-record configuration collections:
// the user profile, company details, and application preferences.
package settings

// UserProfile holds the account holder's contact details shown on reports.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CompanySettings holds the management company details.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// AppSettings holds display preferences.
type AppSettings struct {
	Currency           string `json:"currency"`
	DateFormat         string `json:"dateFormat"`
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"emailNotifications"`
}

// DefaultAppSettings returns the preferences used before the user saves any.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Currency:   "USD",
		DateFormat: "MM/DD/YYYY",
		Theme:      "light",
	}
}
