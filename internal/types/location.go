package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// Label joins name and country code the way the report prints them, "London, GB".
// Missing parts are left blank, so an unnamed place reads ", GB".
func (l LocationInfo) Label() string {
	return l.Name + ", " + l.CountryCode
}
