package openstreetmap

// LookupAPIResponse is the Nominatim reverse geocoding payload (format=jsonv2)
type LookupAPIResponse struct {
	PlaceId     int     `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Addresstype string  `json:"addresstype"`
	Importance  float64 `json:"importance"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error"`
}

type Address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// Place returns the most specific settlement name available
func (r *LookupAPIResponse) Place() string {
	for _, name := range []string{r.Address.City, r.Address.Town, r.Address.Village, r.Name, r.Address.County, r.Address.State} {
		if name != "" {
			return name
		}
	}
	return r.DisplayName
}
