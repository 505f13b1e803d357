package openweathermap

// ForecastAPIResponse is the 5 day / 3 hour forecast payload.
// Only the fields this service reads are declared.
type ForecastAPIResponse struct {
	Cod     string           `json:"cod"`
	Message float64          `json:"message"`
	Cnt     int              `json:"cnt"`
	List    []ForecastSample `json:"list"`
	City    City             `json:"city"`
}

type ForecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Clouds  struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Pop        float64 `json:"pop"`
	DtTxt      string  `json:"dt_txt"`
}

type Condition struct {
	Id          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type City struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Country    string `json:"country"`
	Population int    `json:"population"`
	Timezone   int    `json:"timezone"` // shift from UTC in seconds
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}
