package models

// Park, statik katalogdaki bir park. Kullanıcı tarafından değiştirilemez.
type Park struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Manager      string  `json:"manager"`
	Address      string  `json:"address"`
	Facilities   string  `json:"facilities"`
	OpeningHours string  `json:"opening_hours"`
	IsOpen       bool    `json:"is_open"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
}
