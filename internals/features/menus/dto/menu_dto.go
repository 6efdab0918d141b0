// internals/features/menus/dto/menu_dto.go
package dto

/* ===================== RESPONSES ===================== */

// CalendarDayResponse adalah satu hari dalam kalender menu bulanan.
// Hari libur membawa daftar nama libur, hari biasa membawa daftar menu.
type CalendarDayResponse struct {
	Day      int      `json:"day"`
	Weekday  string   `json:"weekday"`
	Holiday  bool     `json:"holiday"`
	Holidays []string `json:"holidays,omitempty"`
	Menus    []string `json:"menus"`
}

type CalendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

type DayMenuResponse struct {
	Date  string   `json:"date"`
	Menus []string `json:"menus"`
}
