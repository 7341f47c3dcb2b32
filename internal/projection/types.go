package projection

// StatsQuery represents the query parameters of GET /traffic/stats.
type StatsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// SeriesQuery represents the query parameters of GET /traffic/series.
type SeriesQuery struct {
	View string `form:"view"` // default: "daily"
	From string `form:"from"`
	To   string `form:"to"`
}
