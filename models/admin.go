package models

// AdminStats is an aggregate projection over the user collection. It is
// computed on demand and never persisted.
type AdminStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`

	// Growth is a demo-only figure; there is no historical data locally to
	// derive a real one from.
	Growth float64 `json:"growth"`

	DomainDistribution []DomainCount `json:"domainDistribution"`
}

// DomainCount is one bucket of the domain histogram.
type DomainCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
