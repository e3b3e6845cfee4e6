package api

// Breadcrumb is one segment of a result's site path.
type Breadcrumb struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Result is one ranked search hit as returned by the backend aggregator.
type Result struct {
	Title       string       `json:"title"`
	Link        string       `json:"link"`
	Snippet     string       `json:"snippet"`
	Source      string       `json:"source"`
	Score       float64      `json:"score"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs,omitempty"`
	FaviconURL  string       `json:"favicon_url,omitempty"`
	SiteName    string       `json:"site_name,omitempty"`
}

// QuickAnswer is a definition-style snippet shown above the result list.
type QuickAnswer struct {
	AnswerType string `json:"answer_type"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source"`
}

// SearchQuery carries every parameter that affects the /api/search read.
type SearchQuery struct {
	Query     string
	Page      int
	DateRange string
	Region    string
	Language  string
}
