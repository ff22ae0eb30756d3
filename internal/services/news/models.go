package news

// Query modes selecting the upstream endpoint.
const (
	ModeTopHeadlines = "top-headlines"
	ModeSearch       = "search"
)

// Query defaults applied when the caller omits a parameter.
const (
	DefaultCategory = "general"
	DefaultLanguage = "en"
	DefaultCountry  = "in"
	DefaultSortBy   = "publishedAt"
)

// Query is the internal query vocabulary the frontend speaks. It is mapped
// onto the news provider's parameters by the service; nothing else about the
// upstream leaks through.
type Query struct {
	Mode     string `query:"mode" validate:"omitempty,oneof=top-headlines search" example:"search"`
	Keyword  string `query:"keyword" example:"elections"`
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	Category string `query:"category" example:"general"`
	Source   string `query:"source" example:"bbc"`
	Language string `query:"language" example:"en"`
	Country  string `query:"country" example:"in"`
	SortBy   string `query:"sortBy" example:"publishedAt"`
}

// applyDefaults fills in the documented defaults for omitted parameters.
func (q *Query) applyDefaults() {
	if q.Mode == "" {
		q.Mode = ModeTopHeadlines
	}
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.Language == "" {
		q.Language = DefaultLanguage
	}
	if q.Country == "" {
		q.Country = DefaultCountry
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
}

// Result is a relayed upstream response. Body is passed through verbatim;
// StatusCode is the upstream's status so handlers can forward it.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
