package model

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

type CatalogQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

func (q CatalogQuery) Filtered() bool {
	return q.Search != "" || (q.Category != "" && q.Category != CategoryAll)
}
