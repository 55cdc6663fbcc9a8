package model

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalBooks  int  `json:"totalBooks"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}
