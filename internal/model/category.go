package model

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type CategoryWithCount struct {
	Category
	BooksCount int
}
