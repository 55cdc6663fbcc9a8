package model

type Book struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	DownloadUrl   string `json:"downloadUrl"`
	Description   string `json:"description"`
	Author        string `json:"author,omitempty"`
	Isbn          string `json:"isbn,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

type BooksPage struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

type BookDetails struct {
	Book    Book
	Related []Book
}
