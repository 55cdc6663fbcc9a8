package model

type CategoryStats struct {
	Name       string
	Views      int
	Downloads  int
	BooksCount int
}

type BookStats struct {
	ID        string
	Title     string
	Views     int
	Downloads int
}

type Analytics struct {
	TotalBooks     int
	TotalViews     int
	TotalDownloads int
	Categories     []CategoryStats
	TopBooks       []BookStats
}
