package web

import (
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/adminService"
)

type homeView struct {
	Title         string
	Error         string
	Flash         string
	Latest        []model.Book
	Categories    []model.Category
	TotalBooks    int
	TotalCategory int
	AnnouncedBook *model.Book
}

type catalogView struct {
	Title      string
	Error      string
	Books      []model.Book
	Categories []model.Category
	Query      model.CatalogQuery
	Pagination model.Pagination
}

type bookView struct {
	Title   string
	Book    model.Book
	Related []model.Book
}

type categoriesView struct {
	Title      string
	Error      string
	Categories []model.CategoryWithCount
}

type aboutView struct {
	Title string
}

type loginView struct {
	Title       string
	Error       string
	FieldErrors map[string]string
	Username    string
}

type dashboardView struct {
	Title          string
	Error          string
	Session        model.AdminSession
	TotalBooks     int
	TotalCategory  int
	TotalViews     int
	TotalDownloads int
	RecentBooks    []model.Book
}

type adminBooksView struct {
	Title      string
	Error      string
	Flash      string
	Session    model.AdminSession
	Books      []model.Book
	Query      model.CatalogQuery
	Pagination model.Pagination
}

type bookFormView struct {
	Title       string
	Error       string
	FieldErrors map[string]string
	Session     model.AdminSession
	Form        adminService.BookForm
	Categories  []model.Category
	EditID      string
}

type adminCategoriesView struct {
	Title       string
	Error       string
	Flash       string
	FieldErrors map[string]string
	Session     model.AdminSession
	Categories  []model.Category
	Name        string
	EditID      string
}

type analyticsView struct {
	Title     string
	Error     string
	Session   model.AdminSession
	Analytics model.Analytics
}

type profileView struct {
	Title       string
	Error       string
	Flash       string
	FieldErrors map[string]string
	Session     model.AdminSession
	Profile     model.Profile
}

type errorView struct {
	Title   string
	Message string
}
