package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/adminService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/bookService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/catalogService"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type CatalogService interface {
	GetPage(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error)
	CategoriesWithCounts(ctx context.Context) ([]model.CategoryWithCount, error)
}

type BookService interface {
	GetDetails(ctx context.Context, id string) (model.BookDetails, error)
	DownloadUrl(ctx context.Context, id string) (string, error)
}

type AdminService interface {
	Login(ctx context.Context, form adminService.LoginForm) (string, error)
	Logout(ctx context.Context, sid string) error
	Session(ctx context.Context, sid string) (model.AdminSession, error)
	Books(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
	Book(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, s model.AdminSession, form adminService.BookForm) (model.Book, error)
	UpdateBook(ctx context.Context, s model.AdminSession, id string, form adminService.BookForm) (model.Book, error)
	DeleteBook(ctx context.Context, s model.AdminSession, id string) error
	Categories(ctx context.Context) ([]model.Category, error)
	SaveCategory(ctx context.Context, s model.AdminSession, id string, form adminService.CategoryForm) (model.Category, error)
	DeleteCategory(ctx context.Context, s model.AdminSession, id string) error
	Profile(ctx context.Context, s model.AdminSession) (model.Profile, error)
	UpdateProfile(ctx context.Context, s model.AdminSession, form adminService.ProfileForm) (model.Profile, error)
}

type AnalyticsService interface {
	Overview(ctx context.Context) (model.Analytics, error)
}

type Notifier interface {
	LatestAnnounced() (model.Book, bool)
	Subscribe(ctx context.Context, email string) error
}

type Controller struct {
	cfg       *config.Config
	rd        *renderer
	catalog   CatalogService
	books     BookService
	admin     AdminService
	analytics AnalyticsService
	notifier  Notifier
}

func NewController(
	cfg *config.Config,
	catalog CatalogService,
	books BookService,
	admin AdminService,
	analytics AnalyticsService,
	notifier Notifier,
) (*Controller, error) {
	rd, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}

	return &Controller{
		cfg:       cfg,
		rd:        rd,
		catalog:   catalog,
		books:     books,
		admin:     admin,
		analytics: analytics,
		notifier:  notifier,
	}, nil
}

func (ctrl *Controller) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view := homeView{Title: "UIT Kutubxona"}
	switch {
	case r.URL.Query().Get("subscribed") == "1":
		view.Flash = subscribedMsg
	case r.URL.Query().Get("error") == "email":
		view.Error = invalidEmailMsg
	}

	if book, ok := ctrl.notifier.LatestAnnounced(); ok {
		view.AnnouncedBook = &book
	}

	page, categories, err := ctrl.catalog.GetPage(ctx, model.CatalogQuery{Page: 1})
	if err != nil {
		view.Error = booksLoadErrMsg
		ctrl.rd.render(w, r, http.StatusOK, "home.html", view)
		return
	}

	latest := page.Books
	if len(latest) > 6 {
		latest = latest[:6]
	}

	view.Latest = latest
	view.Categories = categories
	view.TotalBooks = page.Pagination.TotalBooks
	view.TotalCategory = len(categories)

	ctrl.rd.render(w, r, http.StatusOK, "home.html", view)
}

func (ctrl *Controller) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values := r.URL.Query()
	var q model.CatalogQuery
	if values.Get("src") == "search" {
		q = catalogService.QueryFromForm(values)
	} else {
		q = catalogService.QueryFromURL(values)
	}

	page, categories, err := ctrl.catalog.GetPage(ctx, q)
	if err != nil {
		ctrl.rd.render(w, r, http.StatusOK, "catalog.html", catalogView{
			Title: "Kitoblar Katalogi",
			Error: userMessage(err),
			Query: q,
		})
		return
	}

	ctrl.rd.render(w, r, http.StatusOK, "catalog.html", catalogView{
		Title:      "Kitoblar Katalogi",
		Books:      page.Books,
		Categories: categories,
		Query:      q,
		Pagination: page.Pagination,
	})
}

func (ctrl *Controller) BookDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.BookDetails"
	id := r.PathValue("id")

	details, err := ctrl.books.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, bookService.ErrBookNotFound) {
			ctrl.notFound(w, r)
			return
		}
		slog.Error("got error from books.GetDetails", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.serverError(w, r, err)
		return
	}

	ctrl.rd.render(w, r, http.StatusOK, "book.html", bookView{
		Title:   details.Book.Title,
		Book:    details.Book,
		Related: details.Related,
	})
}

// DownloadBook records the download and sends the reader to the external
// file. Tracking failure never blocks the redirect.
func (ctrl *Controller) DownloadBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.DownloadBook"
	id := r.PathValue("id")

	downloadUrl, err := ctrl.books.DownloadUrl(ctx, id)
	if err != nil {
		if errors.Is(err, bookService.ErrBookNotFound) {
			ctrl.notFound(w, r)
			return
		}
		slog.Error("got error from books.DownloadUrl", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, downloadUrl, http.StatusSeeOther)
}

func (ctrl *Controller) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.Categories"

	categories, err := ctrl.catalog.CategoriesWithCounts(ctx)
	if err != nil {
		slog.Error("got error from catalog.CategoriesWithCounts", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.rd.render(w, r, http.StatusOK, "categories.html", categoriesView{
			Title: "Kategoriyalar",
			Error: booksLoadErrMsg,
		})
		return
	}

	ctrl.rd.render(w, r, http.StatusOK, "categories.html", categoriesView{
		Title:      "Kategoriyalar",
		Categories: categories,
	})
}

func (ctrl *Controller) About(w http.ResponseWriter, r *http.Request) {
	ctrl.rd.render(w, r, http.StatusOK, "about.html", aboutView{Title: "Kutubxona Haqida"})
}

func (ctrl *Controller) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.Subscribe"

	if err := ctrl.notifier.Subscribe(ctx, r.FormValue("email")); err != nil {
		slog.Warn("subscribe rejected", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		http.Redirect(w, r, "/?error=email", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?subscribed=1", http.StatusSeeOther)
}

func (ctrl *Controller) notFound(w http.ResponseWriter, r *http.Request) {
	ctrl.rd.render(w, r, http.StatusNotFound, "not_found.html", errorView{
		Title:   bookNotFoundMsg,
		Message: bookNotFoundMsg,
	})
}

func (ctrl *Controller) serverError(w http.ResponseWriter, r *http.Request, err error) {
	ctrl.rd.render(w, r, http.StatusInternalServerError, "error.html", errorView{
		Title:   "Xatolik",
		Message: userMessage(err),
	})
}
