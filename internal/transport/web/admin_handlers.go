package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/adminService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/catalogService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/validation"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

const sessionCookieName = "admin_session"

type ctxKey string

const sessionCtxKey ctxKey = "adminSession"

func sessionFromCtx(ctx context.Context) model.AdminSession {
	s, _ := ctx.Value(sessionCtxKey).(model.AdminSession)
	return s
}

// requireAdmin resolves the session cookie before the handler runs and
// redirects anonymous requests to the login page. No upstream call happens
// for missing or expired sessions.
func (ctrl *Controller) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sid := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sid = cookie.Value
		}

		adminSession, err := ctrl.admin.Session(ctx, sid)
		if err != nil {
			if !errors.Is(err, adminService.ErrNoSession) {
				slog.Error("session lookup failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("err", err.Error()))
			}
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		next(w, r.WithContext(context.WithValue(ctx, sessionCtxKey, adminSession)))
	}
}

func (ctrl *Controller) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if _, err := ctrl.admin.Session(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
	}

	ctrl.rd.render(w, r, http.StatusOK, "admin_login.html", loginView{Title: "Admin Kirish"})
}

func (ctrl *Controller) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.Login"

	form := adminService.LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	sid, err := ctrl.admin.Login(ctx, form)
	if err != nil {
		view := loginView{Title: "Admin Kirish", Username: form.Username}

		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			view.FieldErrors = verr.Fields
		case errors.Is(err, adminService.ErrInvalidCredentials):
			view.Error = loginFailedMsg
		default:
			slog.Error("got error from admin.Login", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
			view.Error = userMessage(err)
		}

		ctrl.rd.render(w, r, http.StatusUnprocessableEntity, "admin_login.html", view)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ctrl.cfg.SessionExpiration.Seconds()),
	})

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (ctrl *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := ctrl.admin.Logout(ctx, cookie.Value); err != nil {
			slog.Error("logout failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("err", err.Error()))
		}
	}

	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// Dashboard joins the books and categories fetches; both must succeed, as
// every stat card depends on them.
func (ctrl *Controller) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.Dashboard"
	adminSession := sessionFromCtx(ctx)

	var (
		page       model.BooksPage
		categories []model.Category
		booksErr   error
		catsErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		page, booksErr = ctrl.admin.Books(ctx, model.CatalogQuery{Page: 1, Limit: ctrl.cfg.AnalyticsFetchCap})
	}()
	go func() {
		defer wg.Done()
		categories, catsErr = ctrl.admin.Categories(ctx)
	}()
	wg.Wait()

	if booksErr != nil || catsErr != nil {
		err := booksErr
		if err == nil {
			err = catsErr
		}
		slog.Error("dashboard fetch failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.rd.render(w, r, http.StatusOK, "admin_dashboard.html", dashboardView{
			Title:   "Dashboard",
			Error:   booksLoadErrMsg,
			Session: adminSession,
		})
		return
	}

	view := dashboardView{
		Title:         "Dashboard",
		Session:       adminSession,
		TotalBooks:    page.Pagination.TotalBooks,
		TotalCategory: len(categories),
	}
	for _, book := range page.Books {
		view.TotalViews += book.Views
		view.TotalDownloads += book.Downloads
	}
	view.RecentBooks = page.Books
	if len(view.RecentBooks) > 5 {
		view.RecentBooks = view.RecentBooks[:5]
	}

	ctrl.rd.render(w, r, http.StatusOK, "admin_dashboard.html", view)
}

func (ctrl *Controller) AdminBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.AdminBooks"
	adminSession := sessionFromCtx(ctx)

	q := catalogService.QueryFromURL(r.URL.Query())

	view := adminBooksView{Title: "Kitoblar", Session: adminSession, Query: q}
	switch {
	case r.URL.Query().Get("saved") == "1":
		view.Flash = bookSavedMsg
	case r.URL.Query().Get("deleted") == "1":
		view.Flash = bookDeletedMsg
	case r.URL.Query().Get("error") == "confirm":
		view.Error = confirmRequiredMsg
	}

	page, err := ctrl.admin.Books(ctx, q)
	if err != nil {
		slog.Error("got error from admin.Books", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		view.Error = booksLoadErrMsg
		ctrl.rd.render(w, r, http.StatusOK, "admin_books.html", view)
		return
	}

	view.Books = page.Books
	view.Pagination = page.Pagination

	ctrl.rd.render(w, r, http.StatusOK, "admin_books.html", view)
}

func (ctrl *Controller) AddBookPage(w http.ResponseWriter, r *http.Request) {
	ctrl.renderBookForm(w, r, bookFormView{Title: "Kitob Qo'shish", Session: sessionFromCtx(r.Context())}, http.StatusOK)
}

func (ctrl *Controller) AddBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminSession := sessionFromCtx(ctx)

	form, err := bookFormFromRequest(r)
	if err != nil {
		ctrl.renderBookForm(w, r, bookFormView{Title: "Kitob Qo'shish", Session: adminSession, Error: internalErrMsg}, http.StatusBadRequest)
		return
	}

	if _, err := ctrl.admin.CreateBook(ctx, adminSession, form); err != nil {
		ctrl.handleBookFormError(w, r, err, bookFormView{Title: "Kitob Qo'shish", Session: adminSession, Form: form})
		return
	}

	http.Redirect(w, r, "/admin/books?saved=1", http.StatusSeeOther)
}

func (ctrl *Controller) EditBookPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	book, err := ctrl.admin.Book(ctx, id)
	if err != nil {
		ctrl.notFound(w, r)
		return
	}

	form := adminService.BookForm{
		Title:       book.Title,
		Description: book.Description,
		Category:    book.Category,
		DownloadUrl: book.DownloadUrl,
	}
	ctrl.renderBookForm(w, r, bookFormView{Title: "Kitobni Tahrirlash", Session: sessionFromCtx(ctx), Form: form, EditID: id}, http.StatusOK)
}

func (ctrl *Controller) EditBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminSession := sessionFromCtx(ctx)
	id := r.PathValue("id")

	form, err := bookFormFromRequest(r)
	if err != nil {
		ctrl.renderBookForm(w, r, bookFormView{Title: "Kitobni Tahrirlash", Session: adminSession, EditID: id, Error: internalErrMsg}, http.StatusBadRequest)
		return
	}

	if _, err := ctrl.admin.UpdateBook(ctx, adminSession, id, form); err != nil {
		ctrl.handleBookFormError(w, r, err, bookFormView{Title: "Kitobni Tahrirlash", Session: adminSession, Form: form, EditID: id})
		return
	}

	http.Redirect(w, r, "/admin/books?saved=1", http.StatusSeeOther)
}

func bookFormFromRequest(r *http.Request) (adminService.BookForm, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return adminService.BookForm{}, err
	}

	form := adminService.BookForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		DownloadUrl: r.FormValue("downloadUrl"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		form.Image = file
		form.ImageName = header.Filename
	}

	return form, nil
}

func (ctrl *Controller) handleBookFormError(w http.ResponseWriter, r *http.Request, err error, view bookFormView) {
	op := "Controller.handleBookFormError"
	ctx := r.Context()

	var verr *validation.Error
	if errors.As(err, &verr) {
		view.FieldErrors = verr.Fields
		ctrl.renderBookForm(w, r, view, http.StatusUnprocessableEntity)
		return
	}

	slog.Error("book save failed", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	view.Error = userMessage(err)
	ctrl.renderBookForm(w, r, view, http.StatusOK)
}

func (ctrl *Controller) renderBookForm(w http.ResponseWriter, r *http.Request, view bookFormView, status int) {
	categories, err := ctrl.admin.Categories(r.Context())
	if err != nil {
		slog.Warn("categories fetch for form failed", slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())), slog.String("err", err.Error()))
	}
	view.Categories = categories

	ctrl.rd.render(w, r, status, "admin_book_form.html", view)
}

// DeleteBook only fires after the confirmation field posted by the confirm
// dialog; without it the list is left untouched.
func (ctrl *Controller) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, "/admin/books?error=confirm", http.StatusSeeOther)
		return
	}

	if err := ctrl.admin.DeleteBook(ctx, sessionFromCtx(ctx), id); err != nil {
		ctrl.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/admin/books?deleted=1", http.StatusSeeOther)
}

func (ctrl *Controller) AdminCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.AdminCategories"
	adminSession := sessionFromCtx(ctx)

	view := adminCategoriesView{
		Title:   "Kategoriyalar",
		Session: adminSession,
		EditID:  r.URL.Query().Get("edit"),
		Name:    r.URL.Query().Get("name"),
	}
	switch {
	case r.URL.Query().Get("saved") == "1":
		view.Flash = categorySavedMsg
	case r.URL.Query().Get("deleted") == "1":
		view.Flash = categoryDeletedMsg
	case r.URL.Query().Get("error") == "confirm":
		view.Error = confirmRequiredMsg
	}

	categories, err := ctrl.admin.Categories(ctx)
	if err != nil {
		slog.Error("got error from admin.Categories", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		view.Error = booksLoadErrMsg
		ctrl.rd.render(w, r, http.StatusOK, "admin_categories.html", view)
		return
	}

	view.Categories = categories
	ctrl.rd.render(w, r, http.StatusOK, "admin_categories.html", view)
}

func (ctrl *Controller) SaveCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminSession := sessionFromCtx(ctx)

	id := r.FormValue("id")
	form := adminService.CategoryForm{Name: r.FormValue("name")}

	if _, err := ctrl.admin.SaveCategory(ctx, adminSession, id, form); err != nil {
		view := adminCategoriesView{Title: "Kategoriyalar", Session: adminSession, Name: form.Name, EditID: id}

		var verr *validation.Error
		if errors.As(err, &verr) {
			view.FieldErrors = verr.Fields
		} else {
			view.Error = userMessage(err)
		}

		if categories, catErr := ctrl.admin.Categories(ctx); catErr == nil {
			view.Categories = categories
		}

		ctrl.rd.render(w, r, http.StatusUnprocessableEntity, "admin_categories.html", view)
		return
	}

	http.Redirect(w, r, "/admin/categories?saved=1", http.StatusSeeOther)
}

func (ctrl *Controller) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, "/admin/categories?error=confirm", http.StatusSeeOther)
		return
	}

	if err := ctrl.admin.DeleteCategory(ctx, sessionFromCtx(ctx), id); err != nil {
		ctrl.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/admin/categories?deleted=1", http.StatusSeeOther)
}

func (ctrl *Controller) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.Analytics"
	adminSession := sessionFromCtx(ctx)

	analytics, err := ctrl.analytics.Overview(ctx)
	if err != nil {
		slog.Error("got error from analytics.Overview", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.rd.render(w, r, http.StatusOK, "admin_analytics.html", analyticsView{
			Title:   "Analitika",
			Error:   booksLoadErrMsg,
			Session: adminSession,
		})
		return
	}

	ctrl.rd.render(w, r, http.StatusOK, "admin_analytics.html", analyticsView{
		Title:     "Analitika",
		Session:   adminSession,
		Analytics: analytics,
	})
}

func (ctrl *Controller) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op := "Controller.ProfilePage"
	adminSession := sessionFromCtx(ctx)

	view := profileView{Title: "Profil", Session: adminSession}
	if r.URL.Query().Get("saved") == "1" {
		view.Flash = profileUpdatedMsg
	}

	profile, err := ctrl.admin.Profile(ctx, adminSession)
	if err != nil {
		slog.Error("got error from admin.Profile", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		view.Error = userMessage(err)
		ctrl.rd.render(w, r, http.StatusOK, "admin_profile.html", view)
		return
	}

	view.Profile = profile
	ctrl.rd.render(w, r, http.StatusOK, "admin_profile.html", view)
}

func (ctrl *Controller) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminSession := sessionFromCtx(ctx)

	form := adminService.ProfileForm{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		FullName: r.FormValue("fullName"),
	}

	if _, err := ctrl.admin.UpdateProfile(ctx, adminSession, form); err != nil {
		view := profileView{
			Title:   "Profil",
			Session: adminSession,
			Profile: model.Profile{Username: form.Username, Email: form.Email, FullName: form.FullName},
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			view.FieldErrors = verr.Fields
		} else {
			view.Error = userMessage(err)
		}

		ctrl.rd.render(w, r, http.StatusUnprocessableEntity, "admin_profile.html", view)
		return
	}

	http.Redirect(w, r, "/admin/profile?saved=1", http.StatusSeeOther)
}
