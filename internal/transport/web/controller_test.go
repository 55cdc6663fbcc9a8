package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/adminService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/bookService"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	getPage              func(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error)
	categoriesWithCounts func(ctx context.Context) ([]model.CategoryWithCount, error)
}

func (f *fakeCatalog) GetPage(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error) {
	if f.getPage != nil {
		return f.getPage(ctx, q)
	}
	return model.BooksPage{Pagination: model.Pagination{Page: 1, TotalPages: 1}}, nil, nil
}

func (f *fakeCatalog) CategoriesWithCounts(ctx context.Context) ([]model.CategoryWithCount, error) {
	if f.categoriesWithCounts != nil {
		return f.categoriesWithCounts(ctx)
	}
	return nil, nil
}

type fakeBooks struct {
	getDetails  func(ctx context.Context, id string) (model.BookDetails, error)
	downloadUrl func(ctx context.Context, id string) (string, error)
}

func (f *fakeBooks) GetDetails(ctx context.Context, id string) (model.BookDetails, error) {
	if f.getDetails != nil {
		return f.getDetails(ctx, id)
	}
	return model.BookDetails{}, bookService.ErrBookNotFound
}

func (f *fakeBooks) DownloadUrl(ctx context.Context, id string) (string, error) {
	if f.downloadUrl != nil {
		return f.downloadUrl(ctx, id)
	}
	return "", bookService.ErrBookNotFound
}

type fakeAdmin struct {
	login          func(ctx context.Context, form adminService.LoginForm) (string, error)
	session        func(ctx context.Context, sid string) (model.AdminSession, error)
	deleteCategory func(ctx context.Context, s model.AdminSession, id string) error
}

func (f *fakeAdmin) Login(ctx context.Context, form adminService.LoginForm) (string, error) {
	if f.login != nil {
		return f.login(ctx, form)
	}
	return "", adminService.ErrInvalidCredentials
}

func (f *fakeAdmin) Logout(ctx context.Context, sid string) error { return nil }

func (f *fakeAdmin) Session(ctx context.Context, sid string) (model.AdminSession, error) {
	if f.session != nil {
		return f.session(ctx, sid)
	}
	return model.AdminSession{}, adminService.ErrNoSession
}

func (f *fakeAdmin) Books(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error) {
	return model.BooksPage{}, nil
}

func (f *fakeAdmin) Book(ctx context.Context, id string) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeAdmin) CreateBook(ctx context.Context, s model.AdminSession, form adminService.BookForm) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeAdmin) UpdateBook(ctx context.Context, s model.AdminSession, id string, form adminService.BookForm) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeAdmin) DeleteBook(ctx context.Context, s model.AdminSession, id string) error {
	return nil
}

func (f *fakeAdmin) Categories(ctx context.Context) ([]model.Category, error) { return nil, nil }

func (f *fakeAdmin) SaveCategory(ctx context.Context, s model.AdminSession, id string, form adminService.CategoryForm) (model.Category, error) {
	return model.Category{}, nil
}

func (f *fakeAdmin) DeleteCategory(ctx context.Context, s model.AdminSession, id string) error {
	if f.deleteCategory != nil {
		return f.deleteCategory(ctx, s, id)
	}
	return nil
}

func (f *fakeAdmin) Profile(ctx context.Context, s model.AdminSession) (model.Profile, error) {
	return model.Profile{}, nil
}

func (f *fakeAdmin) UpdateProfile(ctx context.Context, s model.AdminSession, form adminService.ProfileForm) (model.Profile, error) {
	return model.Profile{}, nil
}

type fakeAnalytics struct{}

func (f *fakeAnalytics) Overview(ctx context.Context) (model.Analytics, error) {
	return model.Analytics{}, nil
}

type fakeNotifier struct {
	subscribe func(ctx context.Context, email string) error
}

func (f *fakeNotifier) LatestAnnounced() (model.Book, bool) { return model.Book{}, false }

func (f *fakeNotifier) Subscribe(ctx context.Context, email string) error {
	if f.subscribe != nil {
		return f.subscribe(ctx, email)
	}
	return nil
}

type testServices struct {
	catalog   *fakeCatalog
	books     *fakeBooks
	admin     *fakeAdmin
	analytics *fakeAnalytics
	notifier  *fakeNotifier
}

func newTestServer(t *testing.T, svc testServices) http.Handler {
	t.Helper()

	if svc.catalog == nil {
		svc.catalog = &fakeCatalog{}
	}
	if svc.books == nil {
		svc.books = &fakeBooks{}
	}
	if svc.admin == nil {
		svc.admin = &fakeAdmin{}
	}
	if svc.analytics == nil {
		svc.analytics = &fakeAnalytics{}
	}
	if svc.notifier == nil {
		svc.notifier = &fakeNotifier{}
	}

	cfg := &config.Config{
		LibraryApi:        config.LibraryApi{BaseUrl: "http://library.test"},
		SessionExpiration: time.Hour,
	}

	ctrl, err := NewController(cfg, svc.catalog, svc.books, svc.admin, svc.analytics, svc.notifier)
	require.NoError(t, err)

	return New(cfg, ctrl).server.Handler
}

func TestHome_RendersCatalogSnapshot(t *testing.T) {
	handler := newTestServer(t, testServices{
		catalog: &fakeCatalog{
			getPage: func(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error) {
				return model.BooksPage{
					Books:      []model.Book{{ID: "b1", Title: "Fizika asoslari"}},
					Pagination: model.Pagination{Page: 1, TotalBooks: 1, TotalPages: 1},
				}, []model.Category{{ID: "c1", Name: "Fizika"}}, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fizika asoslari")
}

func TestCatalog_SearchFormResetsPage(t *testing.T) {
	var got model.CatalogQuery
	handler := newTestServer(t, testServices{
		catalog: &fakeCatalog{
			getPage: func(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error) {
				got = q
				return model.BooksPage{Pagination: model.Pagination{Page: 1, TotalPages: 1}}, nil, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books?src=search&search=fizika&category=Fizika&page=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, "fizika", got.Search)
}

func TestCatalog_PaginationLinkKeepsPage(t *testing.T) {
	var got model.CatalogQuery
	handler := newTestServer(t, testServices{
		catalog: &fakeCatalog{
			getPage: func(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error) {
				got = q
				return model.BooksPage{Pagination: model.Pagination{Page: 7, TotalPages: 9}}, nil, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books?search=fizika&page=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, got.Page)
}

func TestBookDetails_UnknownBookRenders404(t *testing.T) {
	handler := newTestServer(t, testServices{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadBook_RedirectsToExternalFile(t *testing.T) {
	handler := newTestServer(t, testServices{
		books: &fakeBooks{
			downloadUrl: func(ctx context.Context, id string) (string, error) {
				return "http://files.test/kitob.pdf", nil
			},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/b1/download", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "http://files.test/kitob.pdf", rec.Header().Get("Location"))
}

func TestSubscribe_InvalidEmailRedirectsWithError(t *testing.T) {
	handler := newTestServer(t, testServices{
		notifier: &fakeNotifier{
			subscribe: func(ctx context.Context, email string) error {
				return errors.New("invalid email")
			},
		},
	})

	form := url.Values{"email": {"not-an-email"}}
	req := httptest.NewRequest(http.MethodPost, "/notify/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?error=email", rec.Header().Get("Location"))
}

func TestRequireAdmin_RedirectsAnonymousToLogin(t *testing.T) {
	handler := newTestServer(t, testServices{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestLogin_InvalidCredentialsRerendersForm(t *testing.T) {
	handler := newTestServer(t, testServices{})

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), loginFailedMsg)
}

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	handler := newTestServer(t, testServices{
		admin: &fakeAdmin{
			login: func(ctx context.Context, form adminService.LoginForm) (string, error) {
				return "sid123", nil
			},
		},
	})

	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "sid123", cookies[0].Value)
	assert.Equal(t, true, cookies[0].HttpOnly)
}

func TestDeleteCategory_WithoutConfirmationSkipsService(t *testing.T) {
	deleted := false
	handler := newTestServer(t, testServices{
		admin: &fakeAdmin{
			session: func(ctx context.Context, sid string) (model.AdminSession, error) {
				return model.AdminSession{Username: "admin"}, nil
			},
			deleteCategory: func(ctx context.Context, s model.AdminSession, id string) error {
				deleted = true
				return nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/categories/delete/c1", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sid123"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/categories?error=confirm", rec.Header().Get("Location"))
	assert.Equal(t, false, deleted)
}

func TestDeleteCategory_WithConfirmationCallsService(t *testing.T) {
	deletedID := ""
	handler := newTestServer(t, testServices{
		admin: &fakeAdmin{
			session: func(ctx context.Context, sid string) (model.AdminSession, error) {
				return model.AdminSession{Username: "admin"}, nil
			},
			deleteCategory: func(ctx context.Context, s model.AdminSession, id string) error {
				deletedID = id
				return nil
			},
		},
	})

	form := url.Values{"confirm": {"yes"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/categories/delete/c1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sid123"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/categories?deleted=1", rec.Header().Get("Location"))
	assert.Equal(t, "c1", deletedID)
}
