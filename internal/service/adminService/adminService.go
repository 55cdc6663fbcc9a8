package adminService

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/data/session"
	"github.com/Ilhomjon565/kutubxona-uit/internal/externalApi/libraryApi"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/validation"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type LibraryApi interface {
	Login(ctx context.Context, username, password string) (libraryApi.LoginResult, error)
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
	CreateBook(ctx context.Context, token string, p libraryApi.BookPayload) (model.Book, error)
	UpdateBook(ctx context.Context, token, id string, p libraryApi.BookPayload) (model.Book, error)
	DeleteBook(ctx context.Context, token, id string) error
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, token, name string) (model.Category, error)
	UpdateCategory(ctx context.Context, token, id, name string) (model.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
	GetProfile(ctx context.Context, token string) (model.Profile, error)
	UpdateProfile(ctx context.Context, token string, p libraryApi.ProfileUpdate) (model.Profile, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, s model.AdminSession) (string, error)
	GetSession(ctx context.Context, sid string) (model.AdminSession, error)
	DeleteSession(ctx context.Context, sid string) error
}

type AdminService struct {
	cfg       *config.Config
	api       LibraryApi
	sessions  SessionStore
	validator *validation.Validator
}

func New(cfg *config.Config, api LibraryApi, sessions SessionStore, validator *validation.Validator) *AdminService {
	return &AdminService{cfg: cfg, api: api, sessions: sessions, validator: validator}
}

// Login validates credentials locally, authenticates against the library
// API and opens a server-side session. Returns the opaque session id for
// the cookie.
func (s *AdminService) Login(ctx context.Context, form LoginForm) (string, error) {
	op := "AdminService.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.validator.Validate(form, loginMessages); err != nil {
		return "", err
	}

	result, err := s.api.Login(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, libraryApi.ErrUnauthorized) {
			slog.Warn("login rejected", slog.String("rqID", rqID), slog.String("op", op), slog.String("username", form.Username))
			return "", ErrInvalidCredentials
		}
		slog.Error("got error from api.Login", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", err
	}

	sid, err := s.sessions.CreateSession(ctx, model.AdminSession{
		Token:     result.Token,
		UserID:    result.UserID,
		Username:  result.Username,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		slog.Error("got error from sessions.CreateSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return "", err
	}

	return sid, nil
}

func (s *AdminService) Logout(ctx context.Context, sid string) error {
	return s.sessions.DeleteSession(ctx, sid)
}

// Session resolves the cookie id into a live session. ErrNoSession covers
// both a missing cookie and an expired redis entry; no API call is made.
func (s *AdminService) Session(ctx context.Context, sid string) (model.AdminSession, error) {
	if sid == "" {
		return model.AdminSession{}, ErrNoSession
	}

	adminSession, err := s.sessions.GetSession(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.AdminSession{}, ErrNoSession
		}
		return model.AdminSession{}, err
	}

	return adminSession, nil
}

func (s *AdminService) Books(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = s.cfg.BooksPerPage
	}
	return s.api.ListBooks(ctx, q)
}

func (s *AdminService) Book(ctx context.Context, id string) (model.Book, error) {
	return s.api.GetBook(ctx, id)
}

func (s *AdminService) CreateBook(ctx context.Context, adminSession model.AdminSession, form BookForm) (model.Book, error) {
	op := "AdminService.CreateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.validator.Validate(form, bookMessages); err != nil {
		return model.Book{}, err
	}

	book, err := s.api.CreateBook(ctx, adminSession.Token, bookPayload(form))
	if err != nil {
		slog.Error("got error from api.CreateBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("title", form.Title))
		return model.Book{}, err
	}

	slog.Info("book created", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", book.ID), slog.String("title", book.Title))

	return book, nil
}

func (s *AdminService) UpdateBook(ctx context.Context, adminSession model.AdminSession, id string, form BookForm) (model.Book, error) {
	op := "AdminService.UpdateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.validator.Validate(form, bookMessages); err != nil {
		return model.Book{}, err
	}

	book, err := s.api.UpdateBook(ctx, adminSession.Token, id, bookPayload(form))
	if err != nil {
		slog.Error("got error from api.UpdateBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		return model.Book{}, err
	}

	slog.Info("book updated", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", id))

	return book, nil
}

func bookPayload(form BookForm) libraryApi.BookPayload {
	p := libraryApi.BookPayload{
		Title:       form.Title,
		Category:    form.Category,
		Description: form.Description,
		DownloadUrl: form.DownloadUrl,
	}
	if form.Image != nil && form.ImageName != "" {
		p.Image = &libraryApi.ImageFile{Name: form.ImageName, Content: form.Image}
	}
	return p
}

func (s *AdminService) DeleteBook(ctx context.Context, adminSession model.AdminSession, id string) error {
	op := "AdminService.DeleteBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.api.DeleteBook(ctx, adminSession.Token, id); err != nil {
		slog.Error("got error from api.DeleteBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		return err
	}

	slog.Info("book deleted", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", id))

	return nil
}

func (s *AdminService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.api.ListCategories(ctx)
}

func (s *AdminService) SaveCategory(ctx context.Context, adminSession model.AdminSession, id string, form CategoryForm) (model.Category, error) {
	op := "AdminService.SaveCategory"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.validator.Validate(form, categoryMessages); err != nil {
		return model.Category{}, err
	}

	var (
		category model.Category
		err      error
	)
	if id == "" {
		category, err = s.api.CreateCategory(ctx, adminSession.Token, form.Name)
	} else {
		category, err = s.api.UpdateCategory(ctx, adminSession.Token, id, form.Name)
	}
	if err != nil {
		slog.Error("got error from category api", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("name", form.Name))
		return model.Category{}, err
	}

	return category, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, adminSession model.AdminSession, id string) error {
	op := "AdminService.DeleteCategory"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.api.DeleteCategory(ctx, adminSession.Token, id); err != nil {
		slog.Error("got error from api.DeleteCategory", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("categoryID", id))
		return err
	}

	slog.Info("category deleted", slog.String("rqID", rqID), slog.String("op", op), slog.String("categoryID", id))

	return nil
}

// Profile falls back to a default admin profile when the backend has no
// profile row yet, so the page always renders.
func (s *AdminService) Profile(ctx context.Context, adminSession model.AdminSession) (model.Profile, error) {
	op := "AdminService.Profile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	profile, err := s.api.GetProfile(ctx, adminSession.Token)
	if err != nil {
		if errors.Is(err, libraryApi.ErrNotFound) {
			slog.Warn("profile missing, using defaults", slog.String("rqID", rqID), slog.String("op", op))
			return defaultProfile(adminSession), nil
		}
		return model.Profile{}, err
	}

	return profile, nil
}

func defaultProfile(adminSession model.AdminSession) model.Profile {
	username := adminSession.Username
	if username == "" {
		username = "admin"
	}
	return model.Profile{
		ID:       "default",
		Username: username,
		FullName: "Administrator",
		Role:     "admin",
	}
}

func (s *AdminService) UpdateProfile(ctx context.Context, adminSession model.AdminSession, form ProfileForm) (model.Profile, error) {
	op := "AdminService.UpdateProfile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.validator.Validate(form, profileMessages); err != nil {
		return model.Profile{}, err
	}

	profile, err := s.api.UpdateProfile(ctx, adminSession.Token, libraryApi.ProfileUpdate{
		Username: form.Username,
		Email:    form.Email,
		FullName: form.FullName,
	})
	if err != nil {
		slog.Error("got error from api.UpdateProfile", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Profile{}, err
	}

	return profile, nil
}
