package bookService

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/externalApi/libraryApi"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type LibraryApi interface {
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
	TrackView(ctx context.Context, id string) error
	TrackDownload(ctx context.Context, id string) error
}

type BookService struct {
	cfg *config.Config
	api LibraryApi
}

func New(cfg *config.Config, api LibraryApi) *BookService {
	return &BookService{cfg: cfg, api: api}
}

// GetDetails loads one book, records the view best-effort and picks related
// books from the same category. Tracking and related failures never fail
// the page.
func (s *BookService) GetDetails(ctx context.Context, id string) (model.BookDetails, error) {
	op := "BookService.GetDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book, err := s.api.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, libraryApi.ErrNotFound) {
			return model.BookDetails{}, ErrBookNotFound
		}
		slog.Error("got error from api.GetBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		return model.BookDetails{}, err
	}

	go func(ctx context.Context) {
		if err := s.api.TrackView(ctx, id); err != nil {
			slog.Warn("view tracking failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		}
	}(context.WithoutCancel(ctx))

	return model.BookDetails{Book: book, Related: s.relatedBooks(ctx, book)}, nil
}

func (s *BookService) relatedBooks(ctx context.Context, book model.Book) []model.Book {
	op := "BookService.relatedBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	page, err := s.api.ListBooks(ctx, model.CatalogQuery{
		Category: book.Category,
		Page:     1,
		Limit:    s.cfg.RelatedBooksLimit + 1,
	})
	if err != nil {
		slog.Warn("related books fetch failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", book.ID))
		return nil
	}

	related := make([]model.Book, 0, s.cfg.RelatedBooksLimit)
	for _, candidate := range page.Books {
		if candidate.ID == book.ID || candidate.Category != book.Category {
			continue
		}
		related = append(related, candidate)
		if len(related) == s.cfg.RelatedBooksLimit {
			break
		}
	}

	return related
}

// DownloadUrl records the download and returns the external link. The user
// always gets the link, even when tracking fails.
func (s *BookService) DownloadUrl(ctx context.Context, id string) (string, error) {
	op := "BookService.DownloadUrl"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book, err := s.api.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, libraryApi.ErrNotFound) {
			return "", ErrBookNotFound
		}
		slog.Error("got error from api.GetBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		return "", err
	}

	if err := s.api.TrackDownload(ctx, id); err != nil {
		slog.Warn("download tracking failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
	}

	return book.DownloadUrl, nil
}
