package catalogService

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type LibraryApi interface {
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type CatalogService struct {
	cfg *config.Config
	api LibraryApi
}

func New(cfg *config.Config, api LibraryApi) *CatalogService {
	return &CatalogService{cfg: cfg, api: api}
}

// QueryFromURL reads a catalog query from request query params.
// Used for pagination links, which always carry their own search/category.
func QueryFromURL(values url.Values) model.CatalogQuery {
	page, _ := strconv.Atoi(values.Get("page"))
	return model.CatalogQuery{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Page:     page,
	}
}

// QueryFromForm reads a catalog query from a search form submission.
// A filter change always lands on page 1: the form carries no page field
// and any stray page param is discarded.
func QueryFromForm(values url.Values) model.CatalogQuery {
	q := QueryFromURL(values)
	q.Page = 1
	return q
}

func (s *CatalogService) Normalize(q model.CatalogQuery) model.CatalogQuery {
	q.Search = strings.TrimSpace(q.Search)
	if q.Category == "" {
		q.Category = model.CategoryAll
	}
	if q.Page < 1 {
		q.Page = 1
	}
	q.Limit = s.cfg.BooksPerPage
	return q
}

// GetPage fetches the matching books page and the category facet list in
// parallel. A books failure fails the page; a categories failure only
// degrades the filter UI.
func (s *CatalogService) GetPage(ctx context.Context, q model.CatalogQuery) (model.BooksPage, []model.Category, error) {
	op := "CatalogService.GetPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	q = s.Normalize(q)

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
		page, booksErr = s.api.ListBooks(ctx, q)
	}()
	go func() {
		defer wg.Done()
		categories, catsErr = s.api.ListCategories(ctx)
	}()
	wg.Wait()

	if booksErr != nil {
		slog.Error("got error from api.ListBooks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", booksErr.Error()))
		return model.BooksPage{}, nil, fmt.Errorf("%w: %w", ErrBooksUnavailable, booksErr)
	}

	if catsErr != nil {
		slog.Warn("got error from api.ListCategories", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", catsErr.Error()))
		categories = nil
	}

	// Never render more than a page, whatever the server returned.
	if len(page.Books) > q.Limit {
		page.Books = page.Books[:q.Limit]
	}

	return page, categories, nil
}

// CategoriesWithCounts builds the category index page data: every category
// with the number of books it holds.
func (s *CatalogService) CategoriesWithCounts(ctx context.Context) ([]model.CategoryWithCount, error) {
	op := "CatalogService.CategoriesWithCounts"
	rqID := utils.GetRequestIDFromCtx(ctx)

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
		page, booksErr = s.api.ListBooks(ctx, model.CatalogQuery{Page: 1, Limit: s.cfg.AnalyticsFetchCap})
	}()
	go func() {
		defer wg.Done()
		categories, catsErr = s.api.ListCategories(ctx)
	}()
	wg.Wait()

	if catsErr != nil {
		slog.Error("got error from api.ListCategories", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", catsErr.Error()))
		return nil, catsErr
	}
	if booksErr != nil {
		slog.Warn("got error from api.ListBooks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", booksErr.Error()))
	}

	countByName := make(map[string]int, len(categories))
	for _, book := range page.Books {
		countByName[book.Category]++
	}

	result := make([]model.CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		result = append(result, model.CategoryWithCount{
			Category:   category,
			BooksCount: countByName[category.Name],
		})
	}

	return result, nil
}
