package analyticsService

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type LibraryApi interface {
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
}

type AnalyticsService struct {
	cfg *config.Config
	api LibraryApi
}

func New(cfg *config.Config, api LibraryApi) *AnalyticsService {
	return &AnalyticsService{cfg: cfg, api: api}
}

// Overview fetches the full catalog snapshot and aggregates it in memory.
// Recomputed on every request, nothing is persisted.
func (s *AnalyticsService) Overview(ctx context.Context) (model.Analytics, error) {
	op := "AnalyticsService.Overview"
	rqID := utils.GetRequestIDFromCtx(ctx)

	page, err := s.api.ListBooks(ctx, model.CatalogQuery{Page: 1, Limit: s.cfg.AnalyticsFetchCap})
	if err != nil {
		slog.Error("got error from api.ListBooks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Analytics{}, err
	}

	analytics := Aggregate(page.Books)
	analytics.TopBooks = TopBooks(page.Books, s.cfg.TopBooksLimit)

	return analytics, nil
}

// Aggregate folds the book list into per-category sums and totals in a
// single pass. Categories come out sorted by name for stable rendering.
func Aggregate(books []model.Book) model.Analytics {
	byCategory := make(map[string]*model.CategoryStats)
	analytics := model.Analytics{TotalBooks: len(books)}

	for _, book := range books {
		analytics.TotalViews += book.Views
		analytics.TotalDownloads += book.Downloads

		if book.Category == "" {
			continue
		}
		stats, ok := byCategory[book.Category]
		if !ok {
			stats = &model.CategoryStats{Name: book.Category}
			byCategory[book.Category] = stats
		}
		stats.Views += book.Views
		stats.Downloads += book.Downloads
		stats.BooksCount++
	}

	analytics.Categories = make([]model.CategoryStats, 0, len(byCategory))
	for _, stats := range byCategory {
		analytics.Categories = append(analytics.Categories, *stats)
	}
	sort.Slice(analytics.Categories, func(i, j int) bool {
		return analytics.Categories[i].Name < analytics.Categories[j].Name
	})

	return analytics
}

// TopBooks ranks books by views+downloads descending and keeps the first n.
func TopBooks(books []model.Book, n int) []model.BookStats {
	ranked := make([]model.BookStats, 0, len(books))
	for _, book := range books {
		if book.Title == "" {
			continue
		}
		ranked = append(ranked, model.BookStats{
			ID:        book.ID,
			Title:     book.Title,
			Views:     book.Views,
			Downloads: book.Downloads,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views+ranked[i].Downloads > ranked[j].Views+ranked[j].Downloads
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
