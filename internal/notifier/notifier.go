package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/data/watchstate"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/validation"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

var ErrInvalidEmail = errors.New("invalid email")

type LibraryApi interface {
	ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error)
}

type WatchState interface {
	LatestBookID(ctx context.Context) (string, error)
	SetLatestBookID(ctx context.Context, bookID string) error
	Subscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context) ([]string, error)
}

type Mailer interface {
	SendNewBookAlert(ctx context.Context, to string, book model.Book) error
}

// Notifier polls the newest book id and announces changes: one email per
// subscriber per new book, plus an in-memory "latest announced" book for
// the home page banner. A failed poll is retried on the next tick.
type Notifier struct {
	cfg       *config.Config
	api       LibraryApi
	state     WatchState
	mailer    Mailer
	validator *validation.Validator

	mu        sync.Mutex
	announced *model.Book
}

func New(cfg *config.Config, api LibraryApi, state WatchState, mailer Mailer, validator *validation.Validator) *Notifier {
	return &Notifier{cfg: cfg, api: api, state: state, mailer: mailer, validator: validator}
}

// Check is the watcher job body. The first successful poll only arms the
// baseline; notifications start from the second change onward.
func (n *Notifier) Check(ctx context.Context) {
	ctx = utils.CreateCtxWithRqID(ctx)
	op := "Notifier.Check"
	rqID := utils.GetRequestIDFromCtx(ctx)

	page, err := n.api.ListBooks(ctx, model.CatalogQuery{Page: 1, Limit: 1})
	if err != nil {
		slog.Warn("newest book poll failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return
	}
	if len(page.Books) == 0 {
		return
	}

	newest := page.Books[0]

	baseline, err := n.state.LatestBookID(ctx)
	if err != nil {
		if errors.Is(err, watchstate.ErrNotFound) {
			if err := n.state.SetLatestBookID(ctx, newest.ID); err == nil {
				slog.Info("watcher armed", slog.String("rqID", rqID), slog.String("op", op), slog.String("baseline", newest.ID))
			}
			return
		}
		slog.Warn("can't read watcher baseline", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return
	}

	if baseline == newest.ID {
		return
	}

	if err := n.state.SetLatestBookID(ctx, newest.ID); err != nil {
		slog.Error("can't update watcher baseline", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return
	}

	slog.Info("new book detected", slog.String("rqID", rqID), slog.String("op", op), slog.String("bookID", newest.ID), slog.String("title", newest.Title))

	n.mu.Lock()
	n.announced = &newest
	n.mu.Unlock()

	n.notifySubscribers(ctx, newest)
}

func (n *Notifier) notifySubscribers(ctx context.Context, book model.Book) {
	op := "Notifier.notifySubscribers"
	rqID := utils.GetRequestIDFromCtx(ctx)

	subscribers, err := n.state.Subscribers(ctx)
	if err != nil {
		slog.Error("can't load subscribers", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return
	}

	for _, email := range subscribers {
		if err := n.mailer.SendNewBookAlert(ctx, email, book); err != nil {
			slog.Error("alert delivery failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("to", email))
		}
	}
}

// LatestAnnounced returns the most recent book that triggered a
// notification since startup, for the home page banner.
func (n *Notifier) LatestAnnounced() (model.Book, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.announced == nil {
		return model.Book{}, false
	}
	return *n.announced, true
}

func (n *Notifier) Subscribe(ctx context.Context, email string) error {
	if !n.validator.IsEmail(email) {
		return ErrInvalidEmail
	}
	return n.state.Subscribe(ctx, email)
}
