package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	customMW "github.com/Ilhomjon565/kutubxona-uit/internal/transport/web/middleware"
)

type Server struct {
	cfg    *config.Config
	ctrl   *Controller
	server *http.Server
}

func New(cfg *config.Config, ctrl *Controller) *Server {
	s := &Server{cfg: cfg, ctrl: ctrl}

	handler := customMW.RequestID(customMW.Recover(customMW.Logger(customMW.SecurityHeaders(s.setupRoutes()))))

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", s.ctrl.Home)
	mux.HandleFunc("GET /books", s.ctrl.Catalog)
	mux.HandleFunc("GET /books/categories", s.ctrl.Categories)
	mux.HandleFunc("GET /books/{id}", s.ctrl.BookDetails)
	mux.HandleFunc("GET /books/{id}/download", s.ctrl.DownloadBook)
	mux.HandleFunc("GET /about", s.ctrl.About)
	mux.HandleFunc("POST /notify/subscribe", s.ctrl.Subscribe)

	// admin auth
	mux.HandleFunc("GET /admin/login", s.ctrl.LoginPage)
	mux.HandleFunc("POST /admin/login", s.ctrl.Login)
	mux.HandleFunc("POST /admin/logout", s.ctrl.Logout)

	// admin back office
	mux.HandleFunc("GET /admin/dashboard", s.ctrl.requireAdmin(s.ctrl.Dashboard))
	mux.HandleFunc("GET /admin/books", s.ctrl.requireAdmin(s.ctrl.AdminBooks))
	mux.HandleFunc("GET /admin/books/add", s.ctrl.requireAdmin(s.ctrl.AddBookPage))
	mux.HandleFunc("POST /admin/books/add", s.ctrl.requireAdmin(s.ctrl.AddBook))
	mux.HandleFunc("GET /admin/books/edit/{id}", s.ctrl.requireAdmin(s.ctrl.EditBookPage))
	mux.HandleFunc("POST /admin/books/edit/{id}", s.ctrl.requireAdmin(s.ctrl.EditBook))
	mux.HandleFunc("POST /admin/books/delete/{id}", s.ctrl.requireAdmin(s.ctrl.DeleteBook))
	mux.HandleFunc("GET /admin/categories", s.ctrl.requireAdmin(s.ctrl.AdminCategories))
	mux.HandleFunc("POST /admin/categories/save", s.ctrl.requireAdmin(s.ctrl.SaveCategory))
	mux.HandleFunc("POST /admin/categories/delete/{id}", s.ctrl.requireAdmin(s.ctrl.DeleteCategory))
	mux.HandleFunc("GET /admin/analytics", s.ctrl.requireAdmin(s.ctrl.Analytics))
	mux.HandleFunc("GET /admin/profile", s.ctrl.requireAdmin(s.ctrl.ProfilePage))
	mux.HandleFunc("POST /admin/profile", s.ctrl.requireAdmin(s.ctrl.UpdateProfile))

	mux.HandleFunc("GET /admin", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	})

	return mux
}

func (s *Server) Start() {
	go func() {
		slog.Info("web server started", slog.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("web server failed", slog.String("err", err.Error()))
		}
	}()
}

func (s *Server) Stop() {
	slog.Info("start stopping web server")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("web server shutdown failed", slog.String("err", err.Error()))
	}

	slog.Info("web server stopped")
}
