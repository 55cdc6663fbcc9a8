package libraryApi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

// Client is a typed client of the external library catalog REST API.
// All persistence lives behind it; the app only mirrors fetched snapshots.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.LibraryApi.Timeout},
	}
}

type LoginResult struct {
	Token    string
	UserID   string
	Username string
}

type BookPayload struct {
	Title       string
	Category    string
	Description string
	DownloadUrl string
	Image       *ImageFile
}

type ImageFile struct {
	Name    string
	Content io.Reader
}

type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

func (c *Client) ListBooks(ctx context.Context, q model.CatalogQuery) (model.BooksPage, error) {
	op := "libraryApi.ListBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" && q.Category != model.CategoryAll {
		params.Set("category", q.Category)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := c.cfg.LibraryApi.BaseUrl + "/api/books"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, "", nil, "")
	if err != nil {
		slog.Error("ListBooks request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BooksPage{}, err
	}

	page, err := decodeBooksPage(body)
	if err != nil {
		slog.Error("can't decode books response", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.BooksPage{}, err
	}

	if page.Pagination == (model.Pagination{}) {
		page.Pagination = synthesizePagination(q, len(page.Books))
	}

	return page, nil
}

// decodeBooksPage accepts both response shapes the backend has shipped:
// the paginated envelope {books, pagination} and the legacy bare array.
func decodeBooksPage(body []byte) (model.BooksPage, error) {
	page := model.BooksPage{}
	if err := json.Unmarshal(body, &page); err == nil && page.Books != nil {
		return page, nil
	}

	books := []model.Book{}
	if err := json.Unmarshal(body, &books); err != nil {
		return model.BooksPage{}, fmt.Errorf("unexpected books response shape: %w", err)
	}

	return model.BooksPage{Books: books}, nil
}

func synthesizePagination(q model.CatalogQuery, got int) model.Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return model.Pagination{
		Page:        page,
		Limit:       q.Limit,
		TotalBooks:  got,
		TotalPages:  1,
		HasNextPage: q.Limit > 0 && got > q.Limit,
		HasPrevPage: page > 1,
	}
}

func (c *Client) GetBook(ctx context.Context, id string) (model.Book, error) {
	op := "libraryApi.GetBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	body, err := c.doRequest(ctx, http.MethodGet, c.cfg.LibraryApi.BaseUrl+"/api/books/"+url.PathEscape(id), "", nil, "")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("GetBook request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		}
		return model.Book{}, err
	}

	book := model.Book{}
	if err := json.Unmarshal(body, &book); err != nil {
		return model.Book{}, fmt.Errorf("can't decode book: %w", err)
	}

	return book, nil
}

func (c *Client) TrackView(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodPost, c.cfg.LibraryApi.BaseUrl+"/api/books/"+url.PathEscape(id)+"/view", "", nil, "")
	return err
}

func (c *Client) TrackDownload(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodPost, c.cfg.LibraryApi.BaseUrl+"/api/books/"+url.PathEscape(id)+"/download", "", nil, "")
	return err
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	op := "libraryApi.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqBody, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return LoginResult{}, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.cfg.LibraryApi.BaseUrl+"/api/auth/login", "", bytes.NewReader(reqBody), "application/json")
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			slog.Error("Login request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("username", username))
		}
		return LoginResult{}, err
	}

	resp := struct {
		Message string `json:"message"`
		User    struct {
			ID       string `json:"_id"`
			Username string `json:"username"`
		} `json:"user"`
		Token string `json:"token"`
	}{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResult{}, fmt.Errorf("can't decode login response: %w", err)
	}

	return LoginResult{Token: resp.Token, UserID: resp.User.ID, Username: resp.User.Username}, nil
}

func (c *Client) CreateBook(ctx context.Context, token string, p BookPayload) (model.Book, error) {
	op := "libraryApi.CreateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqBody, contentType, err := encodeBookForm(p)
	if err != nil {
		return model.Book{}, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.cfg.LibraryApi.BaseUrl+"/api/books", token, reqBody, contentType)
	if err != nil {
		slog.Error("CreateBook request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("title", p.Title))
		return model.Book{}, err
	}

	resp := struct {
		Book model.Book `json:"book"`
	}{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Book{}, fmt.Errorf("can't decode created book: %w", err)
	}

	return resp.Book, nil
}

func (c *Client) UpdateBook(ctx context.Context, token, id string, p BookPayload) (model.Book, error) {
	op := "libraryApi.UpdateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqBody, contentType, err := encodeBookForm(p)
	if err != nil {
		return model.Book{}, err
	}

	body, err := c.doRequest(ctx, http.MethodPut, c.cfg.LibraryApi.BaseUrl+"/api/books/"+url.PathEscape(id), token, reqBody, contentType)
	if err != nil {
		slog.Error("UpdateBook request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("bookID", id))
		return model.Book{}, err
	}

	book := model.Book{}
	if err := json.Unmarshal(body, &book); err != nil {
		return model.Book{}, fmt.Errorf("can't decode updated book: %w", err)
	}

	return book, nil
}

func (c *Client) DeleteBook(ctx context.Context, token, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, c.cfg.LibraryApi.BaseUrl+"/api/books/"+url.PathEscape(id), token, nil, "")
	return err
}

// encodeBookForm builds the multipart body the backend expects for book
// create/update, with the cover image attached when present.
func encodeBookForm(p BookPayload) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":       p.Title,
		"category":    p.Category,
		"description": p.Description,
		"downloadUrl": p.DownloadUrl,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if p.Image != nil {
		fw, err := w.CreateFormFile("image", p.Image.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, p.Image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	op := "libraryApi.ListCategories"
	rqID := utils.GetRequestIDFromCtx(ctx)

	body, err := c.doRequest(ctx, http.MethodGet, c.cfg.LibraryApi.BaseUrl+"/api/category", "", nil, "")
	if err != nil {
		slog.Error("ListCategories request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	resp := struct {
		Categories []model.Category `json:"categories"`
	}{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("can't decode categories: %w", err)
	}

	return resp.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token, name string) (model.Category, error) {
	return c.sendCategory(ctx, http.MethodPost, c.cfg.LibraryApi.BaseUrl+"/api/category", token, name)
}

func (c *Client) UpdateCategory(ctx context.Context, token, id, name string) (model.Category, error) {
	return c.sendCategory(ctx, http.MethodPut, c.cfg.LibraryApi.BaseUrl+"/api/category/"+url.PathEscape(id), token, name)
}

func (c *Client) sendCategory(ctx context.Context, method, endpoint, token, name string) (model.Category, error) {
	op := "libraryApi.sendCategory"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqBody, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return model.Category{}, err
	}

	body, err := c.doRequest(ctx, method, endpoint, token, bytes.NewReader(reqBody), "application/json")
	if err != nil {
		slog.Error("category request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("name", name))
		return model.Category{}, err
	}

	resp := struct {
		Category model.Category `json:"category"`
	}{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Category{}, fmt.Errorf("can't decode category: %w", err)
	}

	return resp.Category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, c.cfg.LibraryApi.BaseUrl+"/api/category/"+url.PathEscape(id), token, nil, "")
	return err
}

func (c *Client) GetProfile(ctx context.Context, token string) (model.Profile, error) {
	op := "libraryApi.GetProfile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	body, err := c.doRequest(ctx, http.MethodGet, c.cfg.LibraryApi.BaseUrl+"/api/profile", token, nil, "")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("GetProfile request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
		return model.Profile{}, err
	}

	return decodeProfile(body)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, p ProfileUpdate) (model.Profile, error) {
	op := "libraryApi.UpdateProfile"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqBody, err := json.Marshal(p)
	if err != nil {
		return model.Profile{}, err
	}

	body, err := c.doRequest(ctx, http.MethodPut, c.cfg.LibraryApi.BaseUrl+"/api/profile", token, bytes.NewReader(reqBody), "application/json")
	if err != nil {
		slog.Error("UpdateProfile request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Profile{}, err
	}

	return decodeProfile(body)
}

func decodeProfile(body []byte) (model.Profile, error) {
	resp := struct {
		User model.Profile `json:"user"`
	}{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Profile{}, fmt.Errorf("can't decode profile: %w", err)
	}
	return resp.User, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint, token string, reqBody io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ApiError{Status: 0, Message: "Tarmoq xatoligi: Serverga ulanib bo'lmadi"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body err: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromResponse(resp.StatusCode, body)
	}

	return body, nil
}

func apiErrorFromResponse(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	msg := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return &ApiError{Status: status, Message: msg.Message}
	}

	return &ApiError{Status: status, Message: statusMessage(status)}
}
