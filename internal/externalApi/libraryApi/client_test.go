package libraryApi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type clientSuite struct {
	suite.Suite

	cfg    *config.Config
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupSuite() {
	s.cfg = &config.Config{
		LibraryApi: config.LibraryApi{
			BaseUrl: "http://library.test",
			Timeout: 5 * time.Second,
		},
	}
}

func (s *clientSuite) SetupTest() {
	s.client = New(s.cfg)
	gock.InterceptClient(s.client.httpClient)
}

func (s *clientSuite) Test_ListBooks_PaginatedEnvelope() {
	defer gock.Off()

	expected := model.BooksPage{
		Books: []model.Book{
			{ID: "b1", Title: "Algoritmlar", Category: "Informatika", Views: 3, Downloads: 1},
		},
		Pagination: model.Pagination{
			Page:        2,
			Limit:       12,
			TotalBooks:  25,
			TotalPages:  3,
			HasNextPage: true,
			HasPrevPage: true,
		},
	}

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books").
		MatchParams(map[string]string{
			"search":   "algo",
			"category": "Informatika",
			"page":     "2",
			"limit":    "12",
		}).
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{
			"books": [{"_id": "b1", "title": "Algoritmlar", "category": "Informatika", "views": 3, "downloads": 1}],
			"pagination": {"page": 2, "limit": 12, "totalBooks": 25, "totalPages": 3, "hasNextPage": true, "hasPrevPage": true}
		}`)

	res, err := s.client.ListBooks(context.Background(), model.CatalogQuery{
		Search:   "algo",
		Category: "Informatika",
		Page:     2,
		Limit:    12,
	})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_ListBooks_LegacyBareArray() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`[{"_id": "b1", "title": "Fizika"}, {"_id": "b2", "title": "Kimyo"}]`)

	res, err := s.client.ListBooks(context.Background(), model.CatalogQuery{})

	assert.Nil(s.T(), err)
	assert.Len(s.T(), res.Books, 2)
	assert.Equal(s.T(), model.Pagination{Page: 1, TotalBooks: 2, TotalPages: 1}, res.Pagination)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_ListBooks_SkipsCategoryAll() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			return !req.URL.Query().Has("category"), nil
		}).
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"books": [], "pagination": {"page": 1, "totalPages": 1}}`)

	_, err := s.client.ListBooks(context.Background(), model.CatalogQuery{Category: model.CategoryAll})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_GetBook_Success() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books/b1").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"_id": "b1", "title": "Fizika", "downloadUrl": "http://files.test/fizika.pdf"}`)

	res, err := s.client.GetBook(context.Background(), "b1")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Fizika", res.Title)
	assert.Equal(s.T(), "http://files.test/fizika.pdf", res.DownloadUrl)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_GetBook_NotFoundErr() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books/missing").
		Reply(404).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"message": "Kitob topilmadi"}`)

	_, err := s.client.GetBook(context.Background(), "missing")

	assert.Equal(s.T(), ErrNotFound, err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_Login_Success() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Post("/api/auth/login").
		JSON(map[string]string{"username": "admin", "password": "secret"}).
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"message": "ok", "user": {"_id": "u1", "username": "admin"}, "token": "jwt-token"}`)

	res, err := s.client.Login(context.Background(), "admin", "secret")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), LoginResult{Token: "jwt-token", UserID: "u1", Username: "admin"}, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_Login_UnauthorizedErr() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Post("/api/auth/login").
		Reply(401).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"message": "Login yoki parol noto'g'ri"}`)

	_, err := s.client.Login(context.Background(), "admin", "wrong")

	assert.Equal(s.T(), ErrUnauthorized, err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_CreateBook_SendsBearerToken() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Post("/api/books").
		MatchHeader("Authorization", "Bearer jwt-token").
		Reply(201).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"book": {"_id": "b9", "title": "Yangi kitob"}}`)

	res, err := s.client.CreateBook(context.Background(), "jwt-token", BookPayload{
		Title:       "Yangi kitob",
		Category:    "Fizika",
		Description: "Tavsif matni",
		DownloadUrl: "http://files.test/kitob.pdf",
	})

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "b9", res.ID)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_ListCategories_Success() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/category").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"categories": [{"_id": "c1", "name": "Fizika"}, {"_id": "c2", "name": "Kimyo"}]}`)

	res, err := s.client.ListCategories(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []model.Category{{ID: "c1", Name: "Fizika"}, {ID: "c2", Name: "Kimyo"}}, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_GetProfile_NotFoundErr() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/profile").
		Reply(404).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"message": "Profil topilmadi"}`)

	_, err := s.client.GetProfile(context.Background(), "jwt-token")

	assert.Equal(s.T(), ErrNotFound, err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *clientSuite) Test_DoRequest_BackendMessagePassedThrough() {
	defer gock.Off()

	gock.New(s.cfg.LibraryApi.BaseUrl).
		Get("/api/books").
		Reply(500).
		SetHeader("Content-Type", "application/json").
		BodyString(`{"message": "Ichki server xatoligi"}`)

	_, err := s.client.ListBooks(context.Background(), model.CatalogQuery{})

	var apiErr *ApiError
	assert.Equal(s.T(), true, errors.As(err, &apiErr))
	assert.Equal(s.T(), 500, apiErr.Status)
	assert.Equal(s.T(), "Ichki server xatoligi", apiErr.Message)
	assert.Equal(s.T(), true, gock.IsDone())
}
