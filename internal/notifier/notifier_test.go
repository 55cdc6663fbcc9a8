package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/data/watchstate"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/internal/notifier/mocks"
	"github.com/Ilhomjon565/kutubxona-uit/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type notifierSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	cfg      *config.Config
	api      *mocks.MockLibraryApi
	state    *mocks.MockWatchState
	mailer   *mocks.MockMailer
	notifier *Notifier
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(notifierSuite))
}

func (s *notifierSuite) SetupSuite() {
	s.cfg = &config.Config{}
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *notifierSuite) SetupTest() {
	s.api = mocks.NewMockLibraryApi(s.mockCtrl)
	s.state = mocks.NewMockWatchState(s.mockCtrl)
	s.mailer = mocks.NewMockMailer(s.mockCtrl)
	s.notifier = New(s.cfg, s.api, s.state, s.mailer, validation.New())
}

func (s *notifierSuite) Test_Check_ArmsBaselineWithoutNotifying() {
	newest := model.Book{ID: "a", Title: "Fizika"}

	s.api.EXPECT().
		ListBooks(gomock.Any(), model.CatalogQuery{Page: 1, Limit: 1}).
		Return(model.BooksPage{Books: []model.Book{newest}}, nil)

	s.state.EXPECT().
		LatestBookID(gomock.Any()).
		Return("", watchstate.ErrNotFound)

	s.state.EXPECT().
		SetLatestBookID(gomock.Any(), "a").
		Return(nil)

	s.notifier.Check(context.Background())

	_, ok := s.notifier.LatestAnnounced()
	assert.Equal(s.T(), false, ok)
}

func (s *notifierSuite) Test_Check_NotifiesEachSubscriberOnce() {
	newest := model.Book{ID: "b", Title: "Kimyo"}
	subscribers := []string{"talaba@kutubxona.uz", "ustoz@kutubxona.uz"}

	s.api.EXPECT().
		ListBooks(gomock.Any(), model.CatalogQuery{Page: 1, Limit: 1}).
		Return(model.BooksPage{Books: []model.Book{newest}}, nil)

	s.state.EXPECT().
		LatestBookID(gomock.Any()).
		Return("a", nil)

	s.state.EXPECT().
		SetLatestBookID(gomock.Any(), "b").
		Return(nil)

	s.state.EXPECT().
		Subscribers(gomock.Any()).
		Return(subscribers, nil)

	s.mailer.EXPECT().
		SendNewBookAlert(gomock.Any(), subscribers[0], newest).
		Return(nil)

	s.mailer.EXPECT().
		SendNewBookAlert(gomock.Any(), subscribers[1], newest).
		Return(nil)

	s.notifier.Check(context.Background())

	announced, ok := s.notifier.LatestAnnounced()
	assert.Equal(s.T(), true, ok)
	assert.Equal(s.T(), newest, announced)
}

func (s *notifierSuite) Test_Check_UnchangedBaselineIsSilent() {
	newest := model.Book{ID: "a", Title: "Fizika"}

	s.api.EXPECT().
		ListBooks(gomock.Any(), model.CatalogQuery{Page: 1, Limit: 1}).
		Return(model.BooksPage{Books: []model.Book{newest}}, nil)

	s.state.EXPECT().
		LatestBookID(gomock.Any()).
		Return("a", nil)

	s.notifier.Check(context.Background())

	_, ok := s.notifier.LatestAnnounced()
	assert.Equal(s.T(), false, ok)
}

func (s *notifierSuite) Test_Check_PollErrRetriedNextTick() {
	s.api.EXPECT().
		ListBooks(gomock.Any(), gomock.Any()).
		Return(model.BooksPage{}, errors.New("api down"))

	s.notifier.Check(context.Background())
}

func (s *notifierSuite) Test_Check_EmptyCatalogIgnored() {
	s.api.EXPECT().
		ListBooks(gomock.Any(), gomock.Any()).
		Return(model.BooksPage{}, nil)

	s.notifier.Check(context.Background())
}

func (s *notifierSuite) Test_Check_DeliveryFailureDoesNotBlockOthers() {
	newest := model.Book{ID: "b"}
	subscribers := []string{"birinchi@kutubxona.uz", "ikkinchi@kutubxona.uz"}

	s.api.EXPECT().
		ListBooks(gomock.Any(), gomock.Any()).
		Return(model.BooksPage{Books: []model.Book{newest}}, nil)

	s.state.EXPECT().
		LatestBookID(gomock.Any()).
		Return("a", nil)

	s.state.EXPECT().
		SetLatestBookID(gomock.Any(), "b").
		Return(nil)

	s.state.EXPECT().
		Subscribers(gomock.Any()).
		Return(subscribers, nil)

	s.mailer.EXPECT().
		SendNewBookAlert(gomock.Any(), subscribers[0], newest).
		Return(errors.New("smtp down"))

	s.mailer.EXPECT().
		SendNewBookAlert(gomock.Any(), subscribers[1], newest).
		Return(nil)

	s.notifier.Check(context.Background())
}

func (s *notifierSuite) Test_Subscribe_Success() {
	ctx := context.Background()

	s.state.EXPECT().
		Subscribe(ctx, "talaba@kutubxona.uz").
		Return(nil)

	err := s.notifier.Subscribe(ctx, "talaba@kutubxona.uz")

	assert.Nil(s.T(), err)
}

func (s *notifierSuite) Test_Subscribe_InvalidEmail() {
	err := s.notifier.Subscribe(context.Background(), "not-an-email")

	assert.Equal(s.T(), ErrInvalidEmail, err)
}
