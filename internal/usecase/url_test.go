package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/tinyapp/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/pkg/codegen"

	mocks "github.com/vadimbarashkov/tinyapp/mocks/usecase"
)

type URLUseCaseTestSuite struct {
	suite.Suite
	errUnknown  error
	now         time.Time
	codeGenMock *mocks.MockCodeGenerator
	urlRepoMock *mocks.MockUrlRepository
	uc          *URLUseCase
}

func (suite *URLUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *URLUseCaseTestSuite) SetupSubTest() {
	suite.codeGenMock = mocks.NewMockCodeGenerator(suite.T())
	suite.urlRepoMock = mocks.NewMockUrlRepository(suite.T())
	suite.uc = NewURLUseCase(suite.codeGenMock, suite.urlRepoMock)
	suite.uc.now = func() time.Time { return suite.now }
}

func (suite *URLUseCaseTestSuite) TearDownSubTest() {
	suite.codeGenMock.AssertExpectations(suite.T())
	suite.urlRepoMock.AssertExpectations(suite.T())
}

func (suite *URLUseCaseTestSuite) ownedURL() *entity.URL {
	return entity.NewURL("abc123", "https://example.com", "A", suite.now)
}

func (suite *URLUseCaseTestSuite) TestShortenURL() {
	suite.Run("must login", func() {
		url, err := suite.uc.ShortenURL(context.Background(), "", "https://example.com")

		suite.ErrorIs(err, entity.ErrMustLogin)
		suite.Nil(url)
	})

	suite.Run("empty long url", func() {
		url, err := suite.uc.ShortenURL(context.Background(), "A", "")

		suite.ErrorIs(err, entity.ErrInvalidInput)
		suite.Nil(url)
	})

	suite.Run("short code generation error", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("")

		url, err := suite.uc.ShortenURL(context.Background(), "A", "https://example.com")

		suite.Error(err)
		suite.Nil(url)
	})

	suite.Run("maximum retries error", func() {
		suite.codeGenMock.On("Generate", 6).Times(5).Return("abc123")
		suite.urlRepoMock.
			On("Save", context.Background(), mock.AnythingOfType("*entity.URL")).
			Times(5).
			Return(entity.ErrShortCodeExists)

		url, err := suite.uc.ShortenURL(context.Background(), "A", "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(url)
	})

	suite.Run("regenerates on collision", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("abc123")
		suite.codeGenMock.On("Generate", 6).Once().Return("def456")
		suite.urlRepoMock.
			On("Save", context.Background(), mock.MatchedBy(func(u *entity.URL) bool { return u.ShortCode == "abc123" })).
			Once().
			Return(entity.ErrShortCodeExists)
		suite.urlRepoMock.
			On("Save", context.Background(), mock.MatchedBy(func(u *entity.URL) bool { return u.ShortCode == "def456" })).
			Once().
			Return(nil)

		url, err := suite.uc.ShortenURL(context.Background(), "A", "https://example.com")

		suite.NoError(err)
		suite.Equal("def456", url.ShortCode)
	})

	suite.Run("unknown error", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("abc123")
		suite.urlRepoMock.
			On("Save", context.Background(), mock.AnythingOfType("*entity.URL")).
			Once().
			Return(suite.errUnknown)

		url, err := suite.uc.ShortenURL(context.Background(), "A", "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("abc123")
		suite.urlRepoMock.
			On("Save", context.Background(), mock.AnythingOfType("*entity.URL")).
			Once().
			Return(nil)

		url, err := suite.uc.ShortenURL(context.Background(), "A", "https://example.com")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abc123", url.ShortCode)
		suite.Equal("https://example.com", url.LongURL)
		suite.Equal("A", url.OwnerID)
		suite.Empty(url.Visits)
		suite.Empty(url.Visitors)
		suite.Equal(suite.now, url.CreatedAt)
	})
}

func (suite *URLUseCaseTestSuite) TestGetURL() {
	suite.Run("must login", func() {
		url, err := suite.uc.GetURL(context.Background(), "", "abc123")

		suite.ErrorIs(err, entity.ErrMustLogin)
		suite.Nil(url)
	})

	suite.Run("url not found", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(nil, entity.ErrURLNotFound)

		url, err := suite.uc.GetURL(context.Background(), "A", "abc123")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("forbidden", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)

		url, err := suite.uc.GetURL(context.Background(), "B", "abc123")

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(nil, suite.errUnknown)

		url, err := suite.uc.GetURL(context.Background(), "A", "abc123")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)

		url, err := suite.uc.GetURL(context.Background(), "A", "abc123")

		suite.NoError(err)
		suite.Equal("abc123", url.ShortCode)
	})
}

func (suite *URLUseCaseTestSuite) TestListURLs() {
	suite.Run("must login", func() {
		urls, err := suite.uc.ListURLs(context.Background(), "")

		suite.ErrorIs(err, entity.ErrMustLogin)
		suite.Nil(urls)
	})

	suite.Run("unknown error", func() {
		suite.urlRepoMock.
			On("RetrieveByOwner", context.Background(), "A").
			Once().
			Return(nil, suite.errUnknown)

		urls, err := suite.uc.ListURLs(context.Background(), "A")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(urls)
	})

	suite.Run("success", func() {
		suite.urlRepoMock.
			On("RetrieveByOwner", context.Background(), "A").
			Once().
			Return(map[string]*entity.URL{"abc123": suite.ownedURL()}, nil)

		urls, err := suite.uc.ListURLs(context.Background(), "A")

		suite.NoError(err)
		suite.Len(urls, 1)
		suite.Contains(urls, "abc123")
	})
}

func (suite *URLUseCaseTestSuite) TestModifyURL() {
	suite.Run("must login", func() {
		url, err := suite.uc.ModifyURL(context.Background(), "", "abc123", "https://new-example.com")

		suite.ErrorIs(err, entity.ErrMustLogin)
		suite.Nil(url)
	})

	suite.Run("forbidden", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)

		url, err := suite.uc.ModifyURL(context.Background(), "B", "abc123", "https://new-example.com")

		suite.ErrorIs(err, entity.ErrForbidden)
		suite.Nil(url)
	})

	suite.Run("empty long url", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)

		url, err := suite.uc.ModifyURL(context.Background(), "A", "abc123", "")

		suite.ErrorIs(err, entity.ErrInvalidInput)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)
		suite.urlRepoMock.
			On("Update", context.Background(), "abc123", "https://new-example.com").
			Once().
			Return(nil, suite.errUnknown)

		url, err := suite.uc.ModifyURL(context.Background(), "A", "abc123", "https://new-example.com")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		updated := suite.ownedURL()
		updated.LongURL = "https://new-example.com"

		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)
		suite.urlRepoMock.
			On("Update", context.Background(), "abc123", "https://new-example.com").
			Once().
			Return(updated, nil)

		url, err := suite.uc.ModifyURL(context.Background(), "A", "abc123", "https://new-example.com")

		suite.NoError(err)
		suite.Equal("https://new-example.com", url.LongURL)
	})
}

func (suite *URLUseCaseTestSuite) TestDeleteURL() {
	suite.Run("url not found", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(nil, entity.ErrURLNotFound)

		err := suite.uc.DeleteURL(context.Background(), "A", "abc123")

		suite.ErrorIs(err, entity.ErrURLNotFound)
	})

	suite.Run("forbidden", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)

		err := suite.uc.DeleteURL(context.Background(), "B", "abc123")

		suite.ErrorIs(err, entity.ErrForbidden)
	})

	suite.Run("unknown error", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)
		suite.urlRepoMock.
			On("Remove", context.Background(), "abc123").
			Once().
			Return(suite.errUnknown)

		err := suite.uc.DeleteURL(context.Background(), "A", "abc123")

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.urlRepoMock.
			On("RetrieveByShortCode", context.Background(), "abc123").
			Once().
			Return(suite.ownedURL(), nil)
		suite.urlRepoMock.
			On("Remove", context.Background(), "abc123").
			Once().
			Return(nil)

		err := suite.uc.DeleteURL(context.Background(), "A", "abc123")

		suite.NoError(err)
	})
}

func (suite *URLUseCaseTestSuite) TestResolveShortCode() {
	suite.Run("url not found", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("vis001")
		suite.urlRepoMock.
			On("RecordVisit", context.Background(), "abc123", entity.Visit{VisitorID: "vis001", Timestamp: suite.now}).
			Once().
			Return(nil, entity.ErrURLNotFound)

		res, err := suite.uc.ResolveShortCode(context.Background(), "abc123", "")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(res)
	})

	suite.Run("visitor id generation error", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("")

		res, err := suite.uc.ResolveShortCode(context.Background(), "abc123", "")

		suite.Error(err)
		suite.Nil(res)
	})

	suite.Run("new visitor", func() {
		suite.codeGenMock.On("Generate", 6).Once().Return("vis001")
		suite.urlRepoMock.
			On("RecordVisit", context.Background(), "abc123", entity.Visit{VisitorID: "vis001", Timestamp: suite.now}).
			Once().
			Return(suite.ownedURL(), nil)

		res, err := suite.uc.ResolveShortCode(context.Background(), "abc123", "")

		suite.NoError(err)
		suite.Equal("https://example.com", res.LongURL)
		suite.Equal("vis001", res.VisitorID)
	})

	suite.Run("returning visitor", func() {
		suite.urlRepoMock.
			On("RecordVisit", context.Background(), "abc123", entity.Visit{VisitorID: "known1", Timestamp: suite.now}).
			Once().
			Return(suite.ownedURL(), nil)

		res, err := suite.uc.ResolveShortCode(context.Background(), "abc123", "known1")

		suite.NoError(err)
		suite.Equal("known1", res.VisitorID)
	})
}

func TestURLUseCase(t *testing.T) {
	suite.Run(t, new(URLUseCaseTestSuite))
}

func TestURLUseCase_VisitorTracking(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewURLRepository()
	uc := NewURLUseCase(codegen.NewClass(), repo)

	url, err := uc.ShortenURL(ctx, "A", "http://example.com")
	require.NoError(t, err)
	assert.Len(t, url.ShortCode, 6)

	res, err := uc.ResolveShortCode(ctx, url.ShortCode, "")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", res.LongURL)
	assert.Len(t, res.VisitorID, 6)
	assert.Regexp(t, `^[0-9A-Za-z]{6}$`, res.VisitorID)

	stored, err := uc.GetURL(ctx, "A", url.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UniqueVisitors())
	assert.Equal(t, 1, stored.VisitCount())

	_, err = uc.ResolveShortCode(ctx, url.ShortCode, res.VisitorID)
	require.NoError(t, err)

	stored, err = uc.GetURL(ctx, "A", url.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UniqueVisitors())
	assert.Equal(t, 2, stored.VisitCount())

	_, err = uc.ModifyURL(ctx, "A", url.ShortCode, "http://example.org")
	require.NoError(t, err)

	stored, err = uc.GetURL(ctx, "A", url.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org", stored.LongURL)
	assert.Equal(t, 1, stored.UniqueVisitors())
	assert.Equal(t, 2, stored.VisitCount())

	urls, err := uc.ListURLs(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, urls, 1)
	assert.Contains(t, urls, url.ShortCode)

	_, err = uc.ResolveShortCode(ctx, "nope00", "")
	assert.ErrorIs(t, err, entity.ErrURLNotFound)

	require.NoError(t, uc.DeleteURL(ctx, "A", url.ShortCode))

	_, err = uc.GetURL(ctx, "A", url.ShortCode)
	assert.ErrorIs(t, err, entity.ErrURLNotFound)
}
