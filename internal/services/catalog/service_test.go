package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"
	"cardcopy/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) Lookup(ctx context.Context) ([]models.CatalogCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CatalogCard), args.Error(1)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetCatalog(ctx context.Context) ([]models.CatalogCard, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.CatalogCard), args.Bool(1), args.Error(2)
}

func (m *MockCatalogCache) CacheCatalog(ctx context.Context, cards []models.CatalogCard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockCatalogCache) InvalidateCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogCache) GetCard(ctx context.Context, slug string) (*models.CreditCard, bool, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.CreditCard), args.Bool(1), args.Error(2)
}

func (m *MockCatalogCache) CacheCard(ctx context.Context, card *models.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) Upsert(ctx context.Context, cards []models.CreditCard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockCardRepo) GetBySlug(ctx context.Context, slug string) (*models.CreditCard, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditCard), args.Error(1)
}

func (m *MockCardRepo) FindBySlugs(ctx context.Context, slugs []string) ([]models.CreditCard, error) {
	args := m.Called(ctx, slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CreditCard), args.Error(1)
}

func (m *MockCardRepo) List(ctx context.Context, limit, offset int) ([]models.CreditCard, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.CreditCard), args.Get(1).(int64), args.Error(2)
}

func sampleCatalog() []models.CatalogCard {
	cards := []models.CatalogCard{
		{Name: "Millennia Credit Card", Bank: "HDFC Bank"},
		{Name: "Regalia Gold", Bank: "HDFC Bank"},
		{Name: "Ace Credit Card", Bank: "Axis Bank"},
		{Name: "SimplyCLICK", Bank: "SBI Card"},
		{Name: "Amazon Pay ICICI", Bank: "ICICI Bank"},
	}
	for i := 0; i < 8; i++ {
		cards = append(cards, models.CatalogCard{
			Name: fmt.Sprintf("Swiggy HDFC Variant %d", i),
			Bank: "HDFC Bank",
		})
	}
	return cards
}

func TestService_SearchEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t"} {
		client := new(MockCatalogClient)
		cache := new(MockCatalogCache)
		repo := new(MockCardRepo)
		svc := NewService(client, cache, repo, nil)

		cards, err := svc.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.NotNil(t, cards)

		client.AssertNotCalled(t, "Lookup", mock.Anything)
		cache.AssertNotCalled(t, "GetCatalog", mock.Anything)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	}
}

func TestService_SearchFiltersAndCaps(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "bank match capped at five", query: "hdfc", wantCount: MaxSearchResults},
		{name: "case insensitive name", query: "ACE", wantCount: 1},
		{name: "bank only", query: "sbi", wantCount: 1},
		{name: "no match", query: "amex", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockCatalogClient)
			client.On("Lookup", mock.Anything).Return(sampleCatalog(), nil).Once()

			svc := NewService(client, nil, nil, nil)
			cards, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Len(t, cards, tt.wantCount)

			q := strings.ToLower(tt.query)
			for _, card := range cards {
				hit := strings.Contains(strings.ToLower(card.Name), q) ||
					strings.Contains(strings.ToLower(card.BankName), q)
				assert.True(t, hit, "card %q from %q does not match %q", card.Name, card.BankName, tt.query)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestService_SearchUsesCache(t *testing.T) {
	client := new(MockCatalogClient)
	cache := new(MockCatalogCache)
	cache.On("GetCatalog", mock.Anything).Return(sampleCatalog(), true, nil)

	svc := NewService(client, cache, nil, nil)
	cards, err := svc.Search(context.Background(), "axis")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Ace Credit Card", cards[0].Name)

	client.AssertNotCalled(t, "Lookup", mock.Anything)
	cache.AssertExpectations(t)
}

func TestService_SearchFillsCacheOnMiss(t *testing.T) {
	client := new(MockCatalogClient)
	cache := new(MockCatalogCache)
	catalog := sampleCatalog()
	cache.On("GetCatalog", mock.Anything).Return(nil, false, nil)
	cache.On("CacheCatalog", mock.Anything, catalog).Return(errors.New("redis down"))
	client.On("Lookup", mock.Anything).Return(catalog, nil)

	svc := NewService(client, cache, nil, nil)
	cards, err := svc.Search(context.Background(), "icici")
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	client.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_SearchCatalogFailure(t *testing.T) {
	client := new(MockCatalogClient)
	client.On("Lookup", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewService(client, nil, nil, nil)
	cards, err := svc.Search(context.Background(), "hdfc")
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	assert.Empty(t, cards)
}

func TestService_SearchPersistsMatches(t *testing.T) {
	client := new(MockCatalogClient)
	repo := new(MockCardRepo)
	client.On("Lookup", mock.Anything).Return([]models.CatalogCard{
		{Name: "Ace Credit Card", Bank: "Axis Bank", Alias: "axis-ace"},
		{Name: "Ace Credit Card", Bank: "Axis Bank", Alias: "axis-ace"},
	}, nil)

	storedID := uuid.New()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(cards []models.CreditCard) bool {
		return len(cards) == 1 && cards[0].Slug == "axis-ace"
	})).Return(nil)
	repo.On("FindBySlugs", mock.Anything, []string{"axis-ace"}).
		Return([]models.CreditCard{{ID: storedID, Slug: "axis-ace"}}, nil)

	svc := NewService(client, nil, repo, nil)
	cards, err := svc.Search(context.Background(), "ace")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, storedID, cards[0].ID)
	assert.Equal(t, storedID, cards[1].ID)
	repo.AssertExpectations(t)
}

func TestService_SearchIgnoresPersistFailure(t *testing.T) {
	client := new(MockCatalogClient)
	repo := new(MockCardRepo)
	client.On("Lookup", mock.Anything).Return(sampleCatalog(), nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(client, nil, repo, nil)
	cards, err := svc.Search(context.Background(), "sbi")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, uuid.Nil, cards[0].ID)
	repo.AssertNotCalled(t, "FindBySlugs", mock.Anything, mock.Anything)
}

func TestCard(t *testing.T) {
	repo := new(MockCardRepo)
	repo.On("GetBySlug", mock.Anything, "millennia").Return(&models.CreditCard{Name: "Millennia", Slug: "millennia"}, nil)
	repo.On("GetBySlug", mock.Anything, "missing").Return(nil, repositories.ErrCardNotFound)

	svc := NewService(new(MockCatalogClient), nil, repo, nil)

	card, err := svc.Card(context.Background(), "millennia")
	require.NoError(t, err)
	assert.Equal(t, "Millennia", card.Name)

	_, err = svc.Card(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
}

func TestCard_UsesSlugCache(t *testing.T) {
	t.Run("hit skips the database", func(t *testing.T) {
		cache := new(MockCatalogCache)
		repo := new(MockCardRepo)
		cache.On("GetCard", mock.Anything, "millennia").Return(&models.CreditCard{Name: "Millennia", Slug: "millennia"}, true, nil)

		card, err := NewService(new(MockCatalogClient), cache, repo, nil).Card(context.Background(), "millennia")
		require.NoError(t, err)
		assert.Equal(t, "Millennia", card.Name)
		repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	})

	t.Run("miss reads the database and fills the cache", func(t *testing.T) {
		cache := new(MockCatalogCache)
		repo := new(MockCardRepo)
		stored := &models.CreditCard{ID: uuid.New(), Name: "Millennia", Slug: "millennia"}
		cache.On("GetCard", mock.Anything, "millennia").Return(nil, false, nil)
		repo.On("GetBySlug", mock.Anything, "millennia").Return(stored, nil)
		cache.On("CacheCard", mock.Anything, stored).Return(nil)

		card, err := NewService(new(MockCatalogClient), cache, repo, nil).Card(context.Background(), "millennia")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, card.ID)
		cache.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("cache failures fall through", func(t *testing.T) {
		cache := new(MockCatalogCache)
		repo := new(MockCardRepo)
		cache.On("GetCard", mock.Anything, "missing").Return(nil, false, errors.New("redis down"))
		repo.On("GetBySlug", mock.Anything, "missing").Return(nil, repositories.ErrCardNotFound)

		_, err := NewService(new(MockCatalogClient), cache, repo, nil).Card(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
		cache.AssertNotCalled(t, "CacheCard", mock.Anything, mock.Anything)
	})
}

func TestService_SearchCachesStoredCards(t *testing.T) {
	client := new(MockCatalogClient)
	cache := new(MockCatalogCache)
	repo := new(MockCardRepo)
	storedID := uuid.New()

	cache.On("GetCatalog", mock.Anything).Return(sampleCatalog(), true, nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	repo.On("FindBySlugs", mock.Anything, []string{"ace-credit-card"}).
		Return([]models.CreditCard{{ID: storedID, Name: "Ace Credit Card", Slug: "ace-credit-card"}}, nil)
	cache.On("CacheCard", mock.Anything, mock.MatchedBy(func(card *models.CreditCard) bool {
		return card.ID == storedID && card.Slug == "ace-credit-card"
	})).Return(errors.New("redis down"))

	cards, err := NewService(client, cache, repo, nil).Search(context.Background(), "axis")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, storedID, cards[0].ID)
	cache.AssertExpectations(t)
}

func TestCached(t *testing.T) {
	repo := new(MockCardRepo)
	repo.On("List", mock.Anything, 10, 20).Return([]models.CreditCard{{Name: "Ace"}}, int64(21), nil)

	svc := NewService(new(MockCatalogClient), nil, repo, nil)
	cards, total, err := svc.Cached(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, int64(21), total)

	cards, total, err = NewService(new(MockCatalogClient), nil, nil, nil).Cached(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.Zero(t, total)
}

func TestRefresh(t *testing.T) {
	cache := new(MockCatalogCache)
	cache.On("InvalidateCatalog", mock.Anything).Return(nil)

	svc := NewService(new(MockCatalogClient), cache, nil, nil)
	require.NoError(t, svc.Refresh(context.Background()))
	cache.AssertExpectations(t)

	assert.NoError(t, NewService(new(MockCatalogClient), nil, nil, nil).Refresh(context.Background()))
}
