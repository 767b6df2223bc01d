package prospects

import (
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/domain"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func TestCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p, err := service.Create(ctx, CreateProspectRequest{
			CompanyName:   "Acme Tech",
			Industry:      "Technology",
			ContactPerson: "Jordan Smith",
			Email:         "jordan@acmetech.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Tech", p.CompanyName)
		assert.Equal(t, "Technology", p.Industry)
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("Duplicate company name", func(t *testing.T) {
		_, err := service.Create(ctx, CreateProspectRequest{
			CompanyName: "Acme Tech",
			Industry:    "Technology",
		})

		require.Error(t, err)
		assert.True(t, domain.IsDuplicateProspect(err))
	})
}

func TestGet(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateProspectRequest{
		CompanyName: "HealthFirst",
		Industry:    "Healthcare",
	})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		p, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "HealthFirst", p.CompanyName)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := service.Get(ctx, 99999)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	for _, seed := range []CreateProspectRequest{
		{CompanyName: "Acme Tech", Industry: "Technology"},
		{CompanyName: "ByteWorks", Industry: "Information Technology"},
		{CompanyName: "HealthFirst", Industry: "Healthcare"},
	} {
		_, err := service.Create(ctx, seed)
		require.NoError(t, err)
	}

	t.Run("All prospects", func(t *testing.T) {
		items, total, err := service.List(ctx, ListProspectsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 3)
	})

	t.Run("Industry filter is case-insensitive substring", func(t *testing.T) {
		items, total, err := service.List(ctx, ListProspectsRequest{Industry: "tech"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, p := range items {
			assert.Contains(t, strings.ToLower(p.Industry), "tech")
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		items, total, err := service.List(ctx, ListProspectsRequest{Offset: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, items, 1)
		assert.Equal(t, "ByteWorks", items[0].CompanyName)
	})
}

func TestUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateProspectRequest{
		CompanyName: "RetailCo",
		Industry:    "Retail",
		Email:       "old@retailco.com",
	})
	require.NoError(t, err)

	t.Run("Partial update leaves other fields intact", func(t *testing.T) {
		email := "new@retailco.com"
		p, err := service.Update(ctx, created.ID, UpdateProspectRequest{Email: &email})

		require.NoError(t, err)
		assert.Equal(t, "new@retailco.com", p.Email)
		assert.Equal(t, "RetailCo", p.CompanyName)
		assert.Equal(t, "Retail", p.Industry)
	})

	t.Run("Not found", func(t *testing.T) {
		industry := "Finance"
		_, err := service.Update(ctx, 99999, UpdateProspectRequest{Industry: &industry})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestDelete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateProspectRequest{
		CompanyName: "Gone Inc",
		Industry:    "Finance",
	})
	require.NoError(t, err)

	// Attach an engagement so the cascade path is exercised.
	_, err = client.Engagement.Create().
		SetProspectID(created.ID).
		SetKind("email").
		SetContent("{}").
		Save(ctx)
	require.NoError(t, err)

	t.Run("Deletes prospect and its engagements", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, created.ID))

		_, err := service.Get(ctx, created.ID)
		assert.True(t, domain.IsNotFound(err))

		count, err := client.Engagement.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Not found", func(t *testing.T) {
		err := service.Delete(ctx, created.ID)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestImport(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, CreateProspectRequest{
		CompanyName: "Existing Corp",
		Industry:    "Retail",
	})
	require.NoError(t, err)

	result, err := service.Import(ctx, []CreateProspectRequest{
		{CompanyName: "Fresh One", Industry: "Technology"},
		{CompanyName: "Existing Corp", Industry: "Retail"},
		{CompanyName: "Fresh Two", Industry: "Finance"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	_, total, err := service.List(ctx, ListProspectsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestImportCSV(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success with reordered columns", func(t *testing.T) {
		csvData := "industry,company_name,email\nTechnology,CSV Tech,hello@csvtech.com\nHealthcare,CSV Health,\n"

		result, err := service.ImportCSV(ctx, strings.NewReader(csvData))
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Zero(t, result.Skipped)

		p, err := service.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "CSV Tech", p.CompanyName)
		assert.Equal(t, "hello@csvtech.com", p.Email)
	})

	t.Run("Missing required column", func(t *testing.T) {
		_, err := service.ImportCSV(ctx, strings.NewReader("company_name,email\nNo Industry,\n"))
		require.Error(t, err)
		assert.True(t, domain.IsBadRequest(err))
	})
}
