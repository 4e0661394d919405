package catalog

import (
	"context"
	"errors"
	"testing"

	"allergysafe-be/internal/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "price_millimes", "category", "image", "description",
	"materials", "features", "allergy_tags", "in_stock",
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow("p-1", "Oreiller", int64(89000), "Literie", "/img/1.jpg", "desc",
				"{Microfibre}", "{Lavable}", "{Hypoallergénique}", true).
			AddRow("p-2", "Gants", int64(12500), "Maison", "/img/2.jpg", "desc",
				"{Nitrile}", "{}", "{\"Sans Latex\"}", true)

		mock.ExpectQuery("SELECT id, name, price_millimes").WillReturnRows(rows)

		products, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "p-1", products[0].ID)
		assert.Equal(t, money.FromMillimes(89000), products[0].Price)
		assert.Equal(t, []string{"Sans Latex"}, products[1].AllergyTags)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price_millimes").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetAll(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow("p-1", "Oreiller", int64(89000), "Literie", "/img/1.jpg", "desc",
				"{Microfibre}", "{}", "{Hypoallergénique}", true)

		mock.ExpectQuery("SELECT id, name, price_millimes").
			WithArgs("p-1").
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), "p-1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Oreiller", p.Name)
	})

	t.Run("Missing returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price_millimes").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(productColumns))

		p, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success assigns id", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO products").
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.Create(context.Background(), Product{
			Name:  "Savon",
			Price: money.FromMillimes(8900),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO products").
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), Product{Name: "Savon"})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.Update(context.Background(), Product{ID: "p-1", Name: "Savon"})
		assert.NoError(t, err)
	})

	t.Run("No rows means not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), Product{ID: "nope"})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeded", func(t *testing.T) {
		repo := NewMemoryRepository()
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, all)
	})

	t.Run("GetAll returns a copy", func(t *testing.T) {
		repo := NewMemoryRepository()
		first, _ := repo.GetAll(ctx)
		first[0].Name = "mutated"

		again, _ := repo.GetAll(ctx)
		assert.NotEqual(t, "mutated", again[0].Name)
	})

	t.Run("Create then GetByID", func(t *testing.T) {
		repo := NewEmptyMemoryRepository()
		created, err := repo.Create(ctx, Product{Name: "Plaid", Price: money.FromMillimes(65000)})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Plaid", got.Name)
	})

	t.Run("Update missing product", func(t *testing.T) {
		repo := NewEmptyMemoryRepository()
		_, err := repo.Update(ctx, Product{ID: "ghost"})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
