package games_test

import (
	"context"
	"errors"
	"testing"

	"vapor-store/core/database"
	"vapor-store/feature/catalog"
	"vapor-store/feature/catalog/mocks"
	"vapor-store/feature/catalog/models"
	"vapor-store/feature/games"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*gorm.DB, *catalog.GormStore) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.AutoMigrate(db))

	return db, catalog.NewGormStore(db)
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestImportGames(t *testing.T) {
	ctx := context.Background()

	t.Run("BlankTagIgnored", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		out, err := svc.ImportGames(ctx, `[{"Name":"Foo","Price":9.99,"ReleaseDate":"2020-01-01","Developer":"Acme","Genre":"RPG","Tags":["a","b",""]}]`)
		require.NoError(t, err)

		assert.Equal(t, "Added Foo (RPG) with 2 tags", out)
		assert.EqualValues(t, 1, count(t, db, "games"))
		assert.EqualValues(t, 2, count(t, db, "game_tags"))
		assert.EqualValues(t, 2, count(t, db, "tags"))
	})

	t.Run("DeveloperSharedAcrossRecords", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		out, err := svc.ImportGames(ctx, `[
			{"Name":"One","Price":1,"ReleaseDate":"2019-05-01","Developer":"Acme","Genre":"RPG","Tags":["x"]},
			{"Name":"Two","Price":2,"ReleaseDate":"2019-06-01","Developer":"Acme","Genre":"Action","Tags":["x","y"]}
		]`)
		require.NoError(t, err)
		assert.Equal(t, "Added One (RPG) with 1 tags\nAdded Two (Action) with 2 tags", out)

		var developers []models.Developer
		require.NoError(t, db.Preload("Games").Find(&developers).Error)
		require.Len(t, developers, 1)
		assert.Equal(t, "Acme", developers[0].Name)
		assert.Len(t, developers[0].Games, 2)

		assert.EqualValues(t, 2, count(t, db, "genres"))
		assert.EqualValues(t, 2, count(t, db, "tags"))
		assert.EqualValues(t, 3, count(t, db, "game_tags"))
	})

	t.Run("RejectionsKeepOrder", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		payload := `[
			{"Name":"","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["t"]},
			{"Name":"Ok","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["t"]},
			{"Name":"Neg","Price":-1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["t"]},
			{"Name":"BadDate","Price":1,"ReleaseDate":"01-01-2020","Developer":"D","Genre":"G","Tags":["t"]},
			{"Name":"NoMonth","Price":1,"ReleaseDate":"2020-13-01","Developer":"D","Genre":"G","Tags":["t"]},
			{"Name":"NoTags","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":[]},
			{"Name":"NullTags","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G"},
			{"Name":"NoDev","Price":1,"ReleaseDate":"2020-01-01","Developer":" ","Genre":"G","Tags":["t"]},
			{"Name":"Free","Price":0,"ReleaseDate":"2021-02-28","Developer":"D","Genre":"G","Tags":["t"]}
		]`

		out, err := svc.ImportGames(ctx, payload)
		require.NoError(t, err)

		assert.Equal(t, "Invalid Data\n"+
			"Added Ok (G) with 1 tags\n"+
			"Invalid Data\n"+
			"Invalid Data\n"+
			"Invalid Data\n"+
			"Invalid Data\n"+
			"Invalid Data\n"+
			"Invalid Data\n"+
			"Added Free (G) with 1 tags", out)
		assert.EqualValues(t, 2, count(t, db, "games"))
	})

	t.Run("OnlyBlankTagsRejectedWithoutPersistingDeveloper", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		out, err := svc.ImportGames(ctx, `[{"Name":"Ghost","Price":1,"ReleaseDate":"2020-01-01","Developer":"Phantom","Genre":"Horror","Tags":["", "  "]}]`)
		require.NoError(t, err)

		assert.Equal(t, "Invalid Data", out)
		assert.EqualValues(t, 0, count(t, db, "games"))
		assert.EqualValues(t, 0, count(t, db, "developers"))
		assert.EqualValues(t, 0, count(t, db, "genres"))
	})

	t.Run("RepeatedTagLinkedOnce", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		out, err := svc.ImportGames(ctx, `[{"Name":"Echo","Price":5,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["a","a","b"]}]`)
		require.NoError(t, err)

		assert.Equal(t, "Added Echo (G) with 2 tags", out)
		assert.EqualValues(t, 2, count(t, db, "game_tags"))
	})

	t.Run("NoDedupAcrossCalls", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		payload := `[{"Name":"A","Price":1,"ReleaseDate":"2020-01-01","Developer":"Acme","Genre":"G","Tags":["t"]}]`
		_, err := svc.ImportGames(ctx, payload)
		require.NoError(t, err)
		_, err = svc.ImportGames(ctx, payload)
		require.NoError(t, err)

		assert.EqualValues(t, 2, count(t, db, "developers"))
	})

	t.Run("EmptyArray", func(t *testing.T) {
		db, store := setupStore(t)
		svc := games.NewService(store, zap.NewNop())

		out, err := svc.ImportGames(ctx, `[]`)
		require.NoError(t, err)

		assert.Equal(t, "", out)
		assert.EqualValues(t, 0, count(t, db, "games"))
	})
}

func TestImportGames_WithMockStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SharedInstancesHandedToStore", func(t *testing.T) {
		store := new(mocks.Store)
		var saved []*models.Game
		store.On("AddGames", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).([]*models.Game) }).
			Return(nil)

		svc := games.NewService(store, zap.NewNop())
		_, err := svc.ImportGames(ctx, `[
			{"Name":"One","Price":1,"ReleaseDate":"2019-05-01","Developer":"Acme","Genre":"RPG","Tags":["x"]},
			{"Name":"Two","Price":1,"ReleaseDate":"2019-05-01","Developer":"Acme","Genre":"RPG","Tags":["x"]}
		]`)
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.Same(t, saved[0].Developer, saved[1].Developer)
		assert.Same(t, saved[0].Genre, saved[1].Genre)
		assert.Same(t, saved[0].Tags[0], saved[1].Tags[0])
		assert.Equal(t, 2019, saved[0].ReleaseDate.Year())
		assert.Equal(t, "1", saved[0].Price.String())
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		store := new(mocks.Store)
		svc := games.NewService(store, zap.NewNop())

		_, err := svc.ImportGames(ctx, `[{"Name":`)
		assert.ErrorIs(t, err, catalog.ErrMalformedPayload)
		store.AssertNotCalled(t, "AddGames", mock.Anything, mock.Anything)
	})

	t.Run("LeadingByteOrderMark", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("AddGames", ctx, mock.MatchedBy(func(gs []*models.Game) bool { return len(gs) == 1 })).Return(nil).Once()

		svc := games.NewService(store, zap.NewNop())
		out, err := svc.ImportGames(ctx, "\ufeff"+`[{"Name":"A","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["t"]}]`)
		require.NoError(t, err)
		assert.Equal(t, "Added A (G) with 1 tags", out)
		store.AssertExpectations(t)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("AddGames", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		svc := games.NewService(store, zap.NewNop())
		_, err := svc.ImportGames(ctx, `[{"Name":"A","Price":1,"ReleaseDate":"2020-01-01","Developer":"D","Genre":"G","Tags":["t"]}]`)
		assert.ErrorContains(t, err, "disk full")
	})
}
