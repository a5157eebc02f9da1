//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/repository"
	"signage-sync/tests/common/builder"
	"signage-sync/tests/common/dbtest"
	dbmock "signage-sync/tests/mock/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlaylistRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)

	p, err := builder.NewPlaylistBuilder().BuildDomain()
	require.NoError(t, err)

	mockDB.EXPECT().
		QueryRow(ctx, gomock.Any(), p.ID(), p.StoreID(), p.Name(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...any) pgx.Row {
			raw, ok := args[3].([]byte)
			require.True(t, ok)

			var slides []playlist.Slide
			require.NoError(t, json.Unmarshal(raw, &slides))
			assert.Len(t, slides, len(p.Slides()))
			assert.Equal(t, p.Slides()[0].DurationSec, slides[0].DurationSec)
			return dbtest.NewRow(p.ID())
		})

	id, err := repository.NewPlaylistRepository().Create(ctx, mockDB, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID(), id)
}

func TestPlaylistRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	repo := repository.NewPlaylistRepository()

	p, err := builder.NewPlaylistBuilder().BuildDomain()
	require.NoError(t, err)

	mockDB.EXPECT().Exec(ctx, gomock.Any(), p.ID(), p.Name(), gomock.Any()).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
	require.NoError(t, repo.Update(ctx, mockDB, p))

	mockDB.EXPECT().Exec(ctx, gomock.Any(), p.ID(), p.Name(), gomock.Any()).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
	assert.True(t, infra.IsKind(repo.Update(ctx, mockDB, p), infra.KindNotFound))
}

func TestPlaylistRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	id := uuid.New()
	storeID := uuid.New()

	mockDB.EXPECT().QueryRow(ctx, gomock.Any(), id).Return(dbtest.NewRow(storeID))

	got, err := repository.NewPlaylistRepository().Delete(ctx, mockDB, id)
	require.NoError(t, err)
	assert.Equal(t, storeID, got)
}
