//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/domain/menu"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/domain/store"
	"signage-sync/internal/infra"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/usecase/commands"
	"signage-sync/internal/usecase/shared"
	dbmock "signage-sync/tests/mock/db"
	sharedmock "signage-sync/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type CommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	menuItems  *sharedmock.MockMenuItemRepository
	promotions *sharedmock.MockPromotionRepository
	stores     *sharedmock.MockStoreRepository
	playlists  *sharedmock.MockPlaylistRepository
	publisher  *sharedmock.MockChangePublisher
	db         *dbmock.MockDBTX
	clock      *clock.MockClock
	ctx        context.Context
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.menuItems = sharedmock.NewMockMenuItemRepository(s.ctrl)
	s.promotions = sharedmock.NewMockPromotionRepository(s.ctrl)
	s.stores = sharedmock.NewMockStoreRepository(s.ctrl)
	s.playlists = sharedmock.NewMockPlaylistRepository(s.ctrl)
	s.publisher = sharedmock.NewMockChangePublisher(s.ctrl)
	s.db = dbmock.NewMockDBTX(s.ctrl)
	s.clock = clock.NewMockClock(now)
	s.ctx = context.Background()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(s.db).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().MenuItems().Return(s.menuItems).AnyTimes()
	s.tx.EXPECT().Promotions().Return(s.promotions).AnyTimes()
	s.tx.EXPECT().Stores().Return(s.stores).AnyTimes()
	s.tx.EXPECT().Playlists().Return(s.playlists).AnyTimes()
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *CommandsTestSuite) expectSignal(t change.Type, storeID uuid.UUID) {
	s.publisher.EXPECT().Publish(gomock.Any(), change.NewSignal(t, storeID, now))
}

// =============================================================================
// Menu
// =============================================================================

func (s *CommandsTestSuite) TestUpdateSortOrder() {
	itemID, storeID := uuid.New(), uuid.New()
	uc := commands.NewMenuUseCase(s.uow, s.publisher, s.clock)

	s.Run("success publishes menu_update for the owning store", func() {
		order, _ := menu.NewSortOrder(3)
		s.menuItems.EXPECT().UpdateSortOrder(gomock.Any(), s.db, itemID, order).Return(storeID, nil)
		s.expectSignal(change.MenuUpdate, storeID)

		s.NoError(uc.UpdateSortOrder(s.ctx, itemID, 3))
	})

	s.Run("negative sort order is rejected before touching the database", func() {
		err := uc.UpdateSortOrder(s.ctx, itemID, -1)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("unknown item maps to ErrMenuItemNotFound and publishes nothing", func() {
		s.menuItems.EXPECT().UpdateSortOrder(gomock.Any(), s.db, itemID, gomock.Any()).Return(uuid.Nil, notFound())

		s.ErrorIs(uc.UpdateSortOrder(s.ctx, itemID, 1), commands.ErrMenuItemNotFound)
	})
}

func (s *CommandsTestSuite) TestUpdateMenuItem() {
	itemID, storeID := uuid.New(), uuid.New()
	uc := commands.NewMenuUseCase(s.uow, s.publisher, s.clock)
	snap := &shared.MenuItemSnapshot{
		ID: itemID, StoreID: storeID, Name: "Ramen", Description: "Pork broth",
		PriceCents: 1200, Tags: []string{"hot"}, IsActive: true, SortOrder: 2,
	}

	s.Run("patch keeps unspecified fields", func() {
		price := int64(1350)
		s.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(snap, nil)
		s.menuItems.EXPECT().Update(gomock.Any(), s.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, item *menu.Item) error {
				s.Equal("Ramen", item.Name())
				s.Equal(int64(1350), item.PriceCents())
				s.Equal([]string{"hot"}, item.Tags())
				s.Equal(2, item.SortOrder().Value())
				return nil
			})
		s.expectSignal(change.MenuUpdate, storeID)

		s.NoError(uc.UpdateMenuItem(s.ctx, itemID, commands.UpdateMenuItemRequest{PriceCents: &price}))
	})

	s.Run("invalid patch is a validation error", func() {
		blank := "  "
		s.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(snap, nil)

		err := uc.UpdateMenuItem(s.ctx, itemID, commands.UpdateMenuItemRequest{Name: &blank})
		s.ErrorIs(err, menu.ErrEmptyName)
	})

	s.Run("missing item", func() {
		s.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(nil, notFound())

		s.ErrorIs(uc.UpdateMenuItem(s.ctx, itemID, commands.UpdateMenuItemRequest{}), commands.ErrMenuItemNotFound)
	})
}

// =============================================================================
// Promotion
// =============================================================================

func validPromotionInput() commands.PromotionInput {
	return commands.PromotionInput{
		Title:         "Happy hour",
		StartTime:     now.Add(time.Hour),
		EndTime:       now.Add(3 * time.Hour),
		DiscountType:  "percentage",
		DiscountValue: 20,
		IsActive:      true,
	}
}

func (s *CommandsTestSuite) TestCreatePromotion() {
	storeID := uuid.New()
	uc := commands.NewPromotionUseCase(s.uow, s.publisher, s.clock)

	s.Run("success", func() {
		createdID := uuid.New()
		s.promotions.EXPECT().Create(gomock.Any(), s.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *promotion.Promotion) (uuid.UUID, error) {
				s.Equal(storeID, p.StoreID())
				s.Equal(promotion.DiscountPercentage, p.Discount().Kind())
				return createdID, nil
			})
		s.expectSignal(change.PromotionUpdate, storeID)

		res, err := uc.CreatePromotion(s.ctx, storeID, validPromotionInput())
		s.Require().NoError(err)
		s.Equal(createdID, res.PromotionID)
	})

	s.Run("end before start is rejected", func() {
		in := validPromotionInput()
		in.EndTime = in.StartTime.Add(-time.Minute)

		_, err := uc.CreatePromotion(s.ctx, storeID, in)
		s.ErrorIs(err, promotion.ErrInvalidWindow)
	})

	s.Run("unknown store", func() {
		fk := infra.WrapRepoErr("fk", errors.New("fk"), infra.KindForeignKeyViolated)
		s.promotions.EXPECT().Create(gomock.Any(), s.db, gomock.Any()).Return(uuid.Nil, fk)

		_, err := uc.CreatePromotion(s.ctx, storeID, validPromotionInput())
		s.True(errs.Is(err, commands.ErrUnknownReference))
	})
}

func (s *CommandsTestSuite) TestUpdateAndDeletePromotion() {
	promotionID, storeID := uuid.New(), uuid.New()
	uc := commands.NewPromotionUseCase(s.uow, s.publisher, s.clock)

	s.Run("update keeps the owning store", func() {
		s.reads.EXPECT().PromotionByID(gomock.Any(), promotionID).
			Return(&shared.PromotionSnapshot{ID: promotionID, StoreID: storeID}, nil)
		s.promotions.EXPECT().Update(gomock.Any(), s.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *promotion.Promotion) error {
				s.Equal(promotionID, p.ID())
				s.Equal(storeID, p.StoreID())
				return nil
			})
		s.expectSignal(change.PromotionUpdate, storeID)

		s.NoError(uc.UpdatePromotion(s.ctx, promotionID, validPromotionInput()))
	})

	s.Run("update of a missing promotion", func() {
		s.reads.EXPECT().PromotionByID(gomock.Any(), promotionID).Return(nil, notFound())

		s.ErrorIs(uc.UpdatePromotion(s.ctx, promotionID, validPromotionInput()), commands.ErrPromotionNotFound)
	})

	s.Run("delete publishes for the store it belonged to", func() {
		s.promotions.EXPECT().Delete(gomock.Any(), s.db, promotionID).Return(storeID, nil)
		s.expectSignal(change.PromotionUpdate, storeID)

		s.NoError(uc.DeletePromotion(s.ctx, promotionID))
	})

	s.Run("delete of a missing promotion", func() {
		s.promotions.EXPECT().Delete(gomock.Any(), s.db, promotionID).Return(uuid.Nil, notFound())

		s.ErrorIs(uc.DeletePromotion(s.ctx, promotionID), commands.ErrPromotionNotFound)
	})
}

// =============================================================================
// Store
// =============================================================================

func (s *CommandsTestSuite) TestUpdateStore() {
	storeID := uuid.New()
	uc := commands.NewStoreUseCase(s.uow, s.publisher, s.clock)
	snap := &shared.StoreSnapshot{ID: storeID, Name: "Noodle Bar", IsActive: true}

	s.Run("deactivating a store publishes store_update", func() {
		off := false
		s.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(snap, nil)
		s.stores.EXPECT().Update(gomock.Any(), s.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, st *store.Store) error {
				s.False(st.IsActive())
				s.Equal("Noodle Bar", st.Name())
				return nil
			})
		s.expectSignal(change.StoreUpdate, storeID)

		s.NoError(uc.UpdateStore(s.ctx, storeID, commands.UpdateStoreRequest{IsActive: &off}))
	})

	s.Run("default playlist of another store is rejected", func() {
		playlistID := uuid.New()
		s.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(snap, nil)
		s.reads.EXPECT().PlaylistByID(gomock.Any(), playlistID).
			Return(&shared.PlaylistSnapshot{ID: playlistID, StoreID: uuid.New()}, nil)

		err := uc.UpdateStore(s.ctx, storeID, commands.UpdateStoreRequest{DefaultPlaylistID: &playlistID})
		s.ErrorIs(err, commands.ErrPlaylistNotFound)
	})

	s.Run("bad logo url", func() {
		logo := "ftp://example.com/logo.png"
		s.reads.EXPECT().StoreByID(gomock.Any(), storeID).Return(snap, nil)

		err := uc.UpdateStore(s.ctx, storeID, commands.UpdateStoreRequest{LogoURL: &logo})
		s.ErrorIs(err, store.ErrInvalidLogo)
	})
}

// =============================================================================
// Playlist
// =============================================================================

func (s *CommandsTestSuite) TestPlaylistCommands() {
	storeID, playlistID := uuid.New(), uuid.New()
	uc := commands.NewPlaylistUseCase(s.uow, s.publisher, s.clock)
	in := commands.PlaylistInput{
		Name:   "Lunch",
		Slides: []commands.SlideInput{{Label: "Mains"}, {Label: "Drinks", DurationSec: 15}},
	}

	s.Run("create applies slide defaults", func() {
		s.playlists.EXPECT().Create(gomock.Any(), s.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *playlist.Playlist) (uuid.UUID, error) {
				slides := p.Slides()
				s.Require().Len(slides, 2)
				s.Equal(playlist.DefaultSlideDurationSec, slides[0].DurationSec)
				s.Equal(15, slides[1].DurationSec)
				return p.ID(), nil
			})
		s.expectSignal(change.StoreUpdate, storeID)

		res, err := uc.CreatePlaylist(s.ctx, storeID, in)
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, res.PlaylistID)
	})

	s.Run("slide duration out of range", func() {
		bad := commands.PlaylistInput{Name: "Bad", Slides: []commands.SlideInput{{DurationSec: 1}}}
		_, err := uc.CreatePlaylist(s.ctx, storeID, bad)
		s.ErrorIs(err, playlist.ErrSlideDuration)
	})

	s.Run("update", func() {
		s.reads.EXPECT().PlaylistByID(gomock.Any(), playlistID).
			Return(&shared.PlaylistSnapshot{ID: playlistID, StoreID: storeID}, nil)
		s.playlists.EXPECT().Update(gomock.Any(), s.db, gomock.Any()).Return(nil)
		s.expectSignal(change.StoreUpdate, storeID)

		s.NoError(uc.UpdatePlaylist(s.ctx, playlistID, in))
	})

	s.Run("delete of a missing playlist", func() {
		s.playlists.EXPECT().Delete(gomock.Any(), s.db, playlistID).Return(uuid.Nil, notFound())

		s.ErrorIs(uc.DeletePlaylist(s.ctx, playlistID), commands.ErrPlaylistNotFound)
	})
}

func TestTranslateKeepsUnknownErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	boom := errors.New("boom")
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(boom)

	uc := commands.NewPromotionUseCase(uow, sharedmock.NewMockChangePublisher(ctrl), clock.NewMockClock(now))
	err := uc.DeletePromotion(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
