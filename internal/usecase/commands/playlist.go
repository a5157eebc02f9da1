package commands

import (
	"context"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlideInput struct {
	Label       string
	DurationSec int
	Layout      layout.Config
	ItemIDs     []uuid.UUID
	ItemStyles  layout.ItemStyles
}

type PlaylistInput struct {
	Name   string
	Slides []SlideInput
}

type CreatePlaylistResult struct {
	PlaylistID uuid.UUID
}

//go:generate mockgen -source=playlist.go -destination=../../../tests/mock/commands/playlist_mock.go -package=commandsmock

type PlaylistCommands interface {
	CreatePlaylist(ctx context.Context, storeID uuid.UUID, in PlaylistInput) (*CreatePlaylistResult, error)
	UpdatePlaylist(ctx context.Context, playlistID uuid.UUID, in PlaylistInput) error
	DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error
}

type playlistUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.ChangePublisher
	clock     clock.Clock
}

func NewPlaylistUseCase(uow shared.UnitOfWork, publisher shared.ChangePublisher, clk clock.Clock) PlaylistCommands {
	return &playlistUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func buildPlaylist(id, storeID uuid.UUID, in PlaylistInput) (*playlist.Playlist, error) {
	slides := make([]playlist.Slide, 0, len(in.Slides))
	for _, s := range in.Slides {
		slide, err := playlist.NewSlide(s.Label, s.DurationSec, s.Layout, s.ItemIDs, s.ItemStyles)
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	return playlist.NewPlaylist(id, storeID, in.Name, slides)
}

func (uc *playlistUseCaseImpl) CreatePlaylist(ctx context.Context, storeID uuid.UUID, in PlaylistInput) (*CreatePlaylistResult, error) {
	p, err := buildPlaylist(uuid.New(), storeID, in)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Playlists().Create(ctx, tx.DB(), p)
		if derr != nil {
			return translate(derr, ErrStoreNotFound)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.StoreUpdate, storeID, uc.clock.Now()))
	return &CreatePlaylistResult{PlaylistID: createdID}, nil
}

func (uc *playlistUseCaseImpl) UpdatePlaylist(ctx context.Context, playlistID uuid.UUID, in PlaylistInput) error {
	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PlaylistByID(ctx, playlistID)
		if derr != nil {
			return translate(derr, ErrPlaylistNotFound)
		}
		p, derr := buildPlaylist(snap.ID, snap.StoreID, in)
		if derr != nil {
			return derr
		}
		if derr = tx.Playlists().Update(ctx, tx.DB(), p); derr != nil {
			return translate(derr, ErrPlaylistNotFound)
		}
		storeID = snap.StoreID
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.StoreUpdate, storeID, uc.clock.Now()))
	return nil
}

func (uc *playlistUseCaseImpl) DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error {
	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Playlists().Delete(ctx, tx.DB(), playlistID)
		if derr != nil {
			return translate(derr, ErrPlaylistNotFound)
		}
		storeID = id
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.StoreUpdate, storeID, uc.clock.Now()))
	return nil
}
