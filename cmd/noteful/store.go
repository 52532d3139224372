package main

import (
	"context"
	"errors"
	"fmt"

	"noteful/config"
	"noteful/internal/domain"
	"noteful/internal/repository/dynamo"
	"noteful/internal/repository/memory"
	"noteful/internal/repository/postgres"
)

// backend is an opened store with its repositories and maintenance hooks.
type backend struct {
	folders domain.FolderRepository
	tags    domain.TagRepository
	notes   domain.NoteRepository

	migrate func(ctx context.Context, down bool) error
	reset   func(ctx context.Context) error
	close   func() error
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return &backend{
			folders: postgres.NewFolderRepository(db),
			tags:    postgres.NewTagRepository(db),
			notes:   postgres.NewNoteRepository(db),
			migrate: func(_ context.Context, down bool) error { return postgres.Migrate(cfg.DBUrl, down) },
			reset:   func(ctx context.Context) error { return postgres.Truncate(ctx, db) },
			close:   db.Close,
		}, nil

	case config.StoreDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.AWSRegion, cfg.DynamoEndpoint)
		if err != nil {
			return nil, err
		}
		table := dynamo.NewTable(client, cfg.DynamoTable)
		return &backend{
			folders: dynamo.NewFolderRepository(table),
			tags:    dynamo.NewTagRepository(table),
			notes:   dynamo.NewNoteRepository(table),
			migrate: func(ctx context.Context, down bool) error {
				if down {
					return errors.New("migrate down is not supported for dynamodb")
				}
				return table.EnsureTable(ctx)
			},
			reset: table.Reset,
			close: func() error { return nil },
		}, nil

	case config.StoreMemory:
		store := memory.NewStore()
		return &backend{
			folders: memory.NewFolderRepository(store),
			tags:    memory.NewTagRepository(store),
			notes:   memory.NewNoteRepository(store),
			migrate: func(context.Context, bool) error { return nil },
			reset: func(context.Context) error {
				store.Reset()
				return nil
			},
			close: func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
