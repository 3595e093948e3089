package cmd

import (
	"fmt"

	"arkdata/core/config"
	"arkdata/core/source"
	"arkdata/core/storage"
)

// newSource builds the configured game data source.
func newSource(cfg *config.Config) (source.Source, error) {
	switch cfg.Source.Mode {
	case "", "local":
		return source.NewLocal(cfg.Source.Dir), nil
	case "remote":
		region, err := source.ParseRegion(cfg.Source.Region)
		if err != nil {
			return nil, err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		return source.NewRemote(client, cfg.Storage.Bucket, region), nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
}
