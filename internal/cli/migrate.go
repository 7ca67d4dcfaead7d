package cli

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/bootstrap"
)

// MigrateCmd применяет недостающие миграции схемы
type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(c *Context) error {
	ctx := context.Background()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	store, err := bootstrap.OpenStorage(ctx, cfg, nil, c.Log)
	if err != nil {
		return err
	}
	defer store.Close()

	applied, err := store.Migrate(ctx, c.Log)
	if err != nil {
		return err
	}
	c.printf("applied %d migration(s) to %s\n", applied, store.Dialect)
	return nil
}
