// Package cli команды slotctl.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/bootstrap"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/schedulingapi"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

// Context общее окружение команд
type Context struct {
	ConfigPath string
	Out        io.Writer
	Log        *logger.Logger
}

// Remote параметры режима работы через HTTP API
type Remote struct {
	Server  string        `help:"Base URL of a running scheduling service; local storage is used when empty." env:"SLOTCTL_SERVER"`
	Timeout time.Duration `help:"HTTP timeout for --server mode." default:"5s"`
}

func (r Remote) client(log *logger.Logger) *schedulingapi.Client {
	return schedulingapi.NewClient(r.Server, r.Timeout, log)
}

func (c *Context) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStorage открывает хранилище без метрик и доводит схему до актуальной
func (c *Context) openStorage(ctx context.Context, cfg *config.Config) (*bootstrap.Storage, error) {
	store, err := bootstrap.OpenStorage(ctx, cfg, nil, c.Log)
	if err != nil {
		return nil, err
	}
	if _, err := store.Migrate(ctx, c.Log); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func (c *Context) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.Out, format, v...)
}
