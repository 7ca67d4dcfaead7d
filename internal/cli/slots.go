package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/bootstrap"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/commitments"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

// SlotsCmd печатает свободные слоты услуги на дату
type SlotsCmd struct {
	Remote

	Service string `help:"Service ID." required:""`
	Date    string `help:"Local date, YYYY-MM-DD." required:""`
	Purpose string `help:"Slot purpose." enum:"booking,evaluation" default:"booking"`
	Now     string `help:"Pretend the current instant is this RFC3339 time (local mode only)."`
}

type fixedNow time.Time

func (n fixedNow) Now() time.Time { return time.Time(n) }

func (cmd *SlotsCmd) Run(c *Context) error {
	ctx := context.Background()

	if cmd.Server != "" {
		if cmd.Now != "" {
			return errors.New("--now is not supported with --server")
		}
		resp, err := cmd.client(c.Log).GetAvailableSlots(ctx, cmd.Service, cmd.Date, cmd.Purpose)
		if err != nil {
			return err
		}
		c.printSlots(resp.Date, resp.DurationMinutes, resp.Slots)
		return nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	store, err := c.openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	uc := getAvailableSlotsUC.NewUseCase(
		bootstrap.NewCatalog(cfg, c.Log),
		commitments.NewLoader(store.Bookings, store.Evaluations),
		metrics.NewRecorder(nil),
		c.Log,
	)
	if cmd.Now != "" {
		now, err := time.Parse(time.RFC3339, cmd.Now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		uc.WithTimeProvider(fixedNow(now))
	}

	resp, err := uc.Execute(ctx, &getAvailableSlotsUC.Request{
		ServiceID: cmd.Service,
		Date:      cmd.Date,
		Purpose:   getAvailableSlotsUC.Purpose(cmd.Purpose),
	})
	if err != nil {
		return err
	}
	c.printSlots(resp.Date, resp.DurationMinutes, resp.Slots)
	return nil
}

func (c *Context) printSlots(date string, duration int, slots []string) {
	if len(slots) == 0 {
		c.printf("%s: no slots available\n", date)
		return
	}
	c.printf("%s (%d min): %s\n", date, duration, strings.Join(slots, " "))
}
