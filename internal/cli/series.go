package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/m04kA/SMC-SchedulingService/internal/integrations/schedulingapi"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// SeriesCmd печатает сеансы серии по порядку
type SeriesCmd struct {
	Remote

	SeriesID string `arg:"" name:"series-id" help:"Series ID."`
}

func (cmd *SeriesCmd) Run(c *Context) error {
	ctx := context.Background()

	if cmd.Server != "" {
		series, err := cmd.client(c.Log).GetSeries(ctx, cmd.SeriesID)
		if err != nil {
			return err
		}
		return c.printSeries(series)
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

	wh := cfg.WorkingHours.ToDomain()
	loc, err := wh.Location()
	if err != nil {
		return err
	}

	resp, err := bookingsService.NewService(store.Bookings, loc, c.Log).GetSeries(ctx, cmd.SeriesID)
	if err != nil {
		return err
	}
	return c.printSeries(fromSeriesResponse(resp))
}

func fromSeriesResponse(resp *models.SeriesResponse) *schedulingapi.Series {
	out := &schedulingapi.Series{
		SeriesID:      resp.SeriesID,
		TotalSessions: resp.TotalSessions,
		Complete:      resp.Complete,
		Sessions:      make([]schedulingapi.Session, 0, len(resp.Sessions)),
	}
	for _, s := range resp.Sessions {
		out.Sessions = append(out.Sessions, schedulingapi.Session{
			ID:              s.ID,
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			Phone:           s.Phone,
			DateTime:        s.DateTime,
			Date:            s.Date,
			StartTime:       string(s.StartTime),
			EndTime:         string(s.EndTime),
			DurationMinutes: s.DurationMinutes,
			SessionIndex:    s.SessionIndex,
		})
	}
	return out
}

func (c *Context) printSeries(s *schedulingapi.Series) error {
	status := "complete"
	if !s.Complete {
		status = "incomplete"
	}
	c.printf("series %s: %d/%d sessions, %s\n", s.SeriesID, len(s.Sessions), s.TotalSessions, status)

	tw := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)
	for _, sess := range s.Sessions {
		idx := 0
		if sess.SessionIndex != nil {
			idx = *sess.SessionIndex
		}
		fmt.Fprintf(tw, "%d\t%s\t%s-%s\t%s\t%s\n", idx, sess.Date, sess.StartTime, sess.EndTime, sess.Name, sess.ID)
	}
	return tw.Flush()
}
