package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_simulation/internal/domain"
)

const DefaultDays = 5

type Driver struct {
	facade     *Facade
	out        domain.Console
	rec        domain.Recorder
	days       int
	deliveries bool
}

// NewDriver returns a driver for days days; days <= 0 means DefaultDays.
func NewDriver(f *Facade, out domain.Console, rec domain.Recorder, days int, deliveries bool) *Driver {
	if days <= 0 {
		days = DefaultDays
	}
	return &Driver{facade: f, out: out, rec: rec, days: days, deliveries: deliveries}
}

// Run opens the hotel once, then prints "Day N", the day and a blank line
// for each day. Cancelling ctx stops before the next day starts.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.facade.OpenHotel(); err != nil {
		return fmt.Errorf("open hotel: %w", err)
	}
	for i := 1; i <= d.days; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("day", i).Err(err).Msg("simulation interrupted")
			return err
		}
		log.Debug().Int("day", i).Msg("day started")

		if err := d.out.Println(fmt.Sprintf("Day %d", i)); err != nil {
			return err
		}
		if d.deliveries {
			if err := d.facade.ReceiveSupplies(); err != nil {
				return fmt.Errorf("day %d deliveries: %w", i, err)
			}
		}
		if err := d.facade.SimulateDay(); err != nil {
			return fmt.Errorf("day %d: %w", i, err)
		}
		if err := d.out.Println(""); err != nil {
			return err
		}

		if d.rec != nil {
			d.rec.DaySimulated()
		}
		log.Debug().Int("day", i).Msg("day finished")
	}
	return nil
}
