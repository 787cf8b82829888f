package main

import (
	"context"
	"countdown/internal/domains/countdown/model/dto"
	"countdown/internal/domains/countdown/service"
	"countdown/shared/clock"
	"countdown/shared/constant"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var unitLabels = [4]string{"Días", "Horas", "Minutos", "Segundos"}

type display struct {
	out    io.Writer
	units  [4]*color.Color
	title  *color.Color
	muted  *color.Color
	banner *color.Color
}

func newDisplay(out io.Writer) *display {
	return &display{
		out: out,
		units: [4]*color.Color{
			color.New(color.FgBlue, color.Bold),
			color.New(color.FgCyan, color.Bold),
			color.New(color.FgYellow, color.Bold),
			color.New(color.FgRed, color.Bold),
		},
		title:  color.New(color.Bold),
		muted:  color.New(color.FgHiBlack),
		banner: color.New(color.FgGreen, color.Bold),
	}
}

// run renders one line per tick until the countdown completes or ctx is
// cancelled. The countdown is stopped on every exit path.
func (d *display) run(ctx context.Context, svc service.Countdown, clk clock.Clock) error {
	defer svc.Stop(context.Background())

	res, err := svc.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read countdown: %w", err)
	}

	d.header(res)

	if d.tick(res) {
		return nil
	}

	ticks := make(chan struct{}, 1)
	timer := clk.Every(constant.TickInterval, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(d.out)

			return nil
		case <-ticks:
			res, err = svc.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("failed to read countdown: %w", err)
			}

			if d.tick(res) {
				return nil
			}
		}
	}
}

func (d *display) header(res dto.CountdownResponse) {
	d.title.Fprintln(d.out, res.Title)
	d.muted.Fprintf(d.out, "Objetivo: %s (Hora de México)\n", res.Target)
}

// tick prints the snapshot and reports whether the countdown is over.
func (d *display) tick(res dto.CountdownResponse) bool {
	if res.Completed {
		d.banner.Fprintln(d.out, "🎉 ¡Tiempo completado!")
		fmt.Fprintln(d.out, "¡La cuenta regresiva ha terminado!")

		return true
	}

	for i, value := range res.Units() {
		fmt.Fprintf(d.out, "%s %s  ", d.units[i].Sprint(value), unitLabels[i])
	}

	d.muted.Fprintf(d.out, "| Tiempo actual en México: %s\n", res.Now)

	return false
}
