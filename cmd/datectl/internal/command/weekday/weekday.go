// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package weekday implements the "weekday" command.
package weekday

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/spf13/pflag"
)

// dateFlagName is the flag name for the date.
const dateFlagName = "date"

// NewCommand returns a new weekday command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the day of the week of a date",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Date is the date (Y-MM-DD).
	Date string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, dateFlagName, "", "The date (Y-MM-DD)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	date, err := datectlcmd.ParseDateFlag(dateFlagName, flags.Date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", date.WeekdayString())
	return err
}
