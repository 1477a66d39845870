// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package between implements the "between" command.
package between

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/spf13/pflag"
)

// dateFlagName is the flag name for the date to test.
const dateFlagName = "date"

// fromFlagName is the flag name for the interval start.
const fromFlagName = "from"

// toFlagName is the flag name for the interval end.
const toFlagName = "to"

// NewCommand returns a new between command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Test whether a date lies within an inclusive interval",
		Long: `Test whether a date lies within an inclusive interval.

Both endpoints are part of the interval. If --to is before --from, the bounds
are swapped before testing. Prints true or false.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Date is the date to test (Y-MM-DD).
	Date string
	// From is the interval start (Y-MM-DD).
	From string
	// To is the interval end (Y-MM-DD).
	To string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, dateFlagName, "", "The date to test (Y-MM-DD)")
	flagSet.StringVar(&f.From, fromFlagName, "", "The interval start (Y-MM-DD)")
	flagSet.StringVar(&f.To, toFlagName, "", "The interval end (Y-MM-DD)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	date, err := datectlcmd.ParseDateFlag(dateFlagName, flags.Date)
	if err != nil {
		return err
	}
	from, err := datectlcmd.ParseDateFlag(fromFlagName, flags.From)
	if err != nil {
		return err
	}
	to, err := datectlcmd.ParseDateFlag(toFlagName, flags.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%t\n", date.Between(from, to))
	return err
}
