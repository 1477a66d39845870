// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package today implements the "today" command.
package today

import (
	"context"
	"fmt"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// utcFlagName is the flag name for reading the date under UTC calendar rules.
const utcFlagName = "utc"

// NewCommand returns a new today command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the current date",
		Long: `Print the current date.

By default the date is read under the host's local calendar rules. With --utc
the same instant is read under UTC calendar rules, which can differ by one
calendar day near local midnight.`,
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
	// UTC reads the current date under UTC calendar rules.
	UTC bool
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&f.UTC, utcFlagName, false, "Read the current date under UTC calendar rules")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	date := xtime.Today()
	if flags.UTC {
		date = xtime.TimeToDateUTC(time.Now())
	}
	_, err := fmt.Fprintf(container.Stdout(), "%s\n", date)
	return err
}
