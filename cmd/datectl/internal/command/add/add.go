// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package add implements the "add" command.
package add

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/spf13/pflag"
)

// dateFlagName is the flag name for the start date.
const dateFlagName = "date"

// daysFlagName is the flag name for the signed day offset.
const daysFlagName = "days"

// NewCommand returns a new add command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Add a signed number of days to a date",
		Long: `Add a signed number of days to a date.

A negative --days subtracts. Month and year boundaries roll over, including
leap-year February.

With --fallback, a date that fails to parse is replaced by the fallback date
instead of failing the command.`,
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
	// Date is the start date (Y-MM-DD).
	Date string
	// Days is the signed number of days to add.
	Days int
	// Fallback is the optional fallback date used when --date fails to parse.
	Fallback string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, dateFlagName, "", "The start date (Y-MM-DD)")
	flagSet.IntVar(&f.Days, daysFlagName, 0, "The signed number of days to add")
	flagSet.StringVar(&f.Fallback, datectlcmd.FallbackFlagName, "", "A fallback date used when --date fails to parse (Y-MM-DD)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	date, err := datectlcmd.ParseDateFlagOr(container, dateFlagName, flags.Date, flags.Fallback)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", date.AddDays(flags.Days))
	return err
}
