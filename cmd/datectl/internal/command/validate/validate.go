// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package validate implements the "validate" command.
package validate

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// dateFlagName is the flag name for the date.
const dateFlagName = "date"

// NewCommand returns a new validate command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate a date and print its normalized form",
		Long: `Validate a date and print its normalized form.

The input must be three dash-separated integers forming a real calendar date.
On success, the normalized Y-MM-DD form is printed and the exit code is zero.
On failure, the parse error is printed and the exit code is non-zero.`,
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
	// Date is the date to validate (Y-MM-DD).
	Date string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, dateFlagName, "", "The date to validate (Y-MM-DD)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.Date == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", dateFlagName)
	}
	// The parse error carries the offending token and input, return it as-is.
	date, err := xtime.ParseDate(flags.Date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", date)
	return err
}
