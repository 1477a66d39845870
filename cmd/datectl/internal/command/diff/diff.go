// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package diff implements the "diff" command.
package diff

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/spf13/pflag"
)

// fromFlagName is the flag name for the start date.
const fromFlagName = "from"

// toFlagName is the flag name for the end date.
const toFlagName = "to"

// NewCommand returns a new diff command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the signed number of days between two dates",
		Long: `Print the signed number of days between two dates.

The result is positive when --to is later than --from, negative when earlier,
and zero when they are the same date.`,
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
	// From is the start date (Y-MM-DD).
	From string
	// To is the end date (Y-MM-DD).
	To string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.From, fromFlagName, "", "The start date (Y-MM-DD)")
	flagSet.StringVar(&f.To, toFlagName, "", "The end date (Y-MM-DD)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	from, err := datectlcmd.ParseDateFlag(fromFlagName, flags.From)
	if err != nil {
		return err
	}
	to, err := datectlcmd.ParseDateFlag(toFlagName, flags.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%d\n", from.DaysUntil(to))
	return err
}
