// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/bufdev/datectl/internal/datectl/datectlconfig"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config validate command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate the configuration file",
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
	// Dir overrides the config directory.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, datectlcmd.DirFlagName, "", "The directory containing config.yaml")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	configDirPath, err := datectlcmd.ResolveConfigDirPath(container, flags.Dir)
	if err != nil {
		return err
	}
	if err := datectlconfig.ValidateConfig(configDirPath); err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s is valid\n", datectlconfig.ConfigFilePath(configDirPath))
	return err
}
