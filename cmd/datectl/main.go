// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/add"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/between"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/config"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/diff"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/seq"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/today"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/validate"
	"github.com/bufdev/datectl/cmd/datectl/internal/command/weekday"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("datectl"))
}

// newRootCommand creates the root datectl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Calendar date arithmetic, validation, and conversion",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			today.NewCommand("today", builder),
			add.NewCommand("add", builder),
			diff.NewCommand("diff", builder),
			weekday.NewCommand("weekday", builder),
			validate.NewCommand("validate", builder),
			between.NewCommand("between", builder),
			seq.NewCommand("seq", builder),
			config.NewCommand("config", builder),
		},
	}
}
