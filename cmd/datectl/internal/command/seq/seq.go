// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package seq implements the "seq" command.
package seq

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/cmd/datectl/internal/datectlcmd"
	"github.com/bufdev/datectl/internal/datectl/datectlconfig"
	"github.com/bufdev/datectl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// fromFlagName is the flag name for the sequence start.
const fromFlagName = "from"

// toFlagName is the flag name for the sequence end.
const toFlagName = "to"

// NewCommand returns a new seq command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "List every date in an inclusive range",
		Long: `List every date in an inclusive range, one row per day.

Each row has the date, its day of the week, and its signed day offset from
--from. If --to is before --from, the bounds are swapped.

Without --format, the default output format from the configuration file is
used (table when no configuration file exists).`,
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
	// From is the sequence start (Y-MM-DD).
	From string
	// To is the sequence end (Y-MM-DD).
	To string
	// Format is the output format (table, csv, json).
	Format string
	// Dir overrides the config directory.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.From, fromFlagName, "", "The sequence start (Y-MM-DD)")
	flagSet.StringVar(&f.To, toFlagName, "", "The sequence end (Y-MM-DD)")
	flagSet.StringVar(&f.Format, datectlcmd.FormatFlagName, "", "Output format (table, csv, json)")
	flagSet.StringVar(&f.Dir, datectlcmd.DirFlagName, "", "The directory containing config.yaml")
}

// row is the JSON-serializable form of one day in the sequence.
type row struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Offset  int    `json:"offset"`
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
	format, err := resolveFormat(container, flags)
	if err != nil {
		return err
	}
	// Normalize the bound order, as interval membership does.
	if to.Before(from) {
		from, to = to, from
	}
	rows := make([]row, 0, from.DaysUntil(to)+1)
	for date := from; date.EqualOrBefore(to); date = date.AddDays(1) {
		rows = append(rows, row{
			Date:    date.String(),
			Weekday: date.WeekdayString(),
			Offset:  from.DaysUntil(date),
		})
	}
	writer := container.Stdout()
	switch format {
	case cliio.FormatTable:
		return cliio.WriteTable(writer, headers(), toRecords(rows))
	case cliio.FormatCSV:
		records := make([][]string, 0, len(rows)+1)
		records = append(records, headers())
		records = append(records, toRecords(rows)...)
		return cliio.WriteCSVRecords(writer, records)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, rows...)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", format)
	}
}

// resolveFormat returns the output format from --format, falling back to the
// configuration file default when the flag is unset.
func resolveFormat(container appext.Container, flags *flags) (cliio.Format, error) {
	if flags.Format != "" {
		format, err := cliio.ParseFormat(flags.Format)
		if err != nil {
			return "", appcmd.NewInvalidArgumentError(err.Error())
		}
		return format, nil
	}
	configDirPath, err := datectlcmd.ResolveConfigDirPath(container, flags.Dir)
	if err != nil {
		return "", err
	}
	config, err := datectlconfig.ReadConfig(configDirPath)
	if err != nil {
		return "", err
	}
	container.Logger().Debug("using default format from config", "format", string(config.Format))
	return config.Format, nil
}

func headers() []string {
	return []string{"DATE", "WEEKDAY", "OFFSET"}
}

func toRecords(rows []row) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Date, r.Weekday, strconv.Itoa(r.Offset)})
	}
	return records
}
