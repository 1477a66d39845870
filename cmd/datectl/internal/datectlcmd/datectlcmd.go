// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datectlcmd provides shared wiring for datectl commands
// (resolving the config directory, parsing date flags).
package datectlcmd

import (
	"log/slog"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datectl/internal/standard/xos"
	"github.com/bufdev/datectl/internal/standard/xtime"
)

// DirFlagName is the flag name for overriding the config directory.
const DirFlagName = "dir"

// FormatFlagName is the flag name for the output format.
const FormatFlagName = "format"

// FallbackFlagName is the flag name for a fallback date used when parsing fails.
const FallbackFlagName = "fallback"

// ResolveConfigDirPath returns the config directory to use: the --dir flag
// value with a leading ~ expanded when set, otherwise the appext container's
// config directory.
func ResolveConfigDirPath(container appext.Container, dirFlagValue string) (string, error) {
	if dirFlagValue == "" {
		return container.ConfigDirPath(), nil
	}
	return xos.ExpandHome(dirFlagValue)
}

// ParseDateFlag parses a date flag value in ISO form, returning an
// invalid-argument error naming the flag on failure.
func ParseDateFlag(flagName string, value string) (xtime.Date, error) {
	if value == "" {
		return xtime.Date{}, appcmd.NewInvalidArgumentErrorf("--%s is required", flagName)
	}
	date, err := xtime.ParseDate(value)
	if err != nil {
		return xtime.Date{}, appcmd.NewInvalidArgumentErrorf("invalid --%s date: %v", flagName, err)
	}
	return date, nil
}

// ParseDateFlagOr parses a date flag value like ParseDateFlag, but when a
// fallback date is supplied, any parse failure resolves to the fallback
// instead of an error. The fallback itself must be a well-formed date. A
// warning is logged when the fallback is applied.
func ParseDateFlagOr(container appext.Container, flagName string, value string, fallbackValue string) (xtime.Date, error) {
	return parseDateFlagOr(container.Logger(), flagName, value, fallbackValue)
}

func parseDateFlagOr(logger *slog.Logger, flagName string, value string, fallbackValue string) (xtime.Date, error) {
	if fallbackValue == "" {
		return ParseDateFlag(flagName, value)
	}
	fallback, err := xtime.ParseDate(fallbackValue)
	if err != nil {
		return xtime.Date{}, appcmd.NewInvalidArgumentErrorf("invalid --%s date: %v", FallbackFlagName, err)
	}
	if value == "" {
		return xtime.Date{}, appcmd.NewInvalidArgumentErrorf("--%s is required", flagName)
	}
	date, err := xtime.ParseDate(value)
	if err != nil {
		logger.Warn(
			"date did not parse, using fallback",
			"flag", flagName,
			"input", value,
			"fallback", fallback.String(),
		)
		return fallback, nil
	}
	return date, nil
}
