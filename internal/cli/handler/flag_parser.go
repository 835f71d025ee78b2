// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/spf13/cobra"
)

// FlagParser provides common flag extraction patterns.
// Bad values come back as *cli.UsageError or a models validation error so
// they map to the right exit code.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a positive id from an int flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, cli.Usagef("--%s must be greater than 0", flagName)
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Usagef("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	return strings.TrimSpace(value), err
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseRole extracts a role flag
func (p *FlagParser) ParseRole(flagName string) (models.Role, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return cli.ParseRole(value)
}

// ParseStatus extracts a project status in the edit vocabulary
func (p *FlagParser) ParseStatus(flagName string) (models.ProjectStatus, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return cli.ParseEditStatus(value)
}

// ParseField extracts an editable user field
func (p *FlagParser) ParseField(flagName string) (models.UserField, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return cli.ParseUserField(value)
}

// ParseRating extracts a 1..5 rating
func (p *FlagParser) ParseRating(flagName string) (int, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return 0, err
	}
	return cli.ParseRating(value)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool(cli.FlagJSON)
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool(cli.FlagQuiet)
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
