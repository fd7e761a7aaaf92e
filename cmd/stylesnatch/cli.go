package main

import (
	"context"
	"io"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/Darkmintis/StyleSnatcher/lipgloss"
	"github.com/Darkmintis/StyleSnatcher/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Palettes  stylesnatcher.PaletteService
	Collector stylesnatcher.Collector
	Writer    stylesnatcher.PaletteWriter
	Renderer  *lipgloss.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract a color and font palette from a web page"`
	History HistoryCmd `cmd:"" help:"List saved palettes"`
	Show    ShowCmd    `cmd:"" help:"Show a saved palette"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved palette"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL         string        `arg:"" optional:"" help:"Page URL to extract from"`
	Stdin       bool          `help:"Read style text from standard input instead of fetching a page"`
	Browser     bool          `short:"b" help:"Render the page in a headless browser before scraping"`
	Timeout     time.Duration `default:"10s" help:"Fetch timeout per request"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent stylesheet fetch limit"`
	Save        bool          `short:"s" help:"Save the palette to the local database"`
	CSSVars     bool          `name:"css-vars" help:"Print the palette as CSS custom properties"`
	JSON        bool          `help:"Print the palette as JSON"`
	Out         string        `short:"o" help:"Write a CSS variables file to this directory"`
	Verbose     bool          `short:"v" help:"Log fetch activity"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of palettes to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Palette ID"`
	CSSVars bool   `name:"css-vars" help:"Print the palette as CSS custom properties"`
	JSON    bool   `help:"Print the palette as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Palette ID"`
	Force bool   `help:"Confirm deletion"`
}
