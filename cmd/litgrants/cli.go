package main

import (
	"context"
	"io"
	"time"

	litcontest "github.com/kytalli/lit-contest"
	"github.com/kytalli/lit-contest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Grants litcontest.GrantService
	Genres litcontest.GenreService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl the listing site and persist new grants"`
	Dump   DumpCmd   `cmd:"" help:"Print stored grants with their genres"`
	Genres GenresCmd `cmd:"" help:"List the genre vocabulary"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	BaseURL   string        `default:"https://www.pw.org/grants" help:"Listing URL to crawl"`
	MaxPages  int           `default:"1000" help:"Safety bound on pages fetched in one run"`
	RPS       float64       `name:"rps" default:"1" help:"Politeness limit in requests per second (0 disables)"`
	Timeout   time.Duration `default:"10s" help:"Per-request timeout"`
	UserAgent string        `help:"Override the User-Agent header"`
	Verbose   bool          `short:"v" help:"Log per-record detail"`
}

// DumpCmd is the "dump" subcommand.
type DumpCmd struct {
	Issuer string `help:"Only grants from this issuer"`
	Genre  string `help:"Only grants linked to this genre"`
	Limit  int    `help:"Maximum number of grants to print"`
}

// GenresCmd is the "genres" subcommand.
type GenresCmd struct{}
