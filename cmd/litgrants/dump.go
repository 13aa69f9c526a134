package main

import (
	"fmt"
	"strings"

	litcontest "github.com/kytalli/lit-contest"
)

// Run executes the dump command.
func (c *DumpCmd) Run(deps *Dependencies) error {
	filter := litcontest.GrantFilter{Limit: c.Limit}
	if c.Issuer != "" {
		filter.Issuer = &c.Issuer
	}
	if c.Genre != "" {
		filter.Genre = &c.Genre
	}

	grants, err := deps.Grants.FindGrants(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litcontest.ErrorMessage(err))
		return err
	}

	if len(grants) == 0 {
		fmt.Fprintln(deps.Stdout, "No grants stored. Use 'litgrants crawl' to ingest some.")
		return nil
	}

	for _, g := range grants {
		grant := g.Grant
		fmt.Fprintf(deps.Stdout, "#%d  %s by %s (deadline: %s)\n", grant.ID, grant.Title, grant.Issuer, grant.Deadline)
		fmt.Fprintf(deps.Stdout, "    prize: %s  entry fee: %s\n", grant.CashPrize, grant.EntryFee)
		fmt.Fprintf(deps.Stdout, "    genres: %s\n", strings.Join(g.Genres, ", "))
		if grant.Description != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", grant.Description)
		}
		if grant.ReadMoreLink != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", grant.ReadMoreLink)
		}
		if grant.ExtraInfo != nil {
			fmt.Fprintf(deps.Stdout, "    note: %s\n", *grant.ExtraInfo)
		}
	}
	fmt.Fprintf(deps.Stdout, "%d grants\n", len(grants))

	return nil
}
