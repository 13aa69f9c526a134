package main

import (
	"fmt"

	litcontest "github.com/kytalli/lit-contest"
)

// Run executes the genres command.
func (c *GenresCmd) Run(deps *Dependencies) error {
	genres, err := deps.Genres.FindGenres(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litcontest.ErrorMessage(err))
		return err
	}

	if len(genres) == 0 {
		fmt.Fprintln(deps.Stdout, "No genres registered yet.")
		return nil
	}

	for _, genre := range genres {
		fmt.Fprintf(deps.Stdout, "%d\t%s\n", genre.ID, genre.Name)
	}

	return nil
}
