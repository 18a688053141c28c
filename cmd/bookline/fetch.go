package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/bookline/pkg/fetch"
)

func newFetchCmd() *cobra.Command {
	var maxLen int

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a page and print its visible text",
		Long: `Fetches a URL over plain HTTP and prints the visible text content,
useful for checking what a venue page says about reservations without
spinning up a browser session.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := fetch.Extract(context.Background(), args[0], maxLen)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxLen, "max-length", fetch.DefaultMaxLength, "truncate output to this many characters")

	return cmd
}
