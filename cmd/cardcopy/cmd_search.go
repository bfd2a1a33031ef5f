package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the card catalog by card or bank name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var refreshCatalog bool

func init() {
	searchCmd.Flags().BoolVar(&refreshCatalog, "refresh", false, "Drop the cached catalog before searching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if refreshCatalog {
		if err := application.Catalog.Refresh(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to refresh catalog cache: %v\n", err)
		}
	}

	query := strings.Join(args, " ")
	cards, err := application.Catalog.Search(ctx, query)
	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogUnavailable) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: card search is temporarily unavailable.")
			return nil
		}
		return err
	}
	printCards(cmd.OutOrStdout(), cards)
	return nil
}

func printCards(w io.Writer, cards []models.CreditCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards found.")
		return
	}
	for _, card := range cards {
		fmt.Fprintf(w, "%-40s %-25s %s\n", card.Name, card.BankName, card.Slug)
	}
}
