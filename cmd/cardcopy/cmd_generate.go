package main

import (
	"fmt"
	"io"
	"strconv"

	"cardcopy/internal/models"
	"cardcopy/internal/services/generation"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var (
	selection   models.Selection
	copyIndex   int
	historySize int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate four promotional variations for a card",
	Long: `Generate records the selection, requests four variations and stores them.

Example:
  cardcopy generate --card "Millennia" --bank "HDFC Bank" \
    --platform Instagram --audience Students --language English --tone Friendly --copy 1`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate <input-id>",
	Short: "Generate a new batch from a previous input",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegenerate,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation inputs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&selection.CardName, "card", "", "Card name (required)")
	f.StringVar(&selection.BankName, "bank", "", "Issuing bank")
	f.StringVar(&selection.Platform, "platform", "", "Target platform, e.g. Instagram")
	f.StringVar(&selection.Audience, "audience", "", "Target audience, e.g. Students")
	f.StringVar(&selection.Language, "language", "", "Output language (required)")
	f.StringVar(&selection.Tone, "tone", "", "Tone, e.g. Friendly")
	f.StringVar(&selection.CustomPrompt, "prompt", "", "Additional instructions")
	f.IntVar(&copyIndex, "copy", 0, "Copy variation N (1-4) to the clipboard")

	regenerateCmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy variation N (1-4) to the clipboard")
	historyCmd.Flags().IntVar(&historySize, "limit", 10, "Number of inputs to list")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	selection.CardSlug = models.Slugify(selection.CardName)
	result, err := application.Generation.Generate(ctx, selection)
	if err != nil {
		return err
	}
	return showResult(cmd.OutOrStdout(), result, copyIndex)
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid input id %q", args[0])
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	result, err := application.Generation.Regenerate(ctx, id)
	if err != nil {
		return err
	}
	return showResult(cmd.OutOrStdout(), result, copyIndex)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	inputs, total, err := application.Generation.Recent(ctx, historySize, 0)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, in := range inputs {
		fmt.Fprintf(w, "%s  %s  %-30s %s / %s / %s / %s\n",
			in.ID, in.CreatedAt.Format("2006-01-02 15:04"), in.CardName,
			in.Platform, in.Audience, in.Language, in.Tone)
	}
	fmt.Fprintf(w, "%d of %d inputs\n", len(inputs), total)
	return nil
}

func showResult(w io.Writer, result *generation.Result, copyN int) error {
	fmt.Fprintf(w, "Input %s\n\n", result.InputID)
	for i, v := range result.Variations {
		fmt.Fprintf(w, "%d. %s\n\n", i+1, v)
	}
	if copyN == 0 {
		return nil
	}
	copyVariation(w, result.Variations, copyN)
	return nil
}

// copyVariation copies one variation and reports the outcome. A clipboard
// failure is reported, not returned.
func copyVariation(w io.Writer, variations []string, n int) {
	if n < 1 || n > len(variations) {
		fmt.Fprintf(w, "Cannot copy variation %d: choose 1-%d\n", n, len(variations))
		return
	}
	if err := clipboardWriteAll(variations[n-1]); err != nil {
		fmt.Fprintf(w, "Copy failed: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Copied variation "+strconv.Itoa(n)+" to clipboard")
}
