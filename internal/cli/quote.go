package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipquote/internal/prompt"
	"github.com/mesh-intelligence/shipquote/internal/rating"
	"github.com/mesh-intelligence/shipquote/pkg/types"
)

// Prompt and output lines for the quote flow. The rejection reasons live
// with the gates in internal/rating; everything here is boundary wording.
const (
	lineWelcome = "Welcome to Package Express. Please enter the weight of your package."
	lineWidth   = "Please enter the width of your package."
	lineHeight  = "Please enter the height of your package."
	lineLength  = "Please enter the length of your package."
	lineThanks  = "Thank you for using Package Express. Have a good day."

	totalFormat = "Your estimated total for shipping this package is: %s\n"
)

// valueFlagNames are the four input flags that switch quote into
// non-interactive mode. Providing any of them requires all of them.
var valueFlagNames = []string{"weight", "width", "height", "length"}

// receipt is the JSON form of one quote run.
type receipt struct {
	Eligible  bool   `json:"eligible"`
	Reason    string `json:"reason,omitempty"`
	Total     string `json:"total,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func newQuoteCmd() *cobra.Command {
	var weight, width, height, length float64

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a Package Express shipping quote",
		Long: "Quote validates one package against the Package Express weight and\n" +
			"size limits and prices it. With no value flags it prompts for the four\n" +
			"inputs one line at a time; with --weight, --width, --height, and\n" +
			"--length it quotes non-interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := loadPolicy()
			if err != nil {
				return err
			}
			processor := rating.NewProcessor(policy)

			if anyValueFlagSet(cmd) {
				if err := requireAllValueFlags(cmd); err != nil {
					return err
				}
				dims := types.Dimensions{
					Width:  types.Measurement(width),
					Height: types.Measurement(height),
					Length: types.Measurement(length),
				}
				outcome := processor.Evaluate(dims, types.Measurement(weight))
				if !outcome.Result.Eligible {
					return writeRejection(cmd, outcome.Result)
				}
				return writeQuote(cmd, policy, outcome.Quote)
			}

			return runInteractive(cmd, policy, processor)
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "package weight")
	cmd.Flags().Float64Var(&width, "width", 0, "package width")
	cmd.Flags().Float64Var(&height, "height", 0, "package height")
	cmd.Flags().Float64Var(&length, "length", 0, "package length")

	return cmd
}

// runInteractive drives the prompt/check sequence in input order: weight
// first, the weight gate, then the three dimensions and the size gate over
// their sum, then pricing. Each rejection halts the run before the next
// prompt is ever printed.
func runInteractive(cmd *cobra.Command, policy types.Policy, processor *rating.Processor) error {
	in := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	weight, err := in.Measurement(lineWelcome, "weight")
	if err != nil {
		return writeInputError(cmd, err)
	}
	if res := processor.CheckWeight(weight); !res.Eligible {
		return writeRejection(cmd, res)
	}

	width, err := in.Measurement(lineWidth, "width")
	if err != nil {
		return writeInputError(cmd, err)
	}
	height, err := in.Measurement(lineHeight, "height")
	if err != nil {
		return writeInputError(cmd, err)
	}
	length, err := in.Measurement(lineLength, "length")
	if err != nil {
		return writeInputError(cmd, err)
	}

	dims := types.Dimensions{Width: width, Height: height, Length: length}
	if res := processor.CheckSize(dims.TotalSize()); !res.Eligible {
		return writeRejection(cmd, res)
	}

	return writeQuote(cmd, policy, processor.Price(dims, weight))
}

// anyValueFlagSet reports whether at least one of the four input flags was
// provided.
func anyValueFlagSet(cmd *cobra.Command) bool {
	for _, name := range valueFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// requireAllValueFlags rejects partial flag input; quoting from flags
// needs all four values.
func requireAllValueFlags(cmd *cobra.Command) error {
	for _, name := range valueFlagNames {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("flag --%s is required when quoting from flags", name)
		}
	}
	return nil
}

// writeInputError reports a malformed numeric input and ends the run
// normally. Any other read failure is an unanticipated fault and
// propagates to the root.
func writeInputError(cmd *cobra.Command, err error) error {
	var invalid *prompt.InvalidInputError
	if errors.As(err, &invalid) {
		fmt.Fprintln(cmd.OutOrStdout(), invalid.Error())
		return nil
	}
	return err
}

// writeRejection prints the fixed rejection reason. The run ends normally;
// a rejection is an outcome, not an error.
func writeRejection(cmd *cobra.Command, res types.EligibilityResult) error {
	if flags.jsonMode {
		return writeJSON(cmd, receipt{Reason: res.Reason})
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Reason)
	return nil
}

// writeQuote prints the priced receipt with a fresh reference ID.
func writeQuote(cmd *cobra.Command, policy types.Policy, quote types.Quote) error {
	reference := uuid.NewString()

	if flags.jsonMode {
		return writeJSON(cmd, receipt{
			Eligible:  true,
			Total:     quote.Rounded().StringFixed(2),
			Currency:  policy.Currency,
			Reference: reference,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, totalFormat, quote.Display(policy.Currency))
	fmt.Fprintf(out, "Quote reference: %s\n", reference)
	fmt.Fprintln(out, lineThanks)
	return nil
}

func writeJSON(cmd *cobra.Command, r receipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
