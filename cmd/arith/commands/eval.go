package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-arith/internal/log"
	"github.com/l3aro/go-arith/pkg/arith"
	"github.com/l3aro/go-arith/pkg/history"
)

// evalResult is the JSON shape emitted by eval --json
type evalResult struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Op     string  `json:"op"`
	Result float64 `json:"result"`
}

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [x] [op] [y]",
	Short: "Evaluate one operation over two operands",
	Long: `Applies a single arithmetic operation to two operands and prints the result.

The operator is one of +, -, *, / ("x" is accepted for "*" to avoid
shell globbing). With --interactive the operands and operator are
collected through a prompt instead of arguments.`,
	Args: cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		precision, _ := cmd.Flags().GetInt("precision")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("precision") {
			precision = cfg.Precision
		}

		var x, y float64
		var op arith.Op

		if interactive {
			x, op, y, err = promptOperation()
		} else {
			x, op, y, err = parseOperation(args)
		}
		if err != nil {
			return err
		}

		result, err := arith.Apply(op, x, y)
		if err != nil {
			return err
		}

		log.Default().Debug("evaluated", "op", string(op), "x", x, "y", y, "result", result)

		if histErr := appendHistory(cfg, history.Record{
			X: x, Y: y, Op: string(op), Result: result, At: time.Now(),
		}); histErr != nil {
			log.Default().Warn("could not record history", "error", histErr)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(evalResult{X: x, Y: y, Op: string(op), Result: result})
		}

		fmt.Printf("%s %s %s = %s\n",
			arith.FormatResult(x, precision), op,
			arith.FormatResult(y, precision),
			arith.FormatResult(result, precision))
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolP("interactive", "i", false, "Prompt for operands and operator")
	evalCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	evalCmd.Flags().Int("precision", -1, "Decimal places for output (-1 for shortest)")
}

// parseOperation converts positional args into an operation.
func parseOperation(args []string) (float64, arith.Op, float64, error) {
	if len(args) != 3 {
		return 0, "", 0, fmt.Errorf("expected <x> <op> <y>, got %d arguments", len(args))
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid operand %q: %w", args[0], err)
	}

	op, err := arith.ParseOp(args[1])
	if err != nil {
		return 0, "", 0, err
	}

	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid operand %q: %w", args[2], err)
	}

	return x, op, y, nil
}

// promptOperation collects an operation interactively.
func promptOperation() (float64, arith.Op, float64, error) {
	xInput := ""
	yInput := ""
	var opChoice string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First operand").
				Placeholder("10").
				Value(&xInput),
			huh.NewSelect[string]().
				Title("Operation").
				Options(
					huh.NewOption("add (+)", "+"),
					huh.NewOption("subtract (-)", "-"),
					huh.NewOption("multiply (*)", "*"),
					huh.NewOption("divide (/)", "/"),
				).
				Value(&opChoice),
			huh.NewInput().
				Title("Second operand").
				Placeholder("5").
				Value(&yInput),
		),
	)
	if err := form.Run(); err != nil {
		return 0, "", 0, fmt.Errorf("interactive prompt failed: %w", err)
	}

	return parseOperation([]string{xInput, opChoice, yInput})
}
