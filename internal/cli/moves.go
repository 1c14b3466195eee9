package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the move definitions",
	Long: `List every predefined move with its tables. For each slot the CP/EP
entry is the slot the piece comes from and the CO/EO entry is the twist or
flip it picks up on the way.`,
	Args: cobra.NoArgs,
	RunE: runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

func runMoves(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, m := range cubiecube.Moves() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, titleStyle.Render(m.Name()))
		// Applied to the solved state, a move yields its own tables.
		fmt.Fprintln(out, cubiecube.Apply(cubiecube.Identity(), m))
	}
	return nil
}
