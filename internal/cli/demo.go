package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration",
	Long: `Print the solved state, apply U and print the result, then run the
T-perm and show how the cube is left after it and after a second T-perm.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s := cubiecube.Identity()
	fmt.Fprintln(out, s)
	s = cubiecube.Apply(s, cubiecube.U)
	fmt.Fprintln(out)
	fmt.Fprintln(out, s)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "T-perm: %s\n", moveStyle.Render(cubiecube.FormatMoves(cubiecube.TPerm)))
	s = cubiecube.Identity().Apply(cubiecube.TPerm...)
	fmt.Fprintln(out, s)
	fmt.Fprintln(out, solvedLine(s))

	s = s.Apply(cubiecube.TPerm...)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "T-perm again:")
	fmt.Fprintln(out, solvedLine(s))

	return nil
}
