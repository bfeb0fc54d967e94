package cmd

import (
	"puzzlekit/internal/puzzle/service"

	"github.com/spf13/cobra"
)

var deletionsInput string

var DeletionsCmd = &cobra.Command{
	Use:   "deletions",
	Short: "count removable digits that keep divisibility by three",
	Long: `Read a case count T followed by T digit strings. For each string print the
largest number of digits that can be removed, keeping at least one, so that the
remaining number is divisible by three.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := currentApp()
		if err != nil {
			return err
		}

		in, err := openInput(cmd, deletionsInput)
		if err != nil {
			return err
		}
		defer in.Close()

		log.Debugf("solving deletions from %s", deletionsInput)

		sink := service.NewLineSink(cmd.OutOrStdout())
		// 出错前已计算的结果仍然输出
		solveErr := appInstance.SolverService.SolveDeletions(cmd.Context(), in, sink)
		if err := sink.Flush(); err != nil && solveErr == nil {
			return err
		}
		return solveErr
	},
}

func init() {
	RootCmd.AddCommand(DeletionsCmd)

	DeletionsCmd.Flags().StringVarP(&deletionsInput, "input", "i", "-", "input file, - for standard input")
}
