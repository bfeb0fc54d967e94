package cmd

import (
	"puzzlekit/internal/puzzle/service"

	"github.com/spf13/cobra"
)

var tripletInput string

var TripletCmd = &cobra.Command{
	Use:   "triplet",
	Short: "classify an integer sequence",
	Long: `Read a length n followed by n integers. Print -1 if the sequence holds a
strictly decreasing triplet, n if it is strictly increasing, and n-1 otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := currentApp()
		if err != nil {
			return err
		}

		in, err := openInput(cmd, tripletInput)
		if err != nil {
			return err
		}
		defer in.Close()

		sink := service.NewLineSink(cmd.OutOrStdout())
		if err := appInstance.SolverService.SolveTriplet(cmd.Context(), in, sink); err != nil {
			return err
		}
		return sink.Flush()
	},
}

func init() {
	RootCmd.AddCommand(TripletCmd)

	TripletCmd.Flags().StringVarP(&tripletInput, "input", "i", "-", "input file, - for standard input")
}
