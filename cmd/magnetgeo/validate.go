package main

import (
	"fmt"

	"github.com/spf13/cobra"

	magnetgeo "github.com/Trophime/magnetgeo-claude"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Parse and validate geometry documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			v, err := magnetgeo.Load(path)
			if err != nil {
				fmt.Printf("%s: FAIL %v\n", path, err)
				failed++
				continue
			}
			fmt.Printf("%s: OK (%T)\n", path, v)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
