package main

import (
	"fmt"

	"github.com/spf13/cobra"

	magnetgeo "github.com/Trophime/magnetgeo-claude"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert a geometry document between YAML and JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := magnetgeo.Load(args[0])
		if err != nil {
			return err
		}
		if err := magnetgeo.Save(args[1], v); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
