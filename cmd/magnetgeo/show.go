package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Trophime/magnetgeo-claude/catalog"
	"github.com/Trophime/magnetgeo-claude/codec"
)

var showKind string

var showCmd = &cobra.Command{
	Use:   "show [index.db] [name]",
	Short: "Print an indexed component, or list components of one kind",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = cat.Close() }()

		if len(args) == 1 {
			if showKind != "" {
				entries, err := cat.ByKind(showKind)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Printf("%s\t%s\t%s\n", e.Name, e.Kind, e.Path)
				}
				return nil
			}
			names, err := cat.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		entry, err := cat.Get(args[1])
		if err != nil {
			return err
		}
		out, err := codec.Marshal(entry.Record, codec.FormatYAML)
		if err != nil {
			return err
		}
		fmt.Printf("%s", out)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showKind, "kind", "k", "", "List all components of this kind")
	rootCmd.AddCommand(showCmd)
}
