package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	magnetgeo "github.com/Trophime/magnetgeo-claude"
	"github.com/Trophime/magnetgeo-claude/catalog"
)

var indexCmd = &cobra.Command{
	Use:   "index [dir] [output.db]",
	Short: "Build a sqlite component index from a geometry directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		output := args[1]

		_ = os.Remove(output) // rebuild from scratch
		cat, err := catalog.Open(output)
		if err != nil {
			return err
		}
		defer func() { _ = cat.Close() }()

		start := time.Now()
		indexed := 0
		err = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml", ".json":
			default:
				return nil
			}
			v, err := magnetgeo.Load(path)
			if err != nil {
				fmt.Printf("skip %s: %v\n", path, err)
				return nil
			}
			name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			entry, err := catalog.EntryFor(name, path, v)
			if err != nil {
				fmt.Printf("skip %s: %v\n", path, err)
				return nil
			}
			if err := cat.Add(entry); err != nil {
				return err
			}
			indexed++
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk %s: %w", source, err)
		}

		fmt.Printf("Indexed %d components into %s in %v.\n", indexed, output, time.Since(start))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
