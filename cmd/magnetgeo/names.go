package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	magnetgeo "github.com/Trophime/magnetgeo-claude"
	"github.com/Trophime/magnetgeo-claude/magnet"
	"github.com/Trophime/magnetgeo-claude/structural"
	"github.com/Trophime/magnetgeo-claude/support"
)

var (
	namesPrefix string
	namesDetail string
	names3D     bool
)

var namesCmd = &cobra.Command{
	Use:   "names [file]",
	Short: "List the mesh region names of a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		v, err := magnetgeo.Load(path)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		load := magnetgeo.NewLoader(dir).Func()

		var names []string
		switch c := v.(type) {
		case *magnet.Helix:
			if names3D {
				names = c.RegionNames(namesPrefix, load)
			} else {
				names = c.SectionNames(namesPrefix, load)
			}
		case *magnet.Bitter:
			if names3D {
				names = c.RegionNames(namesPrefix)
			} else {
				names = c.SectionNames(namesPrefix, load)
			}
		case *magnet.Supra:
			if namesDetail != "" {
				if err := c.SetDetail(support.Detail(namesDetail)); err != nil {
					return err
				}
			}
			names = c.Names(namesPrefix, load)
		case *structural.Ring:
			names = c.Names(namesPrefix)
		case *structural.Screen:
			names = c.Names(namesPrefix)
		case *structural.InnerCurrentLead:
			names = c.Names(namesPrefix)
		case *structural.OuterCurrentLead:
			names = c.Names(namesPrefix)
		default:
			return fmt.Errorf("%s: %T has no region names", path, v)
		}

		fmt.Println(strings.Join(names, "\n"))
		return nil
	},
}

func init() {
	namesCmd.Flags().StringVarP(&namesPrefix, "prefix", "p", "", "Name prefix")
	namesCmd.Flags().StringVarP(&namesDetail, "detail", "d", "", "Drill-down level for superconducting magnets")
	namesCmd.Flags().BoolVar(&names3D, "3d", false, "List 3D regions instead of 2D sections")
	rootCmd.AddCommand(namesCmd)
}
