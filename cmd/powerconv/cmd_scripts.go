package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/powerconv/internal/lint"
	"github.com/udisondev/powerconv/internal/render"
)

func (a *app) scriptsCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Print <script> tags for every generated pool module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, n, err := render.ScriptTags(a.cfg.OutputDir, prefix)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, tags)
			fmt.Fprintf(cmd.ErrOrStderr(), "%d pool modules\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "js/data", "path the page loads data modules from")
	return cmd
}

func (a *app) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [dir]",
		Short: "Report power records that have an icon but no effects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.OutputDir
			if len(args) == 1 {
				dir = args[0]
			}
			findings, err := lint.ScanDir(dir)
			if err != nil {
				return err
			}
			for _, f := range findings {
				fmt.Fprintln(a.out, f.String())
			}
			fmt.Fprintf(a.out, "Total: %d incomplete entries\n", len(findings))
			if len(findings) > 0 {
				return fmt.Errorf("%d incomplete entries", len(findings))
			}
			return nil
		},
	}
}
