package main

import (
	"context"
	"fmt"
	"io"

	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/quantmind-br/sidenav-go/internal/query"
	"github.com/quantmind-br/sidenav-go/internal/render"
	"github.com/quantmind-br/sidenav-go/internal/resolver"
	"github.com/quantmind-br/sidenav-go/internal/utils"
	"github.com/quantmind-br/sidenav-go/internal/watch"
	"github.com/spf13/cobra"
)

// checkResult is the outcome of checking one file
type checkResult struct {
	sidebars nav.Sidebars
	warnings []nav.Warning
	err      error
}

func newCheckCmd(c *cli) *cobra.Command {
	var warningsAsErrors bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Load sidebar files and report errors and warnings",
		Long: `Loads each sidebar file, reports structural errors and style warnings
(blank labels, dead-end categories, duplicate doc ids).

Exits non-zero when any file fails to load, or has warnings and
--warnings-as-errors is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				path, err := sidebarFile(nil)
				if err != nil {
					return err
				}
				files = []string{path}
			}

			results := make([]checkResult, len(files))
			opts := c.loadOptions()
			errs := utils.ParallelForEach(cmd.Context(), indexes(len(files)), defaultWorkers, func(ctx context.Context, i int) error {
				s, w, err := c.loader.LoadSidebars(files[i], opts)
				results[i] = checkResult{sidebars: s, warnings: w, err: err}
				return err
			})

			out := cmd.OutOrStdout()
			failed := len(utils.CollectErrors(errs))
			for i, file := range files {
				r := results[i]
				if r.err == nil && errs[i] != nil {
					r.err = errs[i]
				}
				if r.err != nil {
					fmt.Fprintf(out, "%s: error: %v\n", file, r.err)
					continue
				}
				for _, w := range r.warnings {
					fmt.Fprintf(out, "%s: warning: %s\n", file, w)
				}
				fmt.Fprintf(out, "%s: ok (%d sidebars, %d nodes, %d warnings)\n",
					file, len(r.sidebars), nav.Count(r.sidebars), len(r.warnings))
				if warningsAsErrors && len(r.warnings) > 0 {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "Fail when a file has warnings")
	return cmd
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newTreeCmd(c *cli) *cobra.Command {
	var (
		sidebar string
		depth   int
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the navigation tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sidebars, warnings, err := c.load(args)
			if err != nil {
				return err
			}
			c.logWarnings(warnings)

			out := cmd.OutOrStdout()
			err = render.Tree(out, sidebars, render.TreeOptions{
				Sidebar:  sidebar,
				Color:    c.cfg.Render.Color,
				MaxDepth: depth,
			})
			if err != nil || !summary {
				return err
			}
			fmt.Fprintln(out)
			return render.Summary(out, sidebars)
		},
	}

	cmd.Flags().StringVarP(&sidebar, "sidebar", "s", "", "Only print this sidebar")
	cmd.Flags().IntVar(&depth, "depth", 0, "Levels to print (0=all)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print node counts after the tree")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the loaded sidebars as JSON or YAML",
		Long: `Loads the sidebar file and writes it back in normalized form. The output
loads into the same tree as the input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sidebars, warnings, err := c.load(args)
			if err != nil {
				return err
			}
			c.logWarnings(warnings)
			return render.Export(cmd.OutOrStdout(), sidebars, render.Format(format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatJSON), "Output format (json, yaml)")
	return cmd
}

func newExpandCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Replace autogenerated items with the docs they stand for",
		Long: `Loads the sidebar file, replaces every autogenerated item with the
docs and categories found under --docs-root, and exports the result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sidebars, _, err := c.load(args)
			if err != nil {
				return err
			}

			root := utils.ExpandPath(c.cfg.Docs.Root)
			c.log.Debug().Str("docs_root", root).Msg("Expanding autogenerated items")

			expanded, err := nav.Expand(cmd.Context(), sidebars, resolver.NewFS(root))
			if err != nil {
				return err
			}
			c.logWarnings(nav.Validate(expanded))
			return render.Export(cmd.OutOrStdout(), expanded, render.Format(format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatJSON), "Output format (json, yaml)")
	return cmd
}

func newWatchCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-check a sidebar file whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sidebarFile(args)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(c.log)
			defer cancel()

			out := cmd.OutOrStdout()
			w := watch.New(path, func(r watch.Result) { printResult(out, path, r) },
				watch.WithDebounce(c.cfg.Watch.Debounce),
				watch.WithLoader(c.loader, c.loadOptions()),
				watch.WithLogger(c.log),
			)
			return w.Run(ctx)
		},
	}

	cmd.Flags().Duration("debounce", 0, "Quiet period before reloading (default from config)")
	_ = c.v.BindPFlag("watch.debounce", cmd.Flags().Lookup("debounce"))
	return cmd
}

func printResult(out io.Writer, path string, r watch.Result) {
	if r.Err != nil {
		fmt.Fprintf(out, "%s: error: %v\n", path, r.Err)
		return
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "%s: warning: %s\n", path, w)
	}
	fmt.Fprintf(out, "%s: ok (%d sidebars, %d nodes, %d warnings)\n",
		path, len(r.Sidebars), nav.Count(r.Sidebars), len(r.Warnings))
}

// load reads the sidebar file named by args
func (c *cli) load(args []string) (nav.Sidebars, []nav.Warning, error) {
	path, err := sidebarFile(args)
	if err != nil {
		return nil, nil, err
	}
	return c.loader.LoadSidebars(path, c.loadOptions())
}

func (c *cli) logWarnings(warnings []nav.Warning) {
	for _, w := range warnings {
		c.log.Warn().
			Str("code", string(w.Code)).
			Str("path", w.Path.String()).
			Msg(w.Message)
	}
}

func newQueryCmd(c *cli) *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "query <expression> [file]",
		Short: "List the nodes matching an expression",
		Long: `Prints the path of every node for which the expression is true.

Fields: kind, sidebar, path, depth, id, label, href, dirName, title,
description, items, collapsed, collapsible, linked.

Example:
  sidenav query 'kind == "doc" && id startsWith "api/"' sidebars.js`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := query.Compile(args[0])
			if err != nil {
				return err
			}
			sidebars, _, err := c.load(args[1:])
			if err != nil {
				return err
			}

			matches, err := q.Select(sidebars)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count {
				_, err := fmt.Fprintln(out, len(matches))
				return err
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%s\t%s\n", m.Path, nodeSummary(m.Node))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&count, "count", "c", false, "Only print the number of matches")
	return cmd
}

// nodeSummary is a one-line plain description of n
func nodeSummary(n nav.Node) string {
	switch v := n.(type) {
	case nav.DocRef:
		return "doc " + v.ID
	case nav.Category:
		return "category " + v.Label
	case nav.Autogenerated:
		return "autogenerated " + v.DirName
	case nav.GeneratedIndex:
		return "generated-index " + v.Title
	case nav.ExternalLink:
		return "link " + v.Href
	default:
		return string(n.Kind())
	}
}
