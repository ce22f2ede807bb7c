package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/cocograph/internal/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "catalog [maps...]",
		Short: "List catalogued maps or check whether maps may be translated",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.New(
				a.cfg.Catalog.AllMaps,
				a.cfg.Catalog.MappingFailures,
				a.cfg.Catalog.ConnectivityFailures,
				a.cfg.Catalog.IntramapOverlaps,
			)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				failed := 0
				for _, m := range args {
					if err := c.Eligible(m); err != nil {
						fmt.Fprintf(out, "✗ %s: %v\n", m, err)
						failed++
						continue
					}
					fmt.Fprintf(out, "✓ %s\n", m)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d maps cannot be translated", failed, len(args))
				}
				return nil
			}

			var maps []string
			switch list {
			case "all":
				maps = c.AllMaps
			case "mapping":
				maps = c.MappingSuccesses()
			case "connectivity":
				maps = c.ConnectivitySuccesses()
			default:
				return fmt.Errorf("unknown list %q (want all, mapping or connectivity)", list)
			}
			fmt.Fprintln(out, strings.Join(catalog.Sorted(maps), "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "connectivity", "which maps to list: all, mapping or connectivity")
	return cmd
}
