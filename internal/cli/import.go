package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/cocograph/internal/core"
	"github.com/agenthands/cocograph/internal/dataset"
	"github.com/agenthands/cocograph/internal/logging"
)

func newImportCmd(a *app) *cobra.Command {
	var relationsPath string

	cmd := &cobra.Command{
		Use:   "import [dataset files or directories...]",
		Short: "Store a relation graph and connectivity datasets in Memgraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if relationsPath == "" && len(args) == 0 {
				return fmt.Errorf("nothing to import: pass --relations or dataset paths")
			}
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			sets, err := loadDatasets(args)
			if err != nil {
				return err
			}

			md, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer md.Close(context.Background())
			if err := md.BuildIndices(ctx); err != nil {
				return err
			}

			if relationsPath != "" {
				relations, err := dataset.LoadRelations(relationsPath)
				if err != nil {
					return err
				}
				if err := core.ImportRelations(ctx, md, relations); err != nil {
					return err
				}
				log.Info().Int("relations", relations.Len()).Msg("imported relation graph")
			}
			for _, ds := range sets {
				if err := core.ImportDataset(ctx, md, ds); err != nil {
					return err
				}
				log.Info().Str("dataset", ds.ID).Int("edges", ds.Graph.Len()).Msg("imported dataset")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&relationsPath, "relations", "r", "", "relation graph YAML file")
	return cmd
}
