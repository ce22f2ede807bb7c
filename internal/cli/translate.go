package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agenthands/cocograph/internal/core"
	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/dataset"
	"github.com/agenthands/cocograph/internal/driver"
	"github.com/agenthands/cocograph/internal/logging"
)

func newTranslateCmd(a *app) *cobra.Command {
	var (
		relationsPath string
		targetMap     string
		discipline    string
		format        string
		save          bool
	)

	cmd := &cobra.Command{
		Use:   "translate [dataset files or directories...]",
		Short: "Translate datasets into the target map and print the scored result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			if targetMap != "" {
				a.cfg.Translation.TargetMap = targetMap
			}
			if discipline != "" {
				a.cfg.Translation.Discipline = discipline
			}
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unknown output format %q", format)
			}

			sets, err := loadDatasets(args)
			if err != nil {
				return err
			}

			var relations *graph.RelationGraph
			if relationsPath != "" {
				if relations, err = dataset.LoadRelations(relationsPath); err != nil {
					return err
				}
			}

			var drv driver.GraphDriver
			if save || relations == nil {
				md, err := a.connect(ctx)
				if err != nil {
					return err
				}
				defer md.Close(context.Background())
				drv = md
			}

			campaign, err := core.NewCampaign(drv, relations, a.cfg, *log)
			if err != nil {
				return err
			}
			if relations == nil {
				if err := campaign.LoadRelations(ctx); err != nil {
					return err
				}
			}

			if err := campaign.AddDatasets(ctx, sets); err != nil {
				return err
			}
			campaign.Finalize()

			if save {
				if _, err := campaign.Save(ctx); err != nil {
					return err
				}
			}
			return writeEdges(cmd, campaign, format)
		},
	}

	cmd.Flags().StringVarP(&relationsPath, "relations", "r", "", "relation graph YAML file (default: load from Memgraph)")
	cmd.Flags().StringVarP(&targetMap, "target", "t", "", "target map (overrides config)")
	cmd.Flags().StringVarP(&discipline, "discipline", "d", "", "merge discipline: dan or ort (overrides config)")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&save, "save", false, "save the result graph to Memgraph")
	return cmd
}

func (a *app) connect(ctx context.Context) (*driver.MemgraphDriver, error) {
	m := a.cfg.Memgraph
	return driver.NewMemgraphDriver(ctx, m.URI, m.User, m.Password, a.log)
}

func loadDatasets(paths []string) ([]*dataset.Dataset, error) {
	var out []*dataset.Dataset
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			sets, err := dataset.LoadDir(p)
			if err != nil {
				return nil, err
			}
			out = append(out, sets...)
			continue
		}
		ds, err := dataset.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}

type report struct {
	CampaignID string `json:"campaign_id"`
	TargetMap  string `json:"target_map"`
	Discipline string `json:"discipline"`
	Edges      any    `json:"edges"`
}

func writeEdges(cmd *cobra.Command, c *core.Campaign, format string) error {
	r := report{
		CampaignID: c.ID,
		TargetMap:  c.TargetMap,
		Discipline: string(c.Discipline),
		Edges:      c.Result.Edges(),
	}

	var (
		data []byte
		err  error
	)
	if format == "json" {
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(r)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
