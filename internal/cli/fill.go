package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/clients/internal/handlers"
	"github.com/mesh-intelligence/clients/pkg/memory"
	"github.com/mesh-intelligence/clients/pkg/types"
)

type fillFlags struct {
	count    int
	capacity int
	strict   bool
	seed     uint64
}

// fillReport summarizes a fill run.
type fillReport struct {
	Capacity  int            `json:"capacity"`
	Eviction  string         `json:"eviction"`
	Inserted  int            `json:"inserted"`
	Evicted   int            `json:"evicted"`
	Survivors []types.Client `json:"survivors"`
}

func newFillCmd(a *app) *cobra.Command {
	var f fillFlags

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Insert generated clients into a bounded repository",
		Long: `Fill creates --count clients with generated names and cities in a bounded
repository and reports which clients survived eviction, oldest first.

Example:
  clients fill --count 4 --capacity 2
  clients fill --count 4 --capacity 2 --strict --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.count < 0 {
				return userError(fmt.Errorf("--count must not be negative"))
			}

			cfg, err := a.repoConfig()
			if err != nil {
				return err
			}
			cfg.Backend = types.BackendBounded
			if cmd.Flags().Changed("capacity") {
				cfg.Capacity = f.capacity
			}
			if f.strict {
				cfg.Eviction = types.EvictionStrict
			}

			report, err := runFill(a, cfg, f.count, f.seed)
			if err != nil {
				return err
			}
			return printFill(cmd.OutOrStdout(), report, a.flags.jsonMode)
		},
	}

	cmd.Flags().IntVar(&f.count, "count", 20, "number of clients to insert")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "repository capacity (overrides config capacity when set)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "never exceed capacity (evict after insert)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for generated names (0: random)")

	return cmd
}

func runFill(a *app, cfg types.Config, count int, seed uint64) (fillReport, error) {
	evicted := 0
	repo, err := memory.NewRepository(cfg,
		memory.WithLogger(a.logger),
		memory.WithEvictHook(func(types.Client) { evicted++ }),
	)
	if err != nil {
		return fillReport{}, userError(err)
	}

	faker := gofakeit.New(seed)
	create := handlers.NewCreateClient(repo)
	get := handlers.NewGetClient(repo)

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, create.Execute(faker.Name(), faker.City()))
	}

	report := fillReport{
		Capacity:  cfg.Capacity,
		Eviction:  cfg.EvictionPolicy(),
		Inserted:  count,
		Evicted:   evicted,
		Survivors: []types.Client{},
	}
	for _, id := range ids {
		client, err := get.Execute(id)
		if isNotFound(err) {
			continue
		}
		if err != nil {
			return fillReport{}, sysError(fmt.Errorf("get client %s: %w", id, err))
		}
		report.Survivors = append(report.Survivors, client)
	}

	a.logger.Info("fill complete",
		"inserted", report.Inserted,
		"evicted", report.Evicted,
		"stored", len(report.Survivors))
	return report, nil
}

func printFill(w io.Writer, r fillReport, jsonMode bool) error {
	if jsonMode {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	fmt.Fprintf(w, "capacity %d (%s): inserted %d, evicted %d, stored %d\n",
		r.Capacity, r.Eviction, r.Inserted, r.Evicted, len(r.Survivors))
	for _, c := range r.Survivors {
		fmt.Fprintf(w, "  %s  %s (%s)\n", c.ID(), c.Name(), c.Location())
	}
	return nil
}
