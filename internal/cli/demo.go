package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/clients/internal/handlers"
	"github.com/mesh-intelligence/clients/pkg/memory"
	"github.com/mesh-intelligence/clients/pkg/types"
)

// demoResult is one lookup performed by the demo command.
type demoResult struct {
	Store  string        `json:"store"`
	Client *types.Client `json:"client,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create and look up clients in each repository",
		Long: `Demo wires the create and get handlers to three repositories and prints
each lookup:

  unbounded   create Taro/Tokyo, then get it back
  configured  create Jiro/Saitama in the repository from config.yaml, then get it
  empty       get a random ID from a new repository (not found)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runDemo(a)
			if err != nil {
				return err
			}
			return printDemo(cmd.OutOrStdout(), results, a.flags.jsonMode)
		},
	}
}

func runDemo(a *app) ([]demoResult, error) {
	cfg, err := a.repoConfig()
	if err != nil {
		return nil, err
	}

	unbounded, err := memory.NewRepository(types.Config{Backend: types.BackendMemory}, memory.WithLogger(a.logger))
	if err != nil {
		return nil, sysError(err)
	}
	configured, err := memory.NewRepository(cfg, memory.WithLogger(a.logger))
	if err != nil {
		return nil, userError(err)
	}
	empty, err := memory.NewRepository(cfg, memory.WithLogger(a.logger))
	if err != nil {
		return nil, userError(err)
	}

	id := handlers.NewCreateClient(unbounded).Execute("Taro", "Tokyo")
	first := lookup("unbounded", handlers.NewGetClient(unbounded), id)

	id = handlers.NewCreateClient(configured).Execute("Jiro", "Saitama")
	second := lookup("configured", handlers.NewGetClient(configured), id)

	third := lookup("empty", handlers.NewGetClient(empty), uuid.New())

	return []demoResult{first, second, third}, nil
}

func lookup(store string, get *handlers.GetClient, id uuid.UUID) demoResult {
	client, err := get.Execute(id)
	if err != nil {
		return demoResult{Store: store, Error: err.Error()}
	}
	return demoResult{Store: store, Client: &client}
}

func printDemo(w io.Writer, results []demoResult, jsonMode bool) error {
	if jsonMode {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	for _, r := range results {
		if r.Client == nil {
			fmt.Fprintf(w, "%-10s  error: %s\n", r.Store, r.Error)
			continue
		}
		fmt.Fprintf(w, "%-10s  %s  %s (%s)\n", r.Store, r.Client.ID(), r.Client.Name(), r.Client.Location())
	}
	return nil
}

// isNotFound reports whether err is the repository not-found error.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
