package cmd

import (
	"context"
	"fmt"

	"github.com/nerdwave-nick/pokewrap/internal/resource"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Fill the caches with the first generations and pokemon",
		RunE:  withApp(runWarm),
	}
	cmd.Flags().Int("generations", 9, "Number of generations to fetch")
	cmd.Flags().Int("pokemon", 50, "Number of pokemon to fetch, by national dex number")
	rootCmd.AddCommand(cmd)
}

func runWarm(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	generations, _ := cmd.Flags().GetInt("generations")
	pokemon, _ := cmd.Flags().GetInt("pokemon")
	out := cmd.OutOrStdout()

	err := app.registry.Warm(ctx, generations, pokemon, func(kind resource.Kind, done, total int) {
		fmt.Fprintf(out, "\rFetching %s data... %d/%d", kind, done, total)
		if done == total {
			fmt.Fprintln(out)
		}
	})
	if err != nil {
		return err
	}

	sizes := app.registry.Sizes()
	for _, k := range resource.Kinds {
		fmt.Fprintf(out, "%-13s %d cached\n", k, sizes[k])
	}
	return nil
}
