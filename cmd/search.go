package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/render"
	"github.com/nerdwave-nick/pokewrap/internal/resource"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "search <kind> <name or id>",
		Short:   "Look up a single resource and print its report",
		Example: "  pokewrap search pokemon pikachu\n  pokewrap search pokemon mr mime\n  pokewrap search ability 9 --hide ps",
		Args:    cobra.MinimumNArgs(2),
		RunE:    withApp(runSearch),
	}
	cmd.Flags().String("hide", "", "Sections to hide, any of "+render.ToggleLetters+" (p abilities, s stats, a availability, u unavailable versions, t typing)")
	rootCmd.AddCommand(cmd)
}

func runSearch(ctx context.Context, app *application, cmd *cobra.Command, args []string) error {
	kind, err := resource.ParseKind(args[0])
	if err != nil {
		return err
	}
	s := app.session()
	hide, _ := cmd.Flags().GetString("hide")
	for _, letter := range strings.Split(hide, "") {
		d, ok := s.display.Toggle(letter)
		if !ok {
			return fmt.Errorf("unknown section %q, expected any of %s", letter, render.ToggleLetters)
		}
		s.display = d
	}
	return s.search(ctx, cmd.OutOrStdout(), kind, strings.Join(args[1:], " "))
}
