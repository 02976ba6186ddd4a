package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/resource"
)

// generations is the number of generations the availability report walks.
const generations = 9

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Attack",
	"special-defense": "Sp. Defense",
	"speed":           "Speed",
}

func (r *Renderer) pokemon(ctx context.Context, w io.Writer, p resource.Pokemon, d Display) error {
	rule(w, fmt.Sprintf("%s (#%d)", Title(p.Name), p.ID))
	steps := []func() error{
		func() error { return r.typing(ctx, w, p, d) },
		func() error { return r.basicInfo(ctx, w, p) },
		func() error { return r.abilities(ctx, w, p, d) },
		func() error { return r.stats(w, p, d) },
		func() error { return r.availability(ctx, w, p, d) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) basicInfo(ctx context.Context, w io.Writer, p resource.Pokemon) error {
	if p.ShinyArtwork != "" {
		fmt.Fprintf(w, "Shiny: %s\n", p.ShinyArtwork)
	}
	if p.SpeciesID == 0 {
		return nil
	}
	s, found, err := r.reg.Species.HandleSearch(ctx, strconv.Itoa(p.SpeciesID))
	if err != nil || !found {
		slog.Debug("species unavailable", slog.Int("id", p.SpeciesID), slog.Any("error", err))
		return nil
	}
	return r.speciesTable(ctx, w, s)
}

// Multiplier formats a damage factor the way type charts print it.
func Multiplier(f float64) string {
	switch f {
	case 0.25:
		return "¼"
	case 0.5:
		return "½"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (r *Renderer) typing(ctx context.Context, w io.Writer, p resource.Pokemon, d Display) error {
	rule(w, "[T]ype Information")
	if !d.Typing {
		return nil
	}
	fmt.Fprintln(w, titlesSlash(p.Types))

	defending := make([]*resource.Type, len(p.Types))
	for i, name := range p.Types {
		t, found, err := r.reg.Type.HandleSearch(ctx, name)
		if err != nil || !found {
			slog.Debug("type unavailable", slog.String("type", name), slog.Any("error", err))
			continue
		}
		defending[i] = &t
	}

	tw := newTable(w)
	header := make([]string, len(resource.TypeNames))
	row := make([]string, len(resource.TypeNames))
	for i, attacking := range resource.TypeNames {
		header[i] = strings.ToUpper(attacking[:3])
		row[i] = effectiveness(defending, attacking)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(row, "\t"))
	return tw.Flush()
}

func effectiveness(defending []*resource.Type, attacking string) string {
	f := 1.0
	for _, t := range defending {
		if t == nil {
			return "?"
		}
		f *= t.Multiplier(attacking)
	}
	return Multiplier(f)
}

func titlesSlash(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Title(n)
	}
	return strings.Join(out, " / ")
}

func (r *Renderer) abilities(ctx context.Context, w io.Writer, p resource.Pokemon, d Display) error {
	rule(w, "[P]ossible Abilities")
	if !d.Abilities {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Ability\tDescription")
	row := func(id int, suffix string) {
		a, found, err := r.reg.Ability.HandleSearch(ctx, strconv.Itoa(id))
		if err != nil || !found {
			fmt.Fprintf(tw, "#%d%s\t?\n", id, suffix)
			return
		}
		fmt.Fprintf(tw, "%s%s\t%s\n", Title(a.Name), suffix, orDash(a.Description))
	}
	for _, id := range p.Abilities {
		row(id, "")
	}
	if p.HiddenAbility != 0 {
		row(p.HiddenAbility, " (hidden)")
	}
	return tw.Flush()
}

func (r *Renderer) stats(w io.Writer, p resource.Pokemon, d Display) error {
	rule(w, "[S]tats")
	if !d.Stats {
		return nil
	}
	tw := newTable(w)
	header := make([]string, 0, len(resource.StatNames)+1)
	values := make([]string, 0, len(resource.StatNames)+1)
	for _, name := range resource.StatNames {
		header = append(header, statLabels[name])
		values = append(values, strconv.Itoa(p.BaseStats[name]))
	}
	header = append(header, "Total")
	values = append(values, strconv.Itoa(p.TotalBaseStats()))
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(values, "\t"))
	if err := tw.Flush(); err != nil {
		return err
	}

	var yield []string
	for _, name := range resource.StatNames {
		if ev := p.EVYield[name]; ev != 0 {
			yield = append(yield, fmt.Sprintf("%d %s", ev, statLabels[name]))
		}
	}
	fmt.Fprintf(w, "EV Yield: %s\n", orDash(strings.Join(yield, ", ")))
	return nil
}

func (r *Renderer) availability(ctx context.Context, w io.Writer, p resource.Pokemon, d Display) error {
	rule(w, "[A]vailability Info")
	if !d.Availability {
		return nil
	}
	if p.Locations == nil {
		fmt.Fprintln(w, "No location data, availability unknown.")
	}
	for gen := 1; gen <= generations; gen++ {
		if err := r.generationAvailability(ctx, w, p, d, gen); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) generationAvailability(ctx context.Context, w io.Writer, p resource.Pokemon, d Display, gen int) error {
	g, found, err := r.reg.Generation.HandleSearch(ctx, strconv.Itoa(gen))
	if err != nil || !found {
		slog.Debug("generation unavailable", slog.Int("generation", gen), slog.Any("error", err))
		return nil
	}

	type line struct{ game, where string }
	var lines []line
	for _, vgName := range g.VersionGroups {
		vg, found, err := r.reg.VersionGroup.HandleSearch(ctx, vgName)
		if err != nil || !found {
			continue
		}
		for _, version := range vg.Versions {
			game := r.versionLabel(ctx, version)
			locations, listed := p.Locations[version]
			switch {
			case p.Locations == nil:
				lines = append(lines, line{game, "unknown"})
			case len(locations) > 0:
				lines = append(lines, line{game, strings.Join(locations, ", ")})
			case d.Unavailable && listed:
				lines = append(lines, line{game, "unavailable (trade/migrate)"})
			case d.Unavailable:
				lines = append(lines, line{game, "unavailable"})
			}
		}
	}
	if len(lines) == 0 {
		return nil
	}

	title := g.DisplayName
	if title == "" {
		title = fmt.Sprintf("Generation %d", gen)
	}
	fmt.Fprintf(w, "%s\n", title)
	tw := newTable(w)
	for _, l := range lines {
		fmt.Fprintf(tw, "  %s\t%s\n", l.game, l.where)
	}
	return tw.Flush()
}

func (r *Renderer) versionLabel(ctx context.Context, name string) string {
	v, found, err := r.reg.Version.HandleSearch(ctx, name)
	if err == nil && found && v.DisplayName != "" {
		return v.DisplayName
	}
	return Title(name)
}
