// Package render writes human readable reports of resource records.
package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nerdwave-nick/pokewrap/internal/resource"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer resolves the ids a record refers to through the registry's stores.
type Renderer struct {
	reg *resource.Registry
}

func NewRenderer(reg *resource.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Title turns an api name such as "lightning-rod" into "Lightning Rod".
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func rule(w io.Writer, title string) {
	fmt.Fprintf(w, "\n── %s %s\n", title, strings.Repeat("─", max(0, 60-len([]rune(title)))))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func number(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func titles(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Title(n)
	}
	return strings.Join(out, ", ")
}

// Render writes the report of rec to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, rec resource.Record, d Display) error {
	switch v := rec.(type) {
	case resource.Pokemon:
		return r.pokemon(ctx, w, v, d)
	case resource.Ability:
		return r.ability(w, v)
	case resource.Type:
		return r.typ(w, v)
	case resource.Move:
		return r.move(w, v)
	case resource.Version:
		return r.version(w, v)
	case resource.Species:
		return r.species(ctx, w, v)
	case resource.VersionGroup:
		return r.versionGroup(w, v)
	case resource.Generation:
		return r.generation(w, v)
	}
	return fmt.Errorf("cannot render %T", rec)
}

func (r *Renderer) ability(w io.Writer, a resource.Ability) error {
	rule(w, Title(a.Name))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", a.ID)
	fmt.Fprintf(tw, "Generation\t%s\n", Title(orDash(a.Generation)))
	fmt.Fprintf(tw, "Main series\t%t\n", a.IsMainSeries)
	fmt.Fprintf(tw, "Description\t%s\n", orDash(a.Description))
	return tw.Flush()
}

func (r *Renderer) typ(w io.Writer, t resource.Type) error {
	rule(w, Title(t.Name))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", t.ID)
	fmt.Fprintf(tw, "Generation\t%s\n", Title(orDash(t.Generation)))
	fmt.Fprintf(tw, "Damage class\t%s\n", Title(orDash(t.DamageClass)))
	fmt.Fprintf(tw, "Super effective against\t%s\n", titles(t.DoubleDamageTo))
	fmt.Fprintf(tw, "Not very effective against\t%s\n", titles(t.HalfDamageTo))
	fmt.Fprintf(tw, "No effect on\t%s\n", titles(t.NoDamageTo))
	fmt.Fprintf(tw, "Weak to\t%s\n", titles(t.DoubleDamageFrom))
	fmt.Fprintf(tw, "Resists\t%s\n", titles(t.HalfDamageFrom))
	fmt.Fprintf(tw, "Immune to\t%s\n", titles(t.NoDamageFrom))
	return tw.Flush()
}

func (r *Renderer) move(w io.Writer, m resource.Move) error {
	rule(w, Title(m.Name))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", m.ID)
	fmt.Fprintf(tw, "Type\t%s\n", Title(orDash(m.TypeName)))
	fmt.Fprintf(tw, "Class\t%s\n", Title(orDash(m.DamageClass)))
	fmt.Fprintf(tw, "Power\t%s\n", number(m.Power))
	fmt.Fprintf(tw, "Accuracy\t%s\n", number(m.Accuracy))
	fmt.Fprintf(tw, "PP\t%s\n", number(m.PP))
	fmt.Fprintf(tw, "Priority\t%d\n", m.Priority)
	fmt.Fprintf(tw, "Generation\t%s\n", Title(orDash(m.Generation)))
	fmt.Fprintf(tw, "Description\t%s\n", orDash(m.Description))
	return tw.Flush()
}

func (r *Renderer) version(w io.Writer, v resource.Version) error {
	rule(w, orDash(v.DisplayName))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", v.ID)
	fmt.Fprintf(tw, "Name\t%s\n", v.Name)
	fmt.Fprintf(tw, "Version group\t%s\n", orDash(v.VersionGroup))
	return tw.Flush()
}

func (r *Renderer) versionGroup(w io.Writer, vg resource.VersionGroup) error {
	rule(w, Title(vg.Name))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", vg.ID)
	fmt.Fprintf(tw, "Order\t%d\n", vg.Order)
	fmt.Fprintf(tw, "Generation\t%s\n", Title(orDash(vg.Generation)))
	fmt.Fprintf(tw, "Versions\t%s\n", titles(vg.Versions))
	return tw.Flush()
}

func (r *Renderer) generation(w io.Writer, g resource.Generation) error {
	name := g.DisplayName
	if name == "" {
		name = Title(g.Name)
	}
	rule(w, name)
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%d\n", g.ID)
	fmt.Fprintf(tw, "Main region\t%s\n", Title(orDash(g.MainRegion)))
	fmt.Fprintf(tw, "Version groups\t%s\n", titles(g.VersionGroups))
	return tw.Flush()
}

func (r *Renderer) species(ctx context.Context, w io.Writer, s resource.Species) error {
	rule(w, Title(s.Name))
	return r.speciesTable(ctx, w, s)
}

func (r *Renderer) speciesTable(ctx context.Context, w io.Writer, s resource.Species) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "National dex\t%s\n", number(s.NationalDex))
	fmt.Fprintf(tw, "Genus\t%s\n", orDash(s.Genus))
	fmt.Fprintf(tw, "Generation\t%s\n", r.generationName(ctx, s.GenerationID))
	fmt.Fprintf(tw, "Capture rate\t%d\n", s.CaptureRate)
	if s.EvolvesFrom != "" {
		fmt.Fprintf(tw, "Evolves from\t%s\n", Title(s.EvolvesFrom))
	}
	var tags []string
	if s.IsBaby {
		tags = append(tags, "baby")
	}
	if s.IsLegendary {
		tags = append(tags, "legendary")
	}
	if s.IsMythical {
		tags = append(tags, "mythical")
	}
	if len(tags) > 0 {
		fmt.Fprintf(tw, "Status\t%s\n", strings.Join(tags, ", "))
	}
	if s.FlavorText != "" {
		fmt.Fprintf(tw, "Entry\t%s\n", s.FlavorText)
	}
	return tw.Flush()
}

func (r *Renderer) generationName(ctx context.Context, id int) string {
	if id == 0 {
		return "-"
	}
	g, found, err := r.reg.Generation.HandleSearch(ctx, strconv.Itoa(id))
	if err != nil || !found {
		return strconv.Itoa(id)
	}
	if g.DisplayName != "" {
		return g.DisplayName
	}
	return Title(g.Name)
}
