package resource

import (
	"context"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

type Generation struct {
	Header
	DisplayName string `json:"display_name"`
	MainRegion  string `json:"main_region"`
	// VersionGroups holds the names of the version groups that resolved, in payload order.
	VersionGroups []string `json:"version_groups"`
}

type VersionGroup struct {
	Header
	Order      int    `json:"order"`
	Generation string `json:"generation"`
	// Versions holds the names of the versions that resolved, in payload order.
	Versions []string `json:"versions"`
}

type Version struct {
	Header
	DisplayName  string `json:"display_name"`
	VersionGroup string `json:"version_group"`
}

func (r *Registry) newGeneration(ctx context.Context, data *pokeapi.Generation) (Generation, error) {
	g := Generation{
		Header:        Header{ID: data.ID, Name: data.Name},
		DisplayName:   englishName(data.Names),
		MainRegion:    refName(data.MainRegion),
		VersionGroups: []string{},
	}
	for _, name := range refNames(data.VersionGroups) {
		if vg, ok := resolve(ctx, r, KindGeneration, r.VersionGroup, name); ok {
			g.VersionGroups = append(g.VersionGroups, vg.Name)
		}
	}
	return g, nil
}

func (r *Registry) newVersionGroup(ctx context.Context, data *pokeapi.VersionGroup) (VersionGroup, error) {
	vg := VersionGroup{
		Header:     Header{ID: data.ID, Name: data.Name},
		Order:      data.Order,
		Generation: refName(data.Generation),
		Versions:   []string{},
	}
	for _, name := range refNames(data.Versions) {
		if v, ok := resolve(ctx, r, KindVersionGroup, r.Version, name); ok {
			vg.Versions = append(vg.Versions, v.Name)
		}
	}
	return vg, nil
}

func (r *Registry) newVersion(_ context.Context, data *pokeapi.Version) (Version, error) {
	return Version{
		Header:       Header{ID: data.ID, Name: data.Name},
		DisplayName:  englishName(data.Names),
		VersionGroup: refName(data.VersionGroup),
	}, nil
}
