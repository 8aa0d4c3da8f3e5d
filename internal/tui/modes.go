package tui

import (
	"slices"

	"github.com/jask/karmator/internal/config"
	"github.com/jask/karmator/internal/export"
	"github.com/jask/karmator/internal/names"
	"github.com/jask/karmator/internal/shuffle"
)

// DefaultPairs seeds the pair tab and is restored by reset.
var DefaultPairs = []string{
	"Ali-Veli",
	"Ayşe-Fatma",
	"Mehmet-Ahmet",
	"Zeynep-Elif",
	"Can-Deniz",
	"Ege-Arda",
	"Selin-Ceren",
}

const (
	pairPlaceholder = "İsim1-İsim2"
	namePlaceholder = "İsim"
)

func emptyRows(n int) func() []string {
	return func() []string { return make([]string, max(n, 1)) }
}

func notPair(entry string) bool {
	_, ok := names.ParsePair(entry)
	return !ok
}

func pairPeople(entries []string) []string {
	var out []string
	for _, p := range names.ValidPairs(entries) {
		out = append(out, p.Left, p.Right)
	}
	return out
}

func capitalizedPairs(entries []string) []shuffle.Pair {
	pairs := names.ValidPairs(entries)
	for i, p := range pairs {
		pairs[i] = shuffle.Pair{Left: names.Capitalize(p.Left), Right: names.Capitalize(p.Right)}
	}
	return pairs
}

func newPairMode(e *env, cfg config.Config) Tab {
	return newMode(e, modeSpec[shuffle.Teams]{
		id:          config.TabPair,
		title:       tabTitles[config.TabPair],
		scope:       scopePairEditor,
		section:     "Çiftler",
		placeholder: pairPlaceholder,
		seed:        func() []string { return slices.Clone(DefaultPairs) },
		minimum:     1,
		threshold:   cfg.Animation.PairTicks,
		valid:       func(entries []string) int { return len(names.ValidPairs(entries)) },
		invalid:     notPair,
		people:      pairPeople,
		generate: func(entries []string) func() shuffle.Teams {
			pairs := names.ValidPairs(entries)
			return func() shuffle.Teams { return e.shuffler.Teams(pairs) }
		},
		render:   renderTeams,
		snapshot: func(t shuffle.Teams) export.Snapshot { return export.TeamsSnapshot(tabTitles[config.TabPair], t) },
	})
}

func newClassicMode(e *env, cfg config.Config) Tab {
	return newMode(e, modeSpec[shuffle.Teams]{
		id:          config.TabClassic,
		title:       tabTitles[config.TabClassic],
		scope:       scopeListEditor,
		section:     "Çiftler",
		placeholder: pairPlaceholder,
		seed:        emptyRows(cfg.Input.DefaultRows),
		minimum:     1,
		threshold:   cfg.Animation.ClassicTicks,
		valid:       func(entries []string) int { return len(names.ValidPairs(entries)) },
		invalid:     notPair,
		people:      pairPeople,
		generate: func(entries []string) func() shuffle.Teams {
			pairs := capitalizedPairs(entries)
			return func() shuffle.Teams { return e.shuffler.Teams(pairs) }
		},
		render:          renderTeams,
		snapshot:        func(t shuffle.Teams) export.Snapshot { return export.TeamsSnapshot(tabTitles[config.TabClassic], t) },
		bulkParse:       names.ParseBulkPairs,
		bulkPlaceholder: "Ali-Veli, Ayşe-Fatma\nCan-Deniz",
	})
}

func newOrderedMode(e *env, cfg config.Config) Tab {
	return newMode(e, modeSpec[[]string]{
		id:          config.TabOrdered,
		title:       tabTitles[config.TabOrdered],
		scope:       scopeListEditor,
		section:     "İsimler",
		placeholder: namePlaceholder,
		seed:        emptyRows(cfg.Input.DefaultRows),
		minimum:     2,
		threshold:   cfg.Animation.OrderedTicks,
		valid:       func(entries []string) int { return len(names.ValidNames(entries)) },
		people:      names.ValidNames,
		generate: func(entries []string) func() []string {
			list := names.ValidNames(entries)
			return func() []string { return e.shuffler.Names(list) }
		},
		render:   renderOrdered,
		snapshot: func(order []string) export.Snapshot { return export.OrderedSnapshot(tabTitles[config.TabOrdered], order) },
		bulkParse: func(text string) []string {
			return names.ParseBulk(text, true)
		},
		bulkPlaceholder: "Ali, Veli, Ayşe\nFatma",
	})
}
