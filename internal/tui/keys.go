package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal     = "global"
	scopePairEditor = "pair_editor"
	scopeListEditor = "list_editor"
	scopeBulk       = "bulk"
	scopeSpinning   = "spinning"
)

const (
	actionQuit      Action = "quit"
	actionNextTab   Action = "next_tab"
	actionPrevTab   Action = "prev_tab"
	actionPrevRow   Action = "prev_row"
	actionNextRow   Action = "next_row"
	actionShuffle   Action = "shuffle"
	actionAddRow    Action = "add_row"
	actionRemoveRow Action = "remove_row"
	actionReset     Action = "reset"
	actionExport    Action = "export"
	actionBulk      Action = "bulk"
	actionBulkApply Action = "bulk_apply"
	actionBulkClose Action = "bulk_close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scopes []string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: scopes})
	}
	editors := []string{scopePairEditor, scopeListEditor}

	// Global: tab switching and quit work in every state, including a spin.
	reg([]string{scopeGlobal}, actionNextTab, []string{"tab"}, "sonraki sekme")
	reg([]string{scopeGlobal}, actionPrevTab, []string{"shift+tab"}, "önceki sekme")
	reg([]string{scopeGlobal}, actionQuit, []string{"ctrl+c"}, "çıkış")

	// Row editors.
	reg(editors, actionShuffle, []string{"enter"}, "karıştır")
	reg(editors, actionPrevRow, []string{"up"}, "yukarı")
	reg(editors, actionNextRow, []string{"down"}, "aşağı")
	reg(editors, actionAddRow, []string{"ctrl+n"}, "ekle")
	reg(editors, actionRemoveRow, []string{"ctrl+d"}, "kaldır")
	reg(editors, actionReset, []string{"ctrl+r"}, "sıfırla")
	reg(editors, actionExport, []string{"ctrl+y"}, "kopyala")
	reg([]string{scopeListEditor}, actionBulk, []string{"ctrl+b"}, "toplu yapıştır")

	// Bulk paste textarea.
	reg([]string{scopeBulk}, actionBulkApply, []string{"ctrl+s"}, "uygula")
	reg([]string{scopeBulk}, actionBulkClose, []string{"esc", "ctrl+b"}, "kapat")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		if len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings returns scope bindings followed by the global ones, as
// bubbles key bindings for the footer. Actions reported by disabled are
// marked disabled.
func (r *KeyRegistry) HelpBindings(scope string, disabled func(Action) bool) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != scopeGlobal {
		items = append(items, r.BindingsForScope(scopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help))
		if disabled != nil && disabled(b.Action) {
			kb.SetEnabled(false)
		}
		out = append(out, kb)
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}
