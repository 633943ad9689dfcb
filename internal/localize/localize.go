// Package localize lets packages ship translations for their own keys. Keys
// are applied to the host's localization table as soon as they are added
// and re-applied every time the host loads a language.
package localize

import (
	"context"
	"strings"

	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
)

// Language names as the host spells them.
const (
	English             = "English"
	Swedish             = "Swedish"
	French              = "French"
	Italian             = "Italian"
	German              = "German"
	Spanish             = "Spanish"
	Russian             = "Russian"
	Romanian            = "Romanian"
	Bulgarian           = "Bulgarian"
	Macedonian          = "Macedonian"
	Finnish             = "Finnish"
	Danish              = "Danish"
	Norwegian           = "Norwegian"
	Icelandic           = "Icelandic"
	Turkish             = "Turkish"
	Lithuanian          = "Lithuanian"
	Czech               = "Czech"
	Hungarian           = "Hungarian"
	Slovak              = "Slovak"
	Polish              = "Polish"
	Dutch               = "Dutch"
	PortugueseEuropean  = "Portuguese_European"
	PortugueseBrazilian = "Portuguese_Brazilian"
	Chinese             = "Chinese"
	Japanese            = "Japanese"
	Korean              = "Korean"
	Hindi               = "Hindi"
	Thai                = "Thai"
	Abenaki             = "Abenaki"
	Croatian            = "Croatian"
	Georgian            = "Georgian"
	Greek               = "Greek"
	Serbian             = "Serbian"
	Ukrainian           = "Ukrainian"
)

const aliasSlot = "alias"

// Key is one translatable key with its per-language values.
type Key struct {
	Name          string
	Localizations map[string]string

	set *Set
}

// Set is the collection of keys a manager owns.
type Set struct {
	keys    []*Key
	current func() *host.Localization
}

// NewSet creates an empty set. current returns the host's live table, or nil
// while there is none.
func NewSet(current func() *host.Localization) *Set {
	return &Set{current: current}
}

// New adds a key. A leading $ is dropped from the name.
func (s *Set) New(name string) *Key {
	k := &Key{Name: strings.ReplaceAll(name, "$", ""), Localizations: make(map[string]string), set: s}
	s.keys = append(s.keys, k)
	return k
}

// Keys returns the keys in creation order.
func (s *Set) Keys() []*Key {
	out := make([]*Key, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Set) live() *host.Localization {
	if s.current == nil {
		return nil
	}
	return s.current()
}

// English sets the English value.
func (k *Key) English(value string) *Key { return k.Add(English, value) }

// Add sets the value for lang. The value is applied right away when lang is
// the selected language, or when lang is English and the key has no
// translation yet.
func (k *Key) Add(lang, value string) *Key {
	k.Localizations[lang] = value
	loc := k.set.live()
	if loc == nil {
		return k
	}
	if loc.SelectedLanguage() == lang {
		loc.AddWord(k.Name, value)
	} else if lang == English && !loc.HasWord(k.Name) {
		loc.AddWord(k.Name, value)
	}
	return k
}

// Alias makes the key resolve to another key's translation, replacing any
// per-language values.
func (k *Key) Alias(alias string) *Key {
	k.Localizations = make(map[string]string)
	if !strings.Contains(alias, "$") {
		alias = "$" + alias
	}
	k.Localizations[aliasSlot] = alias
	if loc := k.set.live(); loc != nil {
		loc.AddWord(k.Name, loc.Localize(alias))
	}
	return k
}

// Apply writes every key into the table being loaded, falling back from the
// loaded language to English to the alias.
func (s *Set) Apply(ctx context.Context, load *host.LocalizationLoad) {
	if load == nil || load.Localization == nil {
		return
	}
	applied := 0
	for _, k := range s.keys {
		if v, ok := k.Localizations[load.Language]; ok {
			load.Localization.AddWord(k.Name, v)
		} else if v, ok := k.Localizations[English]; ok {
			load.Localization.AddWord(k.Name, v)
		} else if alias, ok := k.Localizations[aliasSlot]; ok {
			load.Localization.AddWord(k.Name, load.Localization.Localize(alias))
		} else {
			continue
		}
		applied++
	}
	ctxlog.FromContext(ctx).Debug("Applied localized keys.", "language", load.Language, "count", applied)
}
