package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/balance/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

type keymapFile struct {
	Runes map[string]string `toml:"runes"`
	Keys  map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable.
// Returns error on unknown sections, action names or key names
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown key %q", undecoded[0].String())
	}

	kt := &KeyTable{}
	if f.Runes != nil {
		kt.Runes = make(map[rune]KeyEntry, len(f.Runes))
		for keyStr, action := range f.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}
	if f.Keys != nil {
		kt.Keys = make(map[terminal.Key]KeyEntry, len(f.Keys))
		for keyStr, action := range f.Keys {
			k, ok := terminal.KeyByName(strings.ToLower(keyStr))
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Keys[k] = entry
		}
	}
	return kt, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns base overridden by override. "none" entries unbind the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	for k, v := range override.Runes {
		if v.Intent == IntentNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v.Intent == IntentNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	return result
}
