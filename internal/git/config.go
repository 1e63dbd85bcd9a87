package git

import (
	"strings"

	"github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// layeredConfig looks keys up through config files in precedence order
// (local, then global, then system). The first file defining a key wins.
type layeredConfig []*format.Config

// loadLayeredConfig reads the repository's local config followed by the
// user's global and the system config files.
func loadLayeredConfig(local *config.Config) (layeredConfig, error) {
	layers := layeredConfig{local.Raw}

	for _, scope := range []config.Scope{config.GlobalScope, config.SystemScope} {
		cfg, err := config.LoadConfig(scope)
		if err != nil {
			return nil, err
		}
		layers = append(layers, cfg.Raw)
	}

	return layers, nil
}

// lookup returns the value of a dotted key such as "core.hooksPath" or
// "remote.origin.url". The bool reports whether the key is set.
func (c layeredConfig) lookup(key string) (string, bool) {
	section, subsection, name, ok := splitKey(key)
	if !ok {
		return "", false
	}

	for _, raw := range c {
		if raw == nil || !raw.HasSection(section) {
			continue
		}
		sec := raw.Section(section)

		if subsection == "" {
			if sec.HasOption(name) {
				return sec.Option(name), true
			}
			continue
		}

		if sec.HasSubsection(subsection) {
			sub := sec.Subsection(subsection)
			if sub.HasOption(name) {
				return sub.Option(name), true
			}
		}
	}

	return "", false
}

// splitKey splits "section[.subsection].name". The subsection may itself
// contain dots.
func splitKey(key string) (section, subsection, name string, ok bool) {
	first := strings.IndexByte(key, '.')
	last := strings.LastIndexByte(key, '.')
	if first <= 0 || last == len(key)-1 {
		return "", "", "", false
	}

	section = key[:first]
	name = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}
	return section, subsection, name, true
}
