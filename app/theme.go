package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const themeEntry = "park-theme"

// LoadTheme reads the persisted light/dark preference; anything unexpected
// falls back to light.
func LoadTheme(dir string) string {
	raw, err := os.ReadFile(filepath.Join(dir, themeEntry))
	if err != nil {
		return "light"
	}
	if strings.TrimSpace(string(raw)) == "dark" {
		return "dark"
	}
	return "light"
}

func SaveTheme(dir, theme string) error {
	return os.WriteFile(filepath.Join(dir, themeEntry), []byte(theme), 0o600)
}

func (s *Shell) ToggleTheme() {
	s.theme = lo.Ternary(s.theme == "light", "dark", "light")
	if err := SaveTheme(s.stateDir, s.theme); err != nil {
		s.log.WithError(err).Warn("could not persist theme preference")
	}
	fmt.Fprintf(s.out, "Theme set to %s.\n", s.theme)
}
