package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
)

var profileHeader = regexp.MustCompile(`(?m)^\s*\[([^]]+)\]`)

// sharedProfiles lista os perfis definidos em ~/.aws/credentials e ~/.aws/config.
func sharedProfiles(homeDir string) []string {
	profiles := make(map[string]bool)

	parseFile := func(path string, isConfig bool) {
		content, err := os.ReadFile(path)
		if err != nil {
			return
		}
		for _, match := range profileHeader.FindAllStringSubmatch(string(content), -1) {
			name := strings.TrimSpace(match[1])
			if isConfig {
				if strings.HasPrefix(name, "sso-session ") || strings.HasPrefix(name, "services ") {
					continue
				}
				name = strings.TrimPrefix(name, "profile ")
			}
			profiles[name] = true
		}
	}

	parseFile(filepath.Join(homeDir, ".aws", "credentials"), false)
	parseFile(filepath.Join(homeDir, ".aws", "config"), true)

	result := make([]string, 0, len(profiles))
	for p := range profiles {
		result = append(result, p)
	}
	sort.Strings(result)
	return result
}

// checkProfile falha cedo quando o perfil pedido não existe nos arquivos compartilhados.
// Sem diretório home ou sem arquivos, a decisão fica com o SDK.
func checkProfile(homeDir, profile string) error {
	if profile == "" || homeDir == "" {
		return nil
	}
	available := sharedProfiles(homeDir)
	if len(available) == 0 {
		return nil
	}
	for _, p := range available {
		if p == profile {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %s)", types.ErrUnknownProfile, profile, strings.Join(available, ", "))
}
