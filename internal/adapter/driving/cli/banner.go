package cli

import (
	"fmt"

	"github.com/diillson/bikeshare-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ____  _ _          ____                  _        _
    | __ )(_) | _____  |  _ \ ___ _ __   __ _| |  ___ | |
    |  _ \| | |/ / _ \ | |_) / _ \ '_ \ / _' | | / __|| |
    | |_) | |   <  __/ |  _ <  __/ | | | (_| | | \__ \|_|
    |____/|_|_|\_\___| |_| \_\___|_| |_|\__,_|_| |___/(_)
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(yellow(fmt.Sprintf("Bike Rental Dashboard (v%s)", version.FormatVersion())))
}
