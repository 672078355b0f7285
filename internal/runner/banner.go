package runner

import (
	"fmt"

	"github.com/projectdiscovery/gologger"

	"github.com/projectdiscovery/ipfold/pkg/version"
)

var banner = fmt.Sprintf(`
   _        ____      __    __
  (_)___   / __/___  / /___/ /
 / / __ \ / /_/ __ \/ / __  /
/ / /_/ // __/ /_/ / / /_/ /
/_/ .___//_/  \____/_/\__,_/  %s
 /_/
`, version.Version)

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
