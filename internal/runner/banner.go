package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
                             
   ___ __ _____  ___ _____ __
  (_-</ // / _ \/ -_) __/\ \ /
 /___/\_,_/ .__/\__/_/  /_\_\ 
         /_/                  
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
