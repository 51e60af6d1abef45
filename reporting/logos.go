package reporting

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

const intelLogo = `
    ///////////////
    /////INTEL/////
    ///////////////`

const amdLogo = `
   ///////////
  //   AMD  //
 ///////////`

const armLogo = `
  /=======\
 // ARM   ||
 \\      //
  \=====/`

const appleLogo = `
     .
    / \
   /   \
  /     \
 /  APPLE \
/___________\`

const genericLogo = `
  /---------\
 |   CPU    |
  \---------/`

// Logo returns the ASCII art logo for a vendor, colored unless noColor is set.
func Logo(vendor string, noColor bool) string {
	var logo string
	var color text.Color

	switch vendor {
	case "Intel":
		logo, color = intelLogo, text.FgBlue
	case "AMD":
		logo, color = amdLogo, text.FgRed
	case "ARM":
		logo, color = armLogo, text.FgGreen
	case "Apple":
		logo, color = appleLogo, text.FgWhite
	default:
		logo, color = genericLogo, text.FgYellow
	}

	if noColor {
		return logo
	}
	return color.Sprint(text.Bold.Sprint(logo))
}
