package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	pimage "github.com/mmuldo/palettize/image"
	"github.com/mmuldo/palettize/theme"
)

var (
	templateFile string
	inspectImage string
	top          int
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Shows the palette sorted by lightness",
	Long: `Shows the palette sorted by lightness with each entry's Lab values and
the CIEDE2000 distance to the next entry.

With --image, also lists the image's most frequent colors and the palette
entry nearest to each, which is handy for checking a colorized result.
--template renders the report with a pongo2 template; the report is bound
to "report".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t, e := loadTheme(cmd)
		if e != nil {
			log.Fatal(e)
		}

		r := t.Describe()
		if inspectImage != "" {
			i, e := pimage.Load(inspectImage)
			if e != nil {
				log.Fatal(e)
			}
			r.AddUsage(i, t.Palette, top)
		}

		var o string
		if templateFile != "" {
			o, e = r.RenderFile(templateFile)
		} else {
			o, e = r.RenderString(theme.DefaultTemplate)
		}
		if e != nil {
			log.Fatal(e)
		}
		fmt.Print(o)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVar(&templateFile, "template", "", "pongo2 template file for the report")
	paletteCmd.Flags().StringVarP(&inspectImage, "image", "i", "", "image whose colors are compared against the palette")
	paletteCmd.Flags().IntVar(&top, "top", 8, "number of image colors to list, 0 for all")
}
