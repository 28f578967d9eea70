package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// watermarkAngleSentinel detects if --wm-angle was explicitly set.
// Since 0 is a valid angle (horizontal), we use an out-of-range
// sentinel. Valid range is -90 to 90; -999 is safely outside this range.
const watermarkAngleSentinel = -999.0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	border      bool
	borderWidth int
	borderColor string
	borderStyle string
}

// watermarkFlags holds watermark-related flags.
type watermarkFlags struct {
	text     string
	image    string
	color    string
	opacity  float64
	angle    float64
	disabled bool
}

// regionFlags holds flags for one header or footer region.
type regionFlags struct {
	text        string
	pageNumbers bool
	pageFormat  string
	numberStyle string
	alignment   string
	separator   bool
	disabled    bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	format    string
	theme     string
	workers   int
	timeout   string
	page      pageFlags
	watermark watermarkFlags
	header    regionFlags
	footer    regionFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.BoolVar(&f.border, "page-border", false, "draw a border on every page")
	fs.IntVar(&f.borderWidth, "border-width", 0, "page border width in points")
	fs.StringVar(&f.borderColor, "border-color", "", "page border color (hex)")
	fs.StringVar(&f.borderStyle, "border-style", "", "border style: single, double, dashed, dotted")
}

// addWatermarkFlags adds watermark flags to a FlagSet.
func addWatermarkFlags(fs *flag.FlagSet, f *watermarkFlags) {
	fs.StringVar(&f.text, "wm-text", "", "watermark text")
	fs.StringVar(&f.image, "wm-image", "", "watermark image path")
	fs.StringVar(&f.color, "wm-color", "", "watermark color (hex)")
	fs.Float64Var(&f.opacity, "wm-opacity", 0, "watermark opacity (0.0-1.0)")
	fs.Float64Var(&f.angle, "wm-angle", watermarkAngleSentinel, "watermark angle in degrees")
	fs.BoolVar(&f.disabled, "no-watermark", false, "disable watermark")
}

// addRegionFlags adds header or footer flags with the given prefix.
func addRegionFlags(fs *flag.FlagSet, prefix string, f *regionFlags) {
	fs.StringVar(&f.text, prefix+"-text", "", prefix+" text")
	fs.BoolVar(&f.pageNumbers, prefix+"-page-numbers", false, "show page numbers in "+prefix)
	fs.StringVar(&f.pageFormat, prefix+"-page-format", "", "page number template, e.g. \"Page X of Y\"")
	fs.StringVar(&f.numberStyle, prefix+"-number-style", "", "number style: arabic, roman, alphabetic")
	fs.StringVar(&f.alignment, prefix+"-align", "", "alignment: left, center, right")
	fs.BoolVar(&f.separator, prefix+"-separator", false, "draw a separator rule under/over the "+prefix)
	fs.BoolVar(&f.disabled, "no-"+prefix, false, "disable "+prefix)
}

// parseConvertFlags parses convert command flags and returns positional
// args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, md, txt, pdf")
	fs.StringVar(&f.theme, "theme", "", "theme name or file path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addWatermarkFlags(fs, &f.watermark)
	addRegionFlags(fs, "header", &f.header)
	addRegionFlags(fs, "footer", &f.footer)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
