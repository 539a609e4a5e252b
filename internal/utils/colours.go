package utils

// ColourScheme holds the Catppuccin Mocha colours used by the form
type ColourScheme struct {
	Red      string
	Peach    string
	Green    string
	Blue     string
	Lavender string
	Text     string
	Subtext0 string
	Overlay0 string
	Surface1 string
	Surface0 string
	Base     string
}

// Colours provides the default Catppuccin colour scheme
var Colours = ColourScheme{
	Red:      "#f38ba8",
	Peach:    "#fab387",
	Green:    "#a6e3a1",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay0: "#6c7086",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
}

// FieldTheme assigns colours to the parts of an input group. The Error
// variants replace their normal counterparts while a field is invalid.
type FieldTheme struct {
	Label       string
	LabelError  string
	Border      string
	BorderFocus string
	BorderError string
	Text        string
	Placeholder string
	Helper      string
	HelperError string
	Disabled    string
}

// DefaultFieldTheme is the theme used when a form does not supply one
var DefaultFieldTheme = FieldTheme{
	Label:       Colours.Text,
	LabelError:  Colours.Red,
	Border:      Colours.Surface1,
	BorderFocus: Colours.Blue,
	BorderError: Colours.Red,
	Text:        Colours.Text,
	Placeholder: Colours.Overlay0,
	Helper:      Colours.Subtext0,
	HelperError: Colours.Red,
	Disabled:    Colours.Overlay0,
}
