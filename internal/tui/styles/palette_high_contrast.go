package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#1a1a1a",
		Text:       "#ffffff",
		TextMuted:  "#d0d0d0",
		Border:     "#ffffff",
		Accent:     "#00e5ff",
		Focus:      "#ffea00",
		Success:    "#00ff5a",
		Warning:    "#ffb000",
		Error:      "#ff4040",
		Info:       "#66ccff",
	},
}
