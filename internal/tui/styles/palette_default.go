package styles

// DefaultTheme matches the launcher's stock dark chrome.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#303030",
		Panel:      "#505050",
		Text:       "#ffffff",
		TextMuted:  "#a8a8a8",
		Border:     "#6a6a6a",
		Accent:     "#33b5e5",
		Focus:      "#ffffff",
		Success:    "#99cc00",
		Warning:    "#ffbb33",
		Error:      "#ff4444",
		Info:       "#33b5e5",
	},
}
