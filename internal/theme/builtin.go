package theme

import "github.com/launchtime/launchtheme/internal/argb"

func builtinThemes(defaultName string) []*Descriptor {
	if defaultName == "" {
		defaultName = "Default"
	}
	return []*Descriptor{
		NewDefault(DefaultPack, defaultName),

		NewMonochrome("bw", "BW", Palette{
			SlotMask:          argb.Transparent,
			SlotText:          argb.White,
			SlotAltText:       argb.White,
			SlotBackground:    argb.Black,
			SlotAltBackground: argb.MustParse("#ff222222"),
		}),

		NewMonochrome("bwicon", "Black & White", Palette{
			SlotMask:          argb.White,
			SlotText:          argb.White,
			SlotAltText:       argb.White,
			SlotBackground:    argb.Black,
			SlotAltBackground: argb.MustParse("#ff222222"),
		}),

		NewMonochrome("termcap", "Termcap", Palette{
			SlotMask:          argb.MustParse("#dd22ff22"),
			SlotText:          argb.MustParse("#dd22ff22"),
			SlotAltText:       argb.MustParse("#dd22ff22"),
			SlotBackground:    argb.Black,
			SlotAltBackground: argb.MustParse("#dd112211"),
		}),

		NewMonochrome("coolblue", "Cool Blue", Palette{
			SlotMask:          argb.MustParse("#ff1111ff"),
			SlotText:          argb.MustParse("#eeffffff"),
			SlotAltText:       argb.MustParse("#eeffffff"),
			SlotBackground:    argb.MustParse("#88000077"),
			SlotAltBackground: argb.MustParse("#881111ff"),
		}),

		NewMonochrome("redplanet", "Red Planet", Palette{
			SlotMask:          argb.MustParse("#ffff2222"),
			SlotText:          argb.MustParse("#eeff2222"),
			SlotAltText:       argb.MustParse("#eeff2222"),
			SlotBackground:    argb.MustParse("#99aa1111"),
			SlotAltBackground: argb.MustParse("#22121111"),
		}),

		NewMonochrome("ladypink", "Lady Pink", Palette{
			SlotMask:          argb.MustParse("#ffff1493"),
			SlotText:          argb.MustParse("#eeffffff"),
			SlotAltText:       argb.MustParse("#eeffc0cb"),
			SlotBackground:    argb.MustParse("#ffff69b4"),
			SlotAltBackground: argb.MustParse("#ffff1493"),
		}),
	}
}
