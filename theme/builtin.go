package theme

// DefaultKey is the theme active at startup
const DefaultKey = "molten"

// Built-in themes
var (
	Dual = MustNew("dual", "Blue-Red",
		Bloom{Strength: 0.5, Radius: 0.6, Threshold: 0.6},
		"#1e3cff", "#00bfff", "#ffffff", "#ff4b4b", "#ff0000",
	)
	Molten = MustNew("molten", "Orange",
		Bloom{Strength: 0.35, Radius: 0.45, Threshold: 0.7},
		"#ff4800", "#ff8c00", "#d73a00", "#3d1005", "#ffc600",
	)
	Cosmic = MustNew("cosmic", "Purple",
		Bloom{Strength: 0.4, Radius: 0.5, Threshold: 0.65},
		"#6a0dad", "#9370db", "#4b0082", "#8a2be2", "#dda0dd",
	)
	Emerald = MustNew("emerald", "Green",
		Bloom{Strength: 0.3, Radius: 0.6, Threshold: 0.75},
		"#00ff7f", "#3cb371", "#2e8b57", "#00fa9a", "#98fb98",
	)
)

// Builtin returns a registry of the built-in themes
func Builtin() *Registry {
	r, err := NewRegistry(Dual, Molten, Cosmic, Emerald)
	if err != nil {
		panic(err)
	}
	return r
}
