package batch

// Pair maps one chroma-keyed source image to the path its transparent
// version is written to.
type Pair struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Config is the ordered list of files a batch processes.
type Config struct {
	Pairs []Pair `json:"pairs"`
}

// DefaultConfig returns the garden decor sprites, relative to the project
// root.
func DefaultConfig() Config {
	return Config{
		Pairs: []Pair{
			{Input: "public/items/decor_cat_green.png", Output: "public/items/decor_cat.png"},
			{Input: "public/items/decor_firepit_green.png", Output: "public/items/decor_firepit.png"},
			{Input: "public/items/decor_gnome_green.png", Output: "public/items/decor_gnome.png"},
			{Input: "public/items/decor_mushrooms_green.png", Output: "public/items/decor_mushrooms.png"},
		},
	}
}
