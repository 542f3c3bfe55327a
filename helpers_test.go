package shadegrid

// smallConfig is a 26x20 texture that keeps every stage enabled.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.SquareSize = 4
	cfg.GapSize = 2
	cfg.SquaresX = 3
	cfg.SquaresY = 2
	cfg.BorderSize = 3
	cfg.Noise.Rounds = 3
	return cfg
}

// isInterior reports whether (row, col) lies inside the border margin.
func isInterior(cfg Config, row, col int) bool {
	w, h := cfg.Size()
	b := cfg.BorderSize
	return row >= b && row < h-b && col >= b && col < w-b
}
