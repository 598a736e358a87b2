package face

// Input carries a base64-encoded face image.
type Input struct {
	ImageBase64 string `json:"image_base64"`
}

// Result is the extracted face reading.
type Result struct {
	// Quality scores how usable the submitted image is.
	Quality float64 `json:"quality"`
	// Landmarks are raw landmark coordinates when available.
	Landmarks [][]float64 `json:"landmarks"`
	// Features are measured facial proportions.
	Features map[string]float64 `json:"features"`
	// Regions score the classical face-reading regions.
	Regions map[string]float64 `json:"regions"`
	// Traits are derived personality trait scores.
	Traits map[string]float64 `json:"traits"`
}
