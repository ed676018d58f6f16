package dto

type ConvertRequest struct {
	Value  string `json:"value"`
	Kind   string `json:"kind"`   // "lat" or "lon"
	Format string `json:"format"` // "dms" or "ddm"
}

type ConvertResponse struct {
	DD  float64 `json:"dd"`
	DMS string  `json:"dms"`
}
