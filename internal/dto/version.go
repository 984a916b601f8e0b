package dto

type VersionResponse struct {
	Version float64 `json:"version"`
}
