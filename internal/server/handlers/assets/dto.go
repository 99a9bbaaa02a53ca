package assets

type UploadResponse struct {
	URL string `json:"url"`
}
