package dto

type UploadResponse struct {
	Chunks   int    `json:"chunks"`
	Filename string `json:"filename"`
}
