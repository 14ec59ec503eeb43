package dto

type UploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	ImageID  string `json:"imageId"`
}
