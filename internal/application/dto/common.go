package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UploadResponse resultado de subir una imagen al blob store.
type UploadResponse struct {
	ImageURL string `json:"image_url"`
}
