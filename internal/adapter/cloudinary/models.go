package cloudinary

// UploadResponse — тело успешного ответа хостинга изображений.
// Нас интересует только secure_url, остальное — для логов.
type UploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
}

// ErrorResponse — тело ответа при ошибке загрузки.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
