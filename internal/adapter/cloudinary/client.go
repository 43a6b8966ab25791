package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	appconfig "github.com/GoArmGo/DecorApp/internal/config"
)

// Базовый URL Cloudinary API; итоговый endpoint — /{cloud_name}/image/upload.
const baseURL = "https://api.cloudinary.com/v1_1"

// Client представляет клиент для взаимодействия с хостингом изображений.
// Загрузка unsigned: файл плюс фиксированный идентификатор профиля
// (upload_preset), назад приходит JSON с публичным secure_url.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

// NewClient создает новый экземпляр Client.
func NewClient(cfg *appconfig.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      baseURL,
		cloudName:    cfg.Cloudinary.CloudName,
		uploadPreset: cfg.Cloudinary.UploadPreset,
	}
}

// UploadImage передаёт один файл хостингу и возвращает secure_url.
// Любой не-2xx статус — ошибка: URL нет, сохранение сущности не продолжается.
// Ретраев нет, повторную загрузку инициирует оператор.
func (c *Client) UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("ошибка подготовки multipart-формы: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return "", fmt.Errorf("ошибка чтения файла для загрузки: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("ошибка записи upload_preset: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("ошибка закрытия multipart-формы: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса к хостингу изображений: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("хостинг изображений вернул статус %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("хостинг изображений вернул статус %d", resp.StatusCode)
	}

	var uploaded UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("ошибка декодирования JSON ответа хостинга: %w", err)
	}
	if uploaded.SecureURL == "" {
		return "", fmt.Errorf("хостинг изображений не вернул secure_url")
	}

	return uploaded.SecureURL, nil
}
