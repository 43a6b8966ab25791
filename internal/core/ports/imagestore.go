package ports

import (
	"context"
	"io"
)

// ImageStore определяет интерфейс для бокового канала загрузки изображений.
// Реализации: внешний хостинг изображений (Cloudinary) либо собственный
// S3-совместимый бакет (MinIO). Возвращается публичный URL, который
// сохраняется в сущности как обычная строка.
type ImageStore interface {
	// UploadImage передаёт файл хранилищу и возвращает публичный URL.
	// Ошибка означает, что URL нет и сохранение сущности продолжать нельзя.
	// Ретраев нет: повторная загрузка инициируется оператором.
	UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error)
}
