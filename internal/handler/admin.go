package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/GoArmGo/DecorApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Ограничение размера multipart-формы при загрузке изображений.
const maxUploadBytes = 20 << 20 // 20 MiB

// AdminHandler — обработчик админских CRUD-экранов.
type AdminHandler struct {
	catalog usecase.AdminCatalogUseCase
	config  usecase.ConfigUseCase
	logger  *slog.Logger
}

// NewAdminHandler создаёт новый экземпляр AdminHandler.
func NewAdminHandler(catalog usecase.AdminCatalogUseCase, config usecase.ConfigUseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, config: config, logger: logger}
}

// confirmed — двухшаговое удаление: без confirm=1 запись не трогается.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "1"
}

func parseIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// Session — сигнал "вошёл ли оператор"; сами сессии живут у провайдера.
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No autorizado", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, session, h.logger)
}

// --- события ---

func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalog.ListEvents(r.Context())
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar eventos", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: events}, h.logger)
}

func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input usecase.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	evt, err := h.catalog.CreateEvent(r.Context(), input)
	if err != nil {
		h.logger.Error("failed to create event", "error", err)
		respondDomainError(w, err, "Error al guardar el evento", h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, evt, h.logger)
}

func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	var input usecase.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	evt, err := h.catalog.UpdateEvent(r.Context(), id, input)
	if err != nil {
		h.logger.Error("failed to update event", "id", id, "error", err)
		respondDomainError(w, err, "Error al guardar el evento", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, evt, h.logger)
}

func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.catalog.DeleteEvent(r.Context(), id, confirmed(r)); err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			// Предупреждаем о каскаде до того, как что-либо удалено.
			respondWithError(w, http.StatusConflict,
				"Esto borrará también todos los productos asociados. Repite la solicitud con confirm=1.", h.logger)
			return
		}
		h.logger.Error("failed to delete event", "id", id, "error", err)
		respondDomainError(w, err, "Error al eliminar el evento", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Evento eliminado"}, h.logger)
}

// --- продукты ---

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar productos", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: products}, h.logger)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	prod, err := h.catalog.CreateProduct(r.Context(), input)
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		respondDomainError(w, err, "Error al guardar el producto", h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, prod, h.logger)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	var input usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	prod, err := h.catalog.UpdateProduct(r.Context(), id, input)
	if err != nil {
		h.logger.Error("failed to update product", "id", id, "error", err)
		respondDomainError(w, err, "Error al guardar el producto", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, prod, h.logger)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id, confirmed(r)); err != nil {
		h.logger.Warn("product delete rejected or failed", "id", id, "error", err)
		respondDomainError(w, err, "Error al eliminar el producto", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Producto eliminado"}, h.logger)
}

// --- галерея ---

// AttachGalleryPhoto принимает multipart-файл, грузит его через боковой
// канал и привязывает к продукту. Владелец в пути может быть pending-id
// из буфера формы — тогда загрузка отклоняется до обращения к хостингу.
func (h *AdminHandler) AttachGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	var owner domain.RowID
	if err := owner.UnmarshalText([]byte(chi.URLParam(r, "id"))); err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Formulario multipart inválido", h.logger)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Falta el archivo (campo file)", h.logger)
		return
	}
	defer file.Close()

	photo, err := h.catalog.AttachGalleryPhoto(r.Context(), owner, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("failed to attach gallery photo", "owner", owner.String(), "error", err)
		respondDomainError(w, err, "Error al subir la foto", h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, photo, h.logger)
}

func (h *AdminHandler) ListGalleryPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	photos, err := h.catalog.ListGalleryPhotos(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list gallery photos", "producto_id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar la galería", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: photos}, h.logger)
}

func (h *AdminHandler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.catalog.DeleteGalleryPhoto(r.Context(), id, confirmed(r)); err != nil {
		h.logger.Warn("gallery photo delete rejected or failed", "id", id, "error", err)
		respondDomainError(w, err, "Error al eliminar la foto", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Foto eliminada"}, h.logger)
}

// --- конфигурация ---

func (h *AdminHandler) GetConfigScreen(w http.ResponseWriter, r *http.Request) {
	rows, err := h.config.LoadScreen(r.Context())
	if err != nil {
		h.logger.Error("failed to load config screen", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar la configuración", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: rows}, h.logger)
}

// saveConfigRequest — полный буфер экрана: id строки (настоящий или
// pending) → новое значение.
type saveConfigRequest struct {
	Values map[domain.RowID]string `json:"values"`
}

// SaveConfigScreen — массовое сохранение конфигурации через компонент
// синхронизации. Оператору уходит один агрегированный итог.
func (h *AdminHandler) SaveConfigScreen(w http.ResponseWriter, r *http.Request) {
	var req saveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	rows, result, err := h.config.SaveScreen(r.Context(), req.Values)
	if err != nil {
		h.logger.Error("failed to save config screen", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al guardar los cambios", h.logger)
		return
	}

	message := "Cambios guardados correctamente"
	if !result.OK() {
		message = "Algunos cambios no se pudieron guardar"
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items":   rows,
		"saved":   result.Inserted + result.Updated,
		"failed":  len(result.Failed),
		"message": message,
	}, h.logger)
}

func (h *AdminHandler) CreateConfigEntry(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConfigEntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "JSON inválido", h.logger)
		return
	}

	entry, err := h.config.CreateEntry(r.Context(), input)
	if err != nil {
		h.logger.Error("failed to create config entry", "clave", input.Clave, "error", err)
		respondDomainError(w, err, "Error al crear", h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry, h.logger)
}

func (h *AdminHandler) DeleteConfigEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.config.DeleteEntry(r.Context(), id, confirmed(r)); err != nil {
		h.logger.Warn("config entry delete rejected or failed", "id", id, "error", err)
		respondDomainError(w, err, "Error al eliminar", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Registro eliminado"}, h.logger)
}

// --- загрузка изображений ---

// Upload — боковой канал: файл уходит хостингу, назад возвращается только
// публичный URL; сущность сохраняется отдельным запросом уже с этим URL.
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Formulario multipart inválido", h.logger)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Falta el archivo (campo file)", h.logger)
		return
	}
	defer file.Close()

	url, err := h.catalog.UploadImage(r.Context(), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("image upload failed", "filename", header.Filename, "error", err)
		respondWithError(w, http.StatusBadGateway, "Error al subir la imagen", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"secure_url": url}, h.logger)
}
