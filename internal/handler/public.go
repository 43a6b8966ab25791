package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/GoArmGo/DecorApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PublicHandler — обработчик публичных страниц: только чтение,
// один снимок данных на запрос.
type PublicHandler struct {
	public usecase.PublicCatalogUseCase
	logger *slog.Logger
}

// NewPublicHandler создаёт новый экземпляр PublicHandler.
func NewPublicHandler(public usecase.PublicCatalogUseCase, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{public: public, logger: logger}
}

// listResponse — ответ списочных страниц. Пустой список — это не пустой
// экран: message объясняет состояние явно.
type listResponse struct {
	Items   interface{} `json:"items"`
	Message string      `json:"message,omitempty"`
}

// ListEvents — публичный список событий.
// Ошибка чтения логируется и превращается в пустое состояние, не в падение.
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.public.ListActiveEvents(r.Context())
	if err != nil {
		h.logger.Error("failed to list public events", "error", err)
		events = nil
	}

	resp := listResponse{Items: events}
	if len(events) == 0 {
		resp.Items = []domain.Event{}
		resp.Message = "No hay eventos disponibles"
	}
	respondWithJSON(w, http.StatusOK, resp, h.logger)
}

// GetEvent — публичная страница события с его активными продуктами.
func (h *PublicHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Evento no encontrado", h.logger)
		return
	}

	evt, products, err := h.public.GetEventDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Evento no encontrado", h.logger)
			return
		}
		h.logger.Error("failed to get public event", "id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar el evento", h.logger)
		return
	}

	if products == nil {
		products = []domain.ProductWithEvent{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"evento":    evt,
		"productos": products,
	}, h.logger)
}

// ListProducts — публичный список продуктов. Фильтр по событию и поиск
// по подстроке выполняются в памяти над уже выбранными данными.
func (h *PublicHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var eventoID uuid.UUID
	if raw := r.URL.Query().Get("evento"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Parámetro evento inválido", h.logger)
			return
		}
		eventoID = parsed
	}
	query := r.URL.Query().Get("q")

	products, err := h.public.ListActiveProducts(r.Context(), eventoID, query)
	if err != nil {
		h.logger.Error("failed to list public products", "error", err)
		products = nil
	}

	resp := listResponse{Items: products}
	if len(products) == 0 {
		resp.Items = []domain.ProductWithEvent{}
		resp.Message = "No hay productos disponibles"
	}
	respondWithJSON(w, http.StatusOK, resp, h.logger)
}

// GetProduct — публичная страница продукта: продукт, имя события, галерея.
// Несуществующий id — стандартный not found, не ошибка.
func (h *PublicHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Producto no encontrado", h.logger)
		return
	}

	prod, photos, err := h.public.GetProductDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Producto no encontrado", h.logger)
			return
		}
		h.logger.Error("failed to get public product", "id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error al cargar el producto", h.logger)
		return
	}

	if photos == nil {
		photos = []domain.GalleryPhoto{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"producto": prod,
		"galeria":  photos,
	}, h.logger)
}

// GetConfig — публичная конфигурация: только mostrar = true,
// сгруппированная по categoria. Отсутствующие claves просто отсутствуют.
func (h *PublicHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.public.PublicConfig(r.Context())
	if err != nil {
		h.logger.Error("failed to load public config", "error", err)
		grouped = map[string][]domain.ConfigEntry{}
	}
	respondWithJSON(w, http.StatusOK, grouped, h.logger)
}
