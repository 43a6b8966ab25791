package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/DecorApp/internal/domain"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondDomainError мапит сентинельные ошибки домена на статусы.
// Сообщения для оператора — на языке сайта.
func respondDomainError(w http.ResponseWriter, err error, fallback string, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondWithError(w, http.StatusBadRequest, "Faltan campos obligatorios o son inválidos", logger)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Recurso no encontrado", logger)
	case errors.Is(err, domain.ErrConfirmationRequired):
		respondWithError(w, http.StatusConflict, "La operación requiere confirmación explícita (confirm=1)", logger)
	case errors.Is(err, domain.ErrPendingOwner):
		respondWithError(w, http.StatusConflict, "Guarda el producto antes de subir fotos a la galería", logger)
	case errors.Is(err, domain.ErrDuplicateKey):
		respondWithError(w, http.StatusBadRequest, "Esa clave ya existe", logger)
	default:
		respondWithError(w, http.StatusInternalServerError, fallback, logger)
	}
}
