package domain

import "errors"

// Сентинельные ошибки доменного слоя. Слой HTTP мапит их на статусы
// через errors.Is, не заглядывая в текст.
var (
	// ErrNotFound — запрошенная запись отсутствует в хранилище.
	ErrNotFound = errors.New("запись не найдена")

	// ErrValidation — обязательное поле пустое или некорректное;
	// проверяется до любого сетевого вызова.
	ErrValidation = errors.New("ошибка валидации")

	// ErrConfirmationRequired — удаление запрошено без явного подтверждения.
	ErrConfirmationRequired = errors.New("операция требует подтверждения")

	// ErrPendingOwner — попытка привязать фото галереи к ещё не сохранённому продукту.
	ErrPendingOwner = errors.New("владелец ещё не сохранён в БД")

	// ErrDuplicateKey — clave уже есть в буфере (уникальность в БД не форсируется).
	ErrDuplicateKey = errors.New("такая clave уже существует")
)
