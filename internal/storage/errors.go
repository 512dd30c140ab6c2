package storage

import "errors"

// Сентинельные ошибки хранилища, хендлеры проверяют их через errors.Is
var (
	ErrNotFound      = errors.New("запись не найдена")
	ErrDuplicateName = errors.New("запись с таким именем уже существует")
	ErrDuplicateLink = errors.New("продукт уже связан с этим цехом")
	ErrHasDependents = errors.New("запись используется и не может быть удалена")
)
