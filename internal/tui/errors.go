// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

var serviceErrorMessages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidKey, "Неверный ключ"},
	{service.ErrNotFound, "Общая заметка не найдена"},
	{service.ErrExists, "Такая общая заметка уже есть на сервере"},
	{service.ErrLimit, "Превышен дневной лимит сервера"},
	{service.ErrMalformed, "Неверный формат кода"},
	{service.ErrAlreadyExists, "Эта общая заметка уже открыта"},
	{service.ErrSharedNoteIsEmpty, "Общая заметка пуста"},
	{service.ErrEntityNotFound, "Заметка не найдена"},
}

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range serviceErrorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
