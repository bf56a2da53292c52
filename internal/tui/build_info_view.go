// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, syncCode string) string {
	var b strings.Builder

	b.WriteString("Название приложения: GoNoteKeeper\n")
	b.WriteString("Версия: " + valueOrNA(info.Version) + "\n")
	b.WriteString("Дата: " + valueOrNA(info.Date) + "\n")
	b.WriteString("Коммит: " + valueOrNA(info.Commit) + "\n\n")
	b.WriteString("Код синхронизации: " + valueOrNA(syncCode))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
