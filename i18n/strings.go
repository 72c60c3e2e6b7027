// Package i18n holds the dashboard's English and Spanish strings and the
// operator's persisted language choice.
package i18n

import "golang.org/x/text/language"

// Lang is a supported dashboard language.
type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if l == Spanish {
		return language.Spanish
	}
	return language.English
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == Spanish {
		return English
	}
	return Spanish
}

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Match maps an arbitrary locale string ("es-MX", "en_US.UTF-8", "") to a
// supported language, defaulting to English.
func Match(s string) Lang {
	if s == "" {
		return English
	}
	tag, _, _ := matcher.Match(language.Make(s))
	base, _ := tag.Base()
	if base.String() == "es" {
		return Spanish
	}
	return English
}

var tables = map[Lang]map[string]string{
	English: {
		"app.title":                   "BEAST-OX COMMAND",
		"app.version":                 "v2.1.7 CLASSIFIED",
		"sidebar.centerCommand":       "COMMAND CENTER",
		"sidebar.players":             "PLAYERS",
		"sidebar.operations":          "JOBS/GANGS",
		"sidebar.missions":            "MISSIONS",
		"sidebar.tickets":             "TICKETS",
		"status.systemOnline":         "SYSTEM ONLINE",
		"status.devMode":              "DEV MODE",
		"status.uptime":               "UPTIME",
		"commandCenter.playersActive": "ACTIVE PLAYERS",
		"commandCenter.inAction":      "Active",
		"commandCenter.disconnected":  "Disconnected",
		"commandCenter.banned":        "Banned",
		"commandCenter.activityLog":   "ACTIVITY LOG",
		"commandCenter.adminChat":     "ADMIN CHAT",
		"commandCenter.empty":         "No activity yet",
		"header.tacticalCommand":      "TACTICAL COMMAND",
		"header.lastUpdate":           "LAST UPDATE",
		"language.selectLanguage":     "Select Language",
		"language.english":            "English",
		"language.spanish":            "Español",
		"icon.open":                   "Open Dashboard",
		"icon.close":                  "Close",
		"confirm.confirm":             "Confirm",
		"confirm.cancel":              "Cancel",
		"help.global":                 "tab section · ctrl+b sidebar · ctrl+l language · ctrl+n minimize · ctrl+c quit",
	},
	Spanish: {
		"app.title":                   "COMANDO BEAST-OX",
		"app.version":                 "v2.1.7 CLASIFICADO",
		"sidebar.centerCommand":       "CENTRO DE MANDO",
		"sidebar.players":             "JUGADORES",
		"sidebar.operations":          "TRABAJOS/BANDAS",
		"sidebar.missions":            "MISIONES",
		"sidebar.tickets":             "TICKETS",
		"status.systemOnline":         "SISTEMA EN LÍNEA",
		"status.devMode":              "MODO DESARROLLO",
		"status.uptime":               "TIEMPO DE ACTIVIDAD",
		"commandCenter.playersActive": "JUGADORES ACTIVOS",
		"commandCenter.inAction":      "Activos",
		"commandCenter.disconnected":  "Desconectados",
		"commandCenter.banned":        "Baneados",
		"commandCenter.activityLog":   "REGISTRO DE ACTIVIDAD",
		"commandCenter.adminChat":     "CHAT DE ADMINS",
		"commandCenter.empty":         "Sin actividad",
		"header.tacticalCommand":      "COMANDO TÁCTICO",
		"header.lastUpdate":           "ÚLTIMA ACTUALIZACIÓN",
		"language.selectLanguage":     "Seleccionar idioma",
		"language.english":            "English",
		"language.spanish":            "Español",
		"icon.open":                   "Abrir Dashboard",
		"icon.close":                  "Cerrar",
		"confirm.confirm":             "Confirmar",
		"confirm.cancel":              "Cancelar",
		"help.global":                 "tab sección · ctrl+b barra · ctrl+l idioma · ctrl+n minimizar · ctrl+c salir",
	},
}

// T looks key up in l's table, falling back to English and then to the key
// itself.
func T(l Lang, key string) string {
	if s, ok := tables[l][key]; ok {
		return s
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return key
}
