package model

import (
	"fmt"
	"strconv"
)

// Locale selects a built-in set of unit words.
type Locale string

const (
	LocalePortuguese Locale = "pt"
	LocaleEnglish    Locale = "en"
)

// UnitWord holds the singular and plural forms of one unit.
type UnitWord struct {
	Singular string
	Plural   string
}

// Format renders value with the singular form when value is exactly 1 and the
// plural form otherwise.
func (w UnitWord) Format(value int64) string {
	word := w.Plural
	if value == 1 {
		word = w.Singular
	}
	return strconv.FormatInt(value, 10) + " " + word
}

// UnitLabels holds the words for every ElapsedDuration field.
type UnitLabels struct {
	Months  UnitWord
	Days    UnitWord
	Hours   UnitWord
	Minutes UnitWord
	Seconds UnitWord
}

var builtinLabels = map[Locale]UnitLabels{
	LocalePortuguese: {
		Months:  UnitWord{Singular: "mês", Plural: "meses"},
		Days:    UnitWord{Singular: "dia", Plural: "dias"},
		Hours:   UnitWord{Singular: "hora", Plural: "horas"},
		Minutes: UnitWord{Singular: "minuto", Plural: "minutos"},
		Seconds: UnitWord{Singular: "segundo", Plural: "segundos"},
	},
	LocaleEnglish: {
		Months:  UnitWord{Singular: "month", Plural: "months"},
		Days:    UnitWord{Singular: "day", Plural: "days"},
		Hours:   UnitWord{Singular: "hour", Plural: "hours"},
		Minutes: UnitWord{Singular: "minute", Plural: "minutes"},
		Seconds: UnitWord{Singular: "second", Plural: "seconds"},
	},
}

// LabelsFor returns the unit words for locale.
func LabelsFor(locale Locale) (UnitLabels, error) {
	labels, ok := builtinLabels[locale]
	if !ok {
		return UnitLabels{}, fmt.Errorf("unsupported locale %q", locale)
	}
	return labels, nil
}
