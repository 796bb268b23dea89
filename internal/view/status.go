// Package view derives everything the results surface displays from the
// backend payload. Nothing here touches fyne, so it is tested directly.
package view

import (
	"image/color"

	"toolvision/internal/models"
)

var (
	ColorGreen  = color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	ColorRed    = color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	ColorOrange = color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	ColorPurple = color.NRGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff}
	ColorYellow = color.NRGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	ColorAmber  = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	ColorPink   = color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	ColorGray   = color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

type badge struct {
	color color.NRGBA
	label string
}

var badges = map[models.Status]badge{
	models.StatusComplete:          {ColorGreen, "Полный комплект"},
	models.StatusMissing:           {ColorRed, "Не хватает инструментов"},
	models.StatusExtra:             {ColorOrange, "Лишние инструменты"},
	models.StatusMixed:             {ColorPurple, "Недостача и лишние"},
	models.StatusDuplicates:        {ColorYellow, "Дубликаты"},
	models.StatusDuplicatesOnly:    {ColorAmber, "Только дубликаты"},
	models.StatusMissingDuplicates: {ColorPink, "Недостача и дубликаты"},
	models.StatusError:             {ColorGray, "Ошибка"},
	models.StatusUnknown:           {ColorGray, "Неизвестно"},
}

// StatusColor is total: unrecognized statuses are gray.
func StatusColor(s models.Status) color.NRGBA {
	if b, ok := badges[s]; ok {
		return b.color
	}
	return ColorGray
}

func StatusLabel(s models.Status) string {
	if b, ok := badges[s]; ok {
		return b.label
	}
	return badges[models.StatusUnknown].label
}
