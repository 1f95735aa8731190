package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DebugPrintfPersist(key, fmtStr string, values ...any) {
	DebugPutsPersist(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrintPersist(key string, values ...any) {
	DebugPutsPersist(key, fmt.Sprint(values...))
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.PersistentDebugMsgs {
		if msg.Key == key {
			dm.PersistentDebugMsgs[i].Value = value
			return
		}
	}

	dm.PersistentDebugMsgs = append(dm.PersistentDebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	lineCount := 0
	longestLine := 0

	writeMsg := func(msg DebugMsg) {
		// builder doesn't actually error out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)
		dm.builder.WriteString("\n")

		lineCount++
		longestLine = max(longestLine, len(msg.Key)+2+len(msg.Value))
	}

	for _, msg := range dm.PersistentDebugMsgs {
		writeMsg(msg)
	}

	for _, msg := range dm.DebugMsgs {
		writeMsg(msg)
	}

	if lineCount <= 0 {
		return
	}

	// the builtin debug font is 6x16 per glyph
	const charW = 6
	const lineH = 16
	const hozMargin = 5
	const vertMargin = 5

	boxW := f64(longestLine*charW + hozMargin*2)
	boxH := f64(lineCount*lineH + vertMargin*2)

	rect := FRectWH(boxW, boxH)

	DrawFilledRect(dst, rect, color.NRGBA{0, 0, 0, 255}, false)
	StrokeRect(dst, rect.Inset(1), 2, color.NRGBA{255, 255, 255, 255}, false)

	ebu.DebugPrintAt(dst, dm.builder.String(), hozMargin, vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
