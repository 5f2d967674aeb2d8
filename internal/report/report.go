// Package report renders computed workouts as human-readable summary lines.
package report

import (
	"fmt"
	"io"

	"fittracker/internal/calculator"
)

const lineFormat = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// Format renders r as a single summary sentence. Every number is printed in
// fixed-point notation with three decimals.
func Format(r calculator.Report) string {
	return fmt.Sprintf(lineFormat, r.Kind, r.Duration, r.Distance, r.Speed, r.Calories)
}

// Writer writes one newline-terminated summary line per report.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(r calculator.Report) error {
	if _, err := fmt.Fprintln(w.w, Format(r)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
