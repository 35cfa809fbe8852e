// Package ui in các dòng tiến trình có màu ra console.
//
// Màu tự tắt khi output không phải TTY hoặc khi có biến môi trường NO_COLOR.
//   - Xanh lá: tạo mới, hoàn tất
//   - Vàng: đã tồn tại, bỏ qua
//   - Cyan: thông tin
//   - Đỏ: lỗi
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
)

// Success in dòng thành công: "✅ <msg>"
func Success(w io.Writer, format string, args ...any) {
	_, _ = Green.Fprintf(w, "✅ "+format+"\n", args...)
}

// Skipped in dòng bỏ qua vì đã tồn tại: "⚙️ <msg>"
func Skipped(w io.Writer, format string, args ...any) {
	_, _ = Yellow.Fprintf(w, "⚙️ "+format+"\n", args...)
}

// Info in dòng thông tin: "⚙️ <msg>"
func Info(w io.Writer, format string, args ...any) {
	_, _ = Cyan.Fprintf(w, "⚙️ "+format+"\n", args...)
}

// Done in dòng kết thúc: "🎉 <msg>"
func Done(w io.Writer, format string, args ...any) {
	_, _ = Bold.Fprintf(w, "🎉 "+format+"\n", args...)
}

// Failure in dòng lỗi: "❌ <msg>"
func Failure(w io.Writer, format string, args ...any) {
	_, _ = Red.Fprintf(w, "❌ "+format+"\n", args...)
}

// Blank in một dòng trống
func Blank(w io.Writer) {
	_, _ = fmt.Fprintln(w)
}
