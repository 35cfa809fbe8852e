package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ vào nhiều writers (file, stdout)
// Entry được format ngay trong Fire, bytes được buffer trong channel và ghi bởi một goroutine riêng
type AsyncHook struct {
	writers []io.Writer
	entries chan []byte
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

// NewAsyncHook tạo một async hook mới với danh sách writers
// bufferSize: kích thước buffer cho log entries (mặc định 1000)
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan []byte, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel; khi hook đã đóng thì ghi trực tiếp
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	// Format ngay tại đây vì logrus tái sử dụng entry sau khi Fire trả về
	data, err := format(entry)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.write(data)
		return nil
	}

	h.entries <- data
	return nil
}

// processEntries xử lý log entries trong goroutine riêng
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for data := range h.entries {
		h.write(data)
	}
}

func (h *AsyncHook) write(data []byte) {
	for _, writer := range h.writers {
		// Một writer lỗi không chặn các writer khác
		_, _ = writer.Write(data)
	}
}

// Close đóng hook và đợi tất cả entries được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.entries)
	h.mu.Unlock()

	h.wg.Wait()

	for _, writer := range h.writers {
		if c, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = c.Close()
		}
	}
	return nil
}

func format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}
