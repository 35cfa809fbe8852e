package provisioner

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Status là kết quả xử lý một collection hoặc index
type Status string

const (
	StatusCreated  Status = "created"
	StatusExisting Status = "existing"
)

// CollectionResult là kết quả xử lý một collection
type CollectionResult struct {
	Name   string `yaml:"name"`
	Status Status `yaml:"status"`
}

// IndexResult xác nhận một index đã có trên collection
type IndexResult struct {
	Collection string `yaml:"collection"`
	Name       string `yaml:"name"`
	Keys       string `yaml:"keys"`
	Status     Status `yaml:"status"`
}

// Report là báo cáo của một lần provisioning, chỉ dùng để hiển thị, không lưu vào database
type Report struct {
	RunID       string             `yaml:"run_id"`
	Database    string             `yaml:"database"`
	StartedAt   time.Time          `yaml:"started_at"`
	FinishedAt  time.Time          `yaml:"finished_at,omitempty"`
	Collections []CollectionResult `yaml:"collections"`
	Indexes     []IndexResult      `yaml:"indexes"`
}

// Created trả về tên các collection được tạo trong lần chạy này
func (r *Report) Created() []string {
	return r.collectionsWith(StatusCreated)
}

// Existing trả về tên các collection đã có từ trước
func (r *Report) Existing() []string {
	return r.collectionsWith(StatusExisting)
}

func (r *Report) collectionsWith(status Status) []string {
	var names []string
	for _, c := range r.Collections {
		if c.Status == status {
			names = append(names, c.Name)
		}
	}
	return names
}

// Completed cho biết lần chạy đã đi hết cả hai pha
func (r *Report) Completed() bool {
	return !r.FinishedAt.IsZero()
}

// WriteYAML ghi report dạng YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// WriteFile ghi report dạng YAML ra file
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := r.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
