// Package provisioner đảm bảo các collection và index trong danh mục tồn tại trên database.
//
// Quy trình chạy tuần tự, idempotent và có thể chạy tiếp trên database đã provision một phần:
//  1. Liệt kê collection hiện có.
//  2. Tạo các collection còn thiếu theo thứ tự danh mục.
//  3. Với từng index: bỏ qua nếu đã có index cùng key và cùng mọi option, báo xung đột nếu
//     trùng tên/key nhưng khác option (unique, sparse, partial filter, TTL, collation),
//     ngược lại yêu cầu tạo.
//
// Mọi lỗi đều dừng lần chạy ngay lập tức, không rollback. Chạy lại là cách khôi phục.
package provisioner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sakethnarayana/glow-haven/internal/common"
	"github.com/sakethnarayana/glow-haven/internal/logger"
	"github.com/sakethnarayana/glow-haven/internal/schema"
	"github.com/sakethnarayana/glow-haven/internal/ui"
	"github.com/sirupsen/logrus"
)

// Store là các thao tác catalog mà provisioner cần từ database.
// Lỗi trả về nên đã được phân loại theo common (ErrConnection, ErrSchemaConflict, ...).
type Store interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
	CreateCollection(ctx context.Context, desc schema.CollectionDescriptor) error
	ListIndexes(ctx context.Context, collection string) ([]schema.IndexSpec, error)
	CreateIndex(ctx context.Context, idx schema.IndexDescriptor) (string, error)
}

// Provisioner chạy một lần provisioning trên Store
type Provisioner struct {
	store Store
	out   io.Writer
	log   *logrus.Logger
}

// New tạo Provisioner; out nhận các dòng tiến trình cho người vận hành
func New(store Store, out io.Writer) *Provisioner {
	if out == nil {
		out = io.Discard
	}
	return &Provisioner{
		store: store,
		out:   out,
		log:   logger.GetAppLogger(),
	}
}

// Provision đảm bảo mọi collection trong cols và mọi index trong idxs tồn tại.
// Khi lỗi, report trả về chứa các bước đã hoàn thành trước lỗi.
func (p *Provisioner) Provision(ctx context.Context, cols []schema.CollectionDescriptor, idxs []schema.IndexDescriptor) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Database:  p.store.Name(),
		StartedAt: time.Now().UTC(),
	}
	log := p.log.WithFields(logrus.Fields{"run_id": report.RunID, "database": report.Database})

	if err := schema.ValidateCatalog(cols, idxs); err != nil {
		return report, err
	}

	log.WithFields(logrus.Fields{
		"collections": len(cols),
		"indexes":     len(idxs),
	}).Info("Provisioning started")

	if err := p.ensureCollections(ctx, log, report, cols); err != nil {
		log.WithError(err).Error("Collection phase failed")
		return report, err
	}

	ui.Blank(p.out)
	ui.Info(p.out, "Creating indexes...")
	if err := p.ensureIndexes(ctx, log, report, idxs); err != nil {
		log.WithError(err).Error("Index phase failed")
		return report, err
	}
	ui.Success(p.out, "Indexes created successfully!")

	report.FinishedAt = time.Now().UTC()
	log.WithFields(logrus.Fields{
		"created":  len(report.Created()),
		"existing": len(report.Existing()),
		"elapsed":  report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Provisioning completed")
	return report, nil
}

// ensureCollections tạo các collection chưa có, theo thứ tự danh mục
func (p *Provisioner) ensureCollections(ctx context.Context, log *logrus.Entry, report *Report, cols []schema.CollectionDescriptor) error {
	names, err := p.store.ListCollectionNames(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	for _, desc := range cols {
		entry := log.WithField("collection", desc.Name)

		if existing[desc.Name] {
			report.Collections = append(report.Collections, CollectionResult{Name: desc.Name, Status: StatusExisting})
			ui.Skipped(p.out, "Collection already exists: %s", desc.Name)
			entry.WithField("status", StatusExisting).Info("Collection already exists")
			continue
		}

		if err := p.store.CreateCollection(ctx, desc); err != nil {
			return fmt.Errorf("create collection %s: %w", desc.Name, err)
		}
		existing[desc.Name] = true

		report.Collections = append(report.Collections, CollectionResult{Name: desc.Name, Status: StatusCreated})
		ui.Success(p.out, "Created collection: %s", desc.Name)
		entry.WithField("status", StatusCreated).Info("Created collection")
	}
	return nil
}

// ensureIndexes yêu cầu tạo từng index, bỏ qua index đã có cùng cấu hình
func (p *Provisioner) ensureIndexes(ctx context.Context, log *logrus.Entry, report *Report, idxs []schema.IndexDescriptor) error {
	for _, idx := range idxs {
		want := idx.Spec()
		entry := log.WithFields(logrus.Fields{"collection": idx.Collection, "index": want.Name})

		current, err := p.store.ListIndexes(ctx, idx.Collection)
		if err != nil {
			return fmt.Errorf("list indexes on %s: %w", idx.Collection, err)
		}

		match, err := findIndex(current, want)
		if err != nil {
			return fmt.Errorf("index %s on %s: %w", want.Name, idx.Collection, err)
		}
		if match != nil {
			report.Indexes = append(report.Indexes, IndexResult{
				Collection: idx.Collection,
				Name:       match.Name,
				Keys:       want.String(),
				Status:     StatusExisting,
			})
			entry.WithField("status", StatusExisting).Debug("Index already exists with the same keys and options")
			continue
		}

		name, err := p.store.CreateIndex(ctx, idx)
		if err != nil {
			return fmt.Errorf("create index %s on %s: %w", want.Name, idx.Collection, err)
		}

		report.Indexes = append(report.Indexes, IndexResult{
			Collection: idx.Collection,
			Name:       name,
			Keys:       want.String(),
			Status:     StatusCreated,
		})
		entry.WithField("status", StatusCreated).Info("Created index")
	}
	return nil
}

// findIndex tìm index hiện có thỏa want.
// Index cùng tên phải khớp hoàn toàn (key + mọi option), ngược lại là ErrSchemaConflict.
// Không có index cùng tên thì index khớp dưới tên khác được coi là đã có;
// chỉ trùng key mà khác option (sparse, partial, TTL, ...) cũng là ErrSchemaConflict.
func findIndex(current []schema.IndexSpec, want schema.IndexSpec) (*schema.IndexSpec, error) {
	var overlap *schema.IndexSpec
	var match *schema.IndexSpec
	for i := range current {
		have := current[i]
		if have.Name == want.Name {
			if have.Matches(want) {
				return &have, nil
			}
			return nil, indexConflict(have, want)
		}
		if !have.SameKeys(want) {
			continue
		}
		if have.Matches(want) {
			if match == nil {
				match = &have
			}
		} else if overlap == nil {
			overlap = &have
		}
	}
	if match != nil {
		return match, nil
	}
	if overlap != nil {
		return nil, indexConflict(*overlap, want)
	}
	return nil, nil
}

func indexConflict(have, want schema.IndexSpec) error {
	return common.Wrap(common.ErrSchemaConflict,
		fmt.Errorf("existing index %s %s, requested %s %s", have.Name, have.String(), want.Name, want.String()),
		"index conflicts with an existing index")
}
