// Lệnh provision tạo các collection và index cho database beauty_db.
//
// Không nhận tham số dòng lệnh, mọi cấu hình lấy từ biến môi trường
// (hoặc file config/env/<GO_ENV>.env). Chạy lại nhiều lần là an toàn.
package main

import (
	"context"
	"io"
	"os"

	"github.com/sakethnarayana/glow-haven/internal/common"
	"github.com/sakethnarayana/glow-haven/internal/database"
	"github.com/sakethnarayana/glow-haven/internal/logger"
	"github.com/sakethnarayana/glow-haven/internal/provisioner"
	"github.com/sakethnarayana/glow-haven/internal/schema"
	"github.com/sakethnarayana/glow-haven/internal/ui"
	"github.com/sirupsen/logrus"
)

// run chạy một lần provisioning và trả về exit code
func run(stdout, stderr io.Writer) int {
	envPath, err := initEnv()
	if err != nil {
		ui.Failure(stderr, "%v", err)
		return common.ExitCode(err)
	}

	if err := initLogger(); err != nil {
		ui.Failure(stderr, "%v", err)
		return common.ExitConfiguration
	}
	defer logger.Shutdown()

	log := logger.GetAppLogger()
	fail := func(err error) int {
		log.WithError(err).Error("Provisioning failed")
		ui.Failure(stderr, "%v", err)
		return common.ExitCode(err)
	}

	cfg, err := initConfig(envPath)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ProvisionTimeout)
	defer cancel()

	client, store, err := initDatabase(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = database.CloseInstance(client) }()

	report, err := provisioner.New(store, stdout).Provision(ctx, schema.Collections(), schema.Indexes())

	// Report được ghi cả khi lỗi, để biết lần chạy đã dừng ở đâu
	if cfg.ReportFile != "" && report != nil {
		writeReport(log, report, cfg.ReportFile)
	}
	if err != nil {
		return fail(common.ConvertMongoError(err))
	}

	ui.Blank(stdout)
	ui.Done(stdout, "MongoDB schema setup complete!")
	return common.ExitSuccess
}

// writeReport ghi report ra file; lỗi ghi file không làm đổi exit code
func writeReport(log *logrus.Logger, report *provisioner.Report, path string) {
	entry := log.WithFields(logrus.Fields{
		"file":      path,
		"run_id":    report.RunID,
		"completed": report.Completed(),
	})
	if err := report.WriteFile(path); err != nil {
		entry.WithError(err).Warn("Cannot write provisioning report")
		return
	}
	if !report.Completed() {
		entry.Warn("Partial provisioning report written")
		return
	}
	entry.Info("Provisioning report written")
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}
