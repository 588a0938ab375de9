package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
)

func TestMigrations(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Migrations Suite")
}

var _ = Describe("Migrations", func() {
	var (
		ctx context.Context
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("Run", func() {
		It("should run all migrations successfully", func() {
			err := migrations.Run(ctx, db)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should create the runs table", func() {
			err := migrations.Run(ctx, db)
			Expect(err).NotTo(HaveOccurred())

			_, err = db.ExecContext(ctx, `
				INSERT INTO runs (id, workload, tasks, completed, cancelled, failed, duration_ms)
				VALUES ('00000000-0000-0000-0000-000000000001', 'factorial', 4, 4, 0, 0, 120)
			`)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should be idempotent", func() {
			Expect(migrations.Run(ctx, db)).To(Succeed())
			Expect(migrations.Run(ctx, db)).To(Succeed())
		})
	})
})
