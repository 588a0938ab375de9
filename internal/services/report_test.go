package services_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/antonioclim/taskpool/internal/models"
	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
)

var _ = Describe("Report", func() {
	var (
		ctx    context.Context
		db     *sql.DB
		st     *store.Store
		report *services.Report
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		st = store.NewStore(db)
		report = services.NewReportService(st)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should export stored runs to a workbook", func() {
		for _, workload := range []string{"factorial", "fibonacci"} {
			run := &models.Run{
				ID:        uuid.New(),
				Workload:  workload,
				Tasks:     4,
				Completed: 4,
				Duration:  100 * time.Millisecond,
			}
			Expect(st.Runs().Save(ctx, run)).To(Succeed())
		}

		path := filepath.Join(GinkgoT().TempDir(), "runs.xlsx")
		count, err := report.Export(ctx, path)

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))

		f, err := excelize.OpenFile(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Runs")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3)) // header + 2 runs
		Expect(rows[0][1]).To(Equal("Workload"))
	})

	It("should write an empty workbook when there is no history", func() {
		path := filepath.Join(GinkgoT().TempDir(), "empty.xlsx")
		count, err := report.Export(ctx, path)

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})
})
