package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/antonioclim/taskpool/api/v1"
	"github.com/antonioclim/taskpool/internal/handlers"
	"github.com/antonioclim/taskpool/internal/server"
	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
	"github.com/antonioclim/taskpool/pkg/pool"
)

func TestE2E(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

// The suite boots the full stack in process: an in-memory database behind the
// real migrations, a live worker pool, and the production router served over
// an httptest listener. Requests go through the same HTTP path a deployed
// daemon would serve.
var _ = Describe("taskpool daemon", func() {
	var (
		ts     *httptest.Server
		runner *services.Runner
		st     *store.Store
	)

	BeforeEach(func() {
		db, err := store.NewDB(":memory:")
		Expect(err).To(BeNil())
		Expect(migrations.Run(context.Background(), db)).To(BeNil())
		st = store.NewStore(db)

		p, err := pool.New[int, int64](4, 32)
		Expect(err).To(BeNil())
		runner = services.NewRunnerService(p, st)

		ts = httptest.NewServer(server.Router(handlers.New(runner, st)))
	})

	AfterEach(func() {
		ts.Close()
		Expect(runner.Shutdown()).To(BeNil())
		Expect(st.Close()).To(BeNil())
	})

	It("reports healthy", func() {
		resp, err := http.Get(ts.URL + "/health")
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("executes a batch over the wire and lists it afterwards", func() {
		// When a batch of 6 factorial tasks is submitted
		body, err := json.Marshal(v1.CreateRunRequest{
			Workload: "factorial",
			Args:     []int{1, 2, 3, 4, 5, 6},
		})
		Expect(err).To(BeNil())

		resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json", bytes.NewReader(body))
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		// Then the response carries the completed run summary
		var created v1.Run
		Expect(json.NewDecoder(resp.Body).Decode(&created)).To(BeNil())
		Expect(created.Workload).To(Equal("factorial"))
		Expect(created.Tasks).To(Equal(6))
		Expect(created.Completed).To(Equal(6))
		Expect(created.Failed).To(BeZero())
		Expect(created.CreatedAt).NotTo(BeZero())

		// And the run shows up in the history
		listResp, err := http.Get(ts.URL + "/api/v1/runs")
		Expect(err).To(BeNil())
		defer listResp.Body.Close()
		Expect(listResp.StatusCode).To(Equal(http.StatusOK))

		var list v1.RunListResponse
		Expect(json.NewDecoder(listResp.Body).Decode(&list)).To(BeNil())
		Expect(list.Total).To(Equal(1))
		Expect(list.Runs).To(HaveLen(1))
		Expect(list.Runs[0].Id).To(Equal(created.Id))
	})

	It("counts task failures without failing the batch", func() {
		// factorial(25) overflows int64 and ends in an error
		body, err := json.Marshal(v1.CreateRunRequest{
			Workload: "factorial",
			Args:     []int{3, 25},
		})
		Expect(err).To(BeNil())

		resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json", bytes.NewReader(body))
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		var created v1.Run
		Expect(json.NewDecoder(resp.Body).Decode(&created)).To(BeNil())
		Expect(created.Completed).To(Equal(1))
		Expect(created.Failed).To(Equal(1))
	})

	It("rejects an unknown workload", func() {
		body, err := json.Marshal(v1.CreateRunRequest{
			Workload: "does-not-exist",
			Args:     []int{1},
		})
		Expect(err).To(BeNil())

		resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json", bytes.NewReader(body))
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("rejects a batch without arguments", func() {
		resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json",
			bytes.NewReader([]byte(`{"workload": "factorial", "args": []}`)))
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("exposes pool counters that add up after a batch", func() {
		body, err := json.Marshal(v1.CreateRunRequest{
			Workload: "fibonacci",
			Args:     []int{10, 20, 30},
		})
		Expect(err).To(BeNil())

		resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json", bytes.NewReader(body))
		Expect(err).To(BeNil())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		statsResp, err := http.Get(ts.URL + "/api/v1/stats")
		Expect(err).To(BeNil())
		defer statsResp.Body.Close()
		Expect(statsResp.StatusCode).To(Equal(http.StatusOK))

		var stats v1.StatsResponse
		Expect(json.NewDecoder(statsResp.Body).Decode(&stats)).To(BeNil())
		Expect(stats.Submitted).To(Equal(uint64(3)))
		Expect(stats.Submitted).To(Equal(stats.Completed + stats.Cancelled))
		Expect(stats.Pending).To(BeZero())
	})

	It("paginates the run history", func() {
		for i := 0; i < 3; i++ {
			body, err := json.Marshal(v1.CreateRunRequest{
				Workload: "sleeper",
				Args:     []int{1},
			})
			Expect(err).To(BeNil())
			resp, err := http.Post(ts.URL+"/api/v1/runs", "application/json", bytes.NewReader(body))
			Expect(err).To(BeNil())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		}

		resp, err := http.Get(fmt.Sprintf("%s/api/v1/runs?page=2&pageSize=2", ts.URL))
		Expect(err).To(BeNil())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var list v1.RunListResponse
		Expect(json.NewDecoder(resp.Body).Decode(&list)).To(BeNil())
		Expect(list.Total).To(Equal(3))
		Expect(list.PageCount).To(Equal(2))
		Expect(list.Page).To(Equal(2))
		Expect(list.Runs).To(HaveLen(1))
	})
})
