package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/antonioclim/taskpool/api/v1"
	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/util"
	srvErrors "github.com/antonioclim/taskpool/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetRuns returns the recorded run history with filtering and pagination
// (GET /runs)
func (h *Handler) GetRuns(c *gin.Context) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := defaultPageSize
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		pageSize = util.Clamp(v, 1, maxPageSize)
	}

	filters := []store.ListOption{}
	workloads := c.QueryArray("workload")
	if len(workloads) > 0 {
		filters = append(filters, store.ByWorkloads(workloads...))
	}

	listOpts := append([]store.ListOption{}, filters...)
	listOpts = append(listOpts,
		store.WithDefaultSort(),
		store.WithLimit(uint64(pageSize)),
		store.WithOffset(uint64((page-1)*pageSize)),
	)

	runs, err := h.store.Runs().List(c.Request.Context(), listOpts...)
	if err != nil {
		zap.S().Named("run_handler").Errorw("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	total, err := h.store.Runs().Count(c.Request.Context(), filters...)
	if err != nil {
		zap.S().Named("run_handler").Errorw("failed to count runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	apiRuns := make([]v1.Run, 0, len(runs))
	for _, run := range runs {
		apiRuns = append(apiRuns, v1.NewRunFromModel(run))
	}

	c.JSON(http.StatusOK, v1.RunListResponse{
		Page:      page,
		PageCount: pageCount,
		Total:     total,
		Runs:      apiRuns,
	})
}

// CreateRun executes a batch through the in-process runner and returns its
// recorded summary
// (POST /runs)
func (h *Handler) CreateRun(c *gin.Context) {
	var req v1.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.runner.RunBatch(c.Request.Context(), services.BatchParams{
		Workload: req.Workload,
		Args:     req.Args,
		Retry:    req.Retry,
	})
	if err != nil {
		if srvErrors.IsUnknownWorkloadError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("run_handler").Errorw("batch failed", "workload", req.Workload, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to execute batch"})
		return
	}

	c.JSON(http.StatusCreated, v1.NewRunFromModel(*run))
}
