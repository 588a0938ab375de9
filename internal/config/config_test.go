package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/antonioclim/taskpool/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Load", func() {
	// Given no config file and no environment overrides
	// When the configuration is loaded
	// Then every field carries its default
	It("should apply defaults when nothing else is set", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Pool.NumWorkers).To(Equal(4))
		Expect(cfg.Pool.QueueSize).To(Equal(64))
		Expect(cfg.Store.DataFile).To(BeEmpty())
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.LogFormat).To(Equal("console"))
	})

	// Given TASKPOOL_* environment variables and no config file
	// When the configuration is loaded
	// Then the environment values override the defaults
	It("should honor environment variables without a config file", func() {
		GinkgoT().Setenv("TASKPOOL_POOL_NUMWORKERS", "9")
		GinkgoT().Setenv("TASKPOOL_SERVER_HTTPPORT", "9090")
		GinkgoT().Setenv("TASKPOOL_LOGLEVEL", "debug")

		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Pool.NumWorkers).To(Equal(9))
		Expect(cfg.Server.HTTPPort).To(Equal(9090))
		Expect(cfg.LogLevel).To(Equal("debug"))

		// Untouched fields keep their defaults
		Expect(cfg.Pool.QueueSize).To(Equal(64))
		Expect(cfg.LogFormat).To(Equal("console"))
	})

	// Given a config file
	// When the configuration is loaded
	// Then file values override defaults, and env overrides the file
	It("should layer file under environment", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		contents := []byte("pool:\n  numworkers: 2\n  queuesize: 8\nloglevel: warn\n")
		Expect(os.WriteFile(path, contents, 0o600)).To(Succeed())

		GinkgoT().Setenv("TASKPOOL_LOGLEVEL", "error")

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Pool.NumWorkers).To(Equal(2))
		Expect(cfg.Pool.QueueSize).To(Equal(8))
		Expect(cfg.LogLevel).To(Equal("error"))
	})

	It("should fail on a missing config file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
		Expect(err).To(HaveOccurred())
	})
})
