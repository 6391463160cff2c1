//go:build e2e

package e2e

import (
	"testing"

	"hall-booking/cmd/bootstrap"
	"hall-booking/cmd/bootstrap/components"
	"hall-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// ------------------------------------------------------------
// E2E application: the production graph with a test config and a bare engine.
// Every call builds fresh in-memory stores.
// ------------------------------------------------------------
func buildE2EApp(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fxtest.New(t,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CoreModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, router, "router was not populated")
	return router, cfg
}

// ------------------------------------------------------------
// Shared setup for the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupTest() {
	s.Router, s.Config = buildE2EApp(s.T())
}

// SetupSubTest gives every s.Run its own empty stores.
func (s *SharedSuite) SetupSubTest() {
	s.Router, s.Config = buildE2EApp(s.T())
}
