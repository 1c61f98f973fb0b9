package layout

import (
	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/metrics"
)

func testConfig() config.Config {
	return config.Default()
}

func testTheme() config.Theme {
	return config.DefaultTheme()
}

func testMeasurer() metrics.Measurer {
	return metrics.Default()
}
