package temperature

import (
	"log/slog"

	"tempmanager/internal/menu"
	"tempmanager/internal/modules/temperature/controller"
	"tempmanager/internal/modules/temperature/repository"
	"tempmanager/internal/modules/temperature/views"
)

// RegisterFeature adds the data entry, display and analysis entries (1-5) to m.
func RegisterFeature(m *menu.Menu, repo repository.TemperatureRepository, renderer *views.Renderer) {
	temperatureController := controller.NewTemperatureController(repo, renderer, slog.Default().With("module", "temperature"))
	temperatureController.RegisterEntries(m)
}
