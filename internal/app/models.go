package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/internal/engine/model"
	"github.com/Faultbox/flightsim/internal/logger"
	"github.com/Faultbox/flightsim/pkg/formats"
)

// loadMesh parses the model at path and compiles it with table. A model
// that cannot be read yields an empty mesh so the scene still runs.
func loadMesh(name, path string, table material.Table) *model.Mesh {
	m, err := formats.ParseModelFile(path)
	if err != nil {
		logger.Warn("model unavailable, drawing nothing in its place",
			zap.String("model", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return &model.Mesh{}
	}

	if m.ExceedsLegacyCapacity() {
		logger.Warn("model exceeds legacy loader capacity",
			zap.String("model", name),
			zap.Int("capacity", formats.LegacyModelCapacity),
		)
	}

	mesh := model.BuildMesh(m, table)

	stats := m.Stats()
	logger.Info("model loaded",
		zap.String("model", name),
		zap.String("path", path),
		zap.Int("vertices", stats.Vertices),
		zap.Int("normals", stats.Normals),
		zap.Int("faces", stats.Faces),
		zap.Int("groups", stats.Groups),
		zap.Float32s("min", mesh.Bounds.Min[:]),
		zap.Float32s("max", mesh.Bounds.Max[:]),
	)
	for group, polys := range model.CountGroups(mesh) {
		logger.Debug("group compiled",
			zap.String("model", name),
			zap.Int("group", group),
			zap.Int("polygons", polys),
		)
	}
	return mesh
}
