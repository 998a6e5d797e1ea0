package script

import (
	"github.com/slugline/slugline-go/lib"
)

// Init mounts every script and history route.
func Init(initStore *lib.InitStore) {
	c := initStore.C

	c.Get("/scripts", ListScripts(initStore))
	c.Get("/scripts/:scriptId", GetScript(initStore))
	c.Delete("/scripts/:scriptId", DeleteScript(initStore))

	c.Post("/scripts/:scriptId/lines", InsertLine(initStore))
	c.Put("/scripts/:scriptId/lines/:lineId/text", UpdateLineText(initStore))
	c.Put("/scripts/:scriptId/lines/:lineId/type", SetLineType(initStore))
	c.Post("/scripts/:scriptId/lines/:lineId/cycle", CycleLineType(initStore))
	c.Post("/scripts/:scriptId/lines/:lineId/merge", MergeLine(initStore))
	c.Post("/scripts/:scriptId/lines/:lineId/dual", ToggleDual(initStore))
	c.Delete("/scripts/:scriptId/lines/:lineId", DeleteLine(initStore))

	c.Post("/classify", ClassifyText())
	c.Post("/nextType", NextType(initStore))

	c.Get("/scripts/:scriptId/metrics", GetMetrics(initStore))
	c.Get("/scripts/:scriptId/export/text", ExportScriptText(initStore))
	c.Post("/scripts/:scriptId/import/text", ImportScriptText(initStore))
	c.Post("/scripts/:scriptId/generate", Generate(initStore))

	c.Post("/scripts/:scriptId/snapshots", CreateSnapshot(initStore))
	c.Get("/scripts/:scriptId/snapshots", ListSnapshots(initStore))
	c.Get("/scripts/:scriptId/snapshots/diff", DiffSnapshots(initStore))
	c.Post("/scripts/:scriptId/snapshots/:snapshotId/restore", RestoreSnapshot(initStore))
	c.Delete("/scripts/:scriptId/snapshots/:snapshotId", DeleteSnapshot(initStore))
}
