package script

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/slugline/slugline-go/lib"
	apiErrors "github.com/slugline/slugline-go/lib/api/errors"
	"github.com/slugline/slugline-go/lib/exception"
	dbModel "github.com/slugline/slugline-go/lib/models/db"
	scriptPkg "github.com/slugline/slugline-go/lib/script"
)

func toSnapshotResponse(snapshot dbModel.SnapshotDB) SnapshotResponse {
	return SnapshotResponse{
		Id:             snapshot.ID,
		Label:          snapshot.Label(),
		SequenceNumber: snapshot.SequenceNumber,
		Notes:          snapshot.Notes,
		AutoSave:       snapshot.AutoSave,
		IsCurrent:      snapshot.IsCurrent,
		CreatedAt:      snapshot.CreatedAt.UnixMilli(),
	}
}

// CreateSnapshot saves the document's current serialization into the
// history. An auto-save request refreshes the current snapshot in place
// when that snapshot was itself auto-created, instead of growing the
// history on every debounce tick.
func CreateSnapshot(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SnapshotRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}
		content, err := scriptPkg.Marshal(doc.Serialize())
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}

		if request.AutoSave {
			current, err := initStore.History.Current(doc.Id)
			if err == nil && current.AutoSave {
				if err := initStore.History.UpdateSnapshotContent(current.ID, content); err != nil {
					return c.Status(500).JSON(apiErrors.InternalServerError)
				}
				refreshed := *current
				refreshed.Content = content
				return c.JSON(toSnapshotResponse(refreshed))
			}
		}

		notes := request.Notes
		if request.AutoSave && notes == "" {
			notes = initStore.RetrievedSettings.AutoSaveSnapshotNotes
		}
		snapshot, err := initStore.History.Snapshot(doc.Id, content, notes, request.AutoSave)
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.Status(201).JSON(toSnapshotResponse(*snapshot))
	}
}

// ListSnapshots returns the script's history in ascending revision order.
func ListSnapshots(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshots, err := initStore.History.List(c.Params("scriptId"))
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		responses := make([]SnapshotResponse, 0, len(snapshots))
		for _, snapshot := range snapshots {
			responses = append(responses, toSnapshotResponse(snapshot))
		}
		return c.JSON(responses)
	}
}

// RestoreSnapshot makes the target snapshot current and reloads the
// working document from its content.
func RestoreSnapshot(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := initStore.History.Restore(c.Params("snapshotId"))
		if err != nil {
			return c.Status(404).JSON(apiErrors.SnapshotNotFoundError)
		}
		doc, err := initStore.ScriptManager.ReplaceScript(c.Params("scriptId"), content)
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.JSON(doc.Serialize())
	}
}

// DeleteSnapshot removes a snapshot. When the deletion empties the
// history the document's current state is saved as a fresh initial
// snapshot, keeping the single-current invariant intact for callers.
func DeleteSnapshot(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := initStore.History.DeleteSnapshot(c.Params("snapshotId"))
		if err == nil {
			return c.SendStatus(204)
		}

		var emptyHistory *exception.EmptyHistoryError
		if errors.As(err, &emptyHistory) {
			doc, docErr := getDocument(c, initStore)
			if docErr != nil {
				return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
			}
			content, marshalErr := scriptPkg.Marshal(doc.Serialize())
			if marshalErr != nil {
				return c.Status(500).JSON(apiErrors.InternalServerError)
			}
			if _, snapErr := initStore.History.Snapshot(doc.Id, content, "Initial", false); snapErr != nil {
				return c.Status(500).JSON(apiErrors.InternalServerError)
			}
			return c.SendStatus(204)
		}

		var notFound *exception.SnapshotNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(apiErrors.SnapshotNotFoundError)
		}
		return c.Status(500).JSON(apiErrors.InternalServerError)
	}
}

// DiffSnapshots compares the exported text of two snapshots, identified
// by the from and to query parameters.
func DiffSnapshots(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromId := c.Query("from")
		toId := c.Query("to")
		if fromId == "" {
			return c.Status(400).JSON(apiErrors.NewInvalidParamError("from"))
		}
		if toId == "" {
			return c.Status(400).JSON(apiErrors.NewInvalidParamError("to"))
		}

		entries, err := initStore.History.DiffSnapshots(fromId, toId, renderSnapshotText)
		if err != nil {
			return c.Status(404).JSON(apiErrors.SnapshotNotFoundError)
		}
		return c.JSON(entries)
	}
}

// renderSnapshotText maps stored snapshot content to the line-oriented
// plain text the diff engine walks. Content that fails to decode is
// diffed as-is.
func renderSnapshotText(content string) string {
	ser, err := scriptPkg.Unmarshal(content)
	if err != nil {
		return content
	}
	return scriptPkg.ExportText(ser)
}
