package script

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/slugline/slugline-go/lib"
	apiErrors "github.com/slugline/slugline-go/lib/api/errors"
	"github.com/slugline/slugline-go/lib/element"
	"github.com/slugline/slugline-go/lib/exception"
	"github.com/slugline/slugline-go/lib/metrics"
	scriptPkg "github.com/slugline/slugline-go/lib/script"
)

// InsertLineRequest asks for a new line after an existing one. An empty
// AfterLineId appends at the end of the document.
type InsertLineRequest struct {
	AfterLineId string `json:"afterLineId"`
	Type        string `json:"type"`
}

// InsertLineResponse carries the id of the created line.
type InsertLineResponse struct {
	LineId string `json:"lineId"`
}

// UpdateTextRequest replaces a line's text.
type UpdateTextRequest struct {
	Text string `json:"text"`
}

// SetTypeRequest overrides a line's element type.
type SetTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

// CycleTypeRequest advances a line's type through the cycle vocabulary.
type CycleTypeRequest struct {
	Reverse bool `json:"reverse"`
}

// NextTypeRequest resolves the default type of the line created on Enter.
type NextTypeRequest struct {
	Type        string `json:"type" validate:"required"`
	DoubleEnter bool   `json:"doubleEnter"`
}

// NextTypeResponse carries the resolved element type.
type NextTypeResponse struct {
	Type string `json:"type"`
}

// ClassifyRequest asks for an advisory classification of free-form text.
type ClassifyRequest struct {
	Text         string `json:"text"`
	PreviousType string `json:"previousType"`
}

// SnapshotRequest creates or refreshes a revision snapshot.
type SnapshotRequest struct {
	Notes    string `json:"notes"`
	AutoSave bool   `json:"autoSave"`
}

// SnapshotResponse describes one history entry.
type SnapshotResponse struct {
	Id             string `json:"id"`
	Label          string `json:"label"`
	SequenceNumber int    `json:"sequenceNumber"`
	Notes          string `json:"notes"`
	AutoSave       bool   `json:"autoSave"`
	IsCurrent      bool   `json:"isCurrent"`
	CreatedAt      int64  `json:"createdAt"`
}

// GenerateRequest forwards a prompt to the text-generation collaborator.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateResponse carries the generated text.
type GenerateResponse struct {
	Text string `json:"text"`
}

// getDocument loads the working copy for the scriptId route parameter.
// Callers translate a failure into the 404 response; the helper never
// writes to the context itself.
func getDocument(c *fiber.Ctx, initStore *lib.InitStore) (*scriptPkg.Document, error) {
	return initStore.ScriptManager.GetScript(c.Params("scriptId"))
}

// persist writes the document back and logs a failure; callers translate
// a returned error into the 500 response.
func persist(initStore *lib.InitStore, doc *scriptPkg.Document) error {
	if err := initStore.ScriptManager.SaveScript(doc); err != nil {
		initStore.Logger.Errorw("failed to persist script", "scriptId", doc.Id, "error", err)
		return err
	}
	return nil
}

// ListScripts returns the ids of all stored scripts.
func ListScripts(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scriptIds, err := initStore.ScriptManager.ListScripts()
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.JSON(fiber.Map{"scriptIds": scriptIds})
	}
}

// GetScript returns the full serialized document, creating it when the
// id is new.
func GetScript(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}
		return c.JSON(doc.Serialize())
	}
}

// DeleteScript removes the script and its whole snapshot history.
func DeleteScript(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := initStore.ScriptManager.RemoveScript(c.Params("scriptId")); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// InsertLine creates an empty line after the given one.
func InsertLine(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request InsertLineRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		lineId := doc.InsertAfter(request.AfterLineId, element.Type(request.Type))
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.JSON(InsertLineResponse{LineId: lineId})
	}
}

// UpdateLineText replaces a line's text; the classifier may retype the
// line unless its type is pinned.
func UpdateLineText(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request UpdateTextRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		doc.UpdateText(c.Params("lineId"), request.Text)
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// SetLineType pins a line to an explicit element type.
func SetLineType(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SetTypeRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		if err := initStore.Validator.Struct(request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		if !element.IsValid(element.Type(request.Type)) {
			return c.Status(400).JSON(apiErrors.NewInvalidParamError("type"))
		}
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		doc.SetType(c.Params("lineId"), element.Type(request.Type))
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// CycleLineType advances a line's type through the cycle vocabulary.
func CycleLineType(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request CycleTypeRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		doc.CycleType(c.Params("lineId"), request.Reverse)
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		line, ok := doc.Line(c.Params("lineId"))
		if !ok {
			return c.Status(404).JSON(apiErrors.LineNotFoundError)
		}
		return c.JSON(fiber.Map{"type": line.Type})
	}
}

// DeleteLine removes a line; the last remaining line is kept.
func DeleteLine(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		doc.DeleteLine(c.Params("lineId"))
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// MergeLine folds a line into its predecessor (backspace at line start).
func MergeLine(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		doc.MergeWithPrevious(c.Params("lineId"))
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// ToggleDual links or dissolves a dual-dialogue pairing at the line.
func ToggleDual(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}

		if err := doc.ToggleDual(c.Params("lineId")); err != nil {
			var invalidTarget *exception.InvalidDualTargetError
			if errors.As(err, &invalidTarget) {
				return c.Status(422).JSON(apiErrors.InvalidDualTargetError)
			}
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		if err := persist(initStore, doc); err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.SendStatus(204)
	}
}

// NextType resolves the default type for a line committed with Enter.
func NextType(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request NextTypeRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		if err := initStore.Validator.Struct(request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		next := element.NextTypeAfter(element.Type(request.Type), request.DoubleEnter)
		return c.JSON(NextTypeResponse{Type: string(next)})
	}
}

// ClassifyText returns the classifier's advisory verdict for a text.
func ClassifyText() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request ClassifyRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		result := element.Classify(request.Text, element.Type(request.PreviousType))
		return c.JSON(result)
	}
}

// GetMetrics recomputes the production metrics of the current document.
func GetMetrics(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}
		return c.JSON(metrics.Estimate(doc.Serialize()))
	}
}

// ExportScriptText flattens the document to the plain-text dialect.
func ExportScriptText(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := getDocument(c, initStore)
		if err != nil {
			return c.Status(404).JSON(apiErrors.ScriptNotFoundError)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(scriptPkg.ExportText(doc.Serialize()))
	}
}

// ImportScriptText replaces the document with one reconstructed from the
// plain-text dialect in the request body.
func ImportScriptText(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ser := scriptPkg.ImportText(string(c.Body()))
		content, err := scriptPkg.Marshal(ser)
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		doc, err := initStore.ScriptManager.ReplaceScript(c.Params("scriptId"), content)
		if err != nil {
			return c.Status(500).JSON(apiErrors.InternalServerError)
		}
		return c.JSON(doc.Serialize())
	}
}

// Generate forwards a prompt to the external text service.
func Generate(initStore *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request GenerateRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		if err := initStore.Validator.Struct(request); err != nil {
			return c.Status(400).JSON(apiErrors.InvalidRequestError)
		}
		text, err := initStore.Generator.Generate(c.UserContext(), request.Prompt)
		if err != nil {
			initStore.Logger.Warnw("text generation failed", "error", err)
			return c.Status(502).JSON(apiErrors.GenerationError)
		}
		return c.JSON(GenerateResponse{Text: text})
	}
}
