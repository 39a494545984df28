package handlers

import (
	"net/http"

	"visaflow/services/wizard"

	"github.com/gin-gonic/gin"
)

// SubmitStepHandler validates and persists one full wizard step.
func SubmitStepHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IsEditing bool           `json:"isEditing"`
			Fields    map[string]any `json:"fields"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.SubmitStep(c.Param("profileId"), c.Param("step"), req.IsEditing, req.Fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// SaveStepHandler persists partial step data without full validation.
func SaveStepHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RedirectStep int            `json:"redirectStep"`
			Fields       map[string]any `json:"fields"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.SaveStep(c.Param("profileId"), c.Param("step"), req.RedirectStep, req.Fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetWizardHandler returns the profile together with its form.
func GetWizardHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.GetWizard(c.Param("profileId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// listEditorFor resolves the step slug and field name of a repeatable-list
// request into an editor primed with the client's current state.
func listEditorFor(c *gin.Context, committed []map[string]any) (*wizard.ListEditor, bool) {
	step, ok := wizard.StepBySlug(c.Param("step"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown wizard step " + c.Param("step")})
		return nil, false
	}
	editor, err := wizard.NewListEditor(step, c.Param("field"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	editor.Committed = committed
	return editor, true
}

// ListAddHandler validates the draft entry of a repeatable list and, on
// success, returns the list with the entry committed and a fresh empty
// draft slot. The list itself is only persisted on the step's submit/save.
func ListAddHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Committed []map[string]any `json:"committed"`
			Draft     map[string]any   `json:"draft"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		editor, ok := listEditorFor(c, req.Committed)
		if !ok {
			return
		}
		editor.Draft = req.Draft
		if req.Draft == nil {
			editor.Draft = map[string]any{}
		}

		if errs := editor.Add(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": errs})
			return
		}
		c.JSON(http.StatusOK, gin.H{"committed": editor.Committed, "draft": editor.Draft})
	}
}

// ListRemoveHandler removes a committed entry by position.
func ListRemoveHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Committed []map[string]any `json:"committed"`
			Index     *int             `json:"index"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.Index == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
			return
		}

		editor, ok := listEditorFor(c, req.Committed)
		if !ok {
			return
		}
		if err := editor.Remove(*req.Index); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"committed": editor.Committed})
	}
}
