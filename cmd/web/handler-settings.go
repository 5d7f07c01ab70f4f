package main

import (
	"fmt"
	"net/http"

	"github.com/surfstrength/surfstrength/internal/workout"
)

type equipmentOption struct {
	Category workout.Category
	Name     string
	Owned    bool
	// Bodyweight is always owned and its checkbox is disabled.
	Fixed bool
}

type settingsTemplateData struct {
	BaseTemplateData
	Equipment     []equipmentOption
	CompletedDays int
	TotalDays     int
}

func equipmentOptions(owned workout.EquipmentSet) []equipmentOption {
	var options []equipmentOption
	for _, c := range workout.Categories() {
		options = append(options, equipmentOption{
			Category: c,
			Name:     c.DisplayName(),
			Owned:    owned.Has(c),
			Fixed:    c == workout.CategoryBodyweight,
		})
	}
	return options
}

func (app *application) settingsGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := settingsTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Equipment:        equipmentOptions(app.settings.Equipment(ctx)),
	}
	data.CompletedDays, data.TotalDays = app.settings.Progress(ctx)

	app.render(w, r, http.StatusOK, "settings", data)
}

func (app *application) equipmentTogglePOST(w http.ResponseWriter, r *http.Request) {
	category, ok := workout.ParseCategory(r.PathValue("category"))
	if !ok {
		app.notFound(w, r)
		return
	}

	if _, err := app.settings.ToggleEquipment(r.Context(), category); err != nil {
		app.serverError(w, r, fmt.Errorf("toggle equipment: %w", err))
		return
	}

	redirect(w, r, "/settings")
}

// equipmentBulkPOST replaces the whole selection from checkbox form values.
// Unchecked boxes are simply absent from the form, so an empty submission
// means bodyweight only.
func (app *application) equipmentBulkPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	var selected []workout.Category
	for _, raw := range r.Form["equipment"] {
		if category, ok := workout.ParseCategory(raw); ok {
			selected = append(selected, category)
		}
	}

	if _, err := app.settings.SetEquipment(r.Context(), selected); err != nil {
		app.serverError(w, r, fmt.Errorf("set equipment: %w", err))
		return
	}

	redirect(w, r, "/settings")
}

func (app *application) resetProgressPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.settings.ResetProgress(r.Context()); err != nil {
		app.serverError(w, r, fmt.Errorf("reset progress: %w", err))
		return
	}

	redirect(w, r, "/settings")
}
