package main

import (
	"fmt"
	"net/http"

	"github.com/surfstrength/surfstrength/internal/workout"
)

type itemView struct {
	DisplayName string
	IsHeader    bool
	Sets        string
	Reps        string
	Time        string
	Tempo       string
	Load        string
	Notes       string
	Gif         string
	YouTube     string
}

type mobilityItemView struct {
	Name    string
	Reps    string
	Time    string
	Notes   string
	YouTube string
}

type mobilityBlockView struct {
	Title    string
	Duration string
	Items    []mobilityItemView
}

type dayTemplateData struct {
	BaseTemplateData
	Day       workout.Day
	WeekName  string
	WeekTheme string
	Items     []itemView
	Mobility  []mobilityBlockView
	Finisher  *mobilityBlockView
	Completed bool
	PrevDayID int
	NextDayID int
}

func toItemViews(items []workout.Item) []itemView {
	views := make([]itemView, len(items))
	for i, item := range items {
		views[i] = itemView{
			DisplayName: item.DisplayName(),
			IsHeader:    item.Kind == workout.ItemHeader,
			Sets:        item.Sets,
			Reps:        item.Reps,
			Time:        item.Time,
			Tempo:       item.Tempo,
			Load:        item.Load,
			Notes:       item.Notes,
			Gif:         item.Gif,
			YouTube:     item.YouTube,
		}
	}
	return views
}

func toMobilityItemViews(items []workout.MobilityItem) []mobilityItemView {
	views := make([]mobilityItemView, len(items))
	for i, item := range items {
		views[i] = mobilityItemView{
			Name:    item.Name,
			Reps:    item.Reps,
			Time:    item.Time,
			Notes:   item.Notes,
			YouTube: item.YouTube,
		}
	}
	return views
}

func (app *application) dayGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayIDParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	week, _ := workout.WeekForDay(day.ID)
	equipment := app.settings.Equipment(ctx)
	resolved := workout.TransformDay(day, equipment)

	data := dayTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Day:              resolved,
		WeekName:         week.Name,
		WeekTheme:        week.Theme,
		Items:            toItemViews(resolved.Items),
		Completed:        app.settings.CompletedDays(ctx)[day.ID],
		PrevDayID:        day.ID - 1,
		NextDayID:        day.ID + 1,
	}
	if day.ID == 1 {
		data.PrevDayID = 0
	}
	if day.ID == workout.TotalDays {
		data.NextDayID = 0
	}

	if !resolved.Rest {
		for _, block := range workout.TransformMobilityBlocks(workout.DailyMobility(), equipment) {
			data.Mobility = append(data.Mobility, mobilityBlockView{
				Title:    block.Title,
				Duration: block.Duration,
				Items:    toMobilityItemViews(block.Items),
			})
		}
		if resolved.Finisher != nil {
			data.Finisher = &mobilityBlockView{
				Title: resolved.Finisher.Name,
				Items: toMobilityItemViews(resolved.Finisher.Items),
			}
		}
	}

	app.render(w, r, http.StatusOK, "day", data)
}

func (app *application) progressTogglePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayIDParam(w, r)
	if !ok {
		return
	}
	if _, err := app.settings.ToggleDayComplete(r.Context(), day.ID); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/day/%d", day.ID))
}
