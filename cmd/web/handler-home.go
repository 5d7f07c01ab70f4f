package main

import (
	"net/http"

	"github.com/surfstrength/surfstrength/internal/workout"
)

const percentMultiplier = 100

type dayCard struct {
	ID        int
	DayOfWeek string
	Title     string
	Subtitle  string
	Rest      bool
	Completed bool
	// Locked days link to the login page instead of the day page.
	Locked bool
}

type weekView struct {
	Name  string
	Theme string
	Days  []dayCard
}

type homeTemplateData struct {
	BaseTemplateData
	Weeks           []weekView
	CompletedDays   int
	TotalDays       int
	ProgressPercent int
	// PaymentOutcome reflects the query params Stripe Checkout redirects
	// back with: success or canceled.
	PaymentOutcome string
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		TotalDays:        workout.TotalDays,
	}
	if r.URL.Query().Get("payment") == "success" {
		data.PaymentOutcome = "success"
	} else if r.URL.Query().Get("canceled") != "" {
		data.PaymentOutcome = "canceled"
	}

	completed := app.settings.CompletedDays(ctx)
	for _, week := range workout.Weeks() {
		view := weekView{Name: week.Name, Theme: week.Theme}
		for _, day := range week.Days {
			view.Days = append(view.Days, dayCard{
				ID:        day.ID,
				DayOfWeek: day.DayOfWeek,
				Title:     day.Title,
				Subtitle:  day.Subtitle,
				Rest:      day.Rest,
				Completed: completed[day.ID],
				Locked:    !data.Authenticated && !day.Rest,
			})
		}
		data.Weeks = append(data.Weeks, view)
	}

	data.CompletedDays, _ = app.settings.Progress(ctx)
	data.ProgressPercent = (data.CompletedDays * percentMultiplier) / workout.TotalDays

	app.render(w, r, http.StatusOK, "home", data)
}
