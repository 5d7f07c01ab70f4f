package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/workout"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData(r))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

func panicErr(excp any) error {
	return errors.DecoratePanic(excp)
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// parseDayIDParam parses the "id" path parameter into a program day.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDayIDParam(w http.ResponseWriter, r *http.Request) (workout.Day, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		app.notFound(w, r)
		return workout.Day{}, false
	}
	day, ok := workout.DayByID(id)
	if !ok {
		app.notFound(w, r)
		return workout.Day{}, false
	}
	return day, true
}

const sessionCookieMaxAge = 30 * 24 * 60 * 60

func (app *application) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   app.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
