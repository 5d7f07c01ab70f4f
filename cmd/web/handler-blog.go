package main

import (
	"net/http"

	"github.com/surfstrength/surfstrength/internal/blog"
	"github.com/surfstrength/surfstrength/internal/errors"
)

type blogTemplateData struct {
	BaseTemplateData
	Posts []blog.Post
}

type blogPostTemplateData struct {
	BaseTemplateData
	Post blog.Post
}

func (app *application) blogListGET(w http.ResponseWriter, r *http.Request) {
	data := blogTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Posts:            app.blog.List(),
	}
	app.render(w, r, http.StatusOK, "blog", data)
}

func (app *application) blogPostGET(w http.ResponseWriter, r *http.Request) {
	post, err := app.blog.Get(r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	data := blogPostTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Post:             post,
	}
	app.render(w, r, http.StatusOK, "blog-post", data)
}
