package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/tbellembois/golinks/services"
	"github.com/tbellembois/golinks/views"
)

// Env is a structure used to pass objects throughout the application
type Env struct {
	Service       *services.BookmarkService
	Presenter     *views.Presenter
	GoBkmProxyURL string             // the application URL
	TplMain       *template.Template // main template
	// OpenURL opens a link with the host default browser.
	OpenURL func(url string) error
}

// failHTTP send an HTTP error (httpStatus) with the given errorMessage
func failHTTP(w http.ResponseWriter, functionName string, errorMessage string, httpStatus int) {

	log.Errorf("%s: %s", functionName, errorMessage)
	w.WriteHeader(httpStatus)
	fmt.Fprint(w, errorMessage)

}

// allowMethod answers 405 and returns false when r.Method is not method.
func allowMethod(w http.ResponseWriter, r *http.Request, functionName string, method string) bool {

	if r.Method != method {
		w.Header().Set("Allow", method)
		failHTTP(w, functionName, "method not allowed: "+r.Method, http.StatusMethodNotAllowed)
		return false
	}
	return true

}

// redirectHome sends the browser back to the main page.
func (env *Env) redirectHome(w http.ResponseWriter, r *http.Request) {

	http.Redirect(w, r, env.GoBkmProxyURL+"/", http.StatusSeeOther)

}

func (env *Env) MainHandler(w http.ResponseWriter, r *http.Request) {

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	bkms, err := env.Service.ListBookmarks()
	if err != nil {
		failHTTP(w, "MainHandler", err.Error(), http.StatusInternalServerError)
		return
	}

	page := env.Presenter.NewPage(bkms, env.GoBkmProxyURL)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = views.Render(w, env.TplMain, page); err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Error("MainHandler:render")
	}

}

// AddBookmarkHandler fetches and saves the submitted URL. Failures are
// shown on the main page, not returned as HTTP errors.
func (env *Env) AddBookmarkHandler(w http.ResponseWriter, r *http.Request) {

	if !allowMethod(w, r, "AddBookmarkHandler", http.MethodPost) {
		return
	}

	bookmarkUrl := r.FormValue("bookmarkUrl")

	log.WithFields(log.Fields{
		"bookmarkUrl": bookmarkUrl,
	}).Debug("AddBookmarkHandler:Form parameter")

	_, err := env.Service.AddBookmark(r.Context(), bookmarkUrl)
	env.Presenter.Submitted(bookmarkUrl, err)

	env.redirectHome(w, r)

}

func (env *Env) ClearBookmarksHandler(w http.ResponseWriter, r *http.Request) {

	if !allowMethod(w, r, "ClearBookmarksHandler", http.MethodPost) {
		return
	}

	if err := env.Service.ClearAll(); err != nil {
		failHTTP(w, "ClearBookmarksHandler", err.Error(), http.StatusInternalServerError)
		return
	}

	env.redirectHome(w, r)

}

func (env *Env) GetBookmarksHandler(w http.ResponseWriter, r *http.Request) {

	// vars
	var err error
	var js []byte // the returned JSON

	bkms, err := env.Service.ListBookmarks()
	if err != nil {
		failHTTP(w, "GetBookmarksHandler", err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Sort(bkms)

	if js, err = json.Marshal(bkms); err != nil {
		failHTTP(w, "GetBookmarksHandler", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)

}

func (env *Env) ImportHandler(w http.ResponseWriter, r *http.Request) {

	if !allowMethod(w, r, "ImportHandler", http.MethodPost) {
		return
	}

	file, _, err := r.FormFile("importFile")
	if err != nil {
		failHTTP(w, "ImportHandler", err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	n, err := env.Service.Import(file)
	log.WithFields(log.Fields{
		"n": n,
	}).Debug("ImportHandler:imported")
	if err != nil {
		failHTTP(w, "ImportHandler", err.Error(), http.StatusInternalServerError)
		return
	}

	env.redirectHome(w, r)

}

func (env *Env) ExportHandler(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Disposition", "attachment; filename=bookmarks.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := env.Service.Export(w); err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Error("ExportHandler")
	}

}

// OpenHandler opens the given link outside of the application page.
func (env *Env) OpenHandler(w http.ResponseWriter, r *http.Request) {

	link := r.URL.Query().Get("url")

	log.WithFields(log.Fields{
		"link": link,
	}).Debug("OpenHandler:Query parameter")

	if err := services.ValidateURL(link); err != nil {
		failHTTP(w, "OpenHandler", err.Error(), http.StatusBadRequest)
		return
	}
	if err := env.OpenURL(link); err != nil {
		failHTTP(w, "OpenHandler", err.Error(), http.StatusInternalServerError)
		return
	}

	// No content: the browser stays on the current page.
	w.WriteHeader(http.StatusNoContent)

}
