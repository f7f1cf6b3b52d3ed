package catalog

import (
	"net/http"

	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

// GetParts returns the full hardware catalog.
func GetParts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Parts())
}

// GetPart returns a single part by id.
func GetPart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	part, ok := Find(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Part not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, part)
}
