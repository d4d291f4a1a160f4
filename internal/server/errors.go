package server

import (
	"errors"
	"net/http"

	"github.com/gabriel/crewdocs/internal/db"
)

// httpStatus maps a storage error to the response status code
func httpStatus(err error) int {
	var notFound *db.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
