package personrouter

import (
	"errors"
	"net/http"

	"github.com/campusdir/campusdir/engine/infra/server/router"
	"github.com/campusdir/campusdir/engine/person"
	"github.com/campusdir/campusdir/engine/registry"
	"github.com/gin-gonic/gin"
)

// createPerson stores a new person
//
//	@Summary		Create person
//	@Description	Store a new person; a resupplied identifier replaces the stored record
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			person	body		person.Person	true	"Person payload"
//	@Success		201		{object}	person.Record	"Person created"
//	@Failure		400		{object}	router.Response	"Malformed payload"
//	@Router			/persons [post]
func createPerson(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	var payload person.Person
	if err := c.ShouldBindJSON(&payload); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	// Person creation deliberately skips the duplicate-identifier guard the
	// other entity kinds enforce; Put keeps that visible in the store API.
	rec, err := state.Persons.Put(c.Request.Context(), person.Record{Person: payload})
	if err != nil {
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to create person", err))
		return
	}
	router.RespondCreated(c, rec)
}

// listPersons retrieves persons matching every supplied filter
//
//	@Summary		List persons
//	@Description	List persons; city and country match when any embedded address does
//	@Tags			persons
//	@Produce		json
//	@Param			uni			query	string	false	"Filter by UNI"
//	@Param			first_name	query	string	false	"Filter by first name"
//	@Param			last_name	query	string	false	"Filter by last name"
//	@Param			email		query	string	false	"Filter by email"
//	@Param			phone		query	string	false	"Filter by phone number"
//	@Param			birth_date	query	string	false	"Filter by date of birth (YYYY-MM-DD)"
//	@Param			city		query	string	false	"Filter by city of at least one address"
//	@Param			country		query	string	false	"Filter by country of at least one address"
//	@Success		200	{array}	person.Record	"Persons retrieved"
//	@Router			/persons [get]
func listPersons(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	filter := person.Filter{
		UNI:       router.QueryValue(c, "uni"),
		FirstName: router.QueryValue(c, "first_name"),
		LastName:  router.QueryValue(c, "last_name"),
		Email:     router.QueryValue(c, "email"),
		Phone:     router.QueryValue(c, "phone"),
		BirthDate: router.QueryValue(c, "birth_date"),
		City:      router.QueryValue(c, "city"),
		Country:   router.QueryValue(c, "country"),
	}
	records, err := state.Persons.List(c.Request.Context(), filter.Match)
	if err != nil {
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to list persons", err))
		return
	}
	router.RespondOK(c, records)
}

// getPersonByID retrieves a person by ID
//
//	@Summary		Get person by ID
//	@Tags			persons
//	@Produce		json
//	@Param			person_id	path		string			true	"Person ID"
//	@Success		200			{object}	person.Record	"Person retrieved"
//	@Failure		404			{object}	router.Response	"Person not found"
//	@Router			/persons/{person_id} [get]
func getPersonByID(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "person_id")
	if !ok {
		return
	}
	rec, err := state.Persons.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "person not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to get person", err))
		return
	}
	router.RespondOK(c, rec)
}

// updatePerson applies a partial update to a stored person
//
//	@Summary		Update person
//	@Description	Overwrite only the fields explicitly supplied; a supplied addresses list replaces the whole collection
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			person_id	path		string			true	"Person ID"
//	@Param			patch		body		person.Patch	true	"Fields to change"
//	@Success		200			{object}	person.Record	"Person updated"
//	@Failure		404			{object}	router.Response	"Person not found"
//	@Router			/persons/{person_id} [patch]
func updatePerson(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "person_id")
	if !ok {
		return
	}
	var patch person.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Persons.Update(c.Request.Context(), id, patch.Apply)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "person not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to update person", err))
		return
	}
	router.RespondOK(c, rec)
}
