package houserouter

import (
	"errors"
	"net/http"

	"github.com/campusdir/campusdir/engine/house"
	"github.com/campusdir/campusdir/engine/infra/server/router"
	"github.com/campusdir/campusdir/engine/registry"
	"github.com/gin-gonic/gin"
)

// createHouse stores a new house
//
//	@Summary		Create house
//	@Description	Store a new house with one embedded address and a list of resident UNIs
//	@Tags			houses
//	@Accept			json
//	@Produce		json
//	@Param			house	body		house.House		true	"House payload"
//	@Success		201		{object}	house.Record	"House created"
//	@Failure		400		{object}	router.Response	"Duplicate identifier or malformed payload"
//	@Router			/house [post]
func createHouse(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	var payload house.House
	if err := c.ShouldBindJSON(&payload); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Houses.Create(c.Request.Context(), house.Record{House: payload})
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateID) {
			router.RespondWithError(c, http.StatusBadRequest,
				router.NewRequestError(http.StatusBadRequest, "house with this ID already exists", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to create house", err))
		return
	}
	router.RespondCreated(c, rec)
}

// listHouses retrieves houses matching every supplied filter
//
//	@Summary		List houses
//	@Description	List houses; person_uni matches when any resident carries the token
//	@Tags			houses
//	@Produce		json
//	@Param			phone		query	string	false	"Filter by phone number"
//	@Param			person_uni	query	string	false	"Filter by resident UNI"
//	@Param			city		query	string	false	"Filter by city of the address"
//	@Param			country		query	string	false	"Filter by country of the address"
//	@Success		200	{array}	house.Record	"Houses retrieved"
//	@Router			/houses [get]
func listHouses(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	filter := house.Filter{
		Phone:     router.QueryValue(c, "phone"),
		PersonUNI: router.QueryValue(c, "person_uni"),
		City:      router.QueryValue(c, "city"),
		Country:   router.QueryValue(c, "country"),
	}
	records, err := state.Houses.List(c.Request.Context(), filter.Match)
	if err != nil {
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to list houses", err))
		return
	}
	router.RespondOK(c, records)
}

// getHouseByID retrieves a house by ID
//
//	@Summary		Get house by ID
//	@Tags			houses
//	@Produce		json
//	@Param			house_id	path		string			true	"House ID"
//	@Success		200			{object}	house.Record	"House retrieved"
//	@Failure		404			{object}	router.Response	"House not found"
//	@Router			/houses/{house_id} [get]
func getHouseByID(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "house_id")
	if !ok {
		return
	}
	rec, err := state.Houses.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "house not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to get house", err))
		return
	}
	router.RespondOK(c, rec)
}

// updateHouse applies a partial update to a stored house
//
//	@Summary		Update house
//	@Description	Overwrite only the fields explicitly supplied; a supplied people list replaces all residents
//	@Tags			houses
//	@Accept			json
//	@Produce		json
//	@Param			house_id	path		string			true	"House ID"
//	@Param			patch		body		house.Patch		true	"Fields to change"
//	@Success		200			{object}	house.Record	"House updated"
//	@Failure		404			{object}	router.Response	"House not found"
//	@Router			/houses/{house_id} [patch]
func updateHouse(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "house_id")
	if !ok {
		return
	}
	var patch house.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Houses.Update(c.Request.Context(), id, patch.Apply)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "house not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to update house", err))
		return
	}
	router.RespondOK(c, rec)
}
