package addressrouter

import (
	"errors"
	"net/http"

	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/infra/server/router"
	"github.com/campusdir/campusdir/engine/registry"
	"github.com/gin-gonic/gin"
)

// createAddress stores a new address
//
//	@Summary		Create address
//	@Description	Store a new address, assigning an identifier when none is supplied
//	@Tags			addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		address.Address	true	"Address payload"
//	@Success		201		{object}	address.Record	"Address created"
//	@Failure		400		{object}	router.Response	"Duplicate identifier or malformed payload"
//	@Router			/addresses [post]
func createAddress(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	var payload address.Address
	if err := c.ShouldBindJSON(&payload); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Addresses.Create(c.Request.Context(), address.Record{Address: payload})
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateID) {
			router.RespondWithError(c, http.StatusBadRequest,
				router.NewRequestError(http.StatusBadRequest, "address with this ID already exists", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to create address", err))
		return
	}
	router.RespondCreated(c, rec)
}

// listAddresses retrieves addresses matching every supplied filter
//
//	@Summary		List addresses
//	@Description	List addresses, optionally filtered by exact field values
//	@Tags			addresses
//	@Produce		json
//	@Param			street		query	string	false	"Filter by street"
//	@Param			city		query	string	false	"Filter by city"
//	@Param			state		query	string	false	"Filter by state/region"
//	@Param			postal_code	query	string	false	"Filter by postal code"
//	@Param			country		query	string	false	"Filter by country"
//	@Success		200	{array}	address.Record	"Addresses retrieved"
//	@Router			/addresses [get]
func listAddresses(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	filter := address.Filter{
		Street:     router.QueryValue(c, "street"),
		City:       router.QueryValue(c, "city"),
		State:      router.QueryValue(c, "state"),
		PostalCode: router.QueryValue(c, "postal_code"),
		Country:    router.QueryValue(c, "country"),
	}
	records, err := state.Addresses.List(c.Request.Context(), filter.Match)
	if err != nil {
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to list addresses", err))
		return
	}
	router.RespondOK(c, records)
}

// getAddressByID retrieves an address by ID
//
//	@Summary		Get address by ID
//	@Tags			addresses
//	@Produce		json
//	@Param			address_id	path		string			true	"Address ID"
//	@Success		200			{object}	address.Record	"Address retrieved"
//	@Failure		404			{object}	router.Response	"Address not found"
//	@Router			/addresses/{address_id} [get]
func getAddressByID(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "address_id")
	if !ok {
		return
	}
	rec, err := state.Addresses.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "address not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to get address", err))
		return
	}
	router.RespondOK(c, rec)
}

// updateAddress applies a partial update to a stored address
//
//	@Summary		Update address
//	@Description	Overwrite only the fields explicitly supplied in the body
//	@Tags			addresses
//	@Accept			json
//	@Produce		json
//	@Param			address_id	path		string			true	"Address ID"
//	@Param			patch		body		address.Patch	true	"Fields to change"
//	@Success		200			{object}	address.Record	"Address updated"
//	@Failure		404			{object}	router.Response	"Address not found"
//	@Router			/addresses/{address_id} [patch]
func updateAddress(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "address_id")
	if !ok {
		return
	}
	var patch address.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Addresses.Update(c.Request.Context(), id, patch.Apply)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "address not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to update address", err))
		return
	}
	router.RespondOK(c, rec)
}
