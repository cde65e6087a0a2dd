package organizationrouter

import (
	"errors"
	"net/http"

	"github.com/campusdir/campusdir/engine/infra/server/router"
	"github.com/campusdir/campusdir/engine/organization"
	"github.com/campusdir/campusdir/engine/registry"
	"github.com/gin-gonic/gin"
)

// createOrganization stores a new organization
//
//	@Summary		Create organization
//	@Description	Store a new organization with a validated email and one embedded address
//	@Tags			organizations
//	@Accept			json
//	@Produce		json
//	@Param			organization	body		organization.Organization	true	"Organization payload"
//	@Success		201				{object}	organization.Record			"Organization created"
//	@Failure		400				{object}	router.Response				"Duplicate identifier or malformed payload"
//	@Router			/organization [post]
func createOrganization(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	var payload organization.Organization
	if err := c.ShouldBindJSON(&payload); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Organizations.Create(c.Request.Context(), organization.Record{Organization: payload})
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateID) {
			router.RespondWithError(c, http.StatusBadRequest,
				router.NewRequestError(http.StatusBadRequest, "organization with this ID already exists", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to create organization", err))
		return
	}
	router.RespondCreated(c, rec)
}

// listOrganizations retrieves organizations matching every supplied filter
//
//	@Summary		List organizations
//	@Tags			organizations
//	@Produce		json
//	@Param			org_name	query	string	false	"Filter by organization name"
//	@Param			email		query	string	false	"Filter by email"
//	@Param			phone		query	string	false	"Filter by phone number"
//	@Param			city		query	string	false	"Filter by city of the address"
//	@Param			country		query	string	false	"Filter by country of the address"
//	@Success		200	{array}	organization.Record	"Organizations retrieved"
//	@Router			/organizations [get]
func listOrganizations(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	filter := organization.Filter{
		OrgName: router.QueryValue(c, "org_name"),
		Email:   router.QueryValue(c, "email"),
		Phone:   router.QueryValue(c, "phone"),
		City:    router.QueryValue(c, "city"),
		Country: router.QueryValue(c, "country"),
	}
	records, err := state.Organizations.List(c.Request.Context(), filter.Match)
	if err != nil {
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to list organizations", err))
		return
	}
	router.RespondOK(c, records)
}

// getOrganizationByID retrieves an organization by ID
//
//	@Summary		Get organization by ID
//	@Tags			organizations
//	@Produce		json
//	@Param			organization_id	path		string				true	"Organization ID"
//	@Success		200				{object}	organization.Record	"Organization retrieved"
//	@Failure		404				{object}	router.Response		"Organization not found"
//	@Router			/organizations/{organization_id} [get]
func getOrganizationByID(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "organization_id")
	if !ok {
		return
	}
	rec, err := state.Organizations.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "organization not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to get organization", err))
		return
	}
	router.RespondOK(c, rec)
}

// updateOrganization applies a partial update to a stored organization
//
//	@Summary		Update organization
//	@Description	Overwrite only the fields explicitly supplied; a supplied address replaces the embedded address
//	@Tags			organizations
//	@Accept			json
//	@Produce		json
//	@Param			organization_id	path		string				true	"Organization ID"
//	@Param			patch			body		organization.Patch	true	"Fields to change"
//	@Success		200				{object}	organization.Record	"Organization updated"
//	@Failure		404				{object}	router.Response		"Organization not found"
//	@Router			/organizations/{organization_id} [patch]
func updateOrganization(c *gin.Context) {
	state := router.GetAppState(c)
	if state == nil {
		return
	}
	id, ok := router.GetIDParam(c, "organization_id")
	if !ok {
		return
	}
	var patch organization.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	if err := patch.Validate(); err != nil {
		router.RespondWithError(c, http.StatusBadRequest,
			router.NewRequestError(http.StatusBadRequest, "invalid request body", err))
		return
	}
	rec, err := state.Organizations.Update(c.Request.Context(), id, patch.Apply)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			router.RespondWithError(c, http.StatusNotFound,
				router.NewRequestError(http.StatusNotFound, "organization not found", err))
			return
		}
		router.RespondWithError(c, http.StatusInternalServerError,
			router.NewRequestError(http.StatusInternalServerError, "failed to update organization", err))
		return
	}
	router.RespondOK(c, rec)
}
