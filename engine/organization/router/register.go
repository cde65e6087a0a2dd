package organizationrouter

import (
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine) {
	// POST /organization
	// The create path is singular for compatibility with existing clients.
	r.POST(routes.OrganizationCreate(), createOrganization)

	organizationsGroup := r.Group(routes.Organizations())
	{
		// GET /organizations
		organizationsGroup.GET("", listOrganizations)

		// GET /organizations/:organization_id
		organizationsGroup.GET("/:organization_id", getOrganizationByID)

		// PATCH /organizations/:organization_id
		organizationsGroup.PATCH("/:organization_id", updateOrganization)
	}
}
