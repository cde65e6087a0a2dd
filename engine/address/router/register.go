package addressrouter

import (
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine) {
	addressesGroup := r.Group(routes.Addresses())
	{
		// POST /addresses
		addressesGroup.POST("", createAddress)

		// GET /addresses
		addressesGroup.GET("", listAddresses)

		// GET /addresses/:address_id
		addressesGroup.GET("/:address_id", getAddressByID)

		// PATCH /addresses/:address_id
		addressesGroup.PATCH("/:address_id", updateAddress)
	}
}
