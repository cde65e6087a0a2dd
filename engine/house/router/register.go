package houserouter

import (
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine) {
	// POST /house
	// The create path is singular for compatibility with existing clients.
	r.POST(routes.HouseCreate(), createHouse)

	housesGroup := r.Group(routes.Houses())
	{
		// GET /houses
		housesGroup.GET("", listHouses)

		// GET /houses/:house_id
		housesGroup.GET("/:house_id", getHouseByID)

		// PATCH /houses/:house_id
		housesGroup.PATCH("/:house_id", updateHouse)
	}
}
