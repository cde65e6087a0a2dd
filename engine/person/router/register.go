package personrouter

import (
	"github.com/campusdir/campusdir/engine/infra/server/routes"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine) {
	personsGroup := r.Group(routes.Persons())
	{
		// POST /persons
		personsGroup.POST("", createPerson)

		// GET /persons
		personsGroup.GET("", listPersons)

		// GET /persons/:person_id
		personsGroup.GET("/:person_id", getPersonByID)

		// PATCH /persons/:person_id
		personsGroup.PATCH("/:person_id", updatePerson)
	}
}
