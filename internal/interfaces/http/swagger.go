package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asesor-cotizaciones/docs"
)

// MountDocs sirve Swagger UI en /docs y el documento en /docs/swagger.json.
// El documento sale del paquete docs generado por swag, no del disco.
func MountDocs(app *fiber.App, title string) {
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       title,
	}))
}
