package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/anthonyrh/techstore-api/internal/application/usecase"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// adminTemplate vista mínima de administración: tabla maestra de productos sobre
// el mismo caso de uso que la API JSON; no hay una segunda ruta de acceso a datos.
var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>TechStore - Administración</title>
    <style>
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        table, th, td { border: 1px solid black; }
        th, td { padding: 10px; text-align: left; }
    </style>
</head>
<body>
<h1>TechStore - Gestión de Productos</h1>
<table>
    <tr><th>SKU</th><th>Nombre</th><th>Categoría</th><th>Precio</th><th>Stock</th><th>Estado</th></tr>
    {{range .Products}}
    <tr>
        <td>{{.SKU}}</td>
        <td>{{.Name}}</td>
        <td>{{.Category}}</td>
        <td>${{.Price}}</td>
        <td>{{.Stock}}</td>
        <td>{{.Status}}</td>
    </tr>
    {{end}}
</table>
</body>
</html>
`))

// AdminHandler página de administración renderizada en servidor.
type AdminHandler struct {
	uc *usecase.ProductUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.ProductUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Index renderiza la tabla de productos. Acepta los mismos filtros que el listado JSON.
func (h *AdminHandler) Index(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	products, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return handleError(c, err)
	}

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, fiber.Map{"Products": products}); err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
