package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

const alertSoundPath = "/static/alert.mp3"

type templates struct {
	login     *template.Template
	dashboard *template.Template
	admin     *template.Template
}

func mustParseTemplates() *templates {
	funcs := template.FuncMap{
		// Solo se usa con URIs data: construidas por la consola.
		"safeURL": func(s string) template.URL { return template.URL(s) },
	}
	return &templates{
		login:     template.Must(template.New("login").Parse(layoutHTML + loginHTML)),
		dashboard: template.Must(template.New("dashboard").Funcs(funcs).Parse(layoutHTML + dashboardHTML)),
		admin:     template.Must(template.New("admin").Parse(layoutHTML + adminHTML)),
	}
}

// render ejecuta la plantilla y responde HTML con el status indicado.
func render(c *fiber.Ctx, status int, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

const layoutHTML = `{{define "layout"}}<!doctype html>
<html lang="es">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    {{block "head" .}}{{end}}
    <title>Gestión de Cotizaciones</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; }
      .container { max-width: 360px; margin: 10vh auto; background: #fff; padding: 24px; border-radius: 8px; }
      .header { display: flex; justify-content: space-between; align-items: center; padding: 12px 24px; background: #1f3b57; color: #fff; }
      .contentContainer { display: flex; gap: 16px; padding: 16px; }
      .notificationPanel { flex: 1; background: #fff; padding: 12px; border-radius: 8px; }
      .chatPanel { flex: 2; background: #fff; padding: 12px; border-radius: 8px; }
      .notificationItem { border-left: 4px solid #888; padding: 8px; margin-bottom: 8px; }
      .notificationItem.received { border-color: #e0a800; }
      .notificationItem.responded { border-color: #28a745; }
      .notificationItem.rejected { border-color: #dc3545; }
      .notificationItem button { all: unset; cursor: pointer; display: block; width: 100%; }
      .error { color: #b00020; }
      .productDetailsContainer { display: flex; gap: 16px; }
      .productImage img { max-width: 240px; }
      .buttonContainer { display: flex; gap: 8px; margin-top: 16px; }
      .inputGroup { margin-bottom: 12px; }
      .input { width: 100%; }
    </style>
  </head>
  <body>{{template "body" .}}</body>
</html>{{end}}`

const loginHTML = `{{define "body"}}
<div class="container">
  <h2 class="title">Iniciar Sesión</h2>
  <form method="post" action="/login" class="form">
    <div class="inputGroup">
      <label class="label">Email:</label>
      <input type="email" name="email" value="{{.Email}}" required class="input" />
    </div>
    <div class="inputGroup">
      <label class="label">Contraseña:</label>
      <input type="password" name="password" required class="input" />
    </div>
    <button type="submit" class="button">Iniciar Sesión</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
</div>
{{end}}`

const adminHTML = `{{define "body"}}
<header class="header">
  <h1>Administración</h1>
  <form method="post" action="/logout"><button class="logoutButton">Cerrar sesión</button></form>
</header>
<div class="container"><p>Panel de administración no disponible en esta consola.</p></div>
{{end}}`

const dashboardHTML = `{{define "head"}}<meta http-equiv="refresh" content="{{.RefreshSeconds}}" />{{end}}
{{define "body"}}
<header class="header">
  <h1>Gestión de Cotizaciones</h1>
  <form method="post" action="/logout"><button class="logoutButton">Cerrar sesión</button></form>
</header>
{{if .PlayAlert}}<audio autoplay src="{{.SoundURL}}"></audio>{{end}}
<div class="contentContainer">
  <div class="notificationPanel">
    <h3>Buzón de Notificaciones</h3>
    {{if and .View.List.Loading (not .View.Quotes)}}<p>Cargando cotizaciones...</p>{{end}}
    {{with .View.List.Error}}<p class="error">{{.}}</p>{{end}}
    {{range .View.Quotes}}
    <div class="notificationItem {{.StateClass}}">
      <form method="post" action="/asesor/quotes/{{.ID}}/select">
        <button type="submit">
          <h4>{{.Name}}</h4>
          <p>{{.Phone}}</p>
          <p class="date">{{.Date}}</p>
          <p>Estado: {{.StateLabel}}</p>
        </button>
      </form>
    </div>
    {{end}}
  </div>
  {{with .View.Active}}
  <div class="chatPanel">
    <h3>Detalle de la Cotización</h3>
    <p><strong>Nombre:</strong> {{.Name}}</p>
    <p><strong>Descripción:</strong> {{.Description}}</p>
    <p><strong>Fecha:</strong> {{.Date}}</p>
    <p><strong>Estado:</strong> {{.StateLabel}}</p>
    <p><strong>Cantidad:</strong> {{.Quantity}}</p>
    {{if $.View.ProductStatus.Loading}}<p>Cargando detalles del producto...</p>{{end}}
    {{with $.View.ProductStatus.Error}}<p class="error">{{.}}</p>{{end}}
    {{with $.View.Product}}
    <div class="productDetailsContainer">
      <div class="productInfo">
        <h4>{{.Name}}</h4>
        <p><strong>Tipo:</strong> {{.Type}}</p>
        <p><strong>Descripción:</strong> {{.Description}}</p>
        <p><strong>Precio:</strong> {{.Price}}</p>
        {{with .Offer}}<p><strong>Oferta:</strong> {{.}}</p>{{end}}
      </div>
      {{with .ImageURI}}<div class="productImage"><img src="{{safeURL .}}" alt="Imagen del producto" /></div>{{end}}
    </div>
    {{end}}
    <div class="buttonContainer">
      <form method="post" action="/asesor/quotes/{{.ID}}/respond" target="_blank"><button class="button">Responder</button></form>
      <form method="post" action="/asesor/quotes/{{.ID}}/reject"><button class="button">Rechazar</button></form>
    </div>
  </div>
  {{end}}
</div>
{{end}}`
