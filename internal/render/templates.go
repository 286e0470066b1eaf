package render

// placeholderHTML is shown instead of cards when a category has no documents.
const placeholderHTML = `<p class="text-center w-100 py-5">No hay documentos en esta categoría.</p>`

// cardsTemplate renders the content of the cards container.
const cardsTemplate = `{{define "cards"}}{{range .}}
<div class="col-12 col-md-6">
    <div class="card h-100 border border-dark border-opacity-25 rounded-2 shadow-sm doc-card bg-white">
        <div class="card-body p-4 text-center d-flex flex-column align-items-center">
            <h5 class="fw-bold mb-3 fs-6">{{.Title}}</h5>
            <p class="text-dark small mb-4 text-start w-100">{{.Description}}</p>
            <a {{.Href}} class="btn btn-sage w-100 mt-auto btn-sm text-white" download="{{.Filename}}" target="_blank">Descargar</a>
        </div>
    </div>
</div>
{{else}}` + placeholderHTML + `{{end}}{{end}}`

// pageTemplate is the full catalog page with the category selector.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    .btn-sage { background-color: #7d9471; border-color: #7d9471; }
    .btn-sage:hover { background-color: #66795c; border-color: #66795c; }
    .doc-card { transition: transform .15s ease-in-out; }
    .doc-card:hover { transform: translateY(-2px); }
  </style>
</head>
<body class="bg-light">
  <main class="container py-5">
    <h1 class="h3 mb-4">{{.Title}}</h1>
    <form method="get" action="" class="mb-4">
      <label for="docFilter" class="form-label">Categoría</label>
      <select id="docFilter" name="categoria" class="form-select" onchange="this.form.submit()">
        {{range .Options}}<option value="{{.ID}}"{{if .Selected}} selected{{end}}{{if .Disabled}} disabled{{end}}>{{.Label}}</option>
        {{end}}
      </select>
      <noscript><button type="submit" class="btn btn-sage btn-sm text-white mt-2">Filtrar</button></noscript>
    </form>
    <h2 id="sectionTitle" class="h4 mb-3">{{.Heading}}</h2>
    <div id="cardsContainer" class="row g-4">{{template "cards" .Cards}}</div>
  </main>
</body>
</html>
{{end}}`
