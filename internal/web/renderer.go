package web

import (
	"html/template"
	"io"
)

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>DreamHaven Invoice Generator</title>
  <style>
    body {
      margin: 0 auto;
      max-width: 760px;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #f9fafb;
    }
    h1 { font-size: 22px; }
    form textarea {
      width: 100%;
      min-height: 160px;
      padding: 10px;
      font-family: inherit;
      border: 1px solid #d1d5db;
      border-radius: 8px;
      box-sizing: border-box;
    }
    button {
      margin-top: 8px;
      padding: 8px 16px;
      border: 0;
      border-radius: 8px;
      background: #1d4ed8;
      color: #ffffff;
      cursor: pointer;
    }
    .order-result {
      margin-top: 24px;
      padding: 16px;
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      background: #ffffff;
    }
    .order-result h3 { margin-top: 0; }
    .order-result textarea {
      width: 100%;
      min-height: 120px;
      padding: 10px;
      border: 1px solid #d1d5db;
      border-radius: 8px;
      box-sizing: border-box;
    }
  </style>
</head>
<body>
  <h1>DreamHaven Invoice Generator</h1>
  <form method="POST" action="/">
    <label for="order_details">Paste order details:</label>
    <textarea id="order_details" name="order_details" required></textarea>
    <button type="submit">Generate Invoices</button>
  </form>
{{if .Results}}
  <h2>Generated Invoices</h2>
{{range $i, $res := .Results}}
  <div class="order-result">
    <h3>Invoice #{{$res.InvoiceNumber}}</h3>
    <p><a href="{{$res.PDFURL}}" target="_blank" rel="noopener">Download PDF</a></p>
    <textarea id="summary-{{blockIndex $i}}" readonly>{{$res.DeliverySummary}}</textarea>
    <button type="button" onclick="copySummary('summary-{{blockIndex $i}}')">Copy Delivery Summary</button>
  </div>
{{end}}
{{end}}
  <script>{{copyScript}}</script>
</body>
</html>
`

// Result is the view data for one rendered order-result block
type Result struct {
	InvoiceNumber   string
	PDFURL          string
	DeliverySummary string
}

// PageData is the input to a single page render
type PageData struct {
	Results []Result
}

// Renderer renders the order form page, with one order-result block per
// result. Block element ids are summary-1..summary-n, local to one render.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the page template
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		// range indexes are zero-based, block ids are one-based
		"blockIndex": func(i int) int { return i + 1 },
		"copyScript": func() template.JS { return template.JS(copyScript) },
	}
	return &Renderer{
		tpl: template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate)),
	}
}

// RenderPage writes the page for the given results to w
func (r *Renderer) RenderPage(w io.Writer, results []Result) error {
	return r.tpl.Execute(w, PageData{Results: results})
}
