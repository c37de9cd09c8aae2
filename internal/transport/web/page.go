package web

import (
	"fmt"
	"html/template"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// exampleTexts seed the form with one snippet per prominent category.
var exampleTexts = []string{
	"Grilled beef fillet with mushroom sauce and mashed potatoes",
	"Vodka based cocktail with fresh lime and mint leaves",
	"South African Cabernet Sauvignon with dark fruit and oak notes",
	"The restaurant has excellent ambiance and friendly staff",
	"Red velvet cake with cream cheese frosting",
}

type probabilityRow struct {
	Label   string
	Percent string
	Width   int
}

type predictionView struct {
	Category      string
	Description   string
	Confidence    string
	Probabilities []probabilityRow
}

type pageData struct {
	Examples []string
	Input    string
	Error    string
	Result   *predictionView
}

func resultData(pred domain.Prediction) *predictionView {
	view := &predictionView{
		Category:    pred.Category.String(),
		Description: pred.Category.Description(),
		Confidence:  fmt.Sprintf("%.1f%%", pred.Confidence*100),
	}
	for _, lp := range pred.Ranked() {
		view.Probabilities = append(view.Probabilities, probabilityRow{
			Label:   lp.Label.String(),
			Percent: fmt.Sprintf("%.1f%%", lp.Probability*100),
			Width:   int(lp.Probability * 100),
		})
	}
	return view
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>The Hickory Kampala - Content Classifier</title>
<style>
  body { font-family: Georgia, serif; max-width: 680px; margin: 2rem auto; padding: 0 1rem; color: #2b2119; background: #faf6f0; }
  h1 { margin-bottom: 0; }
  .subtitle { color: #7a6a55; margin-top: 0.25rem; }
  textarea { width: 100%; min-height: 7rem; font: inherit; padding: 0.5rem; border: 1px solid #b8a98f; border-radius: 4px; box-sizing: border-box; }
  button { background: #5c4327; color: #fff; border: 0; border-radius: 4px; padding: 0.5rem 1.5rem; font: inherit; cursor: pointer; }
  .error { color: #8c2f1b; }
  .result { border: 1px solid #b8a98f; border-radius: 4px; padding: 1rem; margin-top: 1.5rem; background: #fff; }
  .bar { background: #e8dfd0; border-radius: 3px; height: 0.8rem; overflow: hidden; }
  .bar span { display: block; height: 100%; background: #5c4327; }
  .row { margin: 0.4rem 0; }
  .row small { color: #7a6a55; }
  .examples li { margin: 0.25rem 0; cursor: pointer; color: #5c4327; text-decoration: underline; }
</style>
</head>
<body>
<h1>The Hickory Kampala</h1>
<p class="subtitle">Restaurant Content Classifier</p>
<p>Enter any restaurant-related text and the model will classify it into the appropriate category.</p>

<form method="post" action="/">
  <textarea name="text" placeholder="e.g., Grilled salmon fillet with creamy Tuscan sauce served with risotto rice">{{.Input}}</textarea>
  <p><button type="submit">Classify</button></p>
</form>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

{{with .Result}}
<div class="result">
  <h2>{{.Category}}</h2>
  <p>{{.Description}}</p>
  <p><strong>Confidence:</strong> {{.Confidence}}</p>
  <h3>All Category Probabilities</h3>
  {{range .Probabilities}}
  <div class="row">
    <small>{{.Label}}: {{.Percent}}</small>
    <div class="bar"><span style="width: {{.Width}}%"></span></div>
  </div>
  {{end}}
</div>
{{end}}

<h3>Try these examples</h3>
<ul class="examples">
{{range .Examples}}
  <li onclick="document.querySelector('textarea').value = this.textContent.trim()">{{.}}</li>
{{end}}
</ul>
</body>
</html>
`))
