package render

import (
	"bytes"
	"context"
	"html/template"

	"github.com/azmapper/azmap/pkg/errors"
)

// HTMLOptions configures the standalone HTML page.
type HTMLOptions struct {
	Title      string
	Background string
}

// HTML renders a DOT document into a self-contained HTML page with the SVG
// inlined and basic mouse pan/zoom controls. No external assets are
// referenced, so the file can be opened directly or served as-is.
func HTML(ctx context.Context, dot string, opts HTMLOptions) ([]byte, error) {
	svg, err := SVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = "Resource Diagram"
	}
	if opts.Background == "" {
		opts.Background = "white"
	}

	var buf bytes.Buffer
	err = htmlPage.Execute(&buf, struct {
		Title      string
		Background string
		SVG        template.HTML
	}{
		Title:      opts.Title,
		Background: opts.Background,
		SVG:        template.HTML(svg),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rendering HTML page")
	}
	return buf.Bytes(), nil
}

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  html, body { margin: 0; height: 100%; background: {{.Background}}; overflow: hidden; }
  #viewport { width: 100%; height: 100%; cursor: grab; }
  #viewport:active { cursor: grabbing; }
  #viewport svg { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="viewport">{{.SVG}}</div>
<script>
(function () {
  var svg = document.querySelector('#viewport svg');
  if (!svg) return;
  var vb = svg.viewBox.baseVal;
  var start = { x: vb.x, y: vb.y, w: vb.width, h: vb.height };
  var dragging = false, last = null;

  svg.addEventListener('mousedown', function (e) {
    dragging = true;
    last = { x: e.clientX, y: e.clientY };
  });
  window.addEventListener('mouseup', function () { dragging = false; });
  window.addEventListener('mousemove', function (e) {
    if (!dragging) return;
    var scale = vb.width / svg.clientWidth;
    vb.x -= (e.clientX - last.x) * scale;
    vb.y -= (e.clientY - last.y) * scale;
    last = { x: e.clientX, y: e.clientY };
  });
  svg.addEventListener('wheel', function (e) {
    e.preventDefault();
    var factor = e.deltaY > 0 ? 1.1 : 0.9;
    var rect = svg.getBoundingClientRect();
    var px = vb.x + (e.clientX - rect.left) / rect.width * vb.width;
    var py = vb.y + (e.clientY - rect.top) / rect.height * vb.height;
    vb.x = px - (px - vb.x) * factor;
    vb.y = py - (py - vb.y) * factor;
    vb.width *= factor;
    vb.height *= factor;
  }, { passive: false });
  svg.addEventListener('dblclick', function () {
    vb.x = start.x; vb.y = start.y; vb.width = start.w; vb.height = start.h;
  });
})();
</script>
</body>
</html>
`))
