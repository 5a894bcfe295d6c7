package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"emissions-dashboard-service/internal/views/core/domain"
)

const (
	htmxURL     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	viewTarget  = "#view"
)

// ---- Page Layout ----

func DashboardPage(title string, views []domain.ViewSpec) g.Node {
	// the first view loads as soon as the page is up
	viewAttrs := []g.Node{ID("view")}
	if len(views) > 0 {
		viewAttrs = append(viewAttrs, hx.Get(viewURL(views[0].ID)), hx.Trigger("load"))
	}

	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(tailwindURL)),
			Script(Type("text/javascript"), Src(htmxURL), Defer()),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8 flex gap-8"),
				navigation(views),
				Main(
					Class("flex-1"),
					H1(Class("text-3xl font-bold mb-6"), g.Text(title)),
					Div(viewAttrs...),
				),
			),
		},
	})
}

func navigation(views []domain.ViewSpec) g.Node {
	items := make([]g.Node, 0, len(views))
	for _, v := range views {
		items = append(items, Li(
			Button(
				Type("button"),
				Class("w-full text-left px-3 py-2 rounded hover:bg-gray-100"),
				hx.Get(viewURL(v.ID)),
				hx.Target(viewTarget),
				hx.Swap("innerHTML"),
				g.Text(v.Label),
			),
		))
	}
	return Nav(
		Class("w-72 shrink-0"),
		H2(Class("text-lg font-semibold mb-2"), g.Text("Navigation")),
		Ul(Class("space-y-1"), g.Group(items)),
	)
}

func viewURL(id string) string {
	return "/ui/views/" + id
}

// ---- View Fragments ----

func ViewFragment(res *domain.ViewResult) g.Node {
	body := []g.Node{
		H2(Class("text-2xl font-semibold mb-4"), g.Text(res.Title)),
	}

	if res.IsEmpty() {
		body = append(body, P(Class("text-gray-500"), g.Text("No data to display.")))
		return Section(g.Group(body))
	}

	switch res.Kind {
	case domain.OutputSeries:
		body = append(body, seriesTable(res))
	case domain.OutputScatter:
		body = append(body, pointsTable(res))
	case domain.OutputTable:
		for _, t := range res.Tables {
			body = append(body, recordTable(t))
		}
	}

	return Section(
		Data("chart", res.Chart),
		g.Group(body),
	)
}

func ErrorFragment(message string) g.Node {
	return Div(
		Class("p-4 rounded border border-red-300 bg-red-50 text-red-700"),
		Role("alert"),
		g.Text(message),
	)
}

// seriesTable renders one row per category and one value column per series.
func seriesTable(res *domain.ViewResult) g.Node {
	head := []g.Node{Th(g.Text(headerOr(res.XLabel, "Group")))}
	for _, s := range res.Series {
		head = append(head, Th(g.Text(s.Name)))
	}

	var rows []g.Node
	if len(res.Series) > 0 {
		for i, p := range res.Series[0].Points {
			cells := []g.Node{Td(g.Text(p.Label))}
			for _, s := range res.Series {
				cells = append(cells, Td(g.Text(formatValue(s.Points[i].Value))))
			}
			rows = append(rows, Tr(g.Group(cells)))
		}
	}

	return dataTable(head, rows)
}

func pointsTable(res *domain.ViewResult) g.Node {
	head := []g.Node{
		Th(g.Text(headerOr(res.XLabel, "X"))),
		Th(g.Text(headerOr(res.YLabel, "Y"))),
	}
	rows := make([]g.Node, 0, len(res.Points))
	for _, p := range res.Points {
		rows = append(rows, Tr(
			Td(g.Text(formatValue(p.X))),
			Td(g.Text(formatValue(p.Y))),
		))
	}
	return dataTable(head, rows)
}

func recordTable(t domain.Table) g.Node {
	head := make([]g.Node, 0, len(t.Columns))
	for _, c := range t.Columns {
		head = append(head, Th(g.Text(c)))
	}
	rows := make([]g.Node, 0, len(t.Rows))
	for _, r := range t.Rows {
		cells := make([]g.Node, 0, len(r))
		for _, v := range r {
			cells = append(cells, Td(g.Text(v)))
		}
		rows = append(rows, Tr(g.Group(cells)))
	}
	return Div(
		Class("mb-6"),
		H3(Class("text-lg font-medium mb-2"), g.Text(t.Title)),
		dataTable(head, rows),
	)
}

func dataTable(head, rows []g.Node) g.Node {
	return Table(
		Class("min-w-full border text-sm"),
		THead(Class("bg-gray-50"), Tr(g.Group(head))),
		TBody(g.Group(rows)),
	)
}

func headerOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
